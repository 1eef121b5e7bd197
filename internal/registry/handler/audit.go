package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	dErrors "wardregistry/pkg/domain-errors"
	audit "wardregistry/pkg/platform/audit"
	"wardregistry/pkg/platform/httputil"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 500
)

// AuditLog reads the change history.
type AuditLog interface {
	ListBySubject(ctx context.Context, subject string) ([]audit.Event, error)
	ListRecent(ctx context.Context, limit int) ([]audit.Event, error)
}

type AuditTrailResponse struct {
	Events []audit.Event `json:"events"`
}

// HandleAuditTrail handles GET /audit. With ?subject= it returns that
// dwelling's, record's or catalog entry's history oldest first; otherwise the
// latest ?limit= events newest first.
func (h *Handler) HandleAuditTrail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	var (
		events []audit.Event
		err    error
	)
	if subject := strings.TrimSpace(q.Get("subject")); subject != "" {
		events, err = h.audit.ListBySubject(ctx, subject)
	} else {
		limit, perr := auditLimit(q.Get("limit"))
		if perr != nil {
			h.fail(ctx, w, "invalid audit limit", perr)
			return
		}
		events, err = h.audit.ListRecent(ctx, limit)
	}
	if err != nil {
		h.fail(ctx, w, "failed to read audit trail", dErrors.Wrap(err, dErrors.CodeInternal, "failed to read audit trail"))
		return
	}
	if events == nil {
		events = []audit.Event{}
	}
	httputil.WriteJSON(w, http.StatusOK, AuditTrailResponse{Events: events})
}

func auditLimit(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultAuditLimit, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > maxAuditLimit {
		return 0, dErrors.NewField(dErrors.CodeInvalidInput, "limit", "limit must be between 1 and 500")
	}
	return n, nil
}
