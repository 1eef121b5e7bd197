package handler

import (
	"wardregistry/internal/registry/linkage"
	"wardregistry/internal/registry/models"
	"wardregistry/internal/registry/pagination"
	id "wardregistry/pkg/domain"
)

// DwellingResponse is a dwelling with its rendered address.
type DwellingResponse struct {
	*models.Dwelling
	Address string `json:"address"`
}

// RecordResponse is a beneficiary record with its dwelling reference and
// payee rendered the way list views show them.
type RecordResponse struct {
	*models.BeneficiaryRecord
	Address     string `json:"address"`
	PayeeName   string `json:"payee_name"`
	PayeeChoice string `json:"payee_choice"`
}

type ChoicesResponse struct {
	DwellingID id.DwellingID    `json:"dwelling_id"`
	Choices    []linkage.Choice `json:"choices"`
}

type LinkedRecordsResponse struct {
	DwellingID id.DwellingID                        `json:"dwelling_id"`
	Records    map[models.Category][]RecordResponse `json:"records"`
}

type CatalogListResponse struct {
	Kind    models.CatalogKind     `json:"kind"`
	Entries []*models.CatalogEntry `json:"entries"`
}

type BatchCreateResponse struct {
	Created []RecordResponse `json:"created"`
}

type PolygonResponse struct {
	Points           models.Polygon `json:"points"`
	AreaSquareMeters float64        `json:"area_square_meters"`
}

type UploadResponse struct {
	Name string `json:"name"`
	Key  string `json:"key"`
	Rows int    `json:"rows"`
}

func (h *Handler) dwellingResponse(d *models.Dwelling) DwellingResponse {
	return DwellingResponse{Dwelling: d, Address: d.Address()}
}

func (h *Handler) recordResponse(r *models.BeneficiaryRecord) RecordResponse {
	return RecordResponse{
		BeneficiaryRecord: r,
		Address:           h.links.ResolveAddress(r.LinkedHouseID),
		PayeeName:         h.links.ResolvePayee(r.LinkedHouseID, r.Payee),
		PayeeChoice:       r.Payee.ChoiceID(),
	}
}

func (h *Handler) recordResponses(list []*models.BeneficiaryRecord) []RecordResponse {
	out := make([]RecordResponse, len(list))
	for i, r := range list {
		out[i] = h.recordResponse(r)
	}
	return out
}

func (h *Handler) dwellingPage(p pagination.Page[*models.Dwelling]) pagination.Page[DwellingResponse] {
	return pagination.Map(p, h.dwellingResponse)
}

func (h *Handler) recordPage(p pagination.Page[*models.BeneficiaryRecord]) pagination.Page[RecordResponse] {
	return pagination.Map(p, h.recordResponse)
}
