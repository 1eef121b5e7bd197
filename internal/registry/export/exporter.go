package export

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	registrymetrics "wardregistry/internal/registry/metrics"
	"wardregistry/internal/registry/models"
	"wardregistry/internal/registry/query"
	dErrors "wardregistry/pkg/domain-errors"
	"wardregistry/pkg/requestcontext"
)

// Source lists records with the same filters the list endpoints apply.
type Source interface {
	ListDwellings(ctx context.Context, c query.Criteria) ([]*models.Dwelling, error)
	ListRecords(ctx context.Context, category models.Category, c query.Criteria) ([]*models.BeneficiaryRecord, error)
}

// Uploader stores a finished export somewhere durable and returns its key.
type Uploader interface {
	Upload(ctx context.Context, name, contentType string, body []byte) (string, error)
}

// File is an encoded export ready to be served or uploaded.
type File struct {
	Name        string
	ContentType string
	Data        []byte
	Rows        int
}

type Exporter struct {
	source   Source
	links    Resolver
	uploader Uploader
	metrics  *registrymetrics.Metrics
	tracer   trace.Tracer
	location *time.Location
}

type Option func(*Exporter)

func WithUploader(u Uploader) Option {
	return func(x *Exporter) {
		x.uploader = u
	}
}

func WithMetrics(m *registrymetrics.Metrics) Option {
	return func(x *Exporter) {
		x.metrics = m
	}
}

// WithLocation sets the zone used for the date in file names.
func WithLocation(loc *time.Location) Option {
	return func(x *Exporter) {
		if loc != nil {
			x.location = loc
		}
	}
}

func New(source Source, links Resolver, opts ...Option) *Exporter {
	x := &Exporter{
		source:   source,
		links:    links,
		tracer:   otel.Tracer("wardregistry/internal/registry/export"),
		location: time.UTC,
	}
	for _, opt := range opts {
		opt(x)
	}
	return x
}

// Export renders one category's records matching c.
func (x *Exporter) Export(ctx context.Context, category models.Category, format Format, c query.Criteria) (*File, error) {
	ctx, span := x.tracer.Start(ctx, "export.Export", trace.WithAttributes(
		attribute.String("export.category", string(category)),
		attribute.String("export.format", string(format)),
	))
	defer span.End()

	table, err := x.table(ctx, category, c)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	data, err := Encode(table, format)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if x.metrics != nil {
		x.metrics.AddExportRows(string(category), string(format), len(table.Rows))
	}
	span.SetAttributes(attribute.Int("export.rows", len(table.Rows)))
	return &File{
		Name:        FileName(category, format, requestcontext.Now(ctx).In(x.location)),
		ContentType: format.ContentType(),
		Data:        data,
		Rows:        len(table.Rows),
	}, nil
}

func (x *Exporter) table(ctx context.Context, category models.Category, c query.Criteria) (Table, error) {
	if category == models.CategoryDwelling {
		list, err := x.source.ListDwellings(ctx, c)
		if err != nil {
			return Table{}, err
		}
		return DwellingTable(list), nil
	}
	list, err := x.source.ListRecords(ctx, category, c)
	if err != nil {
		return Table{}, err
	}
	return RecordTable(category, list, x.links), nil
}

// Upload sends f to the configured uploader.
func (x *Exporter) Upload(ctx context.Context, f *File) (string, error) {
	if x.uploader == nil {
		return "", dErrors.New(dErrors.CodeBadRequest, "export uploads are not configured")
	}
	ctx, span := x.tracer.Start(ctx, "export.Upload", trace.WithAttributes(attribute.String("export.name", f.Name)))
	defer span.End()

	key, err := x.uploader.Upload(ctx, f.Name, f.ContentType, f.Data)
	if err != nil {
		span.RecordError(err)
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to upload export")
	}
	return key, nil
}
