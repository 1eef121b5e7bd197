package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the registry module.
// Tracks lifecycle mutations per category, report latency and export volume.
type Metrics struct {
	RecordsCreated     *prometheus.CounterVec
	RecordsSoftDeleted *prometheus.CounterVec
	BatchesRejected    prometheus.Counter
	ReportDuration     prometheus.Histogram
	ExportRows         *prometheus.CounterVec
}

// New registers the registry metrics on reg. Pass prometheus.DefaultRegisterer
// in production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		RecordsCreated: f.NewCounterVec(prometheus.CounterOpts{
			Name: "ward_records_created_total",
			Help: "Total number of records created, by category",
		}, []string{"category"}),
		RecordsSoftDeleted: f.NewCounterVec(prometheus.CounterOpts{
			Name: "ward_records_soft_deleted_total",
			Help: "Total number of records moved to inactive, by category",
		}, []string{"category"}),
		BatchesRejected: f.NewCounter(prometheus.CounterOpts{
			Name: "ward_batch_create_rejected_total",
			Help: "Total number of batch creates rejected before any insert",
		}),
		ReportDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "ward_report_duration_seconds",
			Help:    "Duration of summary report computation",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5},
		}),
		ExportRows: f.NewCounterVec(prometheus.CounterOpts{
			Name: "ward_export_rows_total",
			Help: "Total number of rows written to exports, by category and format",
		}, []string{"category", "format"}),
	}
}

func (m *Metrics) IncrementCreated(category string, n int) {
	m.RecordsCreated.WithLabelValues(category).Add(float64(n))
}

func (m *Metrics) IncrementSoftDeleted(category string) {
	m.RecordsSoftDeleted.WithLabelValues(category).Inc()
}

func (m *Metrics) IncrementBatchRejected() {
	m.BatchesRejected.Inc()
}

// ObserveReport records the duration of a report computation.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveReport(start time.Time) {
	m.ReportDuration.Observe(time.Since(start).Seconds())
}

func (m *Metrics) AddExportRows(category, format string, n int) {
	m.ExportRows.WithLabelValues(category, format).Add(float64(n))
}
