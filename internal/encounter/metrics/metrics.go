package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	ScansSubmitted    prometheus.Counter
	ScansFailed       *prometheus.CounterVec
	ContactsDisclosed prometheus.Counter
	OutcomesRecorded  *prometheus.CounterVec
	ScanDuration      prometheus.Histogram
}

func New() *Metrics {
	return &Metrics{
		ScansSubmitted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pawtrol_scans_submitted_total",
			Help: "Scan submissions accepted for processing",
		}),
		ScansFailed: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pawtrol_scans_failed_total",
			Help: "Scan submissions rejected or failed, by reason",
		}, []string{"reason"}),
		ContactsDisclosed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pawtrol_contacts_disclosed_total",
			Help: "Owner contact disclosures released to officers",
		}),
		OutcomesRecorded: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "pawtrol_outcomes_recorded_total",
			Help: "Encounters closed, by outcome",
		}, []string{"outcome"}),
		ScanDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "pawtrol_scan_duration_seconds",
			Help:    "End-to-end scan processing duration including the ranking call",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func (m *Metrics) IncrementScansSubmitted() {
	m.ScansSubmitted.Inc()
}

func (m *Metrics) IncrementScansFailed(reason string) {
	m.ScansFailed.WithLabelValues(reason).Inc()
}

func (m *Metrics) IncrementContactsDisclosed() {
	m.ContactsDisclosed.Inc()
}

func (m *Metrics) IncrementOutcomesRecorded(outcome string) {
	m.OutcomesRecorded.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveScanDuration(d time.Duration) {
	m.ScanDuration.Observe(d.Seconds())
}
