package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	OfficersRegistered   prometheus.Counter
	RegistrationsFlagged prometheus.Counter
	OfficersVerified     prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		OfficersRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pawtrol_officers_registered_total",
			Help: "Total number of officers registered in the directory",
		}),
		RegistrationsFlagged: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pawtrol_officer_registrations_flagged_total",
			Help: "Registrations flagged for manual review (non-institutional contact address)",
		}),
		OfficersVerified: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pawtrol_officers_verified_total",
			Help: "Officers marked verified by the external verification collaborator",
		}),
	}
}

func (m *Metrics) IncrementOfficersRegistered() {
	m.OfficersRegistered.Inc()
}

func (m *Metrics) IncrementRegistrationsFlagged() {
	m.RegistrationsFlagged.Inc()
}

func (m *Metrics) IncrementOfficersVerified() {
	m.OfficersVerified.Inc()
}
