package service

import (
	"log/slog"

	"pawtrol/internal/disclosure"
	encountermetrics "pawtrol/internal/encounter/metrics"
)

// serviceConfig holds optional dependencies for the service.
type serviceConfig struct {
	logger         *slog.Logger
	auditPublisher AuditPublisher
	metrics        *encountermetrics.Metrics
	policy         *disclosure.Policy
}

// Option configures a service.
type Option func(c *serviceConfig)

func WithLogger(logger *slog.Logger) Option {
	return func(c *serviceConfig) {
		c.logger = logger
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(c *serviceConfig) {
		c.auditPublisher = publisher
	}
}

func WithMetrics(m *encountermetrics.Metrics) Option {
	return func(c *serviceConfig) {
		c.metrics = m
	}
}

// WithDisclosurePolicy overrides the default disclosure threshold.
func WithDisclosurePolicy(p *disclosure.Policy) Option {
	return func(c *serviceConfig) {
		c.policy = p
	}
}
