// Package publisher persists audit entries and fans them out to Kafka.
package publisher

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	id "pawtrol/pkg/domain"
	"pawtrol/pkg/platform/audit"
	"pawtrol/pkg/requestcontext"
)

// Topic is the Kafka topic audit entries are published to.
const Topic = "pawtrol.audit"

// Producer is the minimal Kafka producing surface the publisher needs.
// internal/platform/kafka/producer satisfies it; a Noop variant is used when
// brokers are not configured.
type Producer interface {
	ProduceAsync(topic string, key, value []byte) error
}

// Publisher appends audit entries to the store synchronously (the entry is
// part of the operation's durability guarantee) and mirrors them to Kafka
// asynchronously for downstream consumers.
type Publisher struct {
	store    audit.Store
	producer Producer
	logger   *slog.Logger
}

func New(store audit.Store, producer Producer, logger *slog.Logger) *Publisher {
	return &Publisher{store: store, producer: producer, logger: logger}
}

// Emit fills in identity and timing defaults, persists the entry, and mirrors
// it to Kafka. A Kafka failure is logged but never fails the operation; the
// store append is the source of truth.
func (p *Publisher) Emit(ctx context.Context, entry audit.Entry) error {
	if entry.ID.IsNil() {
		entry.ID = id.AuditID(uuid.New())
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	if entry.RequestID == "" {
		entry.RequestID = requestcontext.RequestID(ctx)
	}

	if err := p.store.Append(ctx, entry); err != nil {
		return err
	}

	p.mirror(ctx, entry)
	return nil
}

// List returns the audit trail for an encounter in append order.
func (p *Publisher) List(ctx context.Context, encounterID id.EncounterID) ([]audit.Entry, error) {
	return p.store.ListByEncounter(ctx, encounterID)
}

func (p *Publisher) mirror(ctx context.Context, entry audit.Entry) {
	if p.producer == nil {
		return
	}
	value, err := json.Marshal(wireEntryFrom(entry))
	if err != nil {
		p.logger.ErrorContext(ctx, "failed to marshal audit entry", "error", err, "audit_id", entry.ID)
		return
	}
	if err := p.producer.ProduceAsync(Topic, []byte(entry.EncounterID.String()), value); err != nil {
		p.logger.ErrorContext(ctx, "failed to publish audit entry to kafka",
			"error", err,
			"audit_id", entry.ID,
		)
	}
}

// wireEntry is the JSON shape published to Kafka. Kept separate from the
// domain type so the wire contract does not drift silently.
type wireEntry struct {
	ID                string `json:"id"`
	EncounterID       string `json:"encounter_id"`
	OfficerID         string `json:"officer_id"`
	Action            string `json:"action"`
	Timestamp         string `json:"timestamp"`
	PetID             string `json:"pet_id,omitempty"`
	Confidence        int    `json:"confidence,omitempty"`
	ContactDisclosed  bool   `json:"contact_disclosed"`
	Outcome           string `json:"outcome,omitempty"`
	OwnerIDVerified   bool   `json:"owner_id_verified,omitempty"`
	SignatureCaptured bool   `json:"signature_captured,omitempty"`
	RequestID         string `json:"request_id,omitempty"`
}

func wireEntryFrom(entry audit.Entry) wireEntry {
	return wireEntry{
		ID:                entry.ID.String(),
		EncounterID:       entry.EncounterID.String(),
		OfficerID:         entry.OfficerID.String(),
		Action:            string(entry.Action),
		Timestamp:         entry.Timestamp.UTC().Format(time.RFC3339Nano),
		PetID:             entry.PetID.String(),
		Confidence:        entry.Confidence,
		ContactDisclosed:  entry.ContactDisclosed,
		Outcome:           entry.Outcome,
		OwnerIDVerified:   entry.OwnerIDVerified,
		SignatureCaptured: entry.SignatureCaptured,
		RequestID:         entry.RequestID,
	}
}
