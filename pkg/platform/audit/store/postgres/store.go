// Package postgres persists audit entries in PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	id "pawtrol/pkg/domain"
	"pawtrol/pkg/platform/audit"
)

// Store is the PostgreSQL-backed audit store. The audit_entries table carries
// no UPDATE or DELETE path; immutability is enforced by only ever inserting.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Append(ctx context.Context, entry audit.Entry) error {
	query := `
		INSERT INTO audit_entries (
			id, encounter_id, officer_id, action, recorded_at,
			pet_id, confidence, contact_disclosed,
			outcome, owner_id_verified, signature_captured, request_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := s.db.ExecContext(ctx, query,
		uuid.UUID(entry.ID),
		nullableUUID(uuid.UUID(entry.EncounterID)),
		uuid.UUID(entry.OfficerID),
		string(entry.Action),
		entry.Timestamp,
		nullablePetID(entry.PetID),
		entry.Confidence,
		entry.ContactDisclosed,
		entry.Outcome,
		entry.OwnerIDVerified,
		entry.SignatureCaptured,
		entry.RequestID,
	)
	if err != nil {
		return fmt.Errorf("append audit entry: %w", err)
	}
	return nil
}

func (s *Store) ListByEncounter(ctx context.Context, encounterID id.EncounterID) ([]audit.Entry, error) {
	query := `
		SELECT id, encounter_id, officer_id, action, recorded_at,
		       pet_id, confidence, contact_disclosed,
		       outcome, owner_id_verified, signature_captured, request_id
		FROM audit_entries
		WHERE encounter_id = $1
		ORDER BY recorded_at ASC
	`
	rows, err := s.db.QueryContext(ctx, query, uuid.UUID(encounterID))
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	defer rows.Close()

	var entries []audit.Entry
	for rows.Next() {
		var (
			entry   audit.Entry
			entryID uuid.UUID
			encID   uuid.UUID
			offID   uuid.UUID
			action  string
			petID   sql.NullString
		)
		if err := rows.Scan(
			&entryID, &encID, &offID, &action, &entry.Timestamp,
			&petID, &entry.Confidence, &entry.ContactDisclosed,
			&entry.Outcome, &entry.OwnerIDVerified, &entry.SignatureCaptured, &entry.RequestID,
		); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		entry.ID = id.AuditID(entryID)
		entry.EncounterID = id.EncounterID(encID)
		entry.OfficerID = id.OfficerID(offID)
		entry.Action = audit.Action(action)
		if petID.Valid {
			entry.PetID = id.PetID(petID.String)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit entries: %w", err)
	}
	return entries, nil
}

// nullableUUID maps the zero UUID to NULL. Directory-level entries (e.g.
// officer registration) have no encounter.
func nullableUUID(u uuid.UUID) any {
	if u == uuid.Nil {
		return nil
	}
	return u
}

func nullablePetID(petID id.PetID) any {
	if petID.IsNil() {
		return nil
	}
	return string(petID)
}
