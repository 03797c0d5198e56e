package registry

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	id "pawtrol/pkg/domain"
	"pawtrol/pkg/platform/sentinel"
)

// PostgresStore persists owner contact records in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed contact store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) FindByPet(ctx context.Context, petID id.PetID) (*OwnerContact, error) {
	query := `
		SELECT pet_id, owner_name, phone, email,
		       emergency_name, emergency_phone, home_address,
		       medical_notes, approach_instructions
		FROM owner_contacts
		WHERE pet_id = $1
	`
	var contact OwnerContact
	var petIDStr string
	err := s.db.QueryRowContext(ctx, query, string(petID)).Scan(
		&petIDStr,
		&contact.OwnerName,
		&contact.Phone,
		&contact.Email,
		&contact.EmergencyName,
		&contact.EmergencyPhone,
		&contact.HomeAddress,
		&contact.MedicalNotes,
		&contact.ApproachInstructions,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find contact by pet: %w", err)
	}
	contact.PetID = id.PetID(petIDStr)
	return &contact, nil
}

func (s *PostgresStore) Upsert(ctx context.Context, contact *OwnerContact) error {
	if contact == nil {
		return fmt.Errorf("contact is required")
	}
	query := `
		INSERT INTO owner_contacts (
			pet_id, owner_name, phone, email,
			emergency_name, emergency_phone, home_address,
			medical_notes, approach_instructions
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (pet_id) DO UPDATE SET
			owner_name = EXCLUDED.owner_name,
			phone = EXCLUDED.phone,
			email = EXCLUDED.email,
			emergency_name = EXCLUDED.emergency_name,
			emergency_phone = EXCLUDED.emergency_phone,
			home_address = EXCLUDED.home_address,
			medical_notes = EXCLUDED.medical_notes,
			approach_instructions = EXCLUDED.approach_instructions
	`
	_, err := s.db.ExecContext(ctx, query,
		string(contact.PetID),
		contact.OwnerName,
		contact.Phone,
		contact.Email,
		contact.EmergencyName,
		contact.EmergencyPhone,
		contact.HomeAddress,
		contact.MedicalNotes,
		contact.ApproachInstructions,
	)
	if err != nil {
		return fmt.Errorf("upsert contact: %w", err)
	}
	return nil
}
