package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"pawtrol/internal/encounter/models"
	id "pawtrol/pkg/domain"
	"pawtrol/pkg/platform/sentinel"
)

// PostgresStore persists encounters in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed encounter store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, enc *models.Encounter) error {
	if enc == nil {
		return fmt.Errorf("encounter is required")
	}
	query := `
		INSERT INTO encounters (
			id, officer_id, animal_type, breed, color,
			latitude, longitude, address,
			status, outcome, best_match_pet_id, best_match_confidence,
			contact_disclosed, created_at, updated_at, closed_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`
	_, err := s.db.ExecContext(ctx, query,
		uuid.UUID(enc.ID),
		uuid.UUID(enc.OfficerID),
		enc.AnimalType,
		enc.Breed,
		enc.Color,
		enc.Location.Latitude,
		enc.Location.Longitude,
		enc.Location.Address,
		string(enc.Status),
		string(enc.Outcome),
		nullablePetID(enc.BestMatchPetID),
		nullableInt(enc.BestMatchConfidence),
		enc.ContactDisclosed,
		enc.CreatedAt,
		enc.UpdatedAt,
		enc.ClosedAt,
	)
	if err != nil {
		return fmt.Errorf("create encounter: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, encounterID id.EncounterID) (*models.Encounter, error) {
	query := selectEncounter + ` WHERE id = $1`
	enc, err := scanEncounter(s.db.QueryRowContext(ctx, query, uuid.UUID(encounterID)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find encounter by id: %w", err)
	}
	return enc, nil
}

func (s *PostgresStore) Update(ctx context.Context, enc *models.Encounter) error {
	if enc == nil {
		return fmt.Errorf("encounter is required")
	}
	query := `
		UPDATE encounters
		SET best_match_pet_id = $2, best_match_confidence = $3,
		    contact_disclosed = $4, updated_at = $5
		WHERE id = $1
	`
	res, err := s.db.ExecContext(ctx, query,
		uuid.UUID(enc.ID),
		nullablePetID(enc.BestMatchPetID),
		nullableInt(enc.BestMatchConfidence),
		enc.ContactDisclosed,
		enc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update encounter: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update encounter rows: %w", err)
	}
	if rows == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

// Close transitions an active encounter to closed with the given outcome.
// The conditional UPDATE makes the transition atomic: under concurrent
// close attempts exactly one row update succeeds.
func (s *PostgresStore) Close(ctx context.Context, encounterID id.EncounterID, outcome models.Outcome, closedAt time.Time) (*models.Encounter, error) {
	query := `
		UPDATE encounters
		SET status = $2, outcome = $3, closed_at = $4, updated_at = $4
		WHERE id = $1 AND status = $5
	`
	res, err := s.db.ExecContext(ctx, query,
		uuid.UUID(encounterID),
		string(models.StatusClosed),
		string(outcome),
		closedAt,
		string(models.StatusActive),
	)
	if err != nil {
		return nil, fmt.Errorf("close encounter: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("close encounter rows: %w", err)
	}
	if rows == 0 {
		// Either the encounter does not exist or it is already closed.
		if _, findErr := s.FindByID(ctx, encounterID); findErr != nil {
			return nil, findErr
		}
		return nil, sentinel.ErrInvalidState
	}
	return s.FindByID(ctx, encounterID)
}

func (s *PostgresStore) ListByOfficer(ctx context.Context, officerID id.OfficerID) ([]*models.Encounter, error) {
	query := selectEncounter + ` WHERE officer_id = $1 ORDER BY created_at DESC`
	rows, err := s.db.QueryContext(ctx, query, uuid.UUID(officerID))
	if err != nil {
		return nil, fmt.Errorf("list encounters by officer: %w", err)
	}
	defer rows.Close()

	var out []*models.Encounter
	for rows.Next() {
		enc, err := scanEncounter(rows)
		if err != nil {
			return nil, fmt.Errorf("scan encounter: %w", err)
		}
		out = append(out, enc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate encounters: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) CountByOfficer(ctx context.Context, officerID id.OfficerID) (int, error) {
	return s.countWhere(ctx, `officer_id = $1`, uuid.UUID(officerID))
}

func (s *PostgresStore) CountMatchedByOfficer(ctx context.Context, officerID id.OfficerID) (int, error) {
	return s.countWhere(ctx, `officer_id = $1 AND best_match_pet_id IS NOT NULL`, uuid.UUID(officerID))
}

func (s *PostgresStore) CountRTOByOfficer(ctx context.Context, officerID id.OfficerID) (int, error) {
	return s.countWhere(ctx, `officer_id = $1 AND outcome = '`+string(models.OutcomeRTO)+`'`, uuid.UUID(officerID))
}

func (s *PostgresStore) countWhere(ctx context.Context, where string, args ...any) (int, error) {
	var n int
	query := `SELECT COUNT(*) FROM encounters WHERE ` + where
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count encounters: %w", err)
	}
	return n, nil
}

const selectEncounter = `
	SELECT id, officer_id, animal_type, breed, color,
	       latitude, longitude, address,
	       status, outcome, best_match_pet_id, best_match_confidence,
	       contact_disclosed, created_at, updated_at, closed_at
	FROM encounters
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEncounter(row rowScanner) (*models.Encounter, error) {
	var (
		enc         models.Encounter
		encounterID uuid.UUID
		officerID   uuid.UUID
		status      string
		outcome     string
		petID       sql.NullString
		confidence  sql.NullInt64
		closedAt    sql.NullTime
	)
	if err := row.Scan(
		&encounterID,
		&officerID,
		&enc.AnimalType,
		&enc.Breed,
		&enc.Color,
		&enc.Location.Latitude,
		&enc.Location.Longitude,
		&enc.Location.Address,
		&status,
		&outcome,
		&petID,
		&confidence,
		&enc.ContactDisclosed,
		&enc.CreatedAt,
		&enc.UpdatedAt,
		&closedAt,
	); err != nil {
		return nil, err
	}
	enc.ID = id.EncounterID(encounterID)
	enc.OfficerID = id.OfficerID(officerID)
	enc.Status = models.Status(status)
	enc.Outcome = models.Outcome(outcome)
	if petID.Valid {
		p := id.PetID(petID.String)
		enc.BestMatchPetID = &p
	}
	if confidence.Valid {
		c := int(confidence.Int64)
		enc.BestMatchConfidence = &c
	}
	if closedAt.Valid {
		t := closedAt.Time
		enc.ClosedAt = &t
	}
	return &enc, nil
}

func nullablePetID(petID *id.PetID) any {
	if petID == nil {
		return nil
	}
	return petID.String()
}

func nullableInt(n *int) any {
	if n == nil {
		return nil
	}
	return *n
}
