package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"pawtrol/internal/officer/models"
	id "pawtrol/pkg/domain"
	"pawtrol/pkg/platform/sentinel"
)

// PostgresStore persists officers in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed officer store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, officer *models.Officer) error {
	if officer == nil {
		return fmt.Errorf("officer is required")
	}
	query := `
		INSERT INTO officers (
			id, name, badge_number, department, department_type,
			jurisdiction, email, phone, verified, review_required,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := s.db.ExecContext(ctx, query,
		uuid.UUID(officer.ID),
		officer.Name,
		officer.BadgeNumber,
		officer.Department,
		string(officer.DepartmentType),
		officer.Jurisdiction,
		officer.Email,
		officer.Phone,
		officer.Verified,
		officer.ReviewRequired,
		officer.CreatedAt,
		officer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("badge number already registered for department: %w", sentinel.ErrConflict)
		}
		return fmt.Errorf("create officer: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, officerID id.OfficerID) (*models.Officer, error) {
	query := `
		SELECT id, name, badge_number, department, department_type,
		       jurisdiction, email, phone, verified, review_required,
		       created_at, updated_at
		FROM officers
		WHERE id = $1
	`
	officer, err := scanOfficer(s.db.QueryRowContext(ctx, query, uuid.UUID(officerID)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find officer by id: %w", err)
	}
	return officer, nil
}

func (s *PostgresStore) Update(ctx context.Context, officer *models.Officer) error {
	if officer == nil {
		return fmt.Errorf("officer is required")
	}
	query := `
		UPDATE officers
		SET name = $2, verified = $3, review_required = $4, updated_at = $5
		WHERE id = $1
	`
	res, err := s.db.ExecContext(ctx, query,
		uuid.UUID(officer.ID),
		officer.Name,
		officer.Verified,
		officer.ReviewRequired,
		officer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update officer: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update officer rows: %w", err)
	}
	if rows == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOfficer(row rowScanner) (*models.Officer, error) {
	var (
		officer   models.Officer
		officerID uuid.UUID
		deptType  string
	)
	if err := row.Scan(
		&officerID,
		&officer.Name,
		&officer.BadgeNumber,
		&officer.Department,
		&deptType,
		&officer.Jurisdiction,
		&officer.Email,
		&officer.Phone,
		&officer.Verified,
		&officer.ReviewRequired,
		&officer.CreatedAt,
		&officer.UpdatedAt,
	); err != nil {
		return nil, err
	}
	officer.ID = id.OfficerID(officerID)
	officer.DepartmentType = models.DepartmentType(deptType)
	return &officer, nil
}

// isUniqueViolation reports whether err is a postgres unique constraint violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
