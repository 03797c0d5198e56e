package models

import (
	"strings"
	"time"

	id "pawtrol/pkg/domain"
	dErrors "pawtrol/pkg/domain-errors"
)

// DepartmentType classifies the registering agency.
type DepartmentType string

const (
	DepartmentAnimalControl DepartmentType = "animal_control"
	DepartmentPolice        DepartmentType = "police"
	DepartmentSheriff       DepartmentType = "sheriff"
	DepartmentOther         DepartmentType = "other"
)

// ValidDepartmentType reports whether t is a known department type.
func ValidDepartmentType(t DepartmentType) bool {
	switch t {
	case DepartmentAnimalControl, DepartmentPolice, DepartmentSheriff, DepartmentOther:
		return true
	}
	return false
}

// Officer is a field officer in the directory. Officers are created
// unverified; the external verification collaborator flips the flag.
// Officers are never deleted, only left unverified.
type Officer struct {
	ID             id.OfficerID
	Name           string
	BadgeNumber    string
	Department     string
	DepartmentType DepartmentType
	Jurisdiction   string
	Email          string
	Phone          string
	Verified       bool

	// ReviewRequired marks registrations with a non-institutional contact
	// address for manual review instead of the normal verification path.
	ReviewRequired bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewOfficer constructs an unverified officer, enforcing field invariants.
func NewOfficer(officerID id.OfficerID, name, badge, department string, deptType DepartmentType, jurisdiction, email, phone string, now time.Time) (*Officer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "officer name is required")
	}
	if strings.TrimSpace(department) == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "department is required")
	}
	if !ValidDepartmentType(deptType) {
		return nil, dErrors.New(dErrors.CodeValidation, "unknown department type")
	}
	return &Officer{
		ID:             officerID,
		Name:           name,
		BadgeNumber:    strings.TrimSpace(badge),
		Department:     strings.TrimSpace(department),
		DepartmentType: deptType,
		Jurisdiction:   strings.TrimSpace(jurisdiction),
		Email:          strings.ToLower(strings.TrimSpace(email)),
		Phone:          strings.TrimSpace(phone),
		Verified:       false,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// MarkVerified records the external verification outcome.
func (o *Officer) MarkVerified(now time.Time) error {
	if o.Verified {
		return dErrors.New(dErrors.CodeInvariantViolation, "officer is already verified")
	}
	o.Verified = true
	o.UpdatedAt = now
	return nil
}

// Stats is the read-mostly rollup over an officer's encounters.
// Recomputed on each read; no caching invariant beyond eventual consistency.
type Stats struct {
	TotalScans   int `json:"total_scans"`
	TotalMatches int `json:"total_matches"`
	TotalRTOs    int `json:"total_rtos"`
}
