package handler

import (
	"strings"

	"pawtrol/internal/officer/models"
	dErrors "pawtrol/pkg/domain-errors"
)

// HTTP Request DTOs - contain JSON tags for API serialization.
// These are converted to service commands before processing.

type RegisterOfficerRequest struct {
	Name           string `json:"name"`
	BadgeNumber    string `json:"badge_number"`
	Department     string `json:"department"`
	DepartmentType string `json:"department_type"`
	Jurisdiction   string `json:"jurisdiction"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
}

func (r *RegisterOfficerRequest) Normalize() {
	if r == nil {
		return
	}
	r.Name = strings.TrimSpace(r.Name)
	r.BadgeNumber = strings.TrimSpace(r.BadgeNumber)
	r.Department = strings.TrimSpace(r.Department)
	r.DepartmentType = strings.ToLower(strings.TrimSpace(r.DepartmentType))
	r.Jurisdiction = strings.TrimSpace(r.Jurisdiction)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
}

func (r *RegisterOfficerRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if r.Name == "" {
		return dErrors.New(dErrors.CodeValidation, "name is required")
	}
	if r.Department == "" {
		return dErrors.New(dErrors.CodeValidation, "department is required")
	}
	if r.Email == "" {
		return dErrors.New(dErrors.CodeValidation, "email is required")
	}
	if !models.ValidDepartmentType(models.DepartmentType(r.DepartmentType)) {
		return dErrors.New(dErrors.CodeValidation, "unknown department type")
	}
	return nil
}
