package handler

import (
	"time"

	"pawtrol/internal/officer/models"
)

// OfficerResponse is the directory projection of an officer. Contact details
// stay internal; dispatch only needs identity and verification state.
type OfficerResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	BadgeNumber    string    `json:"badge_number,omitempty"`
	Department     string    `json:"department"`
	DepartmentType string    `json:"department_type"`
	Jurisdiction   string    `json:"jurisdiction,omitempty"`
	Verified       bool      `json:"verified"`
	ReviewRequired bool      `json:"review_required"`
	CreatedAt      time.Time `json:"created_at"`
}

func toOfficerResponse(o *models.Officer) OfficerResponse {
	return OfficerResponse{
		ID:             o.ID.String(),
		Name:           o.Name,
		BadgeNumber:    o.BadgeNumber,
		Department:     o.Department,
		DepartmentType: string(o.DepartmentType),
		Jurisdiction:   o.Jurisdiction,
		Verified:       o.Verified,
		ReviewRequired: o.ReviewRequired,
		CreatedAt:      o.CreatedAt,
	}
}
