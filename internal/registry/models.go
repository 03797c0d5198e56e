// Package registry holds owner contact records for registered pets. These
// records exist independently of any encounter and are projected into scan
// responses only when the disclosure policy permits.
package registry

import (
	id "pawtrol/pkg/domain"
)

// OwnerContact is the sensitive bundle revealed on a high-confidence match.
// It is never persisted on an encounter or audit entry; only a pet reference
// plus a disclosure flag is retained there.
type OwnerContact struct {
	PetID                id.PetID `json:"pet_id"`
	OwnerName            string   `json:"owner_name"`
	Phone                string   `json:"phone"`
	Email                string   `json:"email"`
	EmergencyName        string   `json:"emergency_contact_name"`
	EmergencyPhone       string   `json:"emergency_contact_phone"`
	HomeAddress          string   `json:"home_address"`
	MedicalNotes         string   `json:"medical_notes"`
	ApproachInstructions string   `json:"approach_instructions"`
}
