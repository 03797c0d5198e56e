package handler

import (
	"time"

	"pawtrol/internal/encounter/models"
	"pawtrol/pkg/platform/audit"
)

// EncounterResponse is the officer-facing projection of an encounter. It
// carries the best-match reference and disclosure flag but never contact
// payloads; those are released only inside a scan result.
type EncounterResponse struct {
	ID                  string          `json:"id"`
	OfficerID           string          `json:"officer_id"`
	AnimalType          string          `json:"animal_type,omitempty"`
	Breed               string          `json:"breed,omitempty"`
	Color               string          `json:"color,omitempty"`
	Location            models.Location `json:"location"`
	Status              string          `json:"status"`
	Outcome             string          `json:"outcome"`
	BestMatchPetID      string          `json:"best_match_pet_id,omitempty"`
	BestMatchConfidence *int            `json:"best_match_confidence,omitempty"`
	ContactDisclosed    bool            `json:"contact_disclosed"`
	CreatedAt           time.Time       `json:"created_at"`
	ClosedAt            *time.Time      `json:"closed_at,omitempty"`
}

func toEncounterResponse(e *models.Encounter) EncounterResponse {
	resp := EncounterResponse{
		ID:                  e.ID.String(),
		OfficerID:           e.OfficerID.String(),
		AnimalType:          e.AnimalType,
		Breed:               e.Breed,
		Color:               e.Color,
		Location:            e.Location,
		Status:              string(e.Status),
		Outcome:             string(e.Outcome),
		BestMatchConfidence: e.BestMatchConfidence,
		ContactDisclosed:    e.ContactDisclosed,
		CreatedAt:           e.CreatedAt,
		ClosedAt:            e.ClosedAt,
	}
	if e.BestMatchPetID != nil {
		resp.BestMatchPetID = e.BestMatchPetID.String()
	}
	return resp
}

func toEncounterResponses(encs []*models.Encounter) []EncounterResponse {
	out := make([]EncounterResponse, 0, len(encs))
	for _, e := range encs {
		out = append(out, toEncounterResponse(e))
	}
	return out
}

// AuditEntryResponse projects an audit entry for the trail endpoint. Only
// references and flags; a disclosure entry proves the release happened
// without repeating the released data.
type AuditEntryResponse struct {
	ID                string    `json:"id"`
	Action            string    `json:"action"`
	Timestamp         time.Time `json:"timestamp"`
	PetID             string    `json:"pet_id,omitempty"`
	Confidence        int       `json:"confidence,omitempty"`
	ContactDisclosed  bool      `json:"contact_disclosed"`
	Outcome           string    `json:"outcome,omitempty"`
	OwnerIDVerified   bool      `json:"owner_id_verified,omitempty"`
	SignatureCaptured bool      `json:"signature_captured,omitempty"`
}

func toAuditEntryResponses(entries []audit.Entry) []AuditEntryResponse {
	out := make([]AuditEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, AuditEntryResponse{
			ID:                e.ID.String(),
			Action:            string(e.Action),
			Timestamp:         e.Timestamp,
			PetID:             e.PetID.String(),
			Confidence:        e.Confidence,
			ContactDisclosed:  e.ContactDisclosed,
			Outcome:           e.Outcome,
			OwnerIDVerified:   e.OwnerIDVerified,
			SignatureCaptured: e.SignatureCaptured,
		})
	}
	return out
}
