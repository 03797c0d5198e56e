package handler

import (
	"encoding/base64"
	"strings"

	"pawtrol/internal/encounter/models"
	dErrors "pawtrol/pkg/domain-errors"
)

// HTTP Request DTOs - contain JSON tags for API serialization.
// These are converted to service commands before processing.

// SubmitScanRequest carries a field scan. Latitude and longitude are pointers
// so an absent coordinate is distinguishable from zero; a missing photo or
// location is the service's business to reject, not the decoder's.
type SubmitScanRequest struct {
	PhotoBase64 string   `json:"photo_base64"`
	MimeType    string   `json:"mime_type"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Address     string   `json:"address"`
	AnimalType  string   `json:"animal_type"`
	Breed       string   `json:"breed"`
	Color       string   `json:"color"`

	photo []byte
}

func (r *SubmitScanRequest) Normalize() {
	if r == nil {
		return
	}
	r.PhotoBase64 = strings.TrimSpace(r.PhotoBase64)
	r.MimeType = strings.ToLower(strings.TrimSpace(r.MimeType))
	r.Address = strings.TrimSpace(r.Address)
	r.AnimalType = strings.ToLower(strings.TrimSpace(r.AnimalType))
	r.Breed = strings.TrimSpace(r.Breed)
	r.Color = strings.TrimSpace(r.Color)
}

func (r *SubmitScanRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if r.PhotoBase64 != "" {
		photo, err := base64.StdEncoding.DecodeString(r.PhotoBase64)
		if err != nil {
			return dErrors.New(dErrors.CodeValidation, "photo_base64 is not valid base64")
		}
		r.photo = photo
	}
	if (r.Latitude == nil) != (r.Longitude == nil) {
		return dErrors.New(dErrors.CodeValidation, "latitude and longitude must be provided together")
	}
	if r.Latitude != nil {
		if *r.Latitude < -90 || *r.Latitude > 90 {
			return dErrors.New(dErrors.CodeValidation, "latitude out of range")
		}
		if *r.Longitude < -180 || *r.Longitude > 180 {
			return dErrors.New(dErrors.CodeValidation, "longitude out of range")
		}
	}
	return nil
}

// Photo returns the decoded photo bytes, nil when none was supplied.
func (r *SubmitScanRequest) Photo() []byte {
	return r.photo
}

// Location returns the capture position, nil when coordinates are absent.
func (r *SubmitScanRequest) Location() *models.Location {
	if r.Latitude == nil || r.Longitude == nil {
		return nil
	}
	return &models.Location{
		Latitude:  *r.Latitude,
		Longitude: *r.Longitude,
		Address:   r.Address,
	}
}

type RecordOutcomeRequest struct {
	Outcome           string `json:"outcome"`
	OwnerIDVerified   bool   `json:"owner_id_verified"`
	SignatureCaptured bool   `json:"signature_captured"`
	Notes             string `json:"notes"`
}

func (r *RecordOutcomeRequest) Normalize() {
	if r == nil {
		return
	}
	r.Outcome = strings.ToLower(strings.TrimSpace(r.Outcome))
	r.Notes = strings.TrimSpace(r.Notes)
}

func (r *RecordOutcomeRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if !models.ValidTerminalOutcome(models.Outcome(r.Outcome)) {
		return dErrors.New(dErrors.CodeValidation, "outcome must be one of rto, shelter, other")
	}
	return nil
}
