package encounter

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	POST(path string, body interface{}) error
	GET(path string, headers map[string]string) error
	GetResponseField(field string) (interface{}, error)
	EncodePhoto() string
	SetEncounterID(encounterID string)
	GetEncounterID() string
}

// RegisterSteps registers scan and outcome step definitions.
//
// The mock ranking service picks its canned response from the scan address,
// so scenarios steer matching behavior through the address text.
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &encounterSteps{tc: tc}

	ctx.Step(`^I submit a scan at "([^"]*)"$`, steps.submitScanAt)
	ctx.Step(`^I submit a scan without a photo$`, steps.submitScanWithoutPhoto)
	ctx.Step(`^I submit a scan without a location$`, steps.submitScanWithoutLocation)
	ctx.Step(`^I save the encounter id$`, steps.saveEncounterID)
	ctx.Step(`^I record outcome "([^"]*)"$`, steps.recordOutcome)
	ctx.Step(`^I record outcome "([^"]*)" with owner id verified and signature captured$`, steps.recordOutcomeWithRTOEvidence)
	ctx.Step(`^I fetch the encounter$`, steps.fetchEncounter)
	ctx.Step(`^I fetch the audit trail$`, steps.fetchAuditTrail)
}

type encounterSteps struct {
	tc TestContext
}

func (s *encounterSteps) scanBody(address string, withPhoto, withLocation bool) map[string]interface{} {
	body := map[string]interface{}{
		"mime_type":   "image/jpeg",
		"address":     address,
		"animal_type": "dog",
		"breed":       "golden retriever",
		"color":       "golden",
	}
	if withPhoto {
		body["photo_base64"] = s.tc.EncodePhoto()
	}
	if withLocation {
		body["latitude"] = 44.05
		body["longitude"] = -123.09
	}
	return body
}

func (s *encounterSteps) submitScanAt(ctx context.Context, address string) error {
	return s.tc.POST("/scans", s.scanBody(address, true, true))
}

func (s *encounterSteps) submitScanWithoutPhoto(ctx context.Context) error {
	return s.tc.POST("/scans", s.scanBody("12 Oak Lane", false, true))
}

func (s *encounterSteps) submitScanWithoutLocation(ctx context.Context) error {
	return s.tc.POST("/scans", s.scanBody("12 Oak Lane", true, false))
}

func (s *encounterSteps) saveEncounterID(ctx context.Context) error {
	encounterID, err := s.tc.GetResponseField("encounter_id")
	if err != nil {
		return err
	}
	id, ok := encounterID.(string)
	if !ok || id == "" {
		return fmt.Errorf("encounter_id is not a string: %v", encounterID)
	}
	s.tc.SetEncounterID(id)
	return nil
}

func (s *encounterSteps) recordOutcome(ctx context.Context, outcome string) error {
	return s.tc.POST("/encounters/"+s.tc.GetEncounterID()+"/outcome", map[string]interface{}{
		"outcome": outcome,
	})
}

func (s *encounterSteps) recordOutcomeWithRTOEvidence(ctx context.Context, outcome string) error {
	return s.tc.POST("/encounters/"+s.tc.GetEncounterID()+"/outcome", map[string]interface{}{
		"outcome":            outcome,
		"owner_id_verified":  true,
		"signature_captured": true,
		"notes":              "owner met officer at the scan location",
	})
}

func (s *encounterSteps) fetchEncounter(ctx context.Context) error {
	return s.tc.GET("/encounters/"+s.tc.GetEncounterID(), nil)
}

func (s *encounterSteps) fetchAuditTrail(ctx context.Context) error {
	return s.tc.GET("/encounters/"+s.tc.GetEncounterID()+"/audit", nil)
}
