package officer

import (
	"context"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	RegisterOfficer() error
	VerifyOfficer() error
	OpenSession() error
}

// RegisterSteps registers officer onboarding step definitions
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &officerSteps{tc: tc}

	ctx.Step(`^a verified officer with an open session$`, steps.verifiedOfficerSession)
	ctx.Step(`^an unverified officer with an open session$`, steps.unverifiedOfficerSession)
}

type officerSteps struct {
	tc TestContext
}

func (s *officerSteps) verifiedOfficerSession(ctx context.Context) error {
	if err := s.tc.RegisterOfficer(); err != nil {
		return err
	}
	if err := s.tc.VerifyOfficer(); err != nil {
		return err
	}
	return s.tc.OpenSession()
}

// A session token alone is not enough; every operation re-checks the
// directory's verified flag.
func (s *officerSteps) unverifiedOfficerSession(ctx context.Context) error {
	if err := s.tc.RegisterOfficer(); err != nil {
		return err
	}
	return s.tc.OpenSession()
}
