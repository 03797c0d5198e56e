package e2e

import (
	"github.com/cucumber/godog"

	"pawtrol/e2e/steps/common"
	"pawtrol/e2e/steps/encounter"
	"pawtrol/e2e/steps/officer"
)

// RegisterSteps registers all step definitions from modular packages
func RegisterSteps(ctx *godog.ScenarioContext, tc *TestContext) {
	// Register common steps (generic requests, assertions)
	common.RegisterSteps(ctx, tc)

	// Register officer onboarding steps
	officer.RegisterSteps(ctx, tc)

	// Register scan and outcome steps
	encounter.RegisterSteps(ctx, tc)
}
