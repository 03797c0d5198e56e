package disclosure

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pawtrol/internal/ranking"
	id "pawtrol/pkg/domain"
)

func TestDecide_ThresholdBoundary(t *testing.T) {
	policy := New(85)

	tests := []struct {
		name       string
		confidence int
		reveal     bool
	}{
		{name: "well above threshold", confidence: 99, reveal: true},
		{name: "exactly at threshold", confidence: 85, reveal: true},
		{name: "one below threshold", confidence: 84, reveal: false},
		{name: "zero confidence", confidence: 0, reveal: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := policy.Decide([]ranking.Candidate{{PetID: "pet-00001", Confidence: tt.confidence}})
			assert.Equal(t, tt.reveal, d.Reveal)
			if tt.reveal {
				assert.Equal(t, id.PetID("pet-00001"), d.PetID)
			} else {
				assert.Empty(t, d.PetID)
			}
		})
	}
}

func TestDecide_EmptyAndNil(t *testing.T) {
	policy := New(85)

	assert.False(t, policy.Decide(nil).Reveal)
	assert.False(t, policy.Decide([]ranking.Candidate{}).Reveal)
}

func TestDecide_PicksTopRegardlessOfOrder(t *testing.T) {
	policy := New(85)

	d := policy.Decide([]ranking.Candidate{
		{PetID: "pet-00003", Confidence: 40},
		{PetID: "pet-00009", Confidence: 93},
		{PetID: "pet-00001", Confidence: 85},
	})
	assert.True(t, d.Reveal)
	assert.Equal(t, id.PetID("pet-00009"), d.PetID)
}

func TestDecide_TieBreaksOnLowestPetID(t *testing.T) {
	policy := New(85)

	d := policy.Decide([]ranking.Candidate{
		{PetID: "pet-00310", Confidence: 90},
		{PetID: "pet-00155", Confidence: 90},
		{PetID: "pet-00900", Confidence: 90},
	})
	assert.True(t, d.Reveal)
	assert.Equal(t, id.PetID("pet-00155"), d.PetID)
}

// Only the top candidate matters: a high scorer further down cannot exist
// after normalization, but the policy must not depend on that.
func TestDecide_BelowThresholdTopMeansNoReveal(t *testing.T) {
	policy := New(85)

	d := policy.Decide([]ranking.Candidate{
		{PetID: "pet-00002", Confidence: 84},
		{PetID: "pet-00004", Confidence: 84},
	})
	assert.False(t, d.Reveal)
	assert.Empty(t, d.PetID)
}

func TestNew_NonPositiveThresholdUsesDefault(t *testing.T) {
	assert.Equal(t, DefaultThreshold, New(0).Threshold())
	assert.Equal(t, DefaultThreshold, New(-10).Threshold())
	assert.Equal(t, 70, New(70).Threshold())
}
