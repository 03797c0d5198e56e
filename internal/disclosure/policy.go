// Package disclosure contains the rule that gates owner-contact exposure
// behind a confidence threshold. This is pure domain logic - no I/O, no side
// effects - so the gate is identical for every caller and transport.
package disclosure

import (
	"pawtrol/internal/ranking"
	id "pawtrol/pkg/domain"
)

// DefaultThreshold is the minimum top-candidate confidence at which owner
// contact information may be revealed.
const DefaultThreshold = 85

// Decision is the outcome of evaluating a ranked candidate list.
// When Reveal is false, PetID is empty; no partial disclosure exists.
type Decision struct {
	Reveal bool
	PetID  id.PetID
}

// Policy evaluates ranked candidate lists against a threshold.
type Policy struct {
	threshold int
}

// New builds a policy. A non-positive threshold falls back to the default.
func New(threshold int) *Policy {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Policy{threshold: threshold}
}

// Threshold returns the confidence floor in effect.
func (p *Policy) Threshold() int {
	return p.threshold
}

// Decide is total over any candidate input, including nil and the empty list.
// Reveal is true iff the list is non-empty and the top confidence meets the
// threshold. Among candidates sharing the top confidence, the lowest pet id
// is the disclosure subject; the result does not depend on input order.
func (p *Policy) Decide(candidates []ranking.Candidate) Decision {
	if len(candidates) == 0 {
		return Decision{}
	}

	top := candidates[0]
	for _, c := range candidates[1:] {
		if c.Confidence > top.Confidence {
			top = c
			continue
		}
		if c.Confidence == top.Confidence && c.PetID < top.PetID {
			top = c
		}
	}

	if top.Confidence < p.threshold {
		return Decision{}
	}
	return Decision{Reveal: true, PetID: top.PetID}
}

// HighConfidence reports whether the list would clear the threshold.
// Callers surface this, not the raw confidence, when deciding whether to
// offer return-to-owner affordances.
func (p *Policy) HighConfidence(candidates []ranking.Candidate) bool {
	return p.Decide(candidates).Reveal
}
