package ranking

import "sort"

// Normalize enforces the two list guarantees of the ranking contract:
// deduplicated by pet id and sorted descending by confidence. Duplicates keep
// the highest-confidence entry. Candidates sharing a confidence are ordered
// by ascending pet id so downstream tie-breaking is deterministic.
//
// The collaborator promises a normalized list already; applying it again here
// means a misbehaving collaborator cannot push a duplicate or mis-sorted
// candidate past the disclosure gate.
func Normalize(candidates []Candidate) []Candidate {
	if len(candidates) == 0 {
		return candidates
	}

	byPet := make(map[string]Candidate, len(candidates))
	for _, c := range candidates {
		existing, ok := byPet[string(c.PetID)]
		if !ok || c.Confidence > existing.Confidence {
			byPet[string(c.PetID)] = c
		}
	}

	out := make([]Candidate, 0, len(byPet))
	for _, c := range byPet {
		out = append(out, c)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Confidence != out[j].Confidence {
			return out[i].Confidence > out[j].Confidence
		}
		return out[i].PetID < out[j].PetID
	})
	return out
}
