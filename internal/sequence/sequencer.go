package sequence

import (
	"math/rand/v2"
)

// Sequencer generates ordered stage identifier sequences for the game loop.
// No identifier may immediately follow itself; the only exception is a
// single-entry catalog, where repetition is unavoidable.
type Sequencer struct {
	intn func(n int) int
}

// NewSequencer creates a sequencer backed by the shared math/rand source.
func NewSequencer() *Sequencer {
	return &Sequencer{intn: rand.IntN}
}

// NewSequencerWithSource creates a sequencer with its own source, for
// deterministic selection in tests.
func NewSequencerWithSource(src rand.Source) *Sequencer {
	r := rand.New(src)
	return &Sequencer{intn: r.IntN}
}

// Generate picks count identifiers from catalog such that adjacent picks
// differ. excludeID, when non-empty, is treated as the pick preceding the
// first position, which keeps a client's current stage from coming back
// immediately. Each pick is uniform among the currently valid candidates.
func (s *Sequencer) Generate(catalog []string, excludeID string, count int) ([]string, error) {
	if count <= 0 {
		return nil, ErrInvalidCount
	}
	if len(catalog) == 0 {
		return nil, ErrEmptyCatalog
	}

	seq := make([]string, 0, count)
	forbidden := excludeID
	for i := 0; i < count; i++ {
		candidates := catalog
		if forbidden != "" {
			filtered := make([]string, 0, len(catalog))
			for _, id := range catalog {
				if id != forbidden {
					filtered = append(filtered, id)
				}
			}
			// Filtering to nothing means the catalog has only the forbidden
			// entry; fall back to the full catalog and allow the repeat.
			if len(filtered) > 0 {
				candidates = filtered
			}
		}

		pick := candidates[s.intn(len(candidates))]
		seq = append(seq, pick)
		forbidden = pick
	}

	return seq, nil
}
