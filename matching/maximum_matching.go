package matching

import (
	"github.com/katalvlaran/lvlath/graph"
	"github.com/katalvlaran/lvlath/pairing"
)

// MaximumMatching refines p in place into a maximum matching of g: it
// repeatedly calls AugmentingPath and augments p along whatever path comes
// back, until none remains.
//
// p may be empty, or may already hold a partial matching — including one
// produced by Greedy. Either way the result has maximum cardinality; seeding
// only changes how many augmentations are needed to reach it, never the
// final answer (§8 "seed independence").
//
// Every augmentation strictly increases |p| by one, and |p| is bounded by
// |V|/2, so the loop below terminates in at most |V|/2 iterations.
//
// Complexity: O(V·E·α(V)) total across all augmentations.
func MaximumMatching(g graph.Graph, p *pairing.Pairing, opts ...Option) error {
	cfg := newConfig(opts...)

	augmentations := 0
	for {
		path, err := augmentingPath(g, p, cfg)
		if err != nil {
			return err
		}
		if path == nil {
			cfg.logger.Debug().
				Int("augmentations", augmentations).
				Int("matching_size", len(p.Edges())).
				Msg("matching: maximum matching reached")

			return nil
		}

		if err := p.Augment(path); err != nil {
			panic("matching: MaximumMatching: " + err.Error())
		}
		augmentations++
	}
}
