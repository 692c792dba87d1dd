package seqgraph

import (
	"fmt"
	"math/rand"
)

// Sentinel errors for RandomDAG parameter misuse, matching the core's
// reject-don't-panic policy for constructor-level mistakes.
var (
	ErrTooFewNodes        = fmt.Errorf("seqgraph: RandomDAG: n must be >= 1")
	ErrInvalidEdgeProb    = fmt.Errorf("seqgraph: RandomDAG: p must be in [0,1]")
	ErrRandSourceRequired = fmt.Errorf("seqgraph: RandomDAG: rng is required for 0 < p < 1")
)

const (
	minRandomDAGNodes = 1
	edgeProbMin       = 0.0
	edgeProbMax       = 1.0

	randDAGMinLength   = 50
	randDAGLengthRange = 450
)

// RandomDAG builds a pseudo-random, internally acyclic bidirected sequence
// graph over n nodes ("node_0".."node_{n-1}", each forward): for every
// ordered pair i<j, an edge node_i -> node_j is added independently with
// probability p. Restricting edges to i<j keeps the underlying node-level
// order acyclic regardless of p, while the Store's own twin-link symmetry
// still applies at the vertex level. With a non-nil rng every node's
// length is drawn uniformly from
// [randDAGMinLength, randDAGMinLength+randDAGLengthRange); with a nil rng
// every node has length randDAGMinLength.
//
// Erdos-Renyi-style sampler adapted from the corpus's RandomSparse
// constructor: same independent-Bernoulli-per-pair model, same
// n>=1/p in [0,1]/rng-required-for-stochastic-p contract, re-targeted at
// a frozen *Store instead of a generic core.Graph builder.
// Complexity: O(n^2) edge trials, O(n) nodes.
func RandomDAG(n int, p float64, rng *rand.Rand) (*Store, error) {
	if n < minRandomDAGNodes {
		return nil, fmt.Errorf("n=%d: %w", n, ErrTooFewNodes)
	}
	if p < edgeProbMin || p > edgeProbMax {
		return nil, fmt.Errorf("p=%.6f: %w", p, ErrInvalidEdgeProb)
	}
	if rng == nil && p > edgeProbMin && p < edgeProbMax {
		return nil, ErrRandSourceRequired
	}

	s := NewStore(WithCapacityHint(n))
	ids := make([]int, n)
	for i := 0; i < n; i++ {
		length := randDAGMinLength
		if rng != nil {
			length += rng.Intn(randDAGLengthRange)
		}
		id, err := s.AddNode(fmt.Sprintf("node_%d", i), length, 1.0)
		if err != nil {
			return nil, fmt.Errorf("adding node %d: %w", i, err)
		}
		ids[i] = id
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if p >= edgeProbMax || (rng != nil && rng.Float64() < p) {
				from := V(ids[i], Forward)
				to := V(ids[j], Forward)
				overlap := 0
				if err := s.AddLink(from, to, overlap); err != nil {
					return nil, fmt.Errorf("linking node %d -> %d: %w", i, j, err)
				}
			}
		}
	}

	s.Freeze()
	return s, nil
}
