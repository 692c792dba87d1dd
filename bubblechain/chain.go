package bubblechain

import (
	"github.com/kvbio/rukki/seqgraph"
	"github.com/kvbio/rukki/superbubble"
)

// Chain is a sequence of superbubbles, each one's End() feeding the next
// one's Start(), discovered by repeated application of superbubble.Find.
type Chain []*superbubble.Superbubble

// FindChainAhead repeatedly invokes superbubble.Find at the current head,
// starting at initV: on success it appends the bubble and advances the
// head to the bubble's end vertex. The walk stops the moment Find fails,
// or the instant the head revisits initV (a closed chain).
// Complexity: O(len(chain) * cost(superbubble.Find)).
func FindChainAhead(g seqgraph.Graph, initV seqgraph.Vertex, params superbubble.Params) Chain {
	var chain Chain
	v := initV
	for {
		sb, ok := superbubble.Find(g, v, params)
		if !ok {
			break
		}
		v = sb.End()
		chain = append(chain, sb)
		if v == initV {
			break
		}
	}
	return chain
}

// FindMaximalChain extends a chain as far backward as possible before
// extending it forward: it first runs FindChainAhead from rc(initV); if
// that backward chain is non-empty, the true starting vertex becomes
// rc(last bubble's end), and the forward chain is built from there.
// Complexity: O(len(chain) * cost(superbubble.Find)).
func FindMaximalChain(g seqgraph.Graph, initV seqgraph.Vertex, params superbubble.Params) Chain {
	chainBack := FindChainAhead(g, initV.RC(), params)
	start := initV
	if len(chainBack) > 0 {
		start = chainBack[len(chainBack)-1].End().RC()
	}
	return FindChainAhead(g, start, params)
}

// LengthRange sums each bubble's LengthRange, subtracting its start-node
// length so shared boundary nodes are not double-counted, then adds the
// chain's own start-node length back in unless the chain is closed (its
// first start equals its last end). This applies uniformly regardless of
// chain length, resolving the length-1 special case left ambiguous in the
// original source (see DESIGN.md).
// Complexity: O(len(chain)).
func (c Chain) LengthRange() superbubble.Range {
	var totMin, totMax uint64
	for _, sb := range c {
		r := sb.LengthRange()
		sL := sb.StartNodeLength()
		totMin += r.Min - sL
		totMax += r.Max - sL
	}

	if len(c) == 0 || c[0].Start() == c[len(c)-1].End() {
		return superbubble.Range{Min: totMin, Max: totMax}
	}

	sL := c[0].StartNodeLength()
	return superbubble.Range{Min: totMin + sL, Max: totMax + sL}
}
