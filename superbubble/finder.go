package superbubble

import (
	"fmt"
	"math"
	"sort"

	"github.com/kvbio/rukki/bpath"
	"github.com/kvbio/rukki/seqgraph"
)

// Params bounds a superbubble search. Unrestricted() gives the "no limit"
// parameterization used by callers that only care about topology.
type Params struct {
	MaxLength uint64
	MaxDiff   uint64
	MaxCount  uint64
}

// Unrestricted returns Params with every bound set to its maximum
// representable value.
func Unrestricted() Params {
	return Params{MaxLength: math.MaxUint64, MaxDiff: math.MaxUint64, MaxCount: math.MaxUint64}
}

// Superbubble is a maximal single-source/single-sink acyclic region
// discovered by Find, together with the per-vertex traversal-length range
// that justified including it.
type Superbubble struct {
	g       seqgraph.Graph
	start   seqgraph.Vertex
	end     seqgraph.Vertex
	reached map[seqgraph.Vertex]Range
}

// Start returns the bubble's source vertex.
func (sb *Superbubble) Start() seqgraph.Vertex { return sb.start }

// End returns the bubble's sink vertex.
func (sb *Superbubble) End() seqgraph.Vertex { return sb.end }

// Reached returns the vertex-to-length-range map discovered for this
// bubble. Callers must not mutate the returned map.
func (sb *Superbubble) Reached() map[seqgraph.Vertex]Range { return sb.reached }

// InnerVertices returns every reached vertex other than Start and End.
func (sb *Superbubble) InnerVertices() []seqgraph.Vertex {
	out := make([]seqgraph.Vertex, 0, len(sb.reached))
	for v := range sb.reached {
		if v != sb.start && v != sb.end {
			out = append(out, v)
		}
	}
	return out
}

func nodeLen(g seqgraph.Graph, id int) uint64 {
	n, ok := g.Node(id)
	if !ok {
		panic(fmt.Sprintf("superbubble: node %d not found in graph", id))
	}
	return uint64(n.Length)
}

// LinkDistRange returns the length range of every bubble-internal walk
// that ends by traversing l, i.e. reached[l.Start] shifted by
// length(l.End.node) - l.Overlap.
func (sb *Superbubble) LinkDistRange(l seqgraph.Link) Range {
	r, ok := sb.reached[l.Start]
	if !ok {
		panic(fmt.Sprintf("superbubble: LinkDistRange: vertex %v not reached by this bubble", l.Start))
	}
	return shift(r, nodeLen(sb.g, l.End.NodeID)-uint64(l.Overlap))
}

// LengthRange returns the whole bubble's traversal-length range: reached[end]
// shifted by length(start.node) when start != end, else reached[end] as is.
func (sb *Superbubble) LengthRange() Range {
	r := sb.reached[sb.end]
	if sb.start != sb.end {
		return shift(r, nodeLen(sb.g, sb.start.NodeID))
	}
	return r
}

// StartNodeLength returns length(start.node), the quantity bubblechain
// subtracts out of each bubble's LengthRange to avoid double-counting a
// shared boundary node when stitching a chain together.
func (sb *Superbubble) StartNodeLength() uint64 {
	return nodeLen(sb.g, sb.start.NodeID)
}

// LongestPath reconstructs a source-to-sink path whose summed
// length(end.node)-overlap equals LengthRange-equivalent reached[end].Max.
func (sb *Superbubble) LongestPath() *bpath.Path {
	return sb.reconstruct(true)
}

// ShortestPath reconstructs a source-to-sink path whose summed
// length(end.node)-overlap equals reached[end].Min.
func (sb *Superbubble) ShortestPath() *bpath.Path {
	return sb.reconstruct(false)
}

// reconstruct walks backward from end to start, at each step picking the
// first incoming link whose LinkDistRange endpoint (Max if longest, else
// Min) equals the running target, per spec §4.C. Failing to find any
// matching predecessor means the reached map is corrupted: an invariant
// violation, so it panics rather than returning an error (spec §7.2, §9).
func (sb *Superbubble) reconstruct(longest bool) *bpath.Path {
	pick := func(r Range) uint64 {
		if longest {
			return r.Max
		}
		return r.Min
	}

	v := sb.end
	target := pick(sb.reached[v])
	rc := bpath.New(v.RC())
	for v != sb.start {
		found := false
		for _, l := range sb.g.IncomingEdges(v) {
			if pick(sb.LinkDistRange(l)) == target {
				rc.Append(l.RC())
				v = l.Start
				target = pick(sb.reached[v])
				found = true
				break
			}
		}
		if !found {
			panic(fmt.Sprintf("superbubble: reconstruct: no predecessor of %v matches target range %d", v, target))
		}
	}
	return rc.ReverseComplement()
}

// Find discovers the maximal superbubble rooted at s, if one exists within
// params. Returns (nil, false) for every expected negative outcome.
//
// Algorithm (LIFO relaxation, per spec §4.C):
//  1. Reject s outright if it has fewer than two distinct non-loop
//     outgoing targets.
//  2. Seed reached[s]=(0,0), push s onto the ready stack.
//  3. Pop a vertex, relax its outgoing edges into reached/remainingIncoming,
//     promoting a vertex to ready once every one of its incoming edges has
//     been relaxed (a vertex with an incoming edge from outside the region
//     never becomes ready).
//  4. The instant ready holds exactly one vertex and none remain
//     not-ready, that vertex is the candidate sink: check it against
//     MaxLength/MaxDiff and return.
//
// Complexity: Time O(count * avg-degree), Memory O(count), where count is
// bounded by params.MaxCount.
func Find(g seqgraph.Graph, s seqgraph.Vertex, params Params) (*Superbubble, bool) {
	nonLoopTargets := map[seqgraph.Vertex]bool{}
	for _, l := range g.OutgoingEdges(s) {
		if l.End != l.Start {
			nonLoopTargets[l.End] = true
		}
	}
	if g.OutgoingEdgeCnt(s) < 2 || len(nonLoopTargets) < 2 {
		return nil, false
	}

	reached := map[seqgraph.Vertex]Range{s: {0, 0}}
	ready := []seqgraph.Vertex{s}
	remainingIncoming := map[seqgraph.Vertex]int{}
	notReadyCnt := 0

	linkDist := func(from seqgraph.Vertex, l seqgraph.Link) Range {
		return shift(reached[from], nodeLen(g, l.End.NodeID)-uint64(l.Overlap))
	}

	for len(ready) > 0 {
		if uint64(len(reached)) > params.MaxCount {
			return nil, false
		}

		v := ready[len(ready)-1]
		ready = ready[:len(ready)-1]

		out := g.OutgoingEdges(v)
		if len(out) == 0 {
			return nil, false // dead end
		}

		for _, l := range out {
			w := l.End
			if w == s {
				return nil, false // cycle back to root forbidden
			}

			if _, ok := reached[w]; !ok {
				if _, ok := reached[w.RC()]; ok {
					return nil, false // palindrome: w and rc(w) both reached
				}
				reached[w] = linkDist(v, l)
				remainingIncoming[w] = g.IncomingEdgeCnt(w)
				notReadyCnt++
			} else {
				reached[w] = merge(reached[w], linkDist(v, l))
			}

			remainingIncoming[w]--
			if remainingIncoming[w] == 0 {
				ready = append(ready, w)
				notReadyCnt--
			}
		}

		if len(ready) == 1 && notReadyCnt == 0 {
			t := ready[0]
			r := reached[t]
			tLen := nodeLen(g, t.NodeID)

			if r.Min > tLen && r.Min-tLen > params.MaxLength {
				return nil, false
			}
			if r.Max-r.Min > params.MaxDiff {
				return nil, false
			}

			return &Superbubble{g: g, start: s, end: t, reached: reached}, true
		}
	}

	return nil, false
}

// FindAllOuter enumerates a set of non-nested superbubbles covering g:
// iterate all_vertices() in graph order, skip used starts, and on a
// successful Find mark the twin end and every inner vertex (both
// orientations) used, absorbing any previously recorded nested bubble
// keyed at one of those vertices. The bubble's own start vertex is
// deliberately NOT marked used (spec §9): this permits chained, but not
// overlapping, discoveries.
//
// Complexity: Time O(V * cost(Find)), Memory O(V).
func FindAllOuter(g seqgraph.Graph, params Params) []*Superbubble {
	used := map[seqgraph.Vertex]bool{}
	startToBubble := map[seqgraph.Vertex]*Superbubble{}

	for _, v := range g.AllVertices() {
		if used[v] {
			continue
		}
		sb, ok := Find(g, v, params)
		if !ok {
			continue
		}

		used[sb.End().RC()] = true
		for w := range sb.reached {
			if w == sb.start || w == sb.end {
				continue
			}
			used[w] = true
			used[w.RC()] = true
			delete(startToBubble, w)
			delete(startToBubble, w.RC())
		}
		startToBubble[v] = sb
	}

	result := make([]*Superbubble, 0, len(startToBubble))
	for _, sb := range startToBubble {
		result = append(result, sb)
	}
	sort.Slice(result, func(i, j int) bool {
		a, b := result[i].start, result[j].start
		if a.NodeID != b.NodeID {
			return a.NodeID < b.NodeID
		}
		return a.Dir < b.Dir
	})
	return result
}
