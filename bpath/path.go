package bpath

import (
	"fmt"

	"github.com/kvbio/rukki/seqgraph"
)

// Path is a non-empty, node-simple ordered sequence of oriented vertices
// connected by links. Anchor records the node id the path was seeded from
// (the haplotype anchor, for paths grown by the haplopath searcher).
type Path struct {
	vertices []seqgraph.Vertex
	links    []seqgraph.Link
	anchor   int
}

// New seeds a single-vertex path at v. Anchor is set to v.NodeID.
// Complexity: O(1).
func New(v seqgraph.Vertex) *Path {
	return &Path{
		vertices: []seqgraph.Vertex{v},
		anchor:   v.NodeID,
	}
}

// Anchor returns the node id this path was originally seeded from.
func (p *Path) Anchor() int { return p.anchor }

// Start returns the path's first vertex.
func (p *Path) Start() seqgraph.Vertex { return p.vertices[0] }

// End returns the path's last vertex.
func (p *Path) End() seqgraph.Vertex { return p.vertices[len(p.vertices)-1] }

// Len returns the number of vertices in the path.
func (p *Path) Len() int { return len(p.vertices) }

// Vertices returns the path's vertices in order. Callers must not mutate
// the returned slice.
func (p *Path) Vertices() []seqgraph.Vertex { return p.vertices }

// Links returns the path's connecting links in order. Callers must not
// mutate the returned slice.
func (p *Path) Links() []seqgraph.Link { return p.links }

// InPath reports whether the exact vertex v (node and direction) already
// appears in the path.
// Complexity: O(len(path)).
func (p *Path) InPath(v seqgraph.Vertex) bool {
	for _, vv := range p.vertices {
		if vv == v {
			return true
		}
	}
	return false
}

// HasNode reports whether nodeID already appears in the path under either
// orientation. The path is node-simple - a node may never appear twice
// regardless of direction - so Append and CanMergeIn guard against nodeID,
// not a specific oriented vertex.
// Complexity: O(len(path)).
func (p *Path) HasNode(nodeID int) bool {
	for _, v := range p.vertices {
		if v.NodeID == nodeID {
			return true
		}
	}
	return false
}

// Append extends the path by link l, which must start at the path's
// current end and end at a node not yet on the path. A violation of either
// precondition is a corrupted-caller-state invariant violation (per the
// core's error-handling design, §7.2) and panics rather than returning an
// error: the path was about to become inconsistent with the graph it was
// built from.
// Complexity: O(len(path)) for the HasNode membership check.
func (p *Path) Append(l seqgraph.Link) {
	if p.End() != l.Start {
		panic(fmt.Sprintf("bpath: Append: link start %v does not match path end %v", l.Start, p.End()))
	}
	if p.HasNode(l.End.NodeID) {
		panic(fmt.Sprintf("bpath: Append: node %d already in path", l.End.NodeID))
	}
	p.vertices = append(p.vertices, l.End)
	p.links = append(p.links, l)
}

// CanMergeIn reports whether other can be merged into p: other must start
// where p ends, and none of other's vertices (besides that shared junction)
// may already be on p.
func (p *Path) CanMergeIn(other *Path) bool {
	if p.End() != other.Start() {
		panic(fmt.Sprintf("bpath: CanMergeIn: other's start %v does not match path end %v", other.Start(), p.End()))
	}
	for _, v := range other.vertices[1:] {
		if p.HasNode(v.NodeID) {
			return false
		}
	}
	return true
}

// MergeIn appends every link of other onto p. Panics if !CanMergeIn(other);
// callers are expected to have checked first.
func (p *Path) MergeIn(other *Path) {
	if !p.CanMergeIn(other) {
		panic("bpath: MergeIn: other cannot be merged into path")
	}
	for _, l := range other.links {
		p.Append(l)
	}
}

// TrimTo pops vertices/links off the tail of p until its last vertex
// equals v, reporting whether v was found. If v never appears on p, p is
// left unchanged and false is returned.
func (p *Path) TrimTo(v seqgraph.Vertex) bool {
	if !p.InPath(v) {
		return false
	}
	for p.End() != v {
		p.vertices = p.vertices[:len(p.vertices)-1]
		p.links = p.links[:len(p.links)-1]
	}
	return true
}

// ReverseComplement returns a new path whose i-th vertex is rc(v_{k-i})
// and whose i-th link is rc(l_{k-1-i}); rc(rc(p)) == p.
// Complexity: O(len(path)).
func (p *Path) ReverseComplement() *Path {
	n := len(p.vertices)
	rv := make([]seqgraph.Vertex, n)
	for i, v := range p.vertices {
		rv[n-1-i] = v.RC()
	}
	rl := make([]seqgraph.Link, len(p.links))
	for i, l := range p.links {
		rl[len(p.links)-1-i] = l.RC()
	}
	return &Path{vertices: rv, links: rl, anchor: p.anchor}
}

// Clone returns a deep copy of p, safe to mutate independently.
func (p *Path) Clone() *Path {
	vs := make([]seqgraph.Vertex, len(p.vertices))
	copy(vs, p.vertices)
	ls := make([]seqgraph.Link, len(p.links))
	copy(ls, p.links)
	return &Path{vertices: vs, links: ls, anchor: p.anchor}
}
