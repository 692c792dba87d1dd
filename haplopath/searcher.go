package haplopath

import (
	"fmt"
	"sort"

	"github.com/kvbio/rukki/bpath"
	"github.com/kvbio/rukki/seqgraph"
	"github.com/kvbio/rukki/trio"
)

// Result is one emitted haplo-path together with the haplotype group it
// was grown under.
type Result struct {
	Path  *bpath.Path
	Group trio.Group
}

// Searcher grows haplo-paths over a fixed graph and assignment oracle. Its
// used map accumulates ownership across every path FindAll emits, so a
// Searcher is single-use: construct one per call to FindAll.
type Searcher struct {
	g                 seqgraph.Graph
	oracle            trio.Oracle
	longNodeThreshold int

	used   map[int]trio.Group
	inSCCs map[int]bool
}

// NewSearcher builds a Searcher over g, consulting oracle for haplotype
// evidence and treating any node of length >= longNodeThreshold as a
// "long" anchor or jump target. The strongly-connected-component cache is
// computed once up front, per trio_walk.rs's nodes_in_sccs.
// Complexity: O(V+E) to collect SCC membership.
func NewSearcher(g seqgraph.Graph, oracle trio.Oracle, longNodeThreshold int) *Searcher {
	inSCCs := map[int]bool{}
	for _, scc := range g.SCCs() {
		for _, id := range scc {
			inSCCs[id] = true
		}
	}
	return &Searcher{
		g:                 g,
		oracle:            oracle,
		longNodeThreshold: longNodeThreshold,
		used:              map[int]trio.Group{},
		inSCCs:            inSCCs,
	}
}

// Used returns the accumulated node-id-to-group ownership map built up
// across every path emitted so far. Callers must not mutate it.
func (s *Searcher) Used() map[int]trio.Group { return s.used }

// FindAll iterates every node in id order and, for each unused long node
// with a definite assignment, grows a haplo-path and emits it.
// Complexity: O(V * cost(haploPath)).
func (s *Searcher) FindAll() []Result {
	var results []Result
	for _, n := range s.g.AllNodes() {
		if _, claimed := s.used[n.ID]; claimed {
			continue
		}
		if n.Length < s.longNodeThreshold {
			continue
		}
		a, ok := s.oracle.Get(n.ID)
		if !ok || !a.Group.Definite() {
			continue
		}
		path := s.haploPath(n.ID, a.Group)
		s.updateUsed(path, a.Group)
		results = append(results, Result{Path: path, Group: a.Group})
	}
	return results
}

func (s *Searcher) updateUsed(path *bpath.Path, group trio.Group) {
	for _, v := range path.Vertices() {
		blended := group
		if existing, ok := s.used[v.NodeID]; ok {
			blended = trio.Blend(existing, group)
		}
		s.used[v.NodeID] = blended
	}
}

// haploPath seeds a single-vertex path at forward(nodeID), grows it
// forward, reverse-complements, grows forward again, and
// reverse-complements once more — symmetric bidirectional growth centered
// on the anchor.
func (s *Searcher) haploPath(nodeID int, group trio.Group) *bpath.Path {
	if s.incompatibleAssignment(nodeID, group) {
		panic(fmt.Sprintf("haplopath: haploPath: node %d's assignment is incompatible with group %s", nodeID, group))
	}
	path := bpath.New(seqgraph.V(nodeID, seqgraph.Forward))
	s.growJumpForward(path, group)
	path = path.ReverseComplement()
	s.growJumpForward(path, group)
	return path.ReverseComplement()
}

// growJumpForward alternates local growth and jump growth until neither
// makes progress.
func (s *Searcher) growJumpForward(path *bpath.Path, group trio.Group) int {
	totGrow := 0
	for {
		grow := s.growForward(path, group, true)
		grow += s.jumpForward(path, group)
		if grow == 0 {
			break
		}
		totGrow += grow
	}
	return totGrow
}

// growForward repeatedly applies groupExtension, stopping at the first
// extension that would revisit a node or (when checkAvail) one that is
// unavailable.
func (s *Searcher) growForward(path *bpath.Path, group trio.Group, checkAvail bool) int {
	v := path.End()
	steps := 0
	for {
		l, ok := s.groupExtension(v, group)
		if !ok {
			break
		}
		w := l.End
		if path.HasNode(w.NodeID) || (checkAvail && !s.checkAvailable(w.NodeID, group)) {
			break
		}
		path.Append(l)
		v = w
		steps++
	}
	return steps
}

// groupExtension picks v's single unambiguous successor when one exists
// and is not incompatibly assigned; otherwise it requires every successor
// to carry a definite assignment, and returns the unique one matching
// group, if exactly one does.
func (s *Searcher) groupExtension(v seqgraph.Vertex, group trio.Group) (seqgraph.Link, bool) {
	if l, ok := s.unambiguousExtension(v); ok {
		if !s.incompatibleAssignment(l.End.NodeID, group) {
			return l, true
		}
	}

	var suitable seqgraph.Link
	found := false
	for _, l := range s.g.OutgoingEdges(v) {
		w := l.End
		if !s.oracle.IsDefinite(w.NodeID) {
			return seqgraph.Link{}, false // mixed ambiguity: some successor has no definite call
		}
		grp, _ := s.oracle.Group(w.NodeID)
		if grp != group {
			continue
		}
		if found {
			return seqgraph.Link{}, false // more than one matching successor
		}
		suitable = l
		found = true
	}
	return suitable, found
}

func (s *Searcher) unambiguousExtension(v seqgraph.Vertex) (seqgraph.Link, bool) {
	out := s.g.OutgoingEdges(v)
	if len(out) == 1 {
		return out[0], true
	}
	return seqgraph.Link{}, false
}

func (s *Searcher) incompatibleAssignment(nodeID int, target trio.Group) bool {
	a, ok := s.oracle.Get(nodeID)
	return ok && trio.Incompatible(a.Group, target)
}

func (s *Searcher) checkAssignment(nodeID int, target trio.Group) bool {
	a, ok := s.oracle.Get(nodeID)
	return ok && a.Group == target
}

func (s *Searcher) longNode(nodeID int) bool {
	n, ok := s.g.Node(nodeID)
	if !ok {
		panic(fmt.Sprintf("haplopath: node %d not found in graph", nodeID))
	}
	return n.Length >= s.longNodeThreshold
}

// checkAvailable reports whether nodeID may be claimed for target: true
// when it has not been used yet, or when it was used by an incompatible
// haplotype and is not long (long nodes may never change hands between
// incompatible haplotypes; same-haplotype reuse is never idempotent — a
// node already claimed by a compatible haplotype is off limits).
func (s *Searcher) checkAvailable(nodeID int, target trio.Group) bool {
	used, ok := s.used[nodeID]
	if !ok {
		return true
	}
	if used == trio.Issue {
		panic(fmt.Sprintf("haplopath: used map invariant violated: node %d recorded as ISSUE", nodeID))
	}
	if trio.Incompatible(used, target) {
		return !s.longNode(nodeID)
	}
	return false
}

// jumpForward attempts findJumpAhead from path's end and, if the result
// merges in cleanly (no shared nodes beyond the junction, no SCC vertex
// crossed, every vertex still available), splices it into path.
func (s *Searcher) jumpForward(path *bpath.Path, group trio.Group) int {
	jump, ok := s.findJumpAhead(path.End(), group)
	if !ok {
		return 0
	}
	if jump.Len() <= 1 {
		panic("haplopath: jumpForward: jump path must contain more than one vertex")
	}
	if path.End() != jump.Start() {
		panic("haplopath: jumpForward: jump path does not start where the growing path ends")
	}
	if !path.CanMergeIn(jump) {
		return 0
	}
	for _, l := range jump.Links() {
		if s.inSCCs[l.Start.NodeID] {
			return 0
		}
	}
	for _, v := range jump.Vertices() {
		if !s.checkAvailable(v.NodeID, group) {
			return 0
		}
	}
	addOn := jump.Len() - 1
	path.MergeIn(jump)
	return addOn
}

// findJumpAhead is the hardest subroutine: it looks for a unique,
// definitely-assigned long vertex of group reachable ahead of v via a
// bounded DFS, then tries to build an unambiguous bridge back to v.
func (s *Searcher) findJumpAhead(v seqgraph.Vertex, group trio.Group) (*bpath.Path, bool) {
	longAhead := s.boundedDFS(v)

	for _, x := range longAhead {
		if !s.oracle.IsDefinite(x.NodeID) {
			return nil, false
		}
	}

	var potential []seqgraph.Vertex
	for _, x := range longAhead {
		if grp, _ := s.oracle.Group(x.NodeID); grp == group {
			potential = append(potential, x)
		}
	}
	if len(potential) != 1 {
		return nil, false
	}
	t := potential[0]

	p := bpath.New(t.RC())
	s.growForward(p, group, false)

	if !p.InPath(v.RC()) {
		p = s.tryLinkWithVertex(p, v.RC(), group)
	}
	if !p.InPath(v.RC()) {
		p = s.tryLink(p, v.RC())
	}
	if !p.TrimTo(v.RC()) {
		return nil, false
	}
	if p.Len() <= 1 {
		panic("haplopath: findJumpAhead: trimmed path must contain more than one vertex")
	}
	return p.ReverseComplement(), true
}

// boundedDFS walks outward from v, stopping each branch the first time it
// hits a long vertex (not counting v itself) and recording that vertex.
func (s *Searcher) boundedDFS(v seqgraph.Vertex) []seqgraph.Vertex {
	visited := map[seqgraph.Vertex]bool{}
	var longAhead []seqgraph.Vertex
	s.innerDFS(v, visited, &longAhead)
	return longAhead
}

func (s *Searcher) innerDFS(v seqgraph.Vertex, visited map[seqgraph.Vertex]bool, longAhead *[]seqgraph.Vertex) {
	visited[v] = true
	if len(visited) > 1 && s.longNode(v.NodeID) {
		*longAhead = append(*longAhead, v)
		return
	}
	for _, l := range s.g.OutgoingEdges(v) {
		w := l.End
		if !visited[w] {
			s.innerDFS(w, visited, longAhead)
		}
	}
}

// tryLink appends the outgoing edge of path.End() that lands exactly on
// v, if one exists.
func (s *Searcher) tryLink(path *bpath.Path, v seqgraph.Vertex) *bpath.Path {
	for _, l := range s.g.OutgoingEdges(path.End()) {
		if l.End == v {
			path.Append(l)
			break
		}
	}
	return path
}

// tryLinkWithVertex looks for a two-hop bridge from path.End() to v: a
// next vertex w (tried in descending end-node-coverage order, so the
// strongest-covered candidate wins ties) that passes linkVertexCheck and
// connects directly to v.
func (s *Searcher) tryLinkWithVertex(path *bpath.Path, v seqgraph.Vertex, group trio.Group) *bpath.Path {
	out := append([]seqgraph.Link(nil), s.g.OutgoingEdges(path.End())...)
	sort.SliceStable(out, func(i, j int) bool {
		ni, _ := s.g.Node(out[i].End.NodeID)
		nj, _ := s.g.Node(out[j].End.NodeID)
		return ni.Coverage > nj.Coverage
	})

	for _, l := range out {
		w := l.End
		if path.HasNode(w.NodeID) || !s.linkVertexCheck(w, group) {
			continue
		}
		if l2, ok := s.g.Connector(w, v); ok {
			path.Append(l)
			path.Append(l2)
			break
		}
	}
	return path
}

// linkVertexCheck reports whether w is a viable single-node bridge: not
// long itself, not incompatibly assigned, exactly one edge in and out, and
// either its sole successor (in either orientation) is long, or w itself
// already carries group.
func (s *Searcher) linkVertexCheck(w seqgraph.Vertex, group trio.Group) bool {
	if s.longNode(w.NodeID) || s.incompatibleAssignment(w.NodeID, group) {
		return false
	}
	if s.g.IncomingEdgeCnt(w) != 1 || s.g.OutgoingEdgeCnt(w) != 1 {
		return false
	}
	return s.longNodeAhead(w) || s.longNodeAhead(w.RC()) || s.checkAssignment(w.NodeID, group)
}

func (s *Searcher) longNodeAhead(v seqgraph.Vertex) bool {
	out := s.g.OutgoingEdges(v)
	if len(out) != 1 {
		panic(fmt.Sprintf("haplopath: longNodeAhead: vertex %v expected exactly one outgoing edge", v))
	}
	return s.longNode(out[0].End.NodeID)
}
