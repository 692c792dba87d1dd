package seqgraph

// tarjanSCCs computes the strongly connected components of the bidirected
// vertex-level graph (each Vertex is a node of this auxiliary graph; each
// Link is an edge) using Tarjan's algorithm, then folds each non-trivial
// component down to the set of node ids it touches.
//
// A component is non-trivial when it contains more than one vertex, or a
// single vertex with a self-loop (an outgoing link back to itself) — either
// case means a cycle exists and jumps must not be routed through it.
//
// Complexity: Time O(V+E), Memory O(V) for the recursion stack and index
// bookkeeping, where V = 2*nodeCount (two vertices per node).
func tarjanSCCs(s *Store) [][]int {
	t := &tarjanState{
		index:   make(map[Vertex]int),
		lowlink: make(map[Vertex]int),
		onStack: make(map[Vertex]bool),
		next:    0,
	}

	for _, v := range s.AllVerticesUnsafe() {
		if _, visited := t.index[v]; !visited {
			t.strongConnect(s, v)
		}
	}

	out := make([][]int, 0, len(t.components))
	for _, comp := range t.components {
		if !isNonTrivial(s, comp) {
			continue
		}
		seen := make(map[int]bool, len(comp))
		nodeIDs := make([]int, 0, len(comp))
		for _, v := range comp {
			if !seen[v.NodeID] {
				seen[v.NodeID] = true
				nodeIDs = append(nodeIDs, v.NodeID)
			}
		}
		out = append(out, nodeIDs)
	}
	return out
}

func isNonTrivial(s *Store, comp []Vertex) bool {
	if len(comp) > 1 {
		return true
	}
	v := comp[0]
	for _, l := range s.out[vertexIndex(v)] {
		if l.End == v {
			return true
		}
	}
	return false
}

// AllVerticesUnsafe is like AllVertices but callable during Freeze, before
// the Store is marked frozen (requireFrozen would otherwise panic).
func (s *Store) AllVerticesUnsafe() []Vertex {
	out := make([]Vertex, 0, len(s.nodes)*2)
	for _, n := range s.nodes {
		out = append(out, Vertex{NodeID: n.ID, Dir: Forward}, Vertex{NodeID: n.ID, Dir: Reverse})
	}
	return out
}

type tarjanState struct {
	index      map[Vertex]int
	lowlink    map[Vertex]int
	onStack    map[Vertex]bool
	stack      []Vertex
	next       int
	components [][]Vertex
}

// strongConnect is the recursive core of Tarjan's algorithm.
func (t *tarjanState) strongConnect(s *Store, v Vertex) {
	t.index[v] = t.next
	t.lowlink[v] = t.next
	t.next++
	t.stack = append(t.stack, v)
	t.onStack[v] = true

	for _, l := range s.out[vertexIndex(v)] {
		w := l.End
		if _, visited := t.index[w]; !visited {
			t.strongConnect(s, w)
			if t.lowlink[w] < t.lowlink[v] {
				t.lowlink[v] = t.lowlink[w]
			}
		} else if t.onStack[w] {
			if t.index[w] < t.lowlink[v] {
				t.lowlink[v] = t.index[w]
			}
		}
	}

	if t.lowlink[v] == t.index[v] {
		var comp []Vertex
		for {
			n := len(t.stack) - 1
			w := t.stack[n]
			t.stack = t.stack[:n]
			t.onStack[w] = false
			comp = append(comp, w)
			if w == v {
				break
			}
		}
		t.components = append(t.components, comp)
	}
}
