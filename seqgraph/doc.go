// Package seqgraph defines the bidirected sequence-graph contract the rest
// of rukki consumes, plus a concrete, mutex-protected in-memory store that
// implements it.
//
// A Graph G=(V,E) here is bidirected: every Node yields exactly two
// Vertices (Forward and Reverse), and every Link has a reverse-complement
// twin stored alongside it. Algorithm packages (superbubble, bubblechain,
// haplopath) depend only on the Graph interface below, never on *Store, so
// tests can substitute a lighter fixture.
//
//   - Node lifecycle: AddNode (dense int ids in [0,N), assigned in
//     insertion order), Node(id).
//   - Link lifecycle: AddLink(from, to Vertex, overlap int); the reverse
//     twin is inserted automatically.
//   - Query surface: OutgoingEdges, IncomingEdges, OutgoingEdgeCnt,
//     IncomingEdgeCnt, Connector, AllVertices, AllNodes.
//   - SCCs() reports node ids participating in non-trivial strongly
//     connected components, computed once at Freeze() and cached.
//
// Errors:
//
//	ErrEmptyName            - node name is the empty string.
//	ErrZeroLength            - node length is < 1.
//	ErrDuplicateNode         - node name already registered.
//	ErrNodeNotFound          - referenced node id does not exist.
//	ErrOverlapExceedsLength  - a link's overlap exceeds an incident node's length.
//	ErrNotFrozen             - a read operation was attempted before Freeze().
package seqgraph
