// Package superbubble finds maximal single-source/single-sink acyclic
// regions ("superbubbles") of a bidirected seqgraph.Graph, bounded by size
// and length-diff thresholds.
//
// What & why:
//
//   - A superbubble rooted at vertex s is the maximal region every path
//     from s stays inside until it reaches a unique sink t, without
//     revisiting s. Finding these regions is the primitive bubble chains
//     (package bubblechain) are built from: an assembly graph's "messy"
//     regions are almost always superbubbles hiding a handful of
//     alternative haplotype-specific paths between two points of
//     agreement. Package haplopath does not use this package; its jumps
//     run their own bounded DFS.
//
// Algorithm & complexity:
//
//	Find: relaxation over a LIFO "ready" stack, exactly as described in
//	graph_algos/superbubble.rs — each reached vertex tracks a [min,max]
//	traversal-length range and a remaining-incoming-edge counter; a vertex
//	moves onto the stack only once every one of its incoming edges has
//	been relaxed. Termination fires the instant the stack holds
//	exactly one vertex and none remain "not ready".
//	Time:   O(count * avg-degree) bounded by Params.MaxCount.
//	Memory: O(count) for the reached map and incoming-edge counters.
//
// Errors: Find returns (nil, false) for every expected negative outcome
// (too few branches at s, a dead end, a palindrome, exceeding MaxLength/
// MaxDiff/MaxCount) — these are ordinary control flow, not errors. A
// reconstructed path (LongestPath/ShortestPath) that cannot find a
// predecessor matching its target range indicates a corrupted reached map
// and panics, per the core's invariant-violation policy.
package superbubble
