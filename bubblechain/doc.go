// Package bubblechain stitches consecutive superbubbles into maximal
// chains, in either direction along a bidirected seqgraph.Graph.
//
// What & why: a single superbubble only resolves one region of ambiguity.
// Where a graph's branch points sit back to back — bubble, then
// immediately another bubble, then another — the whole run can be treated
// as one unit. The trio-walk command uses chains to report how many such
// runs the graph holds; package haplopath does not use this package.
// FindChainAhead/FindMaximalChain build
// that run by repeatedly re-invoking superbubble.Find at each bubble's end
// vertex, exactly as graph_algos/superbubble.rs's find_chain_ahead/
// find_maximal_chain do.
//
// Errors: none of this package's functions can fail in the (T, bool) or
// panic sense; a chain of length zero (no bubble found even one step
// ahead) is a perfectly ordinary, representable result.
package bubblechain
