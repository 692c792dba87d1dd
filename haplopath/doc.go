// Package haplopath grows haplotype-consistent paths outward from
// confidently-assigned long anchor nodes, alternating local unambiguous
// extension with bounded jumps across short ambiguous regions.
//
// What & why: a long node with a definite trio assignment is solid ground.
// Starting there and walking outward — taking the only available edge
// when there is one, otherwise taking the one edge whose far end agrees
// with the current haplotype — recovers most of a path for free. Where
// the graph branches into a genuinely ambiguous tangle, growth alone
// stalls; jump_forward runs a bounded DFS ahead to find the next solid
// long anchor of the same haplotype and, if a short, acyclic, not-yet-
// claimed bridge to it exists, splices it in and keeps going.
//
// Grounded line for line on trio_walk.rs's HaploPathSearcher.
//
// Errors: FindAll never fails — a node with no viable haplo-path simply
// contributes nothing. Internal invariant violations (an assignment
// mismatching the group it is being grown under, a merge candidate whose
// junction does not line up) panic, matching the core's policy of never
// silently producing an inconsistent path.
package haplopath
