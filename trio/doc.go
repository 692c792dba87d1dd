// Package trio models parental-haplotype ("trio") group assignments and
// the read-only oracle contract the haplo-path searcher consumes.
//
// What & why: a trio assignment classifies a node by which parent's
// sequencing reads its k-mers match — Paternal, Maternal, or Homozygous
// when both parents agree, or Issue when the evidence conflicts. Blend
// and Incompatible are the two operations package haplopath needs to
// reason about combining or rejecting these classifications while
// growing a path; they are grounded on trio_walk.rs's
// TrioGroup::blend/TrioGroup::incompatible (declared in the omitted
// trio.rs, used freely by trio_walk.rs).
//
// Errors: none. Every operation here is a pure, total function over the
// four-value Group enum; Oracle.Get/.Group report absence via (T, bool),
// never an error or panic.
package trio
