// Package bpath implements Path, the ordered-oriented-vertex primitive the
// rest of rukki builds on: a non-empty sequence v0,l0,v1,l1,...,vk of
// vertices and connecting links, node-simple (no two vertices share a
// node id) while being built.
//
// Path is grounded on the original HaploPath type: Append/InPath/CanMergeIn/
// MergeIn/TrimTo/ReverseComplement are a direct restatement of its methods,
// kept node-simple by assertion rather than by silently refusing to grow
// (the spec treats a simplicity violation as caller error, never a data
// condition the path needs to recover from).
package bpath
