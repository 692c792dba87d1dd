// Package gfa reads the segment/link subset of the GFA graph-exchange
// format into a *seqgraph.Store.
//
// What & why: an S line declares a node (name, sequence or "*" plus an
// LN:i: length tag, optional dp:f:/RC:i: depth tags feeding Coverage); an
// L line declares a link between two oriented segment ends together with
// a CIGAR overlap, matching the bidirected Link the core graph already
// models. Every other record type (headers, paths, containments,
// comments) is accepted and skipped, since this package only needs to
// reconstruct the graph, not round-trip the file.
//
// Input is gunzipped transparently when it starts with the gzip magic,
// so callers can hand Parse either a raw .gfa file or a .gfa.gz one
// without branching.
//
// Parsing style is grounded on grailbio-bio's fasta index builder:
// a buffered reader scanned line by line, with field errors wrapped by
// line number rather than collected into a report.
package gfa
