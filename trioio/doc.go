// Package trioio reads per-node parental marker counts and turns them
// into a trio.Oracle.
//
// What & why: upstream k-mer counters (the kind trio binning pipelines
// already produce) emit one row per node: how many paternal-specific and
// maternal-specific markers landed on it. ReadMarkerCounts parses that
// table; AssignParentalGroups turns the raw counts into the
// Paternal/Maternal/Homozygous/Issue call the haplo-path searcher
// consumes, using the same low-count and ratio thresholds the graph
// walker's other parameters are specified with.
package trioio
