// Package gaf renders haplo-paths as text: a compact "name+,name-,..."
// form and a GAF-style ">name<name" form, plus a results table that lists
// every produced path and, for whatever node coverage left behind, how
// much sequence went unused.
//
// Grounded on lib.rs's run_trio_analysis output loop: one path_from_<anchor>
// row per result, followed by unused_<name>_len_<n> rows for every node no
// result ever claimed.
package gaf
