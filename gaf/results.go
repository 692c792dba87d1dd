package gaf

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/kvbio/rukki/haplopath"
	"github.com/kvbio/rukki/seqgraph"
)

// WriteResults writes one "path_from_<anchor>\t<group>\t<path>" row per
// result, followed by one "unused_<name>_len_<n>" row for every node no
// result's path ever claimed.
// Complexity: O(sum of path lengths + V).
func WriteResults(w io.Writer, g seqgraph.Graph, results []haplopath.Result, gafStyle bool) error {
	bw := bufio.NewWriter(w)

	claimed := map[int]bool{}
	for _, r := range results {
		anchorName := fmt.Sprintf("%d", r.Path.Anchor())
		if n, ok := g.Node(r.Path.Anchor()); ok {
			anchorName = n.Name
		}
		for _, v := range r.Path.Vertices() {
			claimed[v.NodeID] = true
		}
		line := fmt.Sprintf("path_from_%s\t%s\t%s\n", anchorName, r.Group, Format(g, r.Path, gafStyle))
		if _, err := bw.WriteString(line); err != nil {
			return errors.Wrap(err, "gaf: writing path row")
		}
	}

	for _, n := range g.AllNodes() {
		if claimed[n.ID] {
			continue
		}
		line := fmt.Sprintf("unused_%s_len_%d\n", n.Name, n.Length)
		if _, err := bw.WriteString(line); err != nil {
			return errors.Wrap(err, "gaf: writing unused row")
		}
	}

	return errors.Wrap(bw.Flush(), "gaf: flushing output")
}
