package gaf

import (
	"strconv"
	"strings"

	"github.com/kvbio/rukki/bpath"
	"github.com/kvbio/rukki/seqgraph"
)

// Format renders p as either a GAF-style oriented path (">seg1<seg2...",
// one orientation glyph per segment, no separators) or a comma-separated
// "name+,name-,..." list.
func Format(g seqgraph.Graph, p *bpath.Path, gafStyle bool) string {
	var sb strings.Builder
	for i, v := range p.Vertices() {
		name := strconv.Itoa(v.NodeID)
		if n, ok := g.Node(v.NodeID); ok {
			name = n.Name
		}
		if gafStyle {
			if v.Dir == seqgraph.Forward {
				sb.WriteByte('>')
			} else {
				sb.WriteByte('<')
			}
			sb.WriteString(name)
			continue
		}
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(name)
		sb.WriteString(v.Dir.String())
	}
	return sb.String()
}
