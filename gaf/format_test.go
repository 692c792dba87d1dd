package gaf_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kvbio/rukki/bpath"
	"github.com/kvbio/rukki/gaf"
	"github.com/kvbio/rukki/haplopath"
	"github.com/kvbio/rukki/seqgraph"
	"github.com/kvbio/rukki/trio"
)

func buildLinearGraph(t *testing.T) (*seqgraph.Store, map[string]int) {
	t.Helper()
	s := seqgraph.NewStore()
	ids := map[string]int{}
	for _, name := range []string{"A", "B", "C"} {
		id, err := s.AddNode(name, 10, 1.0)
		require.NoError(t, err)
		ids[name] = id
	}
	require.NoError(t, s.AddLink(seqgraph.V(ids["A"], seqgraph.Forward), seqgraph.V(ids["B"], seqgraph.Forward), 0))
	require.NoError(t, s.AddLink(seqgraph.V(ids["B"], seqgraph.Forward), seqgraph.V(ids["C"], seqgraph.Reverse), 0))
	s.Freeze()
	return s, ids
}

func TestFormat_CommaAndGAFStyle(t *testing.T) {
	s, ids := buildLinearGraph(t)
	p := bpath.New(seqgraph.V(ids["A"], seqgraph.Forward))
	l, ok := s.Connector(seqgraph.V(ids["A"], seqgraph.Forward), seqgraph.V(ids["B"], seqgraph.Forward))
	require.True(t, ok)
	p.Append(l)
	l, ok = s.Connector(seqgraph.V(ids["B"], seqgraph.Forward), seqgraph.V(ids["C"], seqgraph.Reverse))
	require.True(t, ok)
	p.Append(l)

	require.Equal(t, "A+,B+,C-", gaf.Format(s, p, false))
	require.Equal(t, ">A>B<C", gaf.Format(s, p, true))
}

func TestWriteResults_PathsThenUnused(t *testing.T) {
	s, ids := buildLinearGraph(t)
	p := bpath.New(seqgraph.V(ids["A"], seqgraph.Forward))
	l, _ := s.Connector(seqgraph.V(ids["A"], seqgraph.Forward), seqgraph.V(ids["B"], seqgraph.Forward))
	p.Append(l)

	var buf bytes.Buffer
	err := gaf.WriteResults(&buf, s, []haplopath.Result{{Path: p, Group: trio.Paternal}}, false)
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "path_from_A\tPATERNAL\tA+,B+\n")
	require.Contains(t, out, "unused_C_len_10\n")
}
