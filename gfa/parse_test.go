package gfa_test

import (
	"bytes"
	"compress/gzip"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kvbio/rukki/gfa"
	"github.com/kvbio/rukki/seqgraph"
)

const sampleGFA = `H	VN:Z:1.0
S	A	ACACACACAC
S	B	*	LN:i:20	dp:f:12.5
L	A	+	B	-	0M
`

func TestParse_SegmentsAndLinks(t *testing.T) {
	store, err := gfa.Parse(strings.NewReader(sampleGFA))
	require.NoError(t, err)

	a, ok := store.NameToID("A")
	require.True(t, ok)
	b, ok := store.NameToID("B")
	require.True(t, ok)

	nodeA, _ := store.Node(a)
	require.Equal(t, 10, nodeA.Length)

	nodeB, _ := store.Node(b)
	require.Equal(t, 20, nodeB.Length)
	require.InDelta(t, 12.5, nodeB.Coverage, 1e-9)

	l, ok := store.Connector(seqgraph.V(a, seqgraph.Forward), seqgraph.V(b, seqgraph.Reverse))
	require.True(t, ok)
	require.Equal(t, 0, l.Overlap)
}

func TestParse_GzippedInput(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte(sampleGFA))
	require.NoError(t, err)
	require.NoError(t, gz.Close())

	store, err := gfa.Parse(&buf)
	require.NoError(t, err)
	_, ok := store.NameToID("A")
	require.True(t, ok)
}

func TestParse_LinkBeforeSegment_Errors(t *testing.T) {
	_, err := gfa.Parse(strings.NewReader("L\tX\t+\tY\t+\t0M\n"))
	require.Error(t, err)
}

func TestParse_SegmentWithoutLength_Errors(t *testing.T) {
	_, err := gfa.Parse(strings.NewReader("S\tA\t*\n"))
	require.Error(t, err)
}
