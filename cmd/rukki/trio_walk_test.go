package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kvbio/rukki/seqgraph"
	"github.com/kvbio/rukki/superbubble"
)

func TestGraphFingerprint_OrderIndependent(t *testing.T) {
	build := func(names []string) *seqgraph.Store {
		s := seqgraph.NewStore()
		for _, n := range names {
			_, err := s.AddNode(n, 10, 1.0)
			require.NoError(t, err)
		}
		s.Freeze()
		return s
	}

	a := build([]string{"A", "B", "C"})
	b := build([]string{"C", "A", "B"})
	require.Equal(t, graphFingerprint(a), graphFingerprint(b))
}

func TestGraphFingerprint_DiffersOnLength(t *testing.T) {
	s1 := seqgraph.NewStore()
	_, err := s1.AddNode("A", 10, 1.0)
	require.NoError(t, err)
	s1.Freeze()

	s2 := seqgraph.NewStore()
	_, err = s2.AddNode("A", 20, 1.0)
	require.NoError(t, err)
	s2.Freeze()

	require.NotEqual(t, graphFingerprint(s1), graphFingerprint(s2))
}

func TestFindBubbleChains_DiamondYieldsOneBubbleOneChain(t *testing.T) {
	s := seqgraph.NewStore()
	ids := map[string]int{}
	for _, n := range []string{"A", "B", "C", "D"} {
		id, err := s.AddNode(n, 10, 1.0)
		require.NoError(t, err)
		ids[n] = id
	}
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}} {
		require.NoError(t, s.AddLink(
			seqgraph.V(ids[e[0]], seqgraph.Forward),
			seqgraph.V(ids[e[1]], seqgraph.Forward),
			0,
		))
	}
	s.Freeze()

	bubbles, chains := findBubbleChains(s, superbubble.Unrestricted())
	require.Len(t, bubbles, 1)
	require.Equal(t, 1, chains)
}

func TestTrioWalkCmd_RequiredFlags(t *testing.T) {
	cmd := newTrioWalkCmd()
	err := cmd.Execute()
	require.Error(t, err, "graph/markers/out are required flags")
}
