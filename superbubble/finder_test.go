package superbubble_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kvbio/rukki/seqgraph"
	"github.com/kvbio/rukki/superbubble"
)

type edge struct {
	from, to string
	overlap  int
}

// build constructs a frozen *seqgraph.Store from a node-length map and an
// edge list, all in the Forward orientation, returning the id lookup.
func build(t *testing.T, lengths map[string]int, edges []edge) (*seqgraph.Store, map[string]int) {
	t.Helper()
	s := seqgraph.NewStore()
	ids := map[string]int{}
	for name, length := range lengths {
		id, err := s.AddNode(name, length, 1.0)
		require.NoError(t, err)
		ids[name] = id
	}
	for _, e := range edges {
		from := seqgraph.V(ids[e.from], seqgraph.Forward)
		to := seqgraph.V(ids[e.to], seqgraph.Forward)
		require.NoError(t, s.AddLink(from, to, e.overlap))
	}
	s.Freeze()
	return s, ids
}

func fwd(ids map[string]int, name string) seqgraph.Vertex {
	return seqgraph.V(ids[name], seqgraph.Forward)
}

// TestFind_SimpleDiamond covers S1: A -> {B, C} -> D, all length 10.
func TestFind_SimpleDiamond(t *testing.T) {
	s, ids := build(t,
		map[string]int{"A": 10, "B": 10, "C": 10, "D": 10},
		[]edge{{"A", "B", 0}, {"A", "C", 0}, {"B", "D", 0}, {"C", "D", 0}},
	)

	sb, ok := superbubble.Find(s, fwd(ids, "A"), superbubble.Unrestricted())
	require.True(t, ok)
	require.Equal(t, fwd(ids, "A"), sb.Start())
	require.Equal(t, fwd(ids, "D"), sb.End())

	inner := sb.InnerVertices()
	require.ElementsMatch(t, []seqgraph.Vertex{fwd(ids, "B"), fwd(ids, "C")}, inner)

	lr := sb.LengthRange()
	require.Equal(t, uint64(30), lr.Min)
	require.Equal(t, uint64(30), lr.Max)
}

// buildUnequalDiamond is S2: A -> B(5) -> D and A -> C(20) -> D, A and D
// are length 10. The two branches differ by 15.
func buildUnequalDiamond(t *testing.T) (*seqgraph.Store, map[string]int) {
	return build(t,
		map[string]int{"A": 10, "B": 5, "C": 20, "D": 10},
		[]edge{{"A", "B", 0}, {"A", "C", 0}, {"B", "D", 0}, {"C", "D", 0}},
	)
}

func TestFind_UnequalDiamond_LengthRange(t *testing.T) {
	s, ids := buildUnequalDiamond(t)

	sb, ok := superbubble.Find(s, fwd(ids, "A"), superbubble.Unrestricted())
	require.True(t, ok)

	// reached[D] is (15, 30); LengthRange adds A's own length of 10.
	lr := sb.LengthRange()
	require.Equal(t, uint64(25), lr.Min)
	require.Equal(t, uint64(40), lr.Max)
}

func TestFind_MaxDiffThreshold(t *testing.T) {
	s, ids := buildUnequalDiamond(t)

	_, ok := superbubble.Find(s, fwd(ids, "A"), superbubble.Params{
		MaxLength: 1000, MaxDiff: 10, MaxCount: 1000,
	})
	require.False(t, ok, "diff of 15 must be rejected by MaxDiff=10")

	_, ok = superbubble.Find(s, fwd(ids, "A"), superbubble.Params{
		MaxLength: 1000, MaxDiff: 20, MaxCount: 1000,
	})
	require.True(t, ok, "diff of 15 must be accepted by MaxDiff=20")
}

func TestFind_MaxDiffZero_OnlyAdmitsEqualRanges(t *testing.T) {
	equal, equalIDs := build(t,
		map[string]int{"A": 10, "B": 10, "C": 10, "D": 10},
		[]edge{{"A", "B", 0}, {"A", "C", 0}, {"B", "D", 0}, {"C", "D", 0}},
	)
	strict := superbubble.Params{MaxLength: 1000, MaxDiff: 0, MaxCount: 1000}

	_, ok := superbubble.Find(equal, fwd(equalIDs, "A"), strict)
	require.True(t, ok)

	unequal, unequalIDs := buildUnequalDiamond(t)
	_, ok = superbubble.Find(unequal, fwd(unequalIDs, "A"), strict)
	require.False(t, ok)
}

// TestFind_Palindrome_Rejected covers S3: a root reaching both orientations
// of the same node is rejected outright.
func TestFind_Palindrome_Rejected(t *testing.T) {
	s := seqgraph.NewStore()
	r, err := s.AddNode("R", 10, 1.0)
	require.NoError(t, err)
	x, err := s.AddNode("X", 10, 1.0)
	require.NoError(t, err)
	require.NoError(t, s.AddLink(seqgraph.V(r, seqgraph.Forward), seqgraph.V(x, seqgraph.Forward), 0))
	require.NoError(t, s.AddLink(seqgraph.V(r, seqgraph.Forward), seqgraph.V(x, seqgraph.Reverse), 0))
	s.Freeze()

	_, ok := superbubble.Find(s, seqgraph.V(r, seqgraph.Forward), superbubble.Unrestricted())
	require.False(t, ok)
}

func TestFind_FewerThanTwoBranches_None(t *testing.T) {
	s, ids := build(t,
		map[string]int{"A": 10, "B": 10},
		[]edge{{"A", "B", 0}},
	)
	_, ok := superbubble.Find(s, fwd(ids, "A"), superbubble.Unrestricted())
	require.False(t, ok)
}

func TestFind_DeadEndAborts(t *testing.T) {
	// A -> {B, C} -> D, but C has no further outgoing edges at all.
	s := seqgraph.NewStore()
	ids := map[string]int{}
	for _, n := range []string{"A", "B", "C", "D"} {
		id, err := s.AddNode(n, 10, 1.0)
		require.NoError(t, err)
		ids[n] = id
	}
	require.NoError(t, s.AddLink(seqgraph.V(ids["A"], seqgraph.Forward), seqgraph.V(ids["B"], seqgraph.Forward), 0))
	require.NoError(t, s.AddLink(seqgraph.V(ids["A"], seqgraph.Forward), seqgraph.V(ids["C"], seqgraph.Forward), 0))
	require.NoError(t, s.AddLink(seqgraph.V(ids["B"], seqgraph.Forward), seqgraph.V(ids["D"], seqgraph.Forward), 0))
	s.Freeze()

	_, ok := superbubble.Find(s, fwd(ids, "A"), superbubble.Unrestricted())
	require.False(t, ok)
}

func TestFind_MaxCountZero_AdmitsNothing(t *testing.T) {
	s, ids := build(t,
		map[string]int{"A": 10, "B": 10, "C": 10, "D": 10},
		[]edge{{"A", "B", 0}, {"A", "C", 0}, {"B", "D", 0}, {"C", "D", 0}},
	)
	_, ok := superbubble.Find(s, fwd(ids, "A"), superbubble.Params{MaxLength: 1000, MaxDiff: 1000, MaxCount: 0})
	require.False(t, ok)
}

func TestSuperbubble_LongestShortestPath_RoundTrip(t *testing.T) {
	s, ids := buildUnequalDiamond(t)
	sb, ok := superbubble.Find(s, fwd(ids, "A"), superbubble.Unrestricted())
	require.True(t, ok)

	shortest := sb.ShortestPath()
	longest := sb.LongestPath()

	require.Equal(t, fwd(ids, "A"), shortest.Start())
	require.Equal(t, fwd(ids, "D"), shortest.End())
	require.True(t, shortest.InPath(fwd(ids, "B")), "shortest path must route through the short branch B")
	require.False(t, shortest.InPath(fwd(ids, "C")))

	require.Equal(t, fwd(ids, "A"), longest.Start())
	require.Equal(t, fwd(ids, "D"), longest.End())
	require.True(t, longest.InPath(fwd(ids, "C")), "longest path must route through the long branch C")
	require.False(t, longest.InPath(fwd(ids, "B")))
}

// TestFindAllOuter_AbsorbsNestedBubble covers S4: a sub-bubble rooted at A
// (A -> {X, Y} -> W) sits entirely inside the outer bubble rooted at R
// (R -> {A, Z} -> S, with the A-branch continuing W -> S). FindAllOuter
// must report only the outer bubble: visiting A's sub-bubble first gets
// superseded once R's traversal reaches and absorbs it.
func TestFindAllOuter_AbsorbsNestedBubble(t *testing.T) {
	s := seqgraph.NewStore()
	ids := map[string]int{}
	for _, n := range []string{"A", "X", "Y", "W", "Z", "R", "S"} {
		id, err := s.AddNode(n, 10, 1.0)
		require.NoError(t, err)
		ids[n] = id
	}
	add := func(from, to string) {
		require.NoError(t, s.AddLink(seqgraph.V(ids[from], seqgraph.Forward), seqgraph.V(ids[to], seqgraph.Forward), 0))
	}
	add("R", "A")
	add("R", "Z")
	add("A", "X")
	add("A", "Y")
	add("X", "W")
	add("Y", "W")
	add("W", "S")
	add("Z", "S")
	s.Freeze()

	bubbles := superbubble.FindAllOuter(s, superbubble.Unrestricted())
	require.Len(t, bubbles, 1)
	require.Equal(t, fwd(ids, "R"), bubbles[0].Start())
	require.Equal(t, fwd(ids, "S"), bubbles[0].End())

	inner := bubbles[0].InnerVertices()
	require.ElementsMatch(t,
		[]seqgraph.Vertex{fwd(ids, "A"), fwd(ids, "X"), fwd(ids, "Y"), fwd(ids, "W"), fwd(ids, "Z")},
		inner,
	)
}
