package trio_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kvbio/rukki/trio"
)

func TestBlend(t *testing.T) {
	require.Equal(t, trio.Paternal, trio.Blend(trio.Paternal, trio.Paternal))
	require.Equal(t, trio.Paternal, trio.Blend(trio.Paternal, trio.Homozygous))
	require.Equal(t, trio.Maternal, trio.Blend(trio.Homozygous, trio.Maternal))
	require.Equal(t, trio.Issue, trio.Blend(trio.Paternal, trio.Maternal))
}

func TestIncompatible(t *testing.T) {
	require.True(t, trio.Incompatible(trio.Paternal, trio.Maternal))
	require.True(t, trio.Incompatible(trio.Maternal, trio.Paternal))
	require.False(t, trio.Incompatible(trio.Paternal, trio.Paternal))
	require.False(t, trio.Incompatible(trio.Paternal, trio.Homozygous))
	require.False(t, trio.Incompatible(trio.Homozygous, trio.Issue))
}

func TestGroup_Definite(t *testing.T) {
	require.True(t, trio.Paternal.Definite())
	require.True(t, trio.Maternal.Definite())
	require.False(t, trio.Homozygous.Definite())
	require.False(t, trio.Issue.Definite())
}

func TestMapOracle(t *testing.T) {
	o := trio.NewMapOracle(5, map[int]trio.Assignment{
		1: {Group: trio.Paternal, Info: trio.Info{PaternalMarkers: 10}},
		3: {Group: trio.Homozygous},
	})

	a, ok := o.Get(1)
	require.True(t, ok)
	require.Equal(t, trio.Paternal, a.Group)
	require.Equal(t, 10, a.Info.PaternalMarkers)

	require.True(t, o.IsDefinite(1))
	require.False(t, o.IsDefinite(3), "homozygous is not a definite haplotype")

	g, ok := o.Group(3)
	require.True(t, ok)
	require.Equal(t, trio.Homozygous, g)

	_, ok = o.Get(2)
	require.False(t, ok)
	require.False(t, o.IsDefinite(2))

	_, ok = o.Get(99)
	require.False(t, ok, "out-of-range node id must report absent, not panic")
}
