package tbox_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitirmizi/tbox"
)

func TestOverlapsPerDimension(t *testing.T) {
	a := mustXT(t, "TBOX XT([0, 5],[2020-06-01, 2020-06-03])")
	b := mustXT(t, "TBOX XT([3, 8],[2020-06-02, 2020-06-05])")

	over, err := a.Overlaps(b)
	require.NoError(t, err)
	assert.True(t, over)

	// Disjoint on the value dimension alone is enough to fail
	c := mustXT(t, "TBOX XT([6, 8],[2020-06-02, 2020-06-05])")
	over, err = a.Overlaps(c)
	require.NoError(t, err)
	assert.False(t, over)
}

func TestOverlapsSymmetry(t *testing.T) {
	a := mustXT(t, "TBOX XT([0, 5],[2020-06-01, 2020-06-03])")
	for _, other := range []string{
		"TBOX XT([3, 8],[2020-06-02, 2020-06-05])",
		"TBOX XT([6, 8],[2020-06-04, 2020-06-05])",
		"TBOX X([4, 9])",
		"TBOX T([2020-06-02, 2020-06-04])",
	} {
		b := mustXT(t, other)
		ab, err := a.Overlaps(b)
		require.NoError(t, err)
		ba, err := b.Overlaps(a)
		require.NoError(t, err)
		assert.Equal(t, ab, ba, "overlaps not symmetric for %s", other)
	}
}

func TestIncomparableBoxes(t *testing.T) {
	valueOnly := mustXT(t, "TBOX X([0, 5])")
	timeOnly := mustXT(t, "TBOX T([2020-06-01, 2020-06-03])")

	_, err := valueOnly.Overlaps(timeOnly)
	assert.ErrorIs(t, err, tbox.ErrIncomparable)
	_, err = valueOnly.Contains(timeOnly)
	assert.ErrorIs(t, err, tbox.ErrIncomparable)
	_, err = valueOnly.Adjacent(timeOnly)
	assert.ErrorIs(t, err, tbox.ErrIncomparable)
	_, err = valueOnly.NearestApproachDistance(timeOnly)
	assert.ErrorIs(t, err, tbox.ErrIncomparable)

	// Positional predicates need their own dimension on both sides
	_, err = timeOnly.Left(timeOnly)
	assert.ErrorIs(t, err, tbox.ErrIncomparable)
	_, err = valueOnly.Before(valueOnly)
	assert.ErrorIs(t, err, tbox.ErrIncomparable)
}

func TestContains(t *testing.T) {
	outer := mustXT(t, "TBOX XT([1, 4],[2012-01-01, 2012-01-04])")
	inner := mustXT(t, "TBOX XT([2, 3],[2012-01-02, 2012-01-03])")

	ok, err := outer.Contains(inner)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = inner.ContainedIn(outer)
	require.NoError(t, err)
	assert.True(t, ok)

	// Closed bounds contain their open counterparts, not the reverse
	closed := mustXT(t, "TBOX XT([1, 2],[2012-01-01, 2012-01-02])")
	open := mustXT(t, "TBOX XT((1, 2),(2012-01-01, 2012-01-02))")

	ok, err = closed.Contains(open)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = open.Contains(closed)
	require.NoError(t, err)
	assert.False(t, ok)

	ab, err := outer.Contains(inner)
	require.NoError(t, err)
	ba, err := inner.ContainedIn(outer)
	require.NoError(t, err)
	assert.Equal(t, ab, ba)
}

func TestPositionalPredicates(t *testing.T) {
	a := mustXT(t, "TBOX XT([0, 5),[2020-06-01, 2020-06-03))")
	b := mustXT(t, "TBOX XT([5, 10],[2020-06-03, 2020-06-05])")

	left, err := a.Left(b)
	require.NoError(t, err)
	assert.True(t, left)

	right, err := b.Right(a)
	require.NoError(t, err)
	assert.True(t, right)

	before, err := a.Before(b)
	require.NoError(t, err)
	assert.True(t, before)

	after, err := b.After(a)
	require.NoError(t, err)
	assert.True(t, after)

	overOrLeft, err := a.OverOrLeft(b)
	require.NoError(t, err)
	assert.True(t, overOrLeft)

	overOrBefore, err := a.OverOrBefore(b)
	require.NoError(t, err)
	assert.True(t, overOrBefore)

	overOrAfter, err := b.OverOrAfter(a)
	require.NoError(t, err)
	assert.True(t, overOrAfter)

	overOrRight, err := b.OverOrRight(a)
	require.NoError(t, err)
	assert.True(t, overOrRight)
}

func TestAdjacent(t *testing.T) {
	// One dimension touches with mismatched inclusivity, the other
	// properly overlaps
	a := mustXT(t, "TBOX XT([0, 1],[2012-01-01, 2012-01-02))")
	b := mustXT(t, "TBOX XT([0, 1],[2012-01-02, 2012-01-03])")
	adj, err := a.Adjacent(b)
	require.NoError(t, err)
	assert.True(t, adj)

	// Both sides include the shared instant: overlap, not adjacency
	c := mustXT(t, "TBOX XT([0, 1],[2012-01-01, 2012-01-02])")
	adj, err = c.Adjacent(b)
	require.NoError(t, err)
	assert.False(t, adj)

	// Touching on both dimensions meets only at a corner
	d := mustXT(t, "TBOX XT([0, 1),[2012-01-01, 2012-01-02))")
	e := mustXT(t, "TBOX XT([1, 2],[2012-01-02, 2012-01-03])")
	adj, err = d.Adjacent(e)
	require.NoError(t, err)
	assert.False(t, adj)

	// The time boundary mismatch-touches, but the value spans meet only at
	// the single value 1, which is not a proper overlap
	f := mustXT(t, "TBOX XT([0, 1],[2012-01-01, 2012-01-02))")
	g := mustXT(t, "TBOX XT([1, 2],[2012-01-02, 2012-01-03])")
	adj, err = f.Adjacent(g)
	require.NoError(t, err)
	assert.False(t, adj)
}

func TestAdjacentSymmetry(t *testing.T) {
	a := mustXT(t, "TBOX XT([0, 1],[2012-01-01, 2012-01-02))")
	for _, other := range []string{
		"TBOX XT([0, 1],[2012-01-02, 2012-01-03])",
		"TBOX XT([1, 2],[2012-01-02, 2012-01-03])",
		"TBOX XT([0, 1],[2012-01-01, 2012-01-02])",
	} {
		b := mustXT(t, other)
		ab, err := a.Adjacent(b)
		require.NoError(t, err)
		ba, err := b.Adjacent(a)
		require.NoError(t, err)
		assert.Equal(t, ab, ba, "adjacent not symmetric for %s", other)
	}
}

func TestAdjacentSingleDimension(t *testing.T) {
	a := mustXT(t, "TBOX X([0, 5))")
	b := mustXT(t, "TBOX X([5, 10])")
	adj, err := a.Adjacent(b)
	require.NoError(t, err)
	assert.True(t, adj)

	p := mustXT(t, "TBOX T([2020-06-01, 2020-06-03))")
	q := mustXT(t, "TBOX T([2020-06-03, 2020-06-05])")
	adj, err = p.Adjacent(q)
	require.NoError(t, err)
	assert.True(t, adj)
}

func TestSame(t *testing.T) {
	a := mustXT(t, "TBOX XT([0, 1],[2012-01-01, 2012-01-02))")
	assert.True(t, a.Same(mustXT(t, "TBOX XT([0, 1],[2012-01-01, 2012-01-02))")))
	assert.False(t, a.Same(mustXT(t, "TBOX XT([0, 1],[2012-01-01, 2012-01-02])")))
	assert.False(t, a.Same(mustXT(t, "TBOX X([0, 1])")))
}

func TestNearestApproachDistance(t *testing.T) {
	a := mustXT(t, "TBOX XT([0, 1],[2020-06-01, 2020-06-02])")

	// Overlapping on every shared dimension: distance 0
	d, err := a.NearestApproachDistance(a)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)

	// Gap only on the value dimension
	b := mustXT(t, "TBOX XT([4, 5],[2020-06-01, 2020-06-02])")
	d, err = a.NearestApproachDistance(b)
	require.NoError(t, err)
	assert.Equal(t, 3.0, d)

	// Gap on both dimensions combines Euclidean-style, time in seconds
	c := mustXT(t, "TBOX XT([4, 5],[2020-06-03, 2020-06-04])")
	d, err = a.NearestApproachDistance(c)
	require.NoError(t, err)
	gapSeconds := (24 * 3600.0)
	assert.InDelta(t, gapSeconds, d, 1.0)

	// Single shared dimension: the 1D gap
	valueOnly := mustXT(t, "TBOX X([4, 5])")
	d, err = a.NearestApproachDistance(valueOnly)
	require.NoError(t, err)
	assert.Equal(t, 3.0, d)
}
