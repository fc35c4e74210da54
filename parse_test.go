package tbox_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitirmizi/tbox"
)

func TestParseTBox(t *testing.T) {
	b, err := tbox.ParseTBox("TBOX XT([0, 10),[2020-06-01, 2020-06-05))")
	require.NoError(t, err)
	assert.True(t, b.HasX())
	assert.True(t, b.HasT())

	lo, err := b.Xmin()
	require.NoError(t, err)
	assert.Equal(t, 0.0, lo)
	hiInc, err := b.XmaxInc()
	require.NoError(t, err)
	assert.False(t, hiInc)

	tmax, err := b.Tmax()
	require.NoError(t, err)
	assert.True(t, tmax.Equal(day(t, "2020-06-05")))
}

func TestParseTBoxSingleDimension(t *testing.T) {
	b, err := tbox.ParseTBox("TBOX X((1.5, 2.5])")
	require.NoError(t, err)
	assert.True(t, b.HasX())
	assert.False(t, b.HasT())
	loInc, err := b.XminInc()
	require.NoError(t, err)
	assert.False(t, loInc)

	b, err = tbox.ParseTBox("TBOX T([2020-06-01, 2020-06-02])")
	require.NoError(t, err)
	assert.False(t, b.HasX())
	assert.True(t, b.HasT())
}

func TestParseTBoxLenient(t *testing.T) {
	// Case and spacing around the tag are not significant
	b, err := tbox.ParseTBox("  tbox xt( [0,10) , [2020-06-01,2020-06-05) )  ")
	require.NoError(t, err)
	assert.True(t, b.Equal(mustXT(t, "TBOX XT([0, 10),[2020-06-01, 2020-06-05))")))

	// Timestamps with explicit offsets normalize to UTC
	b, err = tbox.ParseTBox(
		"TBOX T([2020-06-01 02:00:00+02:00, 2020-06-05 02:00:00+02:00])")
	require.NoError(t, err)
	tmin, err := b.Tmin()
	require.NoError(t, err)
	assert.True(t, tmin.Equal(day(t, "2020-06-01")))
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, literal := range []string{
		"TBOX XT([0, 10),[2020-06-01, 2020-06-05))",
		"TBOX XT((1.25, 2.5],(2020-06-01, 2020-06-02])",
		"TBOX X([0, 10])",
		"TBOX X((-3.5, -1))",
		"TBOX T([2020-06-01, 2020-06-05])",
		"TBOX T((2020-06-01 12:30:00, 2020-06-01 12:30:00.000000001))",
	} {
		b := mustXT(t, literal)
		again, err := tbox.ParseTBox(b.String())
		require.NoError(t, err, "round-trip of %s", literal)
		assert.True(t, b.Equal(again), "round-trip of %s", literal)
	}
}

func TestParseTBoxMalformed(t *testing.T) {
	for _, input := range []string{
		"",
		"BOX XT([0, 10),[2020-06-01, 2020-06-05))",
		"TBOX",
		"TBOX XT[0, 10)",
		"TBOX XT([0, 10)",
		"TBOX Q([0, 10))",
		"TBOX XT([0, 10))",
		"TBOX X([0, 10),[2020-06-01, 2020-06-02))",
		"TBOX X({0, 10})",
		"TBOX X([zero, 10])",
		"TBOX T([2020-13-01, 2020-06-05])",
		"TBOX X([10])",
	} {
		_, err := tbox.ParseTBox(input)
		var perr *tbox.ParseError
		assert.ErrorAs(t, err, &perr, "expected parse failure for %q", input)
	}
}

func TestParseTBoxInvariantViolations(t *testing.T) {
	_, err := tbox.ParseTBox("TBOX X([10, 0])")
	var perr *tbox.ParseError
	assert.ErrorAs(t, err, &perr)
	assert.ErrorIs(t, err, tbox.ErrInvalidArgument)

	_, err = tbox.ParseTBox("TBOX X((5, 5))")
	assert.ErrorIs(t, err, tbox.ErrEmptyInterval)

	_, err = tbox.ParseTBox("TBOX T((2020-06-01, 2020-06-01))")
	assert.ErrorIs(t, err, tbox.ErrEmptyInterval)
}

func TestParseSpanPeriod(t *testing.T) {
	s, err := tbox.ParseSpan("[1.5, 2.5)")
	require.NoError(t, err)
	assert.True(t, s.Equal(mustSpan(t, 1.5, 2.5, true, false)))

	p, err := tbox.ParsePeriod("(2020-06-01, 2020-06-02]")
	require.NoError(t, err)
	assert.True(t, p.Equal(mustPeriod(t, "2020-06-01", "2020-06-02", false, true)))

	_, err = tbox.ParseSpan("1.5, 2.5")
	var perr *tbox.ParseError
	assert.ErrorAs(t, err, &perr)
}

func TestParseTimestampSet(t *testing.T) {
	ts, err := tbox.ParseTimestampSet("{2020-06-03, 2020-06-01, 2020-06-01}")
	require.NoError(t, err)
	assert.Equal(t, 2, ts.Len())
	assert.True(t, ts.StartElement().Equal(day(t, "2020-06-01")))

	_, err = tbox.ParseTimestampSet("{}")
	var perr *tbox.ParseError
	assert.ErrorAs(t, err, &perr)

	_, err = tbox.ParseTimestampSet("2020-06-01, 2020-06-02")
	assert.ErrorAs(t, err, &perr)
}

func TestParsePeriodSet(t *testing.T) {
	ps, err := tbox.ParsePeriodSet(
		"{[2020-06-03, 2020-06-04], [2020-06-01, 2020-06-02)}")
	require.NoError(t, err)
	assert.Equal(t, 2, ps.Len())
	assert.True(t, ps.StartPeriod().Lower().Equal(day(t, "2020-06-01")))

	// Touching members merge
	ps, err = tbox.ParsePeriodSet(
		"{[2020-06-01, 2020-06-02), [2020-06-02, 2020-06-03]}")
	require.NoError(t, err)
	assert.Equal(t, 1, ps.Len())
}

func TestStringRoundTripsFullPrecision(t *testing.T) {
	// A bound needing 17 significant digits survives the default rendering
	v := 0.1 + 0.2
	b := tbox.FromSpan(mustSpan(t, v, 1, true, true))
	assert.Contains(t, b.String(), "0.30000000000000004")

	again, err := tbox.ParseTBox(b.String())
	require.NoError(t, err)
	assert.True(t, b.Equal(again))
}

func TestFormatTBoxPrecision(t *testing.T) {
	b := mustXT(t, "TBOX X([0.123456789, 1])")
	assert.Equal(t, "TBOX X([0.123, 1])", tbox.FormatTBox(b, 3))
	assert.Equal(t, "TBOX X([0.123456789, 1])", b.String())
}

func TestStringRendersCanonicalForm(t *testing.T) {
	b := mustXT(t, "TBOX XT([0, 10),[2020-06-01, 2020-06-05))")
	assert.Equal(t,
		"TBOX XT([0, 10),[2020-06-01 00:00:00+00, 2020-06-05 00:00:00+00))",
		b.String())

	s := mustSpan(t, 0, 2.5, false, true)
	assert.Equal(t, "(0, 2.5]", s.String())

	p := mustPeriod(t, "2020-06-01", "2020-06-02", true, false)
	assert.Equal(t,
		"[2020-06-01 00:00:00+00, 2020-06-02 00:00:00+00)", p.String())
}
