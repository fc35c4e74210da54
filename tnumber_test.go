package tbox_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitirmizi/tbox"
)

func TestTFloatInstBoundingBox(t *testing.T) {
	inst := tbox.NewTFloatInst(3.5, day(t, "2020-06-01"))
	b := inst.BoundingBox()

	lo, err := b.Xmin()
	require.NoError(t, err)
	hi, err := b.Xmax()
	require.NoError(t, err)
	assert.Equal(t, 3.5, lo)
	assert.Equal(t, 3.5, hi)

	tmin, err := b.Tmin()
	require.NoError(t, err)
	assert.True(t, tmin.Equal(day(t, "2020-06-01")))
	inc, err := b.TminInc()
	require.NoError(t, err)
	assert.True(t, inc)
}

func TestNewTFloatSeqValidation(t *testing.T) {
	_, err := tbox.NewTFloatSeq(nil, true, true)
	assert.ErrorIs(t, err, tbox.ErrInvalidArgument)

	// Out of order
	_, err = tbox.NewTFloatSeq([]tbox.TFloatInst{
		tbox.NewTFloatInst(1, day(t, "2020-06-02")),
		tbox.NewTFloatInst(2, day(t, "2020-06-01")),
	}, true, true)
	assert.ErrorIs(t, err, tbox.ErrInvalidArgument)

	// Duplicate instants
	_, err = tbox.NewTFloatSeq([]tbox.TFloatInst{
		tbox.NewTFloatInst(1, day(t, "2020-06-01")),
		tbox.NewTFloatInst(2, day(t, "2020-06-01")),
	}, true, true)
	assert.ErrorIs(t, err, tbox.ErrInvalidArgument)

	// A single instant must be closed at both ends
	_, err = tbox.NewTFloatSeq([]tbox.TFloatInst{
		tbox.NewTFloatInst(1, day(t, "2020-06-01")),
	}, true, false)
	assert.ErrorIs(t, err, tbox.ErrEmptyInterval)

	seq, err := tbox.NewTFloatSeq([]tbox.TFloatInst{
		tbox.NewTFloatInst(1, day(t, "2020-06-01")),
	}, true, true)
	require.NoError(t, err)
	assert.Len(t, seq.Instants(), 1)
}

func TestTFloatSeqAccessors(t *testing.T) {
	seq, err := tbox.NewTFloatSeq([]tbox.TFloatInst{
		tbox.NewTFloatInst(4, day(t, "2020-06-01")),
		tbox.NewTFloatInst(-1, day(t, "2020-06-02")),
		tbox.NewTFloatInst(7, day(t, "2020-06-03")),
	}, true, false)
	require.NoError(t, err)

	assert.Equal(t, -1.0, seq.MinValue())
	assert.Equal(t, 7.0, seq.MaxValue())
	assert.Equal(t, 4.0, seq.StartInstant().Value)
	assert.Equal(t, 7.0, seq.EndInstant().Value)
}

func TestTFloatSeqBoundingBox(t *testing.T) {
	seq, err := tbox.NewTFloatSeq([]tbox.TFloatInst{
		tbox.NewTFloatInst(4, day(t, "2020-06-01")),
		tbox.NewTFloatInst(-1, day(t, "2020-06-02")),
		tbox.NewTFloatInst(7, day(t, "2020-06-03")),
	}, true, false)
	require.NoError(t, err)

	b := seq.BoundingBox()

	// Value bounds are inclusive; the time bounds carry the sequence's
	// own inclusivity
	span, err := b.ToSpan()
	require.NoError(t, err)
	assert.True(t, span.Equal(mustSpan(t, -1, 7, true, true)))

	period, err := b.ToPeriod()
	require.NoError(t, err)
	assert.True(t, period.Equal(
		mustPeriod(t, "2020-06-01", "2020-06-03", true, false)))
}

func TestRelationsAcceptTemporalValues(t *testing.T) {
	box := mustXT(t, "TBOX XT([0, 10],[2020-06-01, 2020-06-05])")
	inst := tbox.NewTFloatInst(3.5, day(t, "2020-06-02"))

	contains, err := box.Contains(inst)
	require.NoError(t, err)
	assert.True(t, contains)

	seq, err := tbox.NewTFloatSeq([]tbox.TFloatInst{
		tbox.NewTFloatInst(12, day(t, "2020-06-06")),
		tbox.NewTFloatInst(15, day(t, "2020-06-07")),
	}, true, true)
	require.NoError(t, err)

	over, err := box.Overlaps(seq)
	require.NoError(t, err)
	assert.False(t, over)

	left, err := box.Left(seq)
	require.NoError(t, err)
	assert.True(t, left)

	before, err := box.Before(seq)
	require.NoError(t, err)
	assert.True(t, before)
}

func TestFromTNumber(t *testing.T) {
	inst := tbox.NewTFloatInst(3.5, day(t, "2020-06-02"))
	b := tbox.FromTNumber(inst)
	assert.True(t, b.Equal(inst.BoundingBox()))

	// A box is its own envelope
	box := mustXT(t, "TBOX X([0, 10])")
	assert.True(t, tbox.FromTNumber(box).Equal(box))
}

func TestTFloatSeqNormalizesUTC(t *testing.T) {
	zone := time.FixedZone("CET", 3600)
	seq, err := tbox.NewTFloatSeq([]tbox.TFloatInst{
		{Value: 1, Timestamp: time.Date(2020, 6, 1, 1, 0, 0, 0, zone)},
	}, true, true)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, seq.StartInstant().Timestamp.Location())
	assert.True(t, seq.StartInstant().Timestamp.Equal(day(t, "2020-06-01")))
}
