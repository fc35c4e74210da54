package tbox

import "time"

type (
	// Period is a time interval whose bounds are independently inclusive or
	// exclusive. Timestamps are normalized to UTC on construction. The zero
	// value is not a valid Period; use NewPeriod or PeriodOf
	Period struct {
		lower    time.Time
		upper    time.Time
		lowerInc bool
		upperInc bool
	}
)

// NewPeriod creates a Period from its bounds. It fails with
// ErrInvalidArgument when lower is after upper and with ErrEmptyInterval
// when the bounds are equal and both exclusive
func NewPeriod(lower, upper time.Time, lowerInc, upperInc bool) (Period, error) {
	p := Period{
		lower:    lower.UTC(),
		upper:    upper.UTC(),
		lowerInc: lowerInc,
		upperInc: upperInc,
	}
	if err := validIv(p.iv(), cmpTime); err != nil {
		return Period{}, err
	}
	return p, nil
}

// PeriodOf returns the degenerate Period containing only the given instant
func PeriodOf(t time.Time) Period {
	t = t.UTC()
	return Period{lower: t, upper: t, lowerInc: true, upperInc: true}
}

func (p Period) Lower() time.Time { return p.lower }
func (p Period) Upper() time.Time { return p.upper }
func (p Period) LowerInc() bool   { return p.lowerInc }
func (p Period) UpperInc() bool   { return p.upperInc }

// Duration returns the temporal extent of the Period
func (p Period) Duration() time.Duration {
	return p.upper.Sub(p.lower)
}

// Equal reports whether both bounds match in instant and inclusivity
func (p Period) Equal(o Period) bool {
	return ivSame(p.iv(), o.iv(), cmpTime)
}

// Cmp orders Periods by lower bound, then upper bound
func (p Period) Cmp(o Period) int {
	return ivCmp(p.iv(), o.iv(), cmpTime)
}

// Overlaps reports whether the Periods share at least one instant. Touching
// at an equal boundary counts only when both adjoining bounds are inclusive
func (p Period) Overlaps(o Period) bool {
	return ivOverlaps(p.iv(), o.iv(), cmpTime)
}

// Contains reports whether o lies entirely within p
func (p Period) Contains(o Period) bool {
	return ivContains(p.iv(), o.iv(), cmpTime)
}

// ContainedIn reports whether p lies entirely within o
func (p Period) ContainedIn(o Period) bool {
	return o.Contains(p)
}

// ContainsTimestamp reports whether the instant lies within the Period
func (p Period) ContainsTimestamp(t time.Time) bool {
	return p.Contains(PeriodOf(t))
}

// Before reports whether p ends strictly before o starts
func (p Period) Before(o Period) bool {
	return ivLeft(p.iv(), o.iv(), cmpTime)
}

// After reports whether p starts strictly after o ends
func (p Period) After(o Period) bool {
	return ivLeft(o.iv(), p.iv(), cmpTime)
}

// OverOrBefore reports whether p extends no later than o's start
func (p Period) OverOrBefore(o Period) bool {
	return ivOverOrLeft(p.iv(), o.iv(), cmpTime)
}

// OverOrAfter reports whether p starts no earlier than o's end
func (p Period) OverOrAfter(o Period) bool {
	return ivOverOrRight(p.iv(), o.iv(), cmpTime)
}

// Adjacent reports whether the Periods touch at exactly one boundary instant
// that only one of them includes
func (p Period) Adjacent(o Period) bool {
	return ivAdjacent(p.iv(), o.iv(), cmpTime)
}

// Union merges two Periods. It fails with ErrNonContiguous when the
// operands neither overlap nor touch
func (p Period) Union(o Period) (Period, error) {
	u, ok := ivUnion(p.iv(), o.iv(), cmpTime)
	if !ok {
		return Period{}, ErrNonContiguous
	}
	return periodFromIv(u), nil
}

// Intersection narrows to the common sub-period. The second result is false
// when the operands share no instant; that is not an error
func (p Period) Intersection(o Period) (Period, bool) {
	x, ok := ivIntersect(p.iv(), o.iv(), cmpTime)
	if !ok {
		return Period{}, false
	}
	return periodFromIv(x), true
}

// Expand grows the Period symmetrically by d on both sides. A negative d
// shrinks it and fails if the result would be empty
func (p Period) Expand(d time.Duration) (Period, error) {
	return NewPeriod(p.lower.Add(-d), p.upper.Add(d), p.lowerInc, p.upperInc)
}

// Shift translates both bounds by d, preserving inclusivity
func (p Period) Shift(d time.Duration) Period {
	res := p
	res.lower = p.lower.Add(d)
	res.upper = p.upper.Add(d)
	return res
}

// Scale anchors the lower bound and stretches the Period to the given
// duration, preserving inclusivity. It fails with ErrInvalidArgument when d
// is not positive
func (p Period) Scale(d time.Duration) (Period, error) {
	if d <= 0 {
		return Period{}, ErrInvalidArgument
	}
	res := p
	res.upper = p.lower.Add(d)
	return res, nil
}

// Distance returns the gap between the Periods, or 0 when they overlap or
// touch
func (p Period) Distance(o Period) time.Duration {
	return max(0, o.lower.Sub(p.upper), p.lower.Sub(o.upper))
}

func (p Period) interiorOverlaps(o Period) bool {
	return ivInteriorOverlaps(p.iv(), o.iv(), cmpTime)
}

func (p Period) iv() iv[time.Time] {
	return iv[time.Time]{
		lower: Bound[time.Time]{Value: p.lower, Inclusive: p.lowerInc},
		upper: Bound[time.Time]{Value: p.upper, Inclusive: p.upperInc},
	}
}

func periodFromIv(x iv[time.Time]) Period {
	return Period{
		lower:    x.lower.Value,
		upper:    x.upper.Value,
		lowerInc: x.lower.Inclusive,
		upperInc: x.upper.Inclusive,
	}
}
