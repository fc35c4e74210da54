package tbox

import "math"

// The relation predicates evaluate one-dimensional rules independently on
// the numeric and temporal dimensions and combine them by conjunction over
// the dimensions present in both operands. A call across boxes that share
// no dimension fails with ErrIncomparable rather than silently returning a
// boolean, so dimension-mismatch bugs surface at the call site. The second
// operand may be any TNumber; its bounding box is what gets compared.

// perDim applies a per-dimension rule on every shared dimension and ANDs
// the results
func (b TBox) perDim(
	other TNumber, fx func(Span, Span) bool, ft func(Period, Period) bool,
) (bool, error) {
	o := other.BoundingBox()
	if !b.sharesDimension(o) {
		return false, ErrIncomparable
	}
	if b.hasX && o.hasX && !fx(b.span, o.span) {
		return false, nil
	}
	if b.hasT && o.hasT && !ft(b.period, o.period) {
		return false, nil
	}
	return true, nil
}

// Overlaps reports whether the operands share at least one point on every
// shared dimension
func (b TBox) Overlaps(other TNumber) (bool, error) {
	return b.perDim(other, Span.Overlaps, Period.Overlaps)
}

// Contains reports whether the operand lies entirely within b on every
// shared dimension. An exclusive bound cannot contain a point an inclusive
// inner bound sits on
func (b TBox) Contains(other TNumber) (bool, error) {
	return b.perDim(other, Span.Contains, Period.Contains)
}

// ContainedIn reports whether b lies entirely within the operand
func (b TBox) ContainedIn(other TNumber) (bool, error) {
	return other.BoundingBox().Contains(b)
}

// Left reports whether b lies strictly left of the operand on the numeric
// dimension
func (b TBox) Left(other TNumber) (bool, error) {
	return b.xRelation(other, Span.Left)
}

// Right reports whether b lies strictly right of the operand on the numeric
// dimension
func (b TBox) Right(other TNumber) (bool, error) {
	return b.xRelation(other, Span.Right)
}

// OverOrLeft reports whether b extends no further right than the operand's
// numeric start
func (b TBox) OverOrLeft(other TNumber) (bool, error) {
	return b.xRelation(other, Span.OverOrLeft)
}

// OverOrRight reports whether b starts no further left than the operand's
// numeric end
func (b TBox) OverOrRight(other TNumber) (bool, error) {
	return b.xRelation(other, Span.OverOrRight)
}

// Before reports whether b ends strictly before the operand starts on the
// temporal dimension
func (b TBox) Before(other TNumber) (bool, error) {
	return b.tRelation(other, Period.Before)
}

// After reports whether b starts strictly after the operand ends on the
// temporal dimension
func (b TBox) After(other TNumber) (bool, error) {
	return b.tRelation(other, Period.After)
}

// OverOrBefore reports whether b extends no later than the operand's
// temporal start
func (b TBox) OverOrBefore(other TNumber) (bool, error) {
	return b.tRelation(other, Period.OverOrBefore)
}

// OverOrAfter reports whether b starts no earlier than the operand's
// temporal end
func (b TBox) OverOrAfter(other TNumber) (bool, error) {
	return b.tRelation(other, Period.OverOrAfter)
}

// Same reports whether both boxes carry exactly the same dimensions with
// identical bounds. Differing dimension sets are simply not the same box,
// so no error is possible
func (b TBox) Same(other TNumber) bool {
	return b.Equal(other.BoundingBox())
}

// Adjacent reports whether the operands touch without overlapping. When
// both dimensions are shared, exactly one dimension must touch at a
// boundary that only one side includes while the other dimension's
// interiors properly intersect; a touch on both dimensions meets only at a
// corner and does not qualify. With a single shared dimension this reduces
// to the one-dimensional adjacency test
func (b TBox) Adjacent(other TNumber) (bool, error) {
	o := other.BoundingBox()
	sharedX := b.hasX && o.hasX
	sharedT := b.hasT && o.hasT
	switch {
	case sharedX && sharedT:
		xAdj := b.span.Adjacent(o.span)
		tAdj := b.period.Adjacent(o.period)
		return xAdj && b.period.interiorOverlaps(o.period) ||
			tAdj && b.span.interiorOverlaps(o.span), nil
	case sharedX:
		return b.span.Adjacent(o.span), nil
	case sharedT:
		return b.period.Adjacent(o.period), nil
	default:
		return false, ErrIncomparable
	}
}

// NearestApproachDistance returns the gap between the operands: 0 when they
// overlap on every shared dimension, otherwise the Euclidean combination of
// the per-dimension gaps, with temporal gaps measured in seconds
func (b TBox) NearestApproachDistance(other TNumber) (float64, error) {
	o := other.BoundingBox()
	sharedX := b.hasX && o.hasX
	sharedT := b.hasT && o.hasT
	switch {
	case sharedX && sharedT:
		dx := b.span.Distance(o.span)
		dt := b.period.Distance(o.period).Seconds()
		return math.Sqrt(dx*dx + dt*dt), nil
	case sharedX:
		return b.span.Distance(o.span), nil
	case sharedT:
		return b.period.Distance(o.period).Seconds(), nil
	default:
		return 0, ErrIncomparable
	}
}

func (b TBox) xRelation(
	other TNumber, f func(Span, Span) bool,
) (bool, error) {
	o := other.BoundingBox()
	if !b.hasX || !o.hasX {
		return false, ErrIncomparable
	}
	return f(b.span, o.span), nil
}

func (b TBox) tRelation(
	other TNumber, f func(Period, Period) bool,
) (bool, error) {
	o := other.BoundingBox()
	if !b.hasT || !o.hasT {
		return false, ErrIncomparable
	}
	return f(b.period, o.period), nil
}
