package tbox

import "time"

// Union merges two boxes into their bounding box. On a shared dimension the
// operands must overlap or touch, else the union would fragment and the
// call fails with ErrNonContiguous. A dimension present in only one operand
// is adopted as-is
func (b TBox) Union(o TBox) (TBox, error) {
	var res TBox
	switch {
	case b.hasX && o.hasX:
		u, err := b.span.Union(o.span)
		if err != nil {
			return TBox{}, err
		}
		res.span, res.hasX = u, true
	case b.hasX:
		res.span, res.hasX = b.span, true
	case o.hasX:
		res.span, res.hasX = o.span, true
	}
	switch {
	case b.hasT && o.hasT:
		u, err := b.period.Union(o.period)
		if err != nil {
			return TBox{}, err
		}
		res.period, res.hasT = u, true
	case b.hasT:
		res.period, res.hasT = b.period, true
	case o.hasT:
		res.period, res.hasT = o.period, true
	}
	return res, nil
}

// Intersection narrows to the sub-box common to both operands. Only
// dimensions present in both survive. The second result is false when any
// shared dimension's intersection is empty or when the operands share no
// dimension; emptiness is an explicit signal, never an error and never a
// zero-valued box
func (b TBox) Intersection(o TBox) (TBox, bool) {
	var res TBox
	if b.hasX && o.hasX {
		s, ok := b.span.Intersection(o.span)
		if !ok {
			return TBox{}, false
		}
		res.span, res.hasX = s, true
	}
	if b.hasT && o.hasT {
		p, ok := b.period.Intersection(o.period)
		if !ok {
			return TBox{}, false
		}
		res.period, res.hasT = p, true
	}
	if !res.hasX && !res.hasT {
		return TBox{}, false
	}
	return res, true
}

// ExpandValue grows the numeric dimension symmetrically by d. It fails with
// ErrDimensionAbsent when the box has no numeric dimension, and with
// ErrEmptyInterval when a negative d would shrink the span away entirely
func (b TBox) ExpandValue(d float64) (TBox, error) {
	if !b.hasX {
		return TBox{}, ErrDimensionAbsent
	}
	s, err := b.span.Expand(d)
	if err != nil {
		return TBox{}, err
	}
	res := b
	res.span = s
	return res, nil
}

// ExpandTime grows the temporal dimension symmetrically by d
func (b TBox) ExpandTime(d time.Duration) (TBox, error) {
	if !b.hasT {
		return TBox{}, ErrDimensionAbsent
	}
	p, err := b.period.Expand(d)
	if err != nil {
		return TBox{}, err
	}
	res := b
	res.period = p
	return res, nil
}

// ExpandBox widens b to also cover o. This is pure bound-widening with no
// contiguity requirement, so it never fails; dimensions present in only one
// operand are adopted as-is
func (b TBox) ExpandBox(o TBox) TBox {
	var res TBox
	switch {
	case b.hasX && o.hasX:
		res.span = spanFromIv(ivWiden(b.span.iv(), o.span.iv(), cmpFloat))
		res.hasX = true
	case b.hasX:
		res.span, res.hasX = b.span, true
	case o.hasX:
		res.span, res.hasX = o.span, true
	}
	switch {
	case b.hasT && o.hasT:
		res.period = periodFromIv(ivWiden(b.period.iv(), o.period.iv(), cmpTime))
		res.hasT = true
	case b.hasT:
		res.period, res.hasT = b.period, true
	case o.hasT:
		res.period, res.hasT = o.period, true
	}
	return res
}

// ShiftTScale translates the temporal dimension by shift and/or rescales it
// to the given duration, anchoring the (possibly shifted) lower bound and
// preserving bound inclusivity. At least one argument must be non-nil, and
// a given duration must be positive; otherwise the call fails with
// ErrInvalidArgument
func (b TBox) ShiftTScale(shift, duration *time.Duration) (TBox, error) {
	if !b.hasT {
		return TBox{}, ErrDimensionAbsent
	}
	if shift == nil && duration == nil {
		return TBox{}, ErrInvalidArgument
	}
	p := b.period
	if shift != nil {
		p = p.Shift(*shift)
	}
	if duration != nil {
		var err error
		if p, err = p.Scale(*duration); err != nil {
			return TBox{}, err
		}
	}
	res := b
	res.period = p
	return res, nil
}
