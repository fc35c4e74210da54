package tbox

import "time"

type (
	// TBox is a two-dimensional bounding box combining an optional numeric
	// Span and an optional temporal Period. At least one dimension is
	// always present. TBox is an immutable value type: every operation
	// returns a new box, so instances may be freely shared across
	// goroutines without locking
	TBox struct {
		span   Span
		period Period
		hasX   bool
		hasT   bool
	}
)

// NewXT creates a TBox carrying both a numeric and a temporal dimension
func NewXT(s Span, p Period) TBox {
	return TBox{span: s, period: p, hasX: true, hasT: true}
}

// NewX creates a TBox carrying only a numeric dimension
func NewX(s Span) TBox {
	return TBox{span: s, hasX: true}
}

// NewT creates a TBox carrying only a temporal dimension
func NewT(p Period) TBox {
	return TBox{period: p, hasT: true}
}

// FromValue returns the TBox of a single numeric value
func FromValue(v float64) TBox {
	return NewX(SpanOf(v))
}

// FromSpan returns the TBox of a numeric interval
func FromSpan(s Span) TBox {
	return NewX(s)
}

// FromInstant returns the TBox of a single instant
func FromInstant(t time.Time) TBox {
	return NewT(PeriodOf(t))
}

// FromPeriod returns the TBox of a time interval
func FromPeriod(p Period) TBox {
	return NewT(p)
}

// FromTimestampSet returns the TBox spanning all instants in the set, with
// both temporal bounds inclusive
func FromTimestampSet(ts TimestampSet) TBox {
	return NewT(ts.ToPeriod())
}

// FromPeriodSet returns the TBox spanning all periods in the set
func FromPeriodSet(ps PeriodSet) TBox {
	return NewT(ps.ToPeriod())
}

// FromValueTime returns the TBox of a single value observed at a single
// instant, with all bounds inclusive
func FromValueTime(v float64, t time.Time) TBox {
	return NewXT(SpanOf(v), PeriodOf(t))
}

// FromTNumber returns the bounding box of a temporal-numeric value
func FromTNumber(n TNumber) TBox {
	return n.BoundingBox()
}

// HasX reports whether the box carries a numeric dimension
func (b TBox) HasX() bool { return b.hasX }

// HasT reports whether the box carries a temporal dimension
func (b TBox) HasT() bool { return b.hasT }

// Xmin returns the numeric lower bound. It fails with ErrDimensionAbsent
// when the box has no numeric dimension
func (b TBox) Xmin() (float64, error) {
	if !b.hasX {
		return 0, ErrDimensionAbsent
	}
	return b.span.lower, nil
}

// Xmax returns the numeric upper bound
func (b TBox) Xmax() (float64, error) {
	if !b.hasX {
		return 0, ErrDimensionAbsent
	}
	return b.span.upper, nil
}

// XminInc reports the inclusivity of the numeric lower bound
func (b TBox) XminInc() (bool, error) {
	if !b.hasX {
		return false, ErrDimensionAbsent
	}
	return b.span.lowerInc, nil
}

// XmaxInc reports the inclusivity of the numeric upper bound
func (b TBox) XmaxInc() (bool, error) {
	if !b.hasX {
		return false, ErrDimensionAbsent
	}
	return b.span.upperInc, nil
}

// Tmin returns the temporal lower bound. It fails with ErrDimensionAbsent
// when the box has no temporal dimension
func (b TBox) Tmin() (time.Time, error) {
	if !b.hasT {
		return time.Time{}, ErrDimensionAbsent
	}
	return b.period.lower, nil
}

// Tmax returns the temporal upper bound
func (b TBox) Tmax() (time.Time, error) {
	if !b.hasT {
		return time.Time{}, ErrDimensionAbsent
	}
	return b.period.upper, nil
}

// TminInc reports the inclusivity of the temporal lower bound
func (b TBox) TminInc() (bool, error) {
	if !b.hasT {
		return false, ErrDimensionAbsent
	}
	return b.period.lowerInc, nil
}

// TmaxInc reports the inclusivity of the temporal upper bound
func (b TBox) TmaxInc() (bool, error) {
	if !b.hasT {
		return false, ErrDimensionAbsent
	}
	return b.period.upperInc, nil
}

// ToSpan returns the numeric dimension as a Span
func (b TBox) ToSpan() (Span, error) {
	if !b.hasX {
		return Span{}, ErrDimensionAbsent
	}
	return b.span, nil
}

// ToPeriod returns the temporal dimension as a Period
func (b TBox) ToPeriod() (Period, error) {
	if !b.hasT {
		return Period{}, ErrDimensionAbsent
	}
	return b.period, nil
}

// BoundingBox returns the box itself, making TBox satisfy TNumber so boxes
// and temporal values flow through the same relation predicates
func (b TBox) BoundingBox() TBox {
	return b
}

// Equal reports whether both boxes carry the same dimensions with bounds
// equal in value and inclusivity
func (b TBox) Equal(o TBox) bool {
	if b.hasX != o.hasX || b.hasT != o.hasT {
		return false
	}
	if b.hasX && !b.span.Equal(o.span) {
		return false
	}
	if b.hasT && !b.period.Equal(o.period) {
		return false
	}
	return true
}

// Cmp imposes a total order over boxes: the temporal dimension compares
// first, then the numeric one. A missing dimension sorts before any present
// interval on that dimension
func (b TBox) Cmp(o TBox) int {
	if b.hasT != o.hasT {
		if o.hasT {
			return -1
		}
		return 1
	}
	if b.hasT {
		if n := b.period.Cmp(o.period); n != 0 {
			return n
		}
	}
	if b.hasX != o.hasX {
		if o.hasX {
			return -1
		}
		return 1
	}
	if b.hasX {
		return b.span.Cmp(o.span)
	}
	return 0
}

// Less reports whether b sorts strictly before o
func (b TBox) Less(o TBox) bool {
	return b.Cmp(o) < 0
}

func (b TBox) sharesDimension(o TBox) bool {
	return (b.hasX && o.hasX) || (b.hasT && o.hasT)
}
