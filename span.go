package tbox

import "math"

type (
	// Span is a numeric interval whose bounds are independently inclusive
	// or exclusive. The zero value is not a valid Span; use NewSpan or
	// SpanOf. Spans are immutable value types
	Span struct {
		lower    float64
		upper    float64
		lowerInc bool
		upperInc bool
	}
)

// NewSpan creates a Span from its bounds. It fails with ErrInvalidArgument
// when lower > upper and with ErrEmptyInterval when the bounds are equal and
// both exclusive
func NewSpan(lower, upper float64, lowerInc, upperInc bool) (Span, error) {
	s := Span{
		lower:    lower,
		upper:    upper,
		lowerInc: lowerInc,
		upperInc: upperInc,
	}
	if err := validIv(s.iv(), cmpFloat); err != nil {
		return Span{}, err
	}
	return s, nil
}

// SpanOf returns the degenerate Span containing only the given value
func SpanOf(v float64) Span {
	return Span{lower: v, upper: v, lowerInc: true, upperInc: true}
}

func (s Span) Lower() float64 { return s.lower }
func (s Span) Upper() float64 { return s.upper }
func (s Span) LowerInc() bool { return s.lowerInc }
func (s Span) UpperInc() bool { return s.upperInc }

// Width returns the scalar extent of the Span
func (s Span) Width() float64 {
	return s.upper - s.lower
}

// Equal reports whether both bounds match in value and inclusivity
func (s Span) Equal(o Span) bool {
	return ivSame(s.iv(), o.iv(), cmpFloat)
}

// Cmp orders Spans by lower bound, then upper bound
func (s Span) Cmp(o Span) int {
	return ivCmp(s.iv(), o.iv(), cmpFloat)
}

// Overlaps reports whether the Spans share at least one value. Touching at
// an equal boundary counts only when both adjoining bounds are inclusive
func (s Span) Overlaps(o Span) bool {
	return ivOverlaps(s.iv(), o.iv(), cmpFloat)
}

// Contains reports whether o lies entirely within s
func (s Span) Contains(o Span) bool {
	return ivContains(s.iv(), o.iv(), cmpFloat)
}

// ContainedIn reports whether s lies entirely within o
func (s Span) ContainedIn(o Span) bool {
	return o.Contains(s)
}

// ContainsValue reports whether the value lies within the Span
func (s Span) ContainsValue(v float64) bool {
	return s.Contains(SpanOf(v))
}

// Left reports whether s lies strictly left of o
func (s Span) Left(o Span) bool {
	return ivLeft(s.iv(), o.iv(), cmpFloat)
}

// Right reports whether s lies strictly right of o
func (s Span) Right(o Span) bool {
	return ivLeft(o.iv(), s.iv(), cmpFloat)
}

// OverOrLeft reports whether s extends no further right than o's start
func (s Span) OverOrLeft(o Span) bool {
	return ivOverOrLeft(s.iv(), o.iv(), cmpFloat)
}

// OverOrRight reports whether s starts no further left than o's end
func (s Span) OverOrRight(o Span) bool {
	return ivOverOrRight(s.iv(), o.iv(), cmpFloat)
}

// Adjacent reports whether the Spans touch at exactly one boundary value
// that only one of them includes
func (s Span) Adjacent(o Span) bool {
	return ivAdjacent(s.iv(), o.iv(), cmpFloat)
}

// Union merges two Spans. It fails with ErrNonContiguous when the operands
// neither overlap nor touch
func (s Span) Union(o Span) (Span, error) {
	u, ok := ivUnion(s.iv(), o.iv(), cmpFloat)
	if !ok {
		return Span{}, ErrNonContiguous
	}
	return spanFromIv(u), nil
}

// Intersection narrows to the common sub-span. The second result is false
// when the operands share no value; that is not an error
func (s Span) Intersection(o Span) (Span, bool) {
	x, ok := ivIntersect(s.iv(), o.iv(), cmpFloat)
	if !ok {
		return Span{}, false
	}
	return spanFromIv(x), true
}

// Expand grows the Span symmetrically by d on both sides. A negative d
// shrinks it and fails if the result would be empty
func (s Span) Expand(d float64) (Span, error) {
	return NewSpan(s.lower-d, s.upper+d, s.lowerInc, s.upperInc)
}

// Distance returns the gap between the Spans, or 0 when they overlap or
// touch
func (s Span) Distance(o Span) float64 {
	return max(0, o.lower-s.upper, s.lower-o.upper)
}

func (s Span) interiorOverlaps(o Span) bool {
	return ivInteriorOverlaps(s.iv(), o.iv(), cmpFloat)
}

func (s Span) isFinite() bool {
	return !math.IsInf(s.lower, 0) && !math.IsInf(s.upper, 0)
}

func (s Span) iv() iv[float64] {
	return iv[float64]{
		lower: Bound[float64]{Value: s.lower, Inclusive: s.lowerInc},
		upper: Bound[float64]{Value: s.upper, Inclusive: s.upperInc},
	}
}

func spanFromIv(x iv[float64]) Span {
	return Span{
		lower:    x.lower.Value,
		upper:    x.upper.Value,
		lowerInc: x.lower.Inclusive,
		upperInc: x.upper.Inclusive,
	}
}
