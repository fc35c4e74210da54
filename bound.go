package tbox

import (
	"cmp"
	"time"
)

type (
	// Bound is one endpoint of an interval: a scalar value tagged as
	// inclusive or exclusive. Bounds are comparable only within the same
	// dimension
	Bound[T any] struct {
		Value     T
		Inclusive bool
	}

	iv[T any] struct {
		lower Bound[T]
		upper Bound[T]
	}

	cmpFunc[T any] func(T, T) int
)

var (
	cmpFloat cmpFunc[float64]   = cmp.Compare[float64]
	cmpTime  cmpFunc[time.Time] = time.Time.Compare
)

// validIv reports whether the interval holds at least one point. A pair with
// lower > upper is malformed; equal bounds require at least one inclusive side
func validIv[T any](x iv[T], c cmpFunc[T]) error {
	switch n := c(x.lower.Value, x.upper.Value); {
	case n > 0:
		return ErrInvalidArgument
	case n == 0 && !x.lower.Inclusive && !x.upper.Inclusive:
		return ErrEmptyInterval
	}
	return nil
}

// lowerReachesUpper reports whether a lower bound starts at or before an
// upper bound. Equal scalars touch only when both sides are inclusive
func lowerReachesUpper[T any](lo, up Bound[T], c cmpFunc[T]) bool {
	if n := c(lo.Value, up.Value); n != 0 {
		return n < 0
	}
	return lo.Inclusive && up.Inclusive
}

func ivOverlaps[T any](a, b iv[T], c cmpFunc[T]) bool {
	return lowerReachesUpper(a.lower, b.upper, c) &&
		lowerReachesUpper(b.lower, a.upper, c)
}

// ivInteriorOverlaps reports whether the open interiors intersect, ignoring
// inclusivity. A mere touch at a boundary value does not qualify
func ivInteriorOverlaps[T any](a, b iv[T], c cmpFunc[T]) bool {
	return c(a.lower.Value, b.upper.Value) < 0 &&
		c(b.lower.Value, a.upper.Value) < 0
}

func ivContains[T any](a, b iv[T], c cmpFunc[T]) bool {
	if n := c(a.lower.Value, b.lower.Value); n > 0 {
		return false
	} else if n == 0 && !a.lower.Inclusive && b.lower.Inclusive {
		return false
	}
	if n := c(a.upper.Value, b.upper.Value); n < 0 {
		return false
	} else if n == 0 && !a.upper.Inclusive && b.upper.Inclusive {
		return false
	}
	return true
}

// ivLeft reports whether a lies strictly left of b. At an equal boundary
// value the intervals are apart only if at least one adjoining bound is
// exclusive
func ivLeft[T any](a, b iv[T], c cmpFunc[T]) bool {
	if n := c(a.upper.Value, b.lower.Value); n != 0 {
		return n < 0
	}
	return !(a.upper.Inclusive && b.lower.Inclusive)
}

func ivOverOrLeft[T any](a, b iv[T], c cmpFunc[T]) bool {
	return c(a.upper.Value, b.lower.Value) <= 0
}

func ivOverOrRight[T any](a, b iv[T], c cmpFunc[T]) bool {
	return c(a.lower.Value, b.upper.Value) >= 0
}

// ivAdjacent reports whether the intervals share exactly one boundary value
// where one side includes the point and the other excludes it
func ivAdjacent[T any](a, b iv[T], c cmpFunc[T]) bool {
	if c(a.upper.Value, b.lower.Value) == 0 &&
		a.upper.Inclusive != b.lower.Inclusive {
		return true
	}
	return c(b.upper.Value, a.lower.Value) == 0 &&
		b.upper.Inclusive != a.lower.Inclusive
}

func ivSame[T any](a, b iv[T], c cmpFunc[T]) bool {
	return c(a.lower.Value, b.lower.Value) == 0 &&
		a.lower.Inclusive == b.lower.Inclusive &&
		c(a.upper.Value, b.upper.Value) == 0 &&
		a.upper.Inclusive == b.upper.Inclusive
}

// ivUnion merges two intervals into one. The result is well-formed only when
// the operands overlap or are adjacent; ok is false otherwise
func ivUnion[T any](a, b iv[T], c cmpFunc[T]) (iv[T], bool) {
	if !ivOverlaps(a, b, c) && !ivAdjacent(a, b, c) {
		return iv[T]{}, false
	}
	return ivWiden(a, b, c), true
}

// ivWiden returns the bounding interval of the operands without any
// contiguity requirement. Where both attain an extremal value, the more
// inclusive bound wins
func ivWiden[T any](a, b iv[T], c cmpFunc[T]) iv[T] {
	res := a
	if n := c(b.lower.Value, a.lower.Value); n < 0 {
		res.lower = b.lower
	} else if n == 0 {
		res.lower.Inclusive = a.lower.Inclusive || b.lower.Inclusive
	}
	if n := c(b.upper.Value, a.upper.Value); n > 0 {
		res.upper = b.upper
	} else if n == 0 {
		res.upper.Inclusive = a.upper.Inclusive || b.upper.Inclusive
	}
	return res
}

// ivIntersect narrows to the common sub-interval. ok is false when the
// operands share no point
func ivIntersect[T any](a, b iv[T], c cmpFunc[T]) (iv[T], bool) {
	res := a
	if n := c(b.lower.Value, a.lower.Value); n > 0 {
		res.lower = b.lower
	} else if n == 0 {
		res.lower.Inclusive = a.lower.Inclusive && b.lower.Inclusive
	}
	if n := c(b.upper.Value, a.upper.Value); n < 0 {
		res.upper = b.upper
	} else if n == 0 {
		res.upper.Inclusive = a.upper.Inclusive && b.upper.Inclusive
	}
	if n := c(res.lower.Value, res.upper.Value); n > 0 {
		return iv[T]{}, false
	} else if n == 0 && !(res.lower.Inclusive && res.upper.Inclusive) {
		return iv[T]{}, false
	}
	return res, true
}

// ivCmp orders intervals by lower bound, then upper. An inclusive lower
// bound starts before an exclusive one at the same value; an exclusive upper
// bound ends before an inclusive one
func ivCmp[T any](a, b iv[T], c cmpFunc[T]) int {
	if n := c(a.lower.Value, b.lower.Value); n != 0 {
		return n
	}
	if a.lower.Inclusive != b.lower.Inclusive {
		if a.lower.Inclusive {
			return -1
		}
		return 1
	}
	if n := c(a.upper.Value, b.upper.Value); n != 0 {
		return n
	}
	if a.upper.Inclusive != b.upper.Inclusive {
		if a.upper.Inclusive {
			return 1
		}
		return -1
	}
	return 0
}
