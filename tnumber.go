package tbox

import (
	"math"
	"slices"
	"time"
)

type (
	// TNumber is any temporal-numeric value that can report its bounding
	// box. The relation predicates accept a TNumber so a box can be
	// compared against another box or against a temporal value through the
	// same call, with dispatch resolved by the interface rather than by
	// runtime type inspection
	TNumber interface {
		BoundingBox() TBox
	}

	// TFloatInst is a single float value observed at a single instant
	TFloatInst struct {
		Timestamp time.Time
		Value     float64
	}

	// TFloatSeq is a sequence of observations at strictly increasing
	// instants, with configurable inclusivity at its temporal ends
	TFloatSeq struct {
		instants []TFloatInst
		lowerInc bool
		upperInc bool
	}
)

// NewTFloatInst creates an instant observation
func NewTFloatInst(v float64, t time.Time) TFloatInst {
	return TFloatInst{Value: v, Timestamp: t.UTC()}
}

// BoundingBox returns the degenerate box of the observation
func (i TFloatInst) BoundingBox() TBox {
	return FromValueTime(i.Value, i.Timestamp)
}

// NewTFloatSeq creates a sequence from its observations, which must be
// non-empty and strictly increasing in time. A single-instant sequence must
// include both of its temporal ends
func NewTFloatSeq(
	instants []TFloatInst, lowerInc, upperInc bool,
) (TFloatSeq, error) {
	if len(instants) == 0 {
		return TFloatSeq{}, ErrInvalidArgument
	}
	res := make([]TFloatInst, len(instants))
	for i, inst := range instants {
		res[i] = TFloatInst{
			Value:     inst.Value,
			Timestamp: inst.Timestamp.UTC(),
		}
		if i > 0 && !res[i-1].Timestamp.Before(res[i].Timestamp) {
			return TFloatSeq{}, ErrInvalidArgument
		}
	}
	if len(res) == 1 && !(lowerInc && upperInc) {
		return TFloatSeq{}, ErrEmptyInterval
	}
	return TFloatSeq{instants: res, lowerInc: lowerInc, upperInc: upperInc}, nil
}

// Instants returns the observations in time order
func (s TFloatSeq) Instants() []TFloatInst {
	return slices.Clone(s.instants)
}

// StartInstant returns the earliest observation
func (s TFloatSeq) StartInstant() TFloatInst {
	return s.instants[0]
}

// EndInstant returns the latest observation
func (s TFloatSeq) EndInstant() TFloatInst {
	return s.instants[len(s.instants)-1]
}

// MinValue returns the smallest observed value
func (s TFloatSeq) MinValue() float64 {
	res := math.Inf(1)
	for _, inst := range s.instants {
		res = min(res, inst.Value)
	}
	return res
}

// MaxValue returns the largest observed value
func (s TFloatSeq) MaxValue() float64 {
	res := math.Inf(-1)
	for _, inst := range s.instants {
		res = max(res, inst.Value)
	}
	return res
}

// BoundingBox returns the envelope of the sequence: the observed value
// range with inclusive bounds, and the time extent carrying the sequence's
// own end inclusivity
func (s TFloatSeq) BoundingBox() TBox {
	return TBox{
		span: Span{
			lower:    s.MinValue(),
			upper:    s.MaxValue(),
			lowerInc: true,
			upperInc: true,
		},
		period: Period{
			lower:    s.StartInstant().Timestamp,
			upper:    s.EndInstant().Timestamp,
			lowerInc: s.lowerInc,
			upperInc: s.upperInc,
		},
		hasX: true,
		hasT: true,
	}
}
