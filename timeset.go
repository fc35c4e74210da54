package tbox

import (
	"slices"
	"strings"
	"time"
)

type (
	// TimestampSet is a value-ordered, deduplicated collection of instants.
	// Insertion order is irrelevant; elements are held sorted and in UTC.
	// TimestampSet is an immutable value type
	TimestampSet struct {
		elements []time.Time
	}

	// PeriodSet is a value-ordered collection of disjoint Periods.
	// Overlapping or touching operands are merged on construction, so the
	// stored periods are pairwise separated. PeriodSet is an immutable
	// value type
	PeriodSet struct {
		periods []Period
	}
)

// NewTimestampSet creates a TimestampSet from the given instants. At least
// one instant is required; duplicates collapse
func NewTimestampSet(times ...time.Time) (TimestampSet, error) {
	if len(times) == 0 {
		return TimestampSet{}, ErrInvalidArgument
	}
	elements := make([]time.Time, len(times))
	for i, t := range times {
		elements[i] = t.UTC()
	}
	slices.SortFunc(elements, time.Time.Compare)
	elements = slices.CompactFunc(elements, time.Time.Equal)
	return TimestampSet{elements: elements}, nil
}

// Len returns the number of distinct instants in the set
func (ts TimestampSet) Len() int {
	return len(ts.elements)
}

// Elements returns the instants in increasing order
func (ts TimestampSet) Elements() []time.Time {
	return slices.Clone(ts.elements)
}

// StartElement returns the earliest instant
func (ts TimestampSet) StartElement() time.Time {
	return ts.elements[0]
}

// EndElement returns the latest instant
func (ts TimestampSet) EndElement() time.Time {
	return ts.elements[len(ts.elements)-1]
}

// ElementN returns the n-th instant in increasing order. It fails with
// ErrInvalidArgument when n is out of range
func (ts TimestampSet) ElementN(n int) (time.Time, error) {
	if n < 0 || n >= len(ts.elements) {
		return time.Time{}, ErrInvalidArgument
	}
	return ts.elements[n], nil
}

// Duration returns the time elapsed between the first and last instants
func (ts TimestampSet) Duration() time.Duration {
	return ts.EndElement().Sub(ts.StartElement())
}

// ToPeriod returns the bounding Period of the set, both bounds inclusive
func (ts TimestampSet) ToPeriod() Period {
	return Period{
		lower:    ts.StartElement(),
		upper:    ts.EndElement(),
		lowerInc: true,
		upperInc: true,
	}
}

// ToPeriodSet converts each instant into a degenerate Period
func (ts TimestampSet) ToPeriodSet() PeriodSet {
	periods := make([]Period, len(ts.elements))
	for i, t := range ts.elements {
		periods[i] = PeriodOf(t)
	}
	return PeriodSet{periods: periods}
}

// ContainsTimestamp reports whether the instant is a member of the set
func (ts TimestampSet) ContainsTimestamp(t time.Time) bool {
	_, found := slices.BinarySearchFunc(ts.elements, t.UTC(), time.Time.Compare)
	return found
}

// Before reports whether every element precedes the Period
func (ts TimestampSet) Before(p Period) bool {
	return ts.ToPeriod().Before(p)
}

// After reports whether every element follows the Period
func (ts TimestampSet) After(p Period) bool {
	return ts.ToPeriod().After(p)
}

// OverOrBefore reports whether no element lies past the Period's start
func (ts TimestampSet) OverOrBefore(p Period) bool {
	return ts.ToPeriod().OverOrBefore(p)
}

// OverOrAfter reports whether no element lies before the Period's end
func (ts TimestampSet) OverOrAfter(p Period) bool {
	return ts.ToPeriod().OverOrAfter(p)
}

// Overlaps reports whether any element falls within the Period
func (ts TimestampSet) Overlaps(p Period) bool {
	for _, t := range ts.elements {
		if p.ContainsTimestamp(t) {
			return true
		}
	}
	return false
}

// Distance returns the gap between the set's extent and the Period
func (ts TimestampSet) Distance(p Period) time.Duration {
	return ts.ToPeriod().Distance(p)
}

// String renders the set as a braced, comma-separated list of timestamps
func (ts TimestampSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, t := range ts.elements {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(formatTimestamp(t))
	}
	sb.WriteByte('}')
	return sb.String()
}

// NewPeriodSet creates a PeriodSet from the given Periods. At least one
// Period is required; overlapping or touching operands merge into one
func NewPeriodSet(periods ...Period) (PeriodSet, error) {
	if len(periods) == 0 {
		return PeriodSet{}, ErrInvalidArgument
	}
	sorted := slices.Clone(periods)
	slices.SortFunc(sorted, Period.Cmp)

	merged := []Period{sorted[0]}
	for _, p := range sorted[1:] {
		last := &merged[len(merged)-1]
		if last.Overlaps(p) || last.Adjacent(p) {
			u, err := last.Union(p)
			if err != nil {
				return PeriodSet{}, err
			}
			*last = u
			continue
		}
		merged = append(merged, p)
	}
	return PeriodSet{periods: merged}, nil
}

// Len returns the number of disjoint Periods in the set
func (ps PeriodSet) Len() int {
	return len(ps.periods)
}

// Periods returns the disjoint Periods in increasing order
func (ps PeriodSet) Periods() []Period {
	return slices.Clone(ps.periods)
}

// StartPeriod returns the earliest Period
func (ps PeriodSet) StartPeriod() Period {
	return ps.periods[0]
}

// EndPeriod returns the latest Period
func (ps PeriodSet) EndPeriod() Period {
	return ps.periods[len(ps.periods)-1]
}

// PeriodN returns the n-th Period in increasing order. It fails with
// ErrInvalidArgument when n is out of range
func (ps PeriodSet) PeriodN(n int) (Period, error) {
	if n < 0 || n >= len(ps.periods) {
		return Period{}, ErrInvalidArgument
	}
	return ps.periods[n], nil
}

// Duration returns the summed extent of the member Periods, ignoring gaps
func (ps PeriodSet) Duration() time.Duration {
	var total time.Duration
	for _, p := range ps.periods {
		total += p.Duration()
	}
	return total
}

// ToPeriod returns the bounding Period of the set, spanning any gaps
func (ps PeriodSet) ToPeriod() Period {
	first := ps.StartPeriod()
	last := ps.EndPeriod()
	return Period{
		lower:    first.lower,
		upper:    last.upper,
		lowerInc: first.lowerInc,
		upperInc: last.upperInc,
	}
}

// ContainsTimestamp reports whether the instant falls within any member
func (ps PeriodSet) ContainsTimestamp(t time.Time) bool {
	for _, p := range ps.periods {
		if p.ContainsTimestamp(t) {
			return true
		}
	}
	return false
}

// Overlaps reports whether any member shares an instant with the Period
func (ps PeriodSet) Overlaps(o Period) bool {
	for _, p := range ps.periods {
		if p.Overlaps(o) {
			return true
		}
	}
	return false
}

// Before reports whether every member precedes the Period
func (ps PeriodSet) Before(p Period) bool {
	return ps.EndPeriod().Before(p)
}

// After reports whether every member follows the Period
func (ps PeriodSet) After(p Period) bool {
	return ps.StartPeriod().After(p)
}

// Distance returns the gap between the set's extent and the Period
func (ps PeriodSet) Distance(p Period) time.Duration {
	return ps.ToPeriod().Distance(p)
}

// String renders the set as a braced, comma-separated list of periods
func (ps PeriodSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, p := range ps.periods {
		if i > 0 {
			sb.WriteString(", ")
		}
		writePeriod(&sb, p)
	}
	sb.WriteByte('}')
	return sb.String()
}
