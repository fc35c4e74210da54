package tbox

import (
	"strconv"
	"strings"
	"time"
)

// Literal grammar, following the canonical output format:
//
//	TBOX XT([vmin, vmax],[tmin, tmax])
//	TBOX X([vmin, vmax])
//	TBOX T([tmin, tmax])
//
// Each bracket may independently be '[' / ']' (inclusive) or '(' / ')'
// (exclusive). Timestamps are rendered in UTC with a zone offset; inputs
// without an offset are taken as UTC.

var timestampLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999-0700",
	"2006-01-02 15:04:05.999999999-07",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
	time.RFC3339Nano,
}

// ParseTBox parses a canonical box literal. Malformed input fails with a
// *ParseError; bound ordering and emptiness violations surface as wrapped
// ErrInvalidArgument or ErrEmptyInterval
func ParseTBox(input string) (TBox, error) {
	s := strings.TrimSpace(input)
	rest, ok := cutPrefixFold(s, "TBOX")
	if !ok {
		return TBox{}, parseErr(input, "missing TBOX prefix")
	}
	rest = strings.TrimSpace(rest)

	tag, body, found := strings.Cut(rest, "(")
	if !found {
		return TBox{}, parseErr(input, "missing dimension list")
	}
	if !strings.HasSuffix(body, ")") {
		return TBox{}, parseErr(input, "unterminated dimension list")
	}
	body = strings.TrimSuffix(body, ")")

	pairs := splitTopLevel(body)
	switch strings.ToUpper(strings.TrimSpace(tag)) {
	case "XT":
		if len(pairs) != 2 {
			return TBox{}, parseErr(input,
				"XT expects a value pair and a time pair")
		}
		span, err := parseSpanPair(input, pairs[0])
		if err != nil {
			return TBox{}, err
		}
		period, err := parsePeriodPair(input, pairs[1])
		if err != nil {
			return TBox{}, err
		}
		return NewXT(span, period), nil
	case "X":
		if len(pairs) != 1 {
			return TBox{}, parseErr(input, "X expects a single value pair")
		}
		span, err := parseSpanPair(input, pairs[0])
		if err != nil {
			return TBox{}, err
		}
		return NewX(span), nil
	case "T":
		if len(pairs) != 1 {
			return TBox{}, parseErr(input, "T expects a single time pair")
		}
		period, err := parsePeriodPair(input, pairs[0])
		if err != nil {
			return TBox{}, err
		}
		return NewT(period), nil
	default:
		return TBox{}, parseErr(input, "unknown dimension tag %q", tag)
	}
}

// ParseSpan parses a bare numeric pair literal such as "[0, 10)"
func ParseSpan(input string) (Span, error) {
	return parseSpanPair(input, input)
}

// ParsePeriod parses a bare time pair literal such as
// "[2020-06-01, 2020-06-05)"
func ParsePeriod(input string) (Period, error) {
	return parsePeriodPair(input, input)
}

// ParseTimestampSet parses a set literal such as "{2020-06-01, 2020-06-03}"
func ParseTimestampSet(input string) (TimestampSet, error) {
	body, err := setBody(input)
	if err != nil {
		return TimestampSet{}, err
	}
	var times []time.Time
	for _, part := range strings.Split(body, ",") {
		t, err := parseTimestamp(strings.TrimSpace(part))
		if err != nil {
			return TimestampSet{}, parseErr(input, "bad timestamp %q", part)
		}
		times = append(times, t)
	}
	return NewTimestampSet(times...)
}

// ParsePeriodSet parses a set literal such as
// "{[2020-06-01, 2020-06-02), [2020-06-03, 2020-06-04]}"
func ParsePeriodSet(input string) (PeriodSet, error) {
	body, err := setBody(input)
	if err != nil {
		return PeriodSet{}, err
	}
	var periods []Period
	for _, part := range splitTopLevel(body) {
		p, err := parsePeriodPair(input, part)
		if err != nil {
			return PeriodSet{}, err
		}
		periods = append(periods, p)
	}
	return NewPeriodSet(periods...)
}

func parseSpanPair(input, pair string) (Span, error) {
	lo, hi, loInc, hiInc, err := splitBoundPair(input, pair)
	if err != nil {
		return Span{}, err
	}
	lower, err := strconv.ParseFloat(lo, 64)
	if err != nil {
		return Span{}, parseErr(input, "bad numeric bound %q", lo)
	}
	upper, err := strconv.ParseFloat(hi, 64)
	if err != nil {
		return Span{}, parseErr(input, "bad numeric bound %q", hi)
	}
	s, err := NewSpan(lower, upper, loInc, hiInc)
	if err != nil {
		return Span{}, parseWrap(input, err)
	}
	return s, nil
}

func parsePeriodPair(input, pair string) (Period, error) {
	lo, hi, loInc, hiInc, err := splitBoundPair(input, pair)
	if err != nil {
		return Period{}, err
	}
	lower, err := parseTimestamp(lo)
	if err != nil {
		return Period{}, parseErr(input, "bad timestamp %q", lo)
	}
	upper, err := parseTimestamp(hi)
	if err != nil {
		return Period{}, parseErr(input, "bad timestamp %q", hi)
	}
	p, err := NewPeriod(lower, upper, loInc, hiInc)
	if err != nil {
		return Period{}, parseWrap(input, err)
	}
	return p, nil
}

func splitBoundPair(
	input, pair string,
) (lo, hi string, loInc, hiInc bool, err error) {
	s := strings.TrimSpace(pair)
	if len(s) < 2 {
		return "", "", false, false, parseErr(input, "bound pair too short")
	}
	switch s[0] {
	case '[':
		loInc = true
	case '(':
	default:
		return "", "", false, false,
			parseErr(input, "expected '[' or '(' at %q", s)
	}
	switch s[len(s)-1] {
	case ']':
		hiInc = true
	case ')':
	default:
		return "", "", false, false,
			parseErr(input, "expected ']' or ')' at %q", s)
	}
	inner := s[1 : len(s)-1]
	lo, hi, found := strings.Cut(inner, ",")
	if !found {
		return "", "", false, false,
			parseErr(input, "expected two bounds in %q", s)
	}
	return strings.TrimSpace(lo), strings.TrimSpace(hi), loInc, hiInc, nil
}

// splitTopLevel splits on commas outside any bracket pair
func splitTopLevel(s string) []string {
	var (
		res   []string
		depth int
		start int
	)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[', '(':
			depth++
		case ']', ')':
			depth--
		case ',':
			if depth == 0 {
				res = append(res, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	return append(res, strings.TrimSpace(s[start:]))
}

func setBody(input string) (string, error) {
	s := strings.TrimSpace(input)
	if !strings.HasPrefix(s, "{") || !strings.HasSuffix(s, "}") {
		return "", parseErr(input, "expected braced set literal")
	}
	body := strings.TrimSpace(s[1 : len(s)-1])
	if body == "" {
		return "", parseErr(input, "empty set literal")
	}
	return body, nil
}

func parseTimestamp(s string) (time.Time, error) {
	var err error
	for _, layout := range timestampLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, err
}

func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) < len(prefix) ||
		!strings.EqualFold(s[:len(prefix)], prefix) {
		return s, false
	}
	return s[len(prefix):], true
}
