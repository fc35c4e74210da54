package tbox

import (
	"strconv"
	"strings"
	"time"
)

// DefaultOutputDecimals is the decimal precision used by the String methods.
// A negative precision selects the shortest rendering that parses back to the
// exact same value, which is what the parse/format round-trip requires
const DefaultOutputDecimals = -1

// timestampLayout renders instants in UTC with an explicit zone offset.
// Fractional seconds appear only when present, so formatting and parsing
// round-trip exactly
const timestampLayout = "2006-01-02 15:04:05.999999999-07"

// FormatTBox renders the box as a canonical literal, limiting value bounds
// to maxDecimals decimal digits. A negative maxDecimals renders each bound
// with the fewest digits that still reproduce it exactly
func FormatTBox(b TBox, maxDecimals int) string {
	var sb strings.Builder
	sb.WriteString("TBOX ")
	switch {
	case b.hasX && b.hasT:
		sb.WriteString("XT(")
		writeSpan(&sb, b.span, maxDecimals)
		sb.WriteByte(',')
		writePeriod(&sb, b.period)
	case b.hasX:
		sb.WriteString("X(")
		writeSpan(&sb, b.span, maxDecimals)
	default:
		sb.WriteString("T(")
		writePeriod(&sb, b.period)
	}
	sb.WriteByte(')')
	return sb.String()
}

// String renders the box with the default output precision
func (b TBox) String() string {
	return FormatTBox(b, DefaultOutputDecimals)
}

// String renders the Span as a bracketed pair, the bracket shape encoding
// inclusivity
func (s Span) String() string {
	var sb strings.Builder
	writeSpan(&sb, s, DefaultOutputDecimals)
	return sb.String()
}

// String renders the Period as a bracketed pair of timestamps
func (p Period) String() string {
	var sb strings.Builder
	writePeriod(&sb, p)
	return sb.String()
}

func writeSpan(sb *strings.Builder, s Span, maxDecimals int) {
	sb.WriteByte(openBracket(s.lowerInc))
	sb.WriteString(formatFloat(s.lower, maxDecimals))
	sb.WriteString(", ")
	sb.WriteString(formatFloat(s.upper, maxDecimals))
	sb.WriteByte(closeBracket(s.upperInc))
}

func writePeriod(sb *strings.Builder, p Period) {
	sb.WriteByte(openBracket(p.lowerInc))
	sb.WriteString(formatTimestamp(p.lower))
	sb.WriteString(", ")
	sb.WriteString(formatTimestamp(p.upper))
	sb.WriteByte(closeBracket(p.upperInc))
}

func openBracket(inclusive bool) byte {
	if inclusive {
		return '['
	}
	return '('
}

func closeBracket(inclusive bool) byte {
	if inclusive {
		return ']'
	}
	return ')'
}

func formatFloat(v float64, maxDecimals int) string {
	if maxDecimals < 0 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	res := strconv.FormatFloat(v, 'f', maxDecimals, 64)
	if strings.ContainsRune(res, '.') {
		res = strings.TrimRight(res, "0")
		res = strings.TrimSuffix(res, ".")
	}
	return res
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}
