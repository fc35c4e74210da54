package tbox

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
	"time"
)

// The binary encoding is a fixed little-endian record: a one-byte endianness
// marker, a one-byte flag set carrying dimension presence and bound
// inclusivity, then the raw scalars for each present dimension. Numeric
// bounds are IEEE 754 doubles; temporal bounds are Unix seconds plus a
// nanosecond offset, so the full time.Time range survives rather than just
// the window a nanosecond count fits into. Decode(Encode(box)) reproduces
// the box exactly.

const (
	wkbMarkerLE = 0x01

	wkbHasX    = 0x01
	wkbHasT    = 0x02
	wkbXminInc = 0x04
	wkbXmaxInc = 0x08
	wkbTminInc = 0x10
	wkbTmaxInc = 0x20

	wkbHeaderSize   = 2
	wkbValueDimSize = 16
	wkbTimeDimSize  = 24
)

// Encode serializes the box into its binary form
func Encode(b TBox) []byte {
	size := wkbHeaderSize
	var flags byte
	if b.hasX {
		size += wkbValueDimSize
		flags |= wkbHasX
		if b.span.lowerInc {
			flags |= wkbXminInc
		}
		if b.span.upperInc {
			flags |= wkbXmaxInc
		}
	}
	if b.hasT {
		size += wkbTimeDimSize
		flags |= wkbHasT
		if b.period.lowerInc {
			flags |= wkbTminInc
		}
		if b.period.upperInc {
			flags |= wkbTmaxInc
		}
	}

	buf := make([]byte, wkbHeaderSize, size)
	buf[0] = wkbMarkerLE
	buf[1] = flags
	if b.hasX {
		buf = binary.LittleEndian.AppendUint64(
			buf, math.Float64bits(b.span.lower))
		buf = binary.LittleEndian.AppendUint64(
			buf, math.Float64bits(b.span.upper))
	}
	if b.hasT {
		buf = appendTimestamp(buf, b.period.lower)
		buf = appendTimestamp(buf, b.period.upper)
	}
	return buf
}

func appendTimestamp(buf []byte, t time.Time) []byte {
	buf = binary.LittleEndian.AppendUint64(buf, uint64(t.Unix()))
	return binary.LittleEndian.AppendUint32(buf, uint32(t.Nanosecond()))
}

// Decode reconstructs a box from its binary form. It fails with a wrapped
// ErrDecode on a bad marker, unknown flags, truncated input, or bounds that
// violate the interval invariants
func Decode(data []byte) (TBox, error) {
	if len(data) < wkbHeaderSize {
		return TBox{}, fmt.Errorf("%w: truncated input", ErrDecode)
	}
	if data[0] != wkbMarkerLE {
		return TBox{}, fmt.Errorf(
			"%w: unknown endianness marker %#02x", ErrDecode, data[0])
	}
	flags := data[1]
	if flags&^(wkbHasX|wkbHasT|wkbXminInc|wkbXmaxInc|wkbTminInc|wkbTmaxInc) != 0 {
		return TBox{}, fmt.Errorf("%w: unknown flags %#02x", ErrDecode, flags)
	}
	hasX := flags&wkbHasX != 0
	hasT := flags&wkbHasT != 0
	if !hasX && !hasT {
		return TBox{}, fmt.Errorf("%w: box has no dimensions", ErrDecode)
	}

	size := wkbHeaderSize
	if hasX {
		size += wkbValueDimSize
	}
	if hasT {
		size += wkbTimeDimSize
	}
	if len(data) != size {
		return TBox{}, fmt.Errorf(
			"%w: expected %d bytes, got %d", ErrDecode, size, len(data))
	}

	var res TBox
	rest := data[wkbHeaderSize:]
	if hasX {
		s, err := NewSpan(
			math.Float64frombits(binary.LittleEndian.Uint64(rest)),
			math.Float64frombits(binary.LittleEndian.Uint64(rest[8:])),
			flags&wkbXminInc != 0,
			flags&wkbXmaxInc != 0,
		)
		if err != nil {
			return TBox{}, fmt.Errorf("%w: value bounds: %w", ErrDecode, err)
		}
		res.span, res.hasX = s, true
		rest = rest[wkbValueDimSize:]
	}
	if hasT {
		lower, err := decodeTimestamp(rest)
		if err != nil {
			return TBox{}, err
		}
		upper, err := decodeTimestamp(rest[12:])
		if err != nil {
			return TBox{}, err
		}
		p, err := NewPeriod(lower, upper,
			flags&wkbTminInc != 0,
			flags&wkbTmaxInc != 0,
		)
		if err != nil {
			return TBox{}, fmt.Errorf("%w: time bounds: %w", ErrDecode, err)
		}
		res.period, res.hasT = p, true
	}
	return res, nil
}

func decodeTimestamp(data []byte) (time.Time, error) {
	sec := int64(binary.LittleEndian.Uint64(data))
	nsec := binary.LittleEndian.Uint32(data[8:])
	if nsec >= 1_000_000_000 {
		return time.Time{}, fmt.Errorf(
			"%w: nanosecond offset %d out of range", ErrDecode, nsec)
	}
	return time.Unix(sec, int64(nsec)).UTC(), nil
}

// EncodeHex returns the binary encoding as hex-encoded ASCII
func EncodeHex(b TBox) string {
	return hex.EncodeToString(Encode(b))
}

// DecodeHex reconstructs a box from hex-encoded ASCII in either case
func DecodeHex(s string) (TBox, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return TBox{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return Decode(data)
}
