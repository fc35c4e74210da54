package tbox

import (
	"math"
	"time"
)

type (
	// Grid is the result of tiling a TBox: an immutable two-dimensional
	// array of disjoint half-open tiles. Rows advance with time, columns
	// with value. A box carrying a single dimension produces a single row
	// (numeric only) or a single column (temporal only)
	Grid struct {
		cells [][]TBox
	}
)

// Tile partitions the box into a Grid of equal-sized sub-boxes aligned to
// origin + k*size on the numeric dimension and start + k*duration on the
// temporal one, so tile boundaries are stable across boxes tiled with the
// same origin. A zero start aligns to the box's own temporal lower bound.
// Tiles are lower-inclusive and upper-exclusive on both dimensions
// regardless of the source box's own inclusivity. Size and duration must be
// positive for their respective present dimensions, and the box's numeric
// bounds must be finite; otherwise the call fails with ErrInvalidArgument
func (b TBox) Tile(
	size float64, duration time.Duration, origin float64, start time.Time,
) (*Grid, error) {
	var (
		xStart  float64
		tStart  time.Time
		columns = 1
		rows    = 1
	)
	if b.hasX {
		if size <= 0 || math.IsInf(size, 0) || math.IsNaN(size) {
			return nil, ErrInvalidArgument
		}
		if !b.span.isFinite() || math.IsInf(origin, 0) {
			return nil, ErrInvalidArgument
		}
		xStart = origin + math.Floor((b.span.lower-origin)/size)*size
		columns = valueTileCount(b.span, xStart, size)
	}
	if b.hasT {
		if duration <= 0 {
			return nil, ErrInvalidArgument
		}
		if start.IsZero() {
			start = b.period.lower
		}
		tStart = alignTime(b.period.lower, start, duration)
		rows = timeTileCount(b.period, tStart, duration)
	}

	cells := make([][]TBox, rows)
	for r := 0; r < rows; r++ {
		row := make([]TBox, columns)
		for c := 0; c < columns; c++ {
			var cell TBox
			if b.hasX {
				cell.span = Span{
					lower:    xStart + float64(c)*size,
					upper:    xStart + float64(c+1)*size,
					lowerInc: true,
				}
				cell.hasX = true
			}
			if b.hasT {
				cell.period = Period{
					lower:    tStart.Add(time.Duration(r) * duration),
					upper:    tStart.Add(time.Duration(r+1) * duration),
					lowerInc: true,
				}
				cell.hasT = true
			}
			row[c] = cell
		}
		cells[r] = row
	}
	return &Grid{cells: cells}, nil
}

// TileFlat returns the same tiles as Tile in a single row-major sequence
func (b TBox) TileFlat(
	size float64, duration time.Duration, origin float64, start time.Time,
) ([]TBox, error) {
	g, err := b.Tile(size, duration, origin, start)
	if err != nil {
		return nil, err
	}
	return g.Flat(), nil
}

// Rows returns the number of rows in the Grid
func (g *Grid) Rows() int {
	return len(g.cells)
}

// Columns returns the number of columns in the Grid
func (g *Grid) Columns() int {
	if len(g.cells) == 0 {
		return 0
	}
	return len(g.cells[0])
}

// At returns the tile at the given row and column
func (g *Grid) At(row, col int) TBox {
	return g.cells[row][col]
}

// Flat returns all tiles in row-major order
func (g *Grid) Flat() []TBox {
	res := make([]TBox, 0, g.Rows()*g.Columns())
	for _, row := range g.cells {
		res = append(res, row...)
	}
	return res
}

// valueTileCount returns how many half-open tiles of the given size are
// needed from xStart to cover the span. An inclusive upper bound sitting
// exactly on a tile boundary needs the next tile to be covered
func valueTileCount(s Span, xStart, size float64) int {
	n := int(math.Ceil((s.upper - xStart) / size))
	if s.upperInc && xStart+float64(n)*size == s.upper {
		n++
	}
	return max(n, 1)
}

func timeTileCount(p Period, tStart time.Time, d time.Duration) int {
	n := int(ceilDiv(int64(p.upper.Sub(tStart)), int64(d)))
	if p.upperInc && tStart.Add(time.Duration(n)*d).Equal(p.upper) {
		n++
	}
	return max(n, 1)
}

// alignTime returns the greatest start + k*d that is at or before t
func alignTime(t, start time.Time, d time.Duration) time.Time {
	return start.Add(time.Duration(floorDiv(int64(t.Sub(start)), int64(d))) * d)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func ceilDiv(a, b int64) int64 {
	return -floorDiv(-a, b)
}
