package tbox

import (
	"math"
	"time"
)

type (
	// Tiler tiles boxes with a fixed size, duration, and origin, caching
	// the resulting grids. Because tile boundaries depend only on the
	// Tiler's configuration and the box itself, a cached Grid is always
	// current. Tiler is safe for concurrent use
	Tiler struct {
		cache    *lruCache[tileResult]
		start    time.Time
		size     float64
		duration time.Duration
		origin   float64
	}

	tileResult struct {
		grid *Grid
		err  error
	}

	// TileConfig carries the tiling parameters shared by a Tiler and the
	// tile index built on top of it
	TileConfig struct {
		Start    time.Time
		Size     float64
		Duration time.Duration
		Origin   float64
	}
)

// NewTiler creates a Tiler. Size and Duration must be positive; Origin must
// be finite. A zero Start aligns each box to its own temporal lower bound
func NewTiler(cfg TileConfig, cacheSize int) (*Tiler, error) {
	if cfg.Size <= 0 || math.IsNaN(cfg.Size) || math.IsInf(cfg.Size, 0) {
		return nil, ErrInvalidArgument
	}
	if cfg.Duration <= 0 || math.IsInf(cfg.Origin, 0) {
		return nil, ErrInvalidArgument
	}
	return &Tiler{
		size:     cfg.Size,
		duration: cfg.Duration,
		origin:   cfg.Origin,
		start:    cfg.Start,
		cache:    newLRUCache[tileResult](cacheSize),
	}, nil
}

// Tile returns the Grid for the box, computing it on first use. The box
// must carry both dimensions with finite numeric bounds. A tiling failure is
// deterministic for a given box and configuration, so caching the outcome
// either way is sound
func (t *Tiler) Tile(box TBox) (*Grid, error) {
	if !box.hasX || !box.hasT {
		return nil, ErrDimensionAbsent
	}
	key := string(Encode(box))
	res := t.cache.Get(key, func() tileResult {
		g, err := box.Tile(t.size, t.duration, t.origin, t.start)
		return tileResult{grid: g, err: err}
	})
	return res.grid, res.err
}
