package tbox

import (
	"fmt"
	"strconv"

	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
)

type (
	// BoltIndex is a durable tile index backed by bbolt. Each box is filed
	// under every tile of its grid, so a query only has to visit the tiles
	// covering the query box. Because tiles are aligned to a fixed origin,
	// the same tile keys come out of every box tiled with the same
	// configuration, which is what makes them usable as partition keys
	BoltIndex struct {
		db    *bolt.DB
		tiler *Tiler
		log   *zap.Logger
	}
)

var bucketTiles = []byte("tiles")

// OpenIndex opens (or creates) the index file at cfg.Path. The tile
// configuration must name a fixed temporal start so tile keys stay stable
// across boxes; a zero start is rejected with ErrInvalidArgument
func (e *Engine) OpenIndex(cfg IndexConfig) (*BoltIndex, error) {
	if cfg.Tile.Start.IsZero() {
		return nil, ErrInvalidArgument
	}
	tiler, err := NewTiler(cfg.Tile, cfg.CacheSize)
	if err != nil {
		return nil, err
	}

	db, err := bolt.Open(cfg.Path, 0o600, nil)
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketTiles)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &BoltIndex{db: db, tiler: tiler, log: e.log}, nil
}

// Close releases the underlying database file
func (ix *BoltIndex) Close() error {
	return ix.db.Close()
}

// Insert files the box under every tile its grid produces. The box must
// carry both dimensions
func (ix *BoltIndex) Insert(id string, box TBox) error {
	grid, err := ix.tiler.Tile(box)
	if err != nil {
		return err
	}
	encoded := Encode(box)

	err = ix.db.Update(func(tx *bolt.Tx) error {
		root := tx.Bucket(bucketTiles)
		for _, tile := range grid.Flat() {
			b, err := root.CreateBucketIfNotExists(tileKey(tile))
			if err != nil {
				return err
			}
			if err := b.Put([]byte(id), encoded); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	ix.log.Debug("indexed box",
		zap.String("id", id),
		zap.Int("tiles", grid.Rows()*grid.Columns()))
	return nil
}

// Remove unfiles the box from every tile its grid produces. Removing an
// identifier that was never inserted is not an error
func (ix *BoltIndex) Remove(id string, box TBox) error {
	grid, err := ix.tiler.Tile(box)
	if err != nil {
		return err
	}
	return ix.db.Update(func(tx *bolt.Tx) error {
		root := tx.Bucket(bucketTiles)
		for _, tile := range grid.Flat() {
			b := root.Bucket(tileKey(tile))
			if b == nil {
				continue
			}
			if err := b.Delete([]byte(id)); err != nil {
				return err
			}
		}
		return nil
	})
}

// Query returns the identifiers of all indexed boxes that overlap the query
// box. Candidates come from the tiles covering the query; each candidate's
// stored bounds are then verified, so tile overshoot never yields false
// positives
func (ix *BoltIndex) Query(box TBox) ([]string, error) {
	grid, err := ix.tiler.Tile(box)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	var ids []string
	err = ix.db.View(func(tx *bolt.Tx) error {
		root := tx.Bucket(bucketTiles)
		for _, tile := range grid.Flat() {
			b := root.Bucket(tileKey(tile))
			if b == nil {
				continue
			}
			err := b.ForEach(func(k, v []byte) error {
				id := string(k)
				if seen[id] {
					return nil
				}
				seen[id] = true
				candidate, err := Decode(v)
				if err != nil {
					return fmt.Errorf("index entry %q: %w", id, err)
				}
				if over, err := box.Overlaps(candidate); err != nil {
					return err
				} else if over {
					ids = append(ids, id)
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// tileKey derives a stable byte key from a tile's lower corner. Hex float
// formatting keeps the value component exact
func tileKey(tile TBox) []byte {
	key := strconv.FormatFloat(tile.span.lower, 'x', -1, 64) + "|" +
		strconv.FormatInt(tile.period.lower.UnixNano(), 10)
	return []byte(key)
}
