package tbox

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type (
	// Store persists boxes in Redis under prefixed keys, serialized through
	// the hex binary encoding. It is safe for concurrent use
	Store struct {
		client *redis.Client
		log    *zap.Logger
		prefix string
		config StoreConfig
	}
)

// NewStore connects to Redis and returns a Store bound to the Engine's
// lifetime. The connection is verified with a bounded ping
func (e *Engine) NewStore(cfg StoreConfig) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = DefaultConnectTimeout
	}
	pingCtx, cancel := context.WithTimeout(e.ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, err
	}

	return &Store{
		client: client,
		prefix: cfg.Prefix,
		log:    e.log,
		config: cfg,
	}, nil
}

// Close releases the Redis connection
func (s *Store) Close() error {
	return s.client.Close()
}

// Put stores the box under the given identifier, replacing any previous box
func (s *Store) Put(ctx context.Context, id string, box TBox) error {
	key := s.buildKey(id)
	if err := s.client.Set(ctx, key, EncodeHex(box), 0).Err(); err != nil {
		return err
	}
	s.log.Debug("stored box", zap.String("id", id), zap.Stringer("box", box))
	return nil
}

// Get retrieves the box stored under the given identifier. It fails with
// ErrBoxNotFound when no box is stored there
func (s *Store) Get(ctx context.Context, id string) (TBox, error) {
	val, err := s.client.Get(ctx, s.buildKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return TBox{}, ErrBoxNotFound
	}
	if err != nil {
		return TBox{}, err
	}
	return DecodeHex(val)
}

// Delete removes the box stored under the given identifier
func (s *Store) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, s.buildKey(id)).Err()
}

// List returns the identifiers of all stored boxes
func (s *Store) List(ctx context.Context) ([]string, error) {
	keys, err := s.client.Keys(ctx, s.prefix+":*").Result()
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(keys))
	for _, key := range keys {
		ids = append(ids, strings.TrimPrefix(key, s.prefix+":"))
	}
	return ids, nil
}

func (s *Store) buildKey(id string) string {
	return fmt.Sprintf("%s:%s", s.prefix, id)
}
