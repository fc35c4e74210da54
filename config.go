package tbox

import (
	"time"

	"go.uber.org/zap"
)

type (
	Config struct {
		Logger         *zap.Logger
		OutputDecimals int
		CacheSize      int
	}

	StoreConfig struct {
		Addr           string
		Password       string
		Prefix         string
		DB             int
		ConnectTimeout time.Duration
	}

	IndexConfig struct {
		Path      string
		Tile      TileConfig
		CacheSize int
	}
)

const (
	DefaultRedisEndpoint  = "localhost:6379"
	DefaultRedisPrefix    = "tbox"
	DefaultRedisDB        = 0
	DefaultConnectTimeout = 5 * time.Second
	DefaultTileSize       = 10.0
	DefaultTileDuration   = 24 * time.Hour
)

func DefaultConfig() Config {
	return Config{
		OutputDecimals: DefaultOutputDecimals,
		CacheSize:      DefaultCacheSize,
	}
}

func DefaultStoreConfig() StoreConfig {
	return StoreConfig{
		Addr:           DefaultRedisEndpoint,
		Password:       "",
		DB:             DefaultRedisDB,
		Prefix:         DefaultRedisPrefix,
		ConnectTimeout: DefaultConnectTimeout,
	}
}

func DefaultIndexConfig(path string) IndexConfig {
	return IndexConfig{
		Path: path,
		Tile: TileConfig{
			Size:     DefaultTileSize,
			Duration: DefaultTileDuration,
			Origin:   0,
			Start:    time.Unix(0, 0).UTC(),
		},
		CacheSize: DefaultCacheSize,
	}
}
