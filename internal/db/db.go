package db

import (
	"context"
	"time"
)

// Store is the document database facade combining all sub-interfaces.
type Store interface {
	Pinger
	JSONStore
	KeyScanner
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// JSONSetItem holds a single key+path+data triple for pipelined JSON.SET.
type JSONSetItem struct {
	Key  string
	Path string
	Data []byte
}

// JSONStore provides JSON document operations.
type JSONStore interface {
	JSONSet(ctx context.Context, key, path string, data []byte) error
	JSONSetMulti(ctx context.Context, items []JSONSetItem) error
	JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error)
	// JSONGetMulti returns one raw document per key, in key order.
	// Missing keys yield a nil entry instead of an error. Keys whose reply is an error
	// (e.g. WRONGTYPE) also yield a nil entry and are reported together as *KeyErrors.
	JSONGetMulti(ctx context.Context, keys []string, path string) ([][]byte, error)
	Del(ctx context.Context, key string) error
}

// KeyScanner enumerates keys.
type KeyScanner interface {
	Scan(ctx context.Context, pattern string) ([]string, error)
}
