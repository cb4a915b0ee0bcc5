// Package kv is the persistent key/value medium behind every CEBIP
// collection and the session slot.
//
// Store is the raw byte contract shared by the backends (SQLite, Redis and a
// no-op medium). Read, Write and Clear layer a JSON codec on top of it and
// implement the degrade-to-absent policy: a missing key, a backend failure
// on read, or a value that fails to decode all read back as "not found",
// with a warning logged.
package kv

import "context"

// Store is a byte-oriented key/value medium.
//
// Get returns (nil, nil) when the key is absent. Delete of an absent key is
// not an error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Transactional is implemented by stores that can apply several writes
// atomically. fn receives a Store bound to the transaction.
type Transactional interface {
	Store
	InTx(ctx context.Context, fn func(ctx context.Context, s Store) error) error
}
