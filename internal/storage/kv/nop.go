package kv

import "context"

// NopStore stands in for a medium that is not available, e.g. when running
// without an interactive surface. Reads are always absent and writes are
// dropped.
type NopStore struct{}

func (NopStore) Get(context.Context, string) ([]byte, error) { return nil, nil }

func (NopStore) Set(context.Context, string, []byte) error { return nil }

func (NopStore) Delete(context.Context, string) error { return nil }

func (NopStore) Close() error { return nil }
