package kv

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/cebip/internal/logging"
)

// Read loads key and decodes it as JSON into a T.
//
// The boolean is false when the key is absent, when the backend fails, or
// when the stored bytes do not decode. The last two cases are logged; none
// of them is returned as an error.
func Read[T any](ctx context.Context, s Store, log logging.Logger, key string) (T, bool) {
	var zero T

	data, err := s.Get(ctx, key)
	if err != nil {
		log.Warn(ctx, "error reading from storage", "key", key, "error", err)
		return zero, false
	}
	if data == nil {
		return zero, false
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		log.Warn(ctx, "malformed value in storage", "key", key, "error", err)
		return zero, false
	}
	return v, true
}

// Write encodes v as JSON and stores it under key, replacing any previous
// value.
func Write[T any](ctx context.Context, s Store, log logging.Logger, key string, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		log.Error(ctx, "error encoding value", "key", key, "error", err)
		return fmt.Errorf("encode kv[%s]: %w", key, err)
	}
	if err := s.Set(ctx, key, data); err != nil {
		log.Error(ctx, "error saving to storage", "key", key, "error", err)
		return err
	}
	return nil
}

// Clear removes key.
func Clear(ctx context.Context, s Store, log logging.Logger, key string) error {
	if err := s.Delete(ctx, key); err != nil {
		log.Error(ctx, "error removing from storage", "key", key, "error", err)
		return err
	}
	return nil
}
