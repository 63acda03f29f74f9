package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/infra"
)

// Document is the single in-process owner of one key. Reads never fail: a
// missing, unreadable or malformed document yields the default value. Writes
// through Update are serialized so concurrent read-modify-write cycles cannot
// lose each other's changes.
type Document[T any] struct {
	store    Store
	key      string
	logger   *slog.Logger
	fallback func() T
	mu       sync.Mutex
}

func NewDocument[T any](store Store, key string, logger *slog.Logger, fallback func() T) *Document[T] {
	return &Document[T]{
		store:    store,
		key:      key,
		logger:   logger,
		fallback: fallback,
	}
}

func (d *Document[T]) Key() string {
	return d.key
}

func (d *Document[T]) Load(ctx context.Context) T {
	body, err := d.store.Get(ctx, d.key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			d.logger.WarnContext(ctx, "document read failed, using default", "key", d.key, "error", err)
		}
		return d.fallback()
	}
	// decode over the default so fields absent from older documents keep their default
	v := d.fallback()
	if err := json.Unmarshal(body, &v); err != nil {
		d.logger.WarnContext(ctx, "document is malformed, using default", "key", d.key, "error", err)
		return d.fallback()
	}
	return v
}

func (d *Document[T]) Save(ctx context.Context, v T) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.put(ctx, v)
}

// Update loads, applies fn and stores the result under the document lock.
// If fn fails nothing is written.
func (d *Document[T]) Update(ctx context.Context, fn func(T) (T, error)) (T, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	next, err := fn(d.Load(ctx))
	if err != nil {
		var zero T
		return zero, err
	}
	if err := d.put(ctx, next); err != nil {
		var zero T
		return zero, err
	}
	return next, nil
}

func (d *Document[T]) put(ctx context.Context, v T) error {
	body, err := json.Marshal(v)
	if err != nil {
		return infra.BackendError(d.logger, infra.ErrCorruptData, "encode document "+d.key, err)
	}
	if err := d.store.Put(ctx, d.key, body); err != nil {
		return infra.BackendError(d.logger, infra.ErrStoreFailure, "write document "+d.key, err)
	}
	return nil
}
