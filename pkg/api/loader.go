package api

import (
	"context"
	"sync"
)

// Loader holds the current list for one resource and fences overlapping
// loads: every Load is assigned a monotonic sequence number, and a response
// is installed only if no newer load has been issued since. A stale
// response is discarded, so the freshest request always wins regardless of
// arrival order.
type Loader[T any] struct {
	mu     sync.Mutex
	issued uint64
	stored uint64
	list   []T
}

// Load runs fetch and installs its result unless a newer Load was issued in
// the meantime. The boolean reports whether the result was installed.
func (l *Loader[T]) Load(ctx context.Context, fetch func(ctx context.Context) ([]T, error)) (bool, error) {
	l.mu.Lock()
	l.issued++
	seq := l.issued
	l.mu.Unlock()

	list, err := fetch(ctx)
	if err != nil {
		return false, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if seq < l.issued {
		// A newer load exists; this response is stale.
		return false, nil
	}
	if seq <= l.stored {
		return false, nil
	}
	l.stored = seq
	l.list = list
	return true, nil
}

// Snapshot returns the current list and the generation that produced it.
func (l *Loader[T]) Snapshot() ([]T, uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]T, len(l.list))
	copy(out, l.list)
	return out, l.stored
}
