package filecache

import (
	"context"
	"sync"
	"time"
)

// Mem — чисто оперативный ярус для дешёвых производных значений
// (карта пересобирается за миллисекунды, на диск её класть незачем).
type Mem[V any] struct {
	ttl time.Duration

	mu      sync.Mutex
	entries map[string]memEntry[V]
}

type memEntry[V any] struct {
	value    V
	loadedAt time.Time
}

func NewMem[V any](ttl time.Duration) *Mem[V] {
	return &Mem[V]{ttl: ttl, entries: make(map[string]memEntry[V])}
}

func (m *Mem[V]) GetOrCompute(ctx context.Context, key string, compute func(context.Context) (V, error)) (V, error) {
	m.mu.Lock()
	if e, ok := m.entries[key]; ok && time.Since(e.loadedAt) < m.ttl {
		m.mu.Unlock()
		return e.value, nil
	}
	m.mu.Unlock()

	value, err := compute(ctx)
	if err != nil {
		var zero V
		return zero, err
	}

	m.mu.Lock()
	m.entries[key] = memEntry[V]{value: value, loadedAt: time.Now()}
	m.mu.Unlock()
	return value, nil
}
