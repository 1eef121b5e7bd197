// Package sequence hands out running numbers for dwelling case numbers. Each
// calendar year has its own sequence starting at 1.
package sequence

import (
	"context"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Memory is a process-local sequencer.
type Memory struct {
	mu   sync.Mutex
	last map[int]int64
}

func NewMemory() *Memory {
	return &Memory{last: make(map[int]int64)}
}

func (m *Memory) Next(_ context.Context, year int) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last[year]++
	return m.last[year], nil
}

// Seed raises the year's counter so the next value is above n. Lower values are ignored.
func (m *Memory) Seed(year int, n int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if n > m.last[year] {
		m.last[year] = n
	}
}

const caseSequenceKeyPrefix = "ward:case_seq:"

// Redis keeps one counter key per year and advances it with INCR, so several
// server instances never hand out the same case number.
type Redis struct {
	client *redis.Client
	prefix string
}

type RedisOption func(*Redis)

// WithKeyPrefix namespaces the counter keys, e.g. per ward.
func WithKeyPrefix(prefix string) RedisOption {
	return func(r *Redis) {
		r.prefix = prefix
	}
}

func NewRedis(client *redis.Client, opts ...RedisOption) *Redis {
	r := &Redis{client: client, prefix: caseSequenceKeyPrefix}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

func (r *Redis) Next(ctx context.Context, year int) (int64, error) {
	n, err := r.client.Incr(ctx, r.key(year)).Result()
	if err != nil {
		return 0, fmt.Errorf("incr case sequence %d: %w", year, err)
	}
	return n, nil
}

func (r *Redis) key(year int) string {
	return fmt.Sprintf("%s%d", r.prefix, year)
}
