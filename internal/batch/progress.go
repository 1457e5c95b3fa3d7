package batch

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"
)

// ProgressStore is the caller-owned record of completed scenario keys.
// The batch driver consults it before running a scenario and marks it after,
// which makes interrupted batch runs resumable. The calculation core itself
// stays stateless.
type ProgressStore interface {
	Done(ctx context.Context, key string) (bool, error)
	MarkDone(ctx context.Context, key string) error
}

// MemoryProgress is an in-process ProgressStore, used for single-shot runs
// and tests.
type MemoryProgress struct {
	mu   sync.Mutex
	done map[string]struct{}
}

// NewMemoryProgress creates an empty in-memory store.
func NewMemoryProgress() *MemoryProgress {
	return &MemoryProgress{done: make(map[string]struct{})}
}

func (m *MemoryProgress) Done(ctx context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.done[key]
	return ok, nil
}

func (m *MemoryProgress) MarkDone(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.done[key] = struct{}{}
	return nil
}

// RedisProgress keeps the completed set in a Redis set, so batches can be
// resumed across processes and machines.
type RedisProgress struct {
	client *redis.Client
	setKey string
}

// NewRedisProgress connects to addr and stores completion under setKey.
func NewRedisProgress(addr, setKey string) *RedisProgress {
	return &RedisProgress{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		setKey: setKey,
	}
}

func (r *RedisProgress) Done(ctx context.Context, key string) (bool, error) {
	return r.client.SIsMember(ctx, r.setKey, key).Result()
}

func (r *RedisProgress) MarkDone(ctx context.Context, key string) error {
	return r.client.SAdd(ctx, r.setKey, key).Err()
}

// Close releases the underlying Redis connection.
func (r *RedisProgress) Close() error {
	return r.client.Close()
}
