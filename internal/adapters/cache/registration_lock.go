package cache

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const registrationLockTTL = 10 * time.Second

// RedisRegistrationLock serializes registration per email across service
// instances using SET NX. The TTL bounds how long a crashed registration
// can keep an email locked.
type RedisRegistrationLock struct {
	client *redis.Client
}

func NewRedisRegistrationLock(client *redis.Client) *RedisRegistrationLock {
	return &RedisRegistrationLock{client: client}
}

func (l *RedisRegistrationLock) Acquire(ctx context.Context, email string) (bool, error) {
	return l.client.SetNX(ctx, "auth:register:"+email, 1, registrationLockTTL).Result()
}

func (l *RedisRegistrationLock) Release(ctx context.Context, email string) error {
	return l.client.Del(ctx, "auth:register:"+email).Err()
}

// MemoryRegistrationLock is the single-instance fallback used when Redis
// is not configured, and by tests. It provides the same at-most-one-holder
// guarantee within one process.
type MemoryRegistrationLock struct {
	mu   sync.Mutex
	held map[string]struct{}
}

func NewMemoryRegistrationLock() *MemoryRegistrationLock {
	return &MemoryRegistrationLock{held: make(map[string]struct{})}
}

func (l *MemoryRegistrationLock) Acquire(_ context.Context, email string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, taken := l.held[email]; taken {
		return false, nil
	}
	l.held[email] = struct{}{}
	return true, nil
}

func (l *MemoryRegistrationLock) Release(_ context.Context, email string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.held, email)
	return nil
}
