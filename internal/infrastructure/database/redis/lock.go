package redis

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/turtacn/SLA-Sentinel/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/SLA-Sentinel/pkg/errors"
)

var ErrLockNotHeld = errors.New(errors.ErrCodeRunLockFailed, "lock not held by this owner")

// RunLock is a non-blocking distributed mutex for the escalation batch.
// SetNX with a TTL guarantees the lock self-expires if a run crashes without
// releasing; the owner token guarantees only the holder can release.
// Satisfies the application layer's RunLock port.
type RunLock struct {
	client *Client
	name   string
	value  string
	ttl    time.Duration
	logger logging.Logger
}

// NewRunLock builds a lock with a fresh owner token.  name is scoped under
// the client's key prefix.
func NewRunLock(client *Client, name string, ttl time.Duration, log logging.Logger) *RunLock {
	return &RunLock{
		client: client,
		name:   name,
		value:  uuid.New().String(),
		ttl:    ttl,
		logger: log,
	}
}

var unlockScript = redis.NewScript(`
	if redis.call("GET", KEYS[1]) == ARGV[1] then
		return redis.call("DEL", KEYS[1])
	else
		return 0
	end
`)

func (l *RunLock) key() string {
	return l.client.Key("lock:" + l.name)
}

// TryLock attempts to take the lock without blocking.  false means another
// holder has it; only infrastructure failures return an error.
func (l *RunLock) TryLock(ctx context.Context) (bool, error) {
	ok, err := l.client.GetUnderlyingClient().SetNX(ctx, l.key(), l.value, l.ttl).Result()
	if err != nil {
		return false, errors.Wrap(err, errors.ErrCodeCacheError, "failed to set run lock")
	}
	return ok, nil
}

// Unlock releases the lock if and only if this instance still owns it.
// A lock that already expired reports ErrLockNotHeld.
func (l *RunLock) Unlock(ctx context.Context) error {
	res, err := unlockScript.Run(ctx, l.client.GetUnderlyingClient(), []string{l.key()}, l.value).Result()
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeCacheError, "failed to release run lock")
	}
	if res.(int64) == 0 {
		return ErrLockNotHeld
	}
	return nil
}

// TTL reports the remaining lifetime of the lock key.
func (l *RunLock) TTL(ctx context.Context) (time.Duration, error) {
	return l.client.GetUnderlyingClient().PTTL(ctx, l.key()).Result()
}

//Personal.AI order the ending
