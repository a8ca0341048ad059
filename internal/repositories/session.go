package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-water-quality/internal/logger"
)

// deleteIfCurrent removes the session key only when it still holds the given id.
var deleteIfCurrent = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// SessionCacheRepository keeps the active session of every account in Redis
type SessionCacheRepository struct {
	client *redis.Client
}

// NewSessionCacheRepository creates a new repository instance
func NewSessionCacheRepository(client *redis.Client) *SessionCacheRepository {
	return &SessionCacheRepository{client: client}
}

func sessionKey(username string) string {
	return fmt.Sprintf("session:%s", username)
}

// Replace makes sessionID the only active session of username.
func (r *SessionCacheRepository) Replace(ctx context.Context, username, sessionID string, ttl time.Duration) error {
	key := sessionKey(username)
	err := r.client.Set(ctx, key, sessionID, ttl).Err()

	logger.Log.Infow(
		"key", key,
		"ttl", ttl,
		"result", "ok",
		"error", err,
	)

	return err
}

// Get returns the active session id of username, or "" if there is none.
func (r *SessionCacheRepository) Get(ctx context.Context, username string) (string, error) {
	key := sessionKey(username)
	val, err := r.client.Get(ctx, key).Result()

	logger.Log.Infow(
		"key", key,
		"result", val != "",
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// Delete ends the session if it is still the active one.
func (r *SessionCacheRepository) Delete(ctx context.Context, username, sessionID string) error {
	key := sessionKey(username)
	deleted, err := deleteIfCurrent.Run(ctx, r.client, []string{key}, sessionID).Int()

	logger.Log.Infow(
		"key", key,
		"result", deleted,
		"error", err,
	)

	return err
}
