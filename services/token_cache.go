package services

import (
	"context"
	"crypto/sha256"
	"fmt"
	"time"

	"main/config"

	"github.com/redis/go-redis/v9"
)

// TokenCache remembers which bearer tokens already verified and which user
// they belong to, so hot clients skip repeated signature checks. Entries
// expire no later than the token itself.
type TokenCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewTokenCache(cfg config.RedisConfig) (*TokenCache, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &TokenCache{client: client, ttl: cfg.TokenTTL}, nil
}

// Tokens are hashed before use as keys so raw credentials never land in
// Redis.
func tokenKey(token string) string {
	return fmt.Sprintf("token:%x", sha256.Sum256([]byte(token)))
}

// Get returns the cached user ID for the token, if present. Lookup errors
// are treated as cache misses.
func (tc *TokenCache) Get(ctx context.Context, token string) (string, bool) {
	userID, err := tc.client.Get(ctx, tokenKey(token)).Result()
	if err != nil {
		return "", false
	}
	return userID, true
}

// Set caches a verified token for the shorter of the configured TTL and the
// time until the token expires. Write failures are ignored; the next
// request just verifies again.
func (tc *TokenCache) Set(ctx context.Context, token string, userID string, expiresAt time.Time) {
	ttl := tc.ttl
	if until := time.Until(expiresAt); until < ttl {
		ttl = until
	}
	if ttl <= 0 {
		return
	}
	tc.client.Set(ctx, tokenKey(token), userID, ttl)
}
