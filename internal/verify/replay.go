package verify

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const replayKeyPrefix = "captcha:seen:"

// ReplayGuard remembers consumed tokens in Redis so each one is accepted once.
// A nil guard allows every token.
type ReplayGuard struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReplayGuard builds a guard over the given client.
func NewReplayGuard(client *redis.Client, ttl time.Duration) *ReplayGuard {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = 2 * time.Minute
	}
	return &ReplayGuard{client: client, ttl: ttl}
}

// Claim marks the token as used. It fails closed when Redis is unreachable.
func (g *ReplayGuard) Claim(ctx context.Context, token string) error {
	if g == nil || g.client == nil {
		return nil
	}
	sum := sha256.Sum256([]byte(token))
	key := replayKeyPrefix + hex.EncodeToString(sum[:])
	ok, err := g.client.SetNX(ctx, key, 1, g.ttl).Result()
	if err != nil {
		return fmt.Errorf("%w: replay guard: %v", ErrUnavailable, err)
	}
	if !ok {
		return ErrReplayed
	}
	return nil
}
