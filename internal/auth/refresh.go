package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/mworx/stockroom/internal/redissvc"
	"github.com/redis/go-redis/v9"
)

// Refresh tokens live in redis keyed by token value, expiring via TTL, so no
// periodic cleanup is needed.

var (
	rdb             *redis.Client
	refreshCtx      = context.Background()
	refreshTokenTTL = 7 * 24 * time.Hour
)

const refreshKeyPrefix = "auth:refresh:"

// ErrRefreshTokenNotFound is returned for unknown or expired refresh tokens.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

func SetRedisService(rs *redissvc.RedisService) {
	rdb = rs.Rdb()
	refreshCtx = rs.Ctx()
}

// SetRefreshTokenTTL overrides the refresh token lifetime.
func SetRefreshTokenTTL(ttl time.Duration) {
	if ttl > 0 {
		refreshTokenTTL = ttl
	}
}

// IssueRefreshToken creates an opaque refresh token bound to the user's email.
// Without a redis backend no token is issued and login still succeeds.
func IssueRefreshToken(email string) (string, error) {
	if rdb == nil {
		return "", nil
	}
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	token := hex.EncodeToString(buf)
	if err := rdb.Set(refreshCtx, refreshKeyPrefix+token, email, refreshTokenTTL).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// ResolveRefreshToken returns the email a refresh token was issued to.
func ResolveRefreshToken(token string) (string, error) {
	if rdb == nil {
		return "", ErrRefreshTokenNotFound
	}
	email, err := rdb.Get(refreshCtx, refreshKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrRefreshTokenNotFound
	}
	return email, err
}

// RevokeRefreshToken invalidates a refresh token, e.g. on logout.
func RevokeRefreshToken(token string) error {
	if rdb == nil {
		return nil
	}
	return rdb.Del(refreshCtx, refreshKeyPrefix+token).Err()
}
