package services

import (
	"time"

	"authorshaven/global"
)

const blacklistPrefix = "token:blacklist:"

// BlacklistToken marks a JWT as revoked until it would have expired
// anyway. Called on logout.
func BlacklistToken(token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return global.RedisDB.Set(blacklistPrefix+token, "revoked", ttl).Err()
}

// IsTokenBlacklisted reports whether a token has been revoked. A failed
// lookup counts as revoked.
func IsTokenBlacklisted(token string) bool {
	if global.RedisDB == nil {
		return false
	}
	n, err := global.RedisDB.Exists(blacklistPrefix + token).Result()
	if err != nil {
		global.Log.Warnw("blacklist lookup failed", "error", err)
		return true
	}
	return n > 0
}
