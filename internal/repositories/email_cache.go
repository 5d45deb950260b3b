package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/mentorhq/mentorship-api/internal/logger"
)

// EmailDomainCacheRepository caches MX verification verdicts per domain in
// Redis so repeated registrations from the same domain skip the DNS lookup.
type EmailDomainCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration for cached verdicts
}

// NewEmailDomainCacheRepository creates a new repository instance with the given TTL
func NewEmailDomainCacheRepository(client *redis.Client, expiration time.Duration) *EmailDomainCacheRepository {
	return &EmailDomainCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetVerdict returns the cached verdict for a domain. The second return value
// reports whether a verdict was present in the cache.
func (r *EmailDomainCacheRepository) GetVerdict(ctx context.Context, domain string) (bool, bool, error) {
	key := fmt.Sprintf("email_domain:%s", domain)

	val, err := r.client.Get(ctx, key).Result()

	logger.Log.Infow("cache lookup",
		"key", key,
		"value", val,
		"error", err,
	)

	if err != nil {
		if err == redis.Nil {
			return false, false, nil
		}
		return false, false, err
	}

	return val == "valid", true, nil
}

// SetVerdict caches a verdict for a domain with expiration.
func (r *EmailDomainCacheRepository) SetVerdict(ctx context.Context, domain string, valid bool) error {
	key := fmt.Sprintf("email_domain:%s", domain)
	val := "invalid"
	if valid {
		val = "valid"
	}

	err := r.client.Set(ctx, key, val, r.exp).Err()

	logger.Log.Infow("cache set",
		"key", key,
		"value", val,
		"error", err,
	)

	return err
}
