package registry

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	id "pawtrol/pkg/domain"
)

// CachedStore fronts a contact store with a Redis TTL cache. Contact data is
// sensitive, so the TTL doubles as a retention cap: a cached record cannot
// outlive the configured window no matter how often it is read.
//
// Cache failures degrade to the underlying store; a flaky Redis must never
// block a disclosure the policy already permitted.
type CachedStore struct {
	inner  Store
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedStore(inner Store, client *redis.Client, ttl time.Duration, logger *slog.Logger) *CachedStore {
	return &CachedStore{inner: inner, client: client, ttl: ttl, logger: logger}
}

func (s *CachedStore) FindByPet(ctx context.Context, petID id.PetID) (*OwnerContact, error) {
	key := cacheKey(petID)

	if cached, err := s.client.Get(ctx, key).Bytes(); err == nil {
		var contact OwnerContact
		if err := json.Unmarshal(cached, &contact); err == nil {
			return &contact, nil
		}
		// Corrupt cache entry; drop it and fall through to the store.
		s.client.Del(ctx, key)
	}

	contact, err := s.inner.FindByPet(ctx, petID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(contact); err == nil {
		if err := s.client.Set(ctx, key, data, s.ttl).Err(); err != nil {
			s.logger.WarnContext(ctx, "failed to cache contact record",
				"pet_id", petID,
				"error", err,
			)
		}
	}
	return contact, nil
}

func (s *CachedStore) Upsert(ctx context.Context, contact *OwnerContact) error {
	if err := s.inner.Upsert(ctx, contact); err != nil {
		return err
	}
	// Invalidate rather than refresh so the TTL clock restarts on next read.
	s.client.Del(ctx, cacheKey(contact.PetID))
	return nil
}

func cacheKey(petID id.PetID) string {
	return "contact:" + string(petID)
}
