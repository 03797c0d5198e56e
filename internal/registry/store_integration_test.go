//go:build integration

package registry_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"pawtrol/internal/registry"
	id "pawtrol/pkg/domain"
	"pawtrol/pkg/platform/sentinel"
	"pawtrol/pkg/testutil/containers"
)

type RegistryStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	redis    *containers.RedisContainer
	store    *registry.PostgresStore
	cached   *registry.CachedStore
}

func TestRegistryStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RegistryStoreSuite))
}

func (s *RegistryStoreSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.postgres = mgr.GetPostgres(s.T())
	s.redis = mgr.GetRedis(s.T())
	s.store = registry.NewPostgres(s.postgres.DB)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.cached = registry.NewCachedStore(s.store, s.redis.Client, 2*time.Second, logger)
}

func (s *RegistryStoreSuite) SetupTest() {
	ctx := context.Background()
	s.Require().NoError(s.postgres.TruncateTables(ctx, "owner_contacts"))
	s.Require().NoError(s.redis.FlushAll(ctx))
}

func testContact(petID id.PetID) *registry.OwnerContact {
	return &registry.OwnerContact{
		PetID:                petID,
		OwnerName:            "J. Alvarez",
		Phone:                "555-0142",
		Email:                "jalvarez@example.com",
		HomeAddress:          "12 Oak Lane",
		ApproachInstructions: "Shy around strangers, approach slowly",
	}
}

func (s *RegistryStoreSuite) TestUpsertAndFind() {
	ctx := context.Background()
	contact := testContact("pet-00421")
	s.Require().NoError(s.store.Upsert(ctx, contact))

	got, err := s.store.FindByPet(ctx, "pet-00421")
	s.Require().NoError(err)
	s.Equal("J. Alvarez", got.OwnerName)

	contact.Phone = "555-0199"
	s.Require().NoError(s.store.Upsert(ctx, contact))

	got, err = s.store.FindByPet(ctx, "pet-00421")
	s.Require().NoError(err)
	s.Equal("555-0199", got.Phone)

	_, err = s.store.FindByPet(ctx, "pet-99999")
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *RegistryStoreSuite) TestCachedReadsServeFromRedis() {
	ctx := context.Background()
	s.Require().NoError(s.store.Upsert(ctx, testContact("pet-00421")))

	got, err := s.cached.FindByPet(ctx, "pet-00421")
	s.Require().NoError(err)
	s.Equal("J. Alvarez", got.OwnerName)

	// The row can vanish from Postgres and the cached copy still serves
	// until its TTL runs out.
	s.Require().NoError(s.postgres.TruncateTables(ctx, "owner_contacts"))

	got, err = s.cached.FindByPet(ctx, "pet-00421")
	s.Require().NoError(err)
	s.Equal("J. Alvarez", got.OwnerName)
}

// The TTL is a retention cap, not just a performance knob: after it passes
// the contact must be gone from Redis.
func (s *RegistryStoreSuite) TestCacheExpiresWithinTTL() {
	ctx := context.Background()
	s.Require().NoError(s.store.Upsert(ctx, testContact("pet-00421")))

	_, err := s.cached.FindByPet(ctx, "pet-00421")
	s.Require().NoError(err)

	s.Require().NoError(s.postgres.TruncateTables(ctx, "owner_contacts"))
	time.Sleep(2500 * time.Millisecond)

	_, err = s.cached.FindByPet(ctx, "pet-00421")
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *RegistryStoreSuite) TestUpsertInvalidatesCache() {
	ctx := context.Background()
	contact := testContact("pet-00421")
	s.Require().NoError(s.cached.Upsert(ctx, contact))

	_, err := s.cached.FindByPet(ctx, "pet-00421")
	s.Require().NoError(err)

	contact.Phone = "555-0199"
	s.Require().NoError(s.cached.Upsert(ctx, contact))

	got, err := s.cached.FindByPet(ctx, "pet-00421")
	s.Require().NoError(err)
	s.Equal("555-0199", got.Phone)
}
