package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/WorldLoot_Go/internal/database"
	"github.com/osse101/WorldLoot_Go/internal/domain"
)

// setupDatabase starts a throwaway postgres and applies the embedded migrations
func setupDatabase(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	var pgContainer *postgres.PostgresContainer
	var err error
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("Skipping integration test due to panic (likely Docker issue): %v", r)
			}
		}()
		pgContainer, err = postgres.Run(ctx,
			"postgres:15-alpine",
			postgres.WithDatabase("testdb"),
			postgres.WithUsername("testuser"),
			postgres.WithPassword("testpass"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
	}()
	if err != nil {
		t.Skipf("Skipping integration test: failed to start postgres container: %v", err)
	}
	t.Cleanup(func() {
		_ = pgContainer.Terminate(context.Background())
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := database.NewPool(ctx, connStr, 4, time.Minute, time.Hour)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, database.Migrate(ctx, pool))
	require.NoError(t, database.Migrate(ctx, pool), "migrations are idempotent")
	return pool
}

func TestDropLogRepository_Integration(t *testing.T) {
	pool := setupDatabase(t)
	repo := NewDropLogRepository(pool)
	ctx := context.Background()

	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	records := []domain.DropRecord{
		{ItemUID: uuid.New(), BoxKind: domain.BoxKindIndividual, BoxID: 2001, CharacterID: 42, ItemID: 11200001, Rarity: 3, Amount: 1, RequestID: "req-1", CreatedAt: base},
		{ItemUID: uuid.New(), BoxKind: domain.BoxKindIndividual, BoxID: 2001, CharacterID: 42, ItemID: 90000001, Rarity: 1, Amount: 750, CreatedAt: base.Add(time.Second)},
		{ItemUID: uuid.New(), BoxKind: domain.BoxKindGlobal, BoxID: 1001, CharacterID: 7, ItemID: 20000001, Rarity: 1, Amount: 2, CreatedAt: base},
	}

	require.NoError(t, repo.InsertDrops(ctx, records))
	require.NoError(t, repo.InsertDrops(ctx, nil))

	t.Run("lists newest first", func(t *testing.T) {
		got, err := repo.ListDrops(ctx, 42, 10)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, records[1].ItemUID, got[0].ItemUID)
		assert.Equal(t, 750, got[0].Amount)
		assert.Empty(t, got[0].RequestID)
		assert.Equal(t, "req-1", got[1].RequestID)
		assert.Equal(t, domain.BoxKindIndividual, got[1].BoxKind)
		assert.True(t, base.Equal(got[1].CreatedAt))
	})

	t.Run("limit is honoured", func(t *testing.T) {
		got, err := repo.ListDrops(ctx, 42, 1)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("unknown character", func(t *testing.T) {
		got, err := repo.ListDrops(ctx, 999, 0)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
