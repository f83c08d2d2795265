package history

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/Vovarama1992/chad_bot/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestAppendRecent_NewestFirst(t *testing.T) {
	infra := NewInfra(setupTestDB(t))
	ctx := context.Background()

	for i := 1; i <= 7; i++ {
		_, err := infra.Append(ctx, 42, "chadai", 0.7,
			fmt.Sprintf("prompt-%d", i), fmt.Sprintf("response-%d", i))
		require.NoError(t, err)
	}

	records, err := infra.Recent(ctx, 42, 5)
	require.NoError(t, err)
	require.Len(t, records, 5)

	// из семи записей возвращаются ровно последние пять, свежие сверху
	for i, r := range records {
		assert.Equal(t, fmt.Sprintf("prompt-%d", 7-i), r.Prompt)
		assert.Equal(t, fmt.Sprintf("response-%d", 7-i), r.Response)
		assert.Equal(t, int64(42), r.UserID)
	}
}

func TestAppend_AssignsIDs(t *testing.T) {
	infra := NewInfra(setupTestDB(t))
	ctx := context.Background()

	id1, err := infra.Append(ctx, 1, "chadai", 0.7, "a", "b")
	require.NoError(t, err)
	id2, err := infra.Append(ctx, 1, "chadai", 0.7, "c", "d")
	require.NoError(t, err)

	assert.Greater(t, id2, id1)
}

func TestRecent_FewerThanLimit(t *testing.T) {
	infra := NewInfra(setupTestDB(t))
	ctx := context.Background()

	_, err := infra.Append(ctx, 42, "openai", 0.5, "p", "r")
	require.NoError(t, err)

	records, err := infra.Recent(ctx, 42, 5)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "openai", records[0].Model)
	assert.Equal(t, 0.5, records[0].Temperature)
	assert.False(t, records[0].CreatedAt.IsZero())
}

func TestRecent_EmptyIsNotError(t *testing.T) {
	infra := NewInfra(setupTestDB(t))

	records, err := infra.Recent(context.Background(), 42, 5)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestClear_ScopedToUser(t *testing.T) {
	infra := NewInfra(setupTestDB(t))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := infra.Append(ctx, 42, "chadai", 0.7, "p", "r")
		require.NoError(t, err)
	}
	_, err := infra.Append(ctx, 7, "chadai", 0.7, "other", "user")
	require.NoError(t, err)

	n, err := infra.Clear(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	records, err := infra.Recent(ctx, 42, 5)
	require.NoError(t, err)
	assert.Empty(t, records)

	// чужая история не тронута
	records, err = infra.Recent(ctx, 7, 5)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestClear_EmptyReturnsZero(t *testing.T) {
	infra := NewInfra(setupTestDB(t))

	n, err := infra.Clear(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestCountAll_AcrossUsers(t *testing.T) {
	infra := NewInfra(setupTestDB(t))
	ctx := context.Background()

	n, err := infra.CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	_, err = infra.Append(ctx, 1, "chadai", 0.7, "p", "r")
	require.NoError(t, err)
	_, err = infra.Append(ctx, 2, "chadai", 0.7, "p", "r")
	require.NoError(t, err)

	n, err = infra.CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestService_DefaultPageSize(t *testing.T) {
	svc := NewService(NewInfra(setupTestDB(t)), 0)
	ctx := context.Background()

	for i := 1; i <= 7; i++ {
		_, err := svc.Append(ctx, 42, "chadai", 0.7, fmt.Sprintf("p-%d", i), "r")
		require.NoError(t, err)
	}

	records, err := svc.Recent(ctx, 42, 0)
	require.NoError(t, err)
	assert.Len(t, records, DefaultPageSize)
}
