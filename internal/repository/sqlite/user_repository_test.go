package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"users-service/internal/domain"
	"users-service/internal/repository"
)

func newTestRepo(t *testing.T) repository.UserRepository {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "users.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := NewUserRepository(db)
	require.NoError(t, repo.Init(context.Background()))
	return repo
}

func testUser(n int) *domain.User {
	return &domain.User{
		PublicID:     fmt.Sprintf("public-%d", n),
		FirstName:    "Test",
		LastName:     "User",
		Email:        fmt.Sprintf("user%d@test.com", n),
		PasswordHash: "$2a$10$fakefakefakefakefakefake",
	}
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	t.Parallel()

	repo := newTestRepo(t)
	ctx := context.Background()

	user := testUser(1)
	id, err := repo.Create(ctx, user)
	require.NoError(t, err)
	assert.Positive(t, id)

	byEmail, err := repo.GetByEmail(ctx, user.Email)
	require.NoError(t, err)
	assert.Equal(t, user.PublicID, byEmail.PublicID)
	assert.Equal(t, user.PasswordHash, byEmail.PasswordHash)
	assert.False(t, byEmail.CreatedAt.IsZero())

	byPublicID, err := repo.GetByPublicID(ctx, user.PublicID)
	require.NoError(t, err)
	assert.Equal(t, id, byPublicID.ID)
	assert.Equal(t, user.Email, byPublicID.Email)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	t.Parallel()

	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, testUser(1))
	require.NoError(t, err)

	dup := testUser(1)
	dup.PublicID = "public-other"
	_, err = repo.Create(ctx, dup)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestUserRepository_NotFound(t *testing.T) {
	t.Parallel()

	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.GetByEmail(ctx, "nobody@test.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	_, err = repo.GetByPublicID(ctx, "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestUserRepository_List(t *testing.T) {
	t.Parallel()

	repo := newTestRepo(t)
	ctx := context.Background()

	for i := range 4 {
		_, err := repo.Create(ctx, testUser(i))
		require.NoError(t, err)
	}

	users, err := repo.List(ctx, 0, 3)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "user0@test.com", users[0].Email)

	users, err = repo.List(ctx, 3, 3)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "user3@test.com", users[0].Email)

	users, err = repo.List(ctx, 10, 3)
	require.NoError(t, err)
	assert.Empty(t, users)
}
