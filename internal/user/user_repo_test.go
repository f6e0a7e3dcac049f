package user

import (
	"context"
	"testing"

	"github.com/DhavalSuthar-24/kickoff/internal/common"
	"github.com/DhavalSuthar-24/kickoff/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) UserRepository {
	t.Helper()
	db := testhelpers.SetupTestDB(t, &User{})
	return NewUserRepository(db)
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	u := &User{Email: "ana@example.com", PassHash: "x"}
	require.NoError(t, repo.Create(ctx, u))
	assert.NotZero(t, u.ID)
	assert.Equal(t, RoleAthlete, u.Role)

	byID, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", byID.Email)

	byEmail, err := repo.GetByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)

	_, err = repo.GetByID(ctx, 999)
	assert.ErrorIs(t, err, common.ErrUserNotFound)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	require.NoError(t, repo.Create(ctx, &User{Email: "dup@example.com", PassHash: "x"}))
	err := repo.Create(ctx, &User{Email: "dup@example.com", PassHash: "y"})
	assert.ErrorIs(t, err, common.ErrEmailTaken)
}

func TestUserRepository_RoleAndProfile(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	u := &User{Email: "owner@example.com", PassHash: "x"}
	require.NoError(t, repo.Create(ctx, u))

	require.NoError(t, repo.SetRole(ctx, u.ID, RoleVenue))
	role, err := repo.RoleOf(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "venue", role)

	assert.ErrorIs(t, repo.SetRole(ctx, 404, RoleAdmin), common.ErrUserNotFound)

	name, level := "Ana Diaz", "amateur"
	updated, err := repo.UpdateProfile(ctx, u.ID, UpdateProfileInput{FullName: &name, Level: &level})
	require.NoError(t, err)
	assert.Equal(t, "Ana Diaz", updated.FullName)
	assert.Equal(t, "amateur", updated.Level)
	assert.Empty(t, updated.Position)

	exists, err := repo.Exists(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = repo.Exists(ctx, 404)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUserRepository_IncrementNoShow(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	u := &User{Email: "late@example.com", PassHash: "x"}
	require.NoError(t, repo.Create(ctx, u))

	require.NoError(t, repo.IncrementNoShow(ctx, u.ID))
	require.NoError(t, repo.IncrementNoShow(ctx, u.ID))

	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.NoShowCount)

	assert.ErrorIs(t, repo.IncrementNoShow(ctx, 404), common.ErrUserNotFound)
}
