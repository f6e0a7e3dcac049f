package sport

import (
	"context"
	"testing"

	"github.com/DhavalSuthar-24/kickoff/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedDefaultsIsRepeatable(t *testing.T) {
	ctx := context.Background()
	repo := NewSportRepository(testhelpers.SetupTestDB(t, &Sport{}))

	added, err := repo.SeedDefaults(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, len(DefaultCatalog), added)

	added, err = repo.SeedDefaults(ctx)
	require.NoError(t, err)
	assert.Zero(t, added)

	futsal, err := repo.FindSportByName(ctx, " Futsal ")
	require.NoError(t, err)
	assert.Equal(t, 10, futsal.DefaultMaxPlayers)
}

func TestCreateAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewSportRepository(testhelpers.SetupTestDB(t, &Sport{}))

	padel := &Sport{Name: "Padel", Description: "Racket sport in a glass court", DefaultMaxPlayers: 4}
	require.NoError(t, repo.CreateSport(ctx, padel))
	assert.Equal(t, "padel", padel.Name)

	err := repo.CreateSport(ctx, &Sport{Name: "padel", DefaultMaxPlayers: 4})
	assert.ErrorIs(t, err, ErrSportExists)

	_, err = repo.SeedDefaults(ctx)
	require.NoError(t, err)

	all, total, err := repo.GetAllSports(ctx, 1, 3, "")
	require.NoError(t, err)
	assert.EqualValues(t, len(DefaultCatalog)+1, total)
	require.Len(t, all, 3)
	assert.Equal(t, "basketball", all[0].Name)

	found, total, err := repo.GetAllSports(ctx, 1, 20, "GLASS")
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, padel.ID, found[0].ID)

	got, err := repo.GetSportByID(ctx, padel.ID)
	require.NoError(t, err)
	assert.Equal(t, "padel", got.Name)

	_, err = repo.GetSportByID(ctx, 9999)
	assert.ErrorIs(t, err, ErrSportNotFound)
}
