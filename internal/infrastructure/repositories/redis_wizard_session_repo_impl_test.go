package repositories

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cleanfee.backend/internal/domain/entities"
	domainerrors "cleanfee.backend/internal/domain/errors"
	"cleanfee.backend/pkg/redis"
)

func setupRedisSessionRepo(t *testing.T) (*RedisWizardSessionRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	redis.SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))

	store, err := redis.NewSessionStore(strings.Repeat("00", 32))
	require.NoError(t, err)
	return NewRedisWizardSessionRepository(store, time.Hour), mr
}

func TestRedisWizardSessionRepository_Roundtrip(t *testing.T) {
	repo, _ := setupRedisSessionRepo(t)
	ctx := context.Background()

	_, err := repo.Get(ctx, "s1")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	session := entities.NewWizardSession("s1")
	session.Step = entities.StepReferences
	session.Profile.FirstName = "Maria"
	session.Profile.References = []entities.Reference{{Name: "Jen", Phone: "555"}}
	require.NoError(t, repo.Save(ctx, session))

	got, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, entities.StepReferences, got.Step)
	assert.Equal(t, "Maria", got.Profile.FirstName)
	require.Len(t, got.Profile.References, 1)
	assert.Equal(t, "Jen", got.Profile.References[0].Name)
}

func TestRedisWizardSessionRepository_Delete(t *testing.T) {
	repo, _ := setupRedisSessionRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, entities.NewWizardSession("s1")))
	require.NoError(t, repo.Delete(ctx, "s1"))

	_, err := repo.Get(ctx, "s1")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestRedisWizardSessionRepository_OutageDoesNotLookLikeMissingSession(t *testing.T) {
	repo, mr := setupRedisSessionRepo(t)
	ctx := context.Background()

	session := entities.NewWizardSession("s1")
	session.Step = entities.StepReview
	require.NoError(t, repo.Save(ctx, session))

	// A Redis failure must surface as an error, never as "no session
	// yet" -- the wizard would otherwise reset an in-progress
	// application to a fresh intro state.
	mr.Close()

	_, err := repo.Get(ctx, "s1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestRedisWizardSessionRepository_TTLExpiry(t *testing.T) {
	repo, mr := setupRedisSessionRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, entities.NewWizardSession("s1")))
	mr.FastForward(2 * time.Hour)

	_, err := repo.Get(ctx, "s1")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
