package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"agenda_facil/internal/domain/entities"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestAppointmentRedisRepository(t *testing.T) {
	ctx := context.Background()
	t.Setenv("REDIS_KEY_PREFIX", "test")
	mr, rdb := newTestRedis(t)
	repo := NewAppointmentRedisRepository(rdb)

	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	for i, id := range []string{"a3", "a1", "a2"} {
		_, err := repo.Create(ctx, entities.Appointment{ID: id, Title: id, Date: "2024-05-10", Time: "09:00", Status: entities.AppointmentStatusPending, CreatedAt: base.Add(time.Duration(i) * time.Minute)})
		require.NoError(t, err)
	}

	t.Run("stored under the collection hash", func(t *testing.T) {
		assert.True(t, mr.Exists("test:agendamentos"))
		keys, err := mr.HKeys("test:agendamentos")
		require.NoError(t, err)
		assert.Len(t, keys, 3)
	})

	t.Run("duplicate create", func(t *testing.T) {
		_, err := repo.Create(ctx, entities.Appointment{ID: "a1"})
		assert.True(t, errors.Is(err, ErrDuplicateKey))
	})

	t.Run("list keeps creation order", func(t *testing.T) {
		got, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, []string{"a3", "a1", "a2"}, []string{got[0].ID, got[1].ID, got[2].ID})
	})

	t.Run("update only existing", func(t *testing.T) {
		missing, err := repo.Update(ctx, entities.Appointment{ID: "zz", Title: "x"})
		require.NoError(t, err)
		assert.Empty(t, missing.ID)
		assert.Empty(t, mr.HGet("test:agendamentos", "zz"))

		_, err = repo.Update(ctx, entities.Appointment{ID: "a1", Title: "Retorno", Status: entities.AppointmentStatusCompleted})
		require.NoError(t, err)
		got, err := repo.GetByID(ctx, "a1")
		require.NoError(t, err)
		assert.Equal(t, "Retorno", got.Title)
		assert.Equal(t, entities.AppointmentStatusCompleted, got.Status)
	})

	t.Run("get missing", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "nope")
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})

	t.Run("delete", func(t *testing.T) {
		ok, err := repo.Delete(ctx, "a2")
		require.NoError(t, err)
		assert.True(t, ok)
		ok, err = repo.Delete(ctx, "a2")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestCatalogRedisRepositories(t *testing.T) {
	ctx := context.Background()
	_, rdb := newTestRedis(t)
	repos := NewRedisRepositories(rdb)

	_, err := repos.Clients.Create(ctx, entities.Client{ID: "c1", Name: "Ana"})
	require.NoError(t, err)
	_, err = repos.Professionals.Create(ctx, entities.Professional{ID: "p1", Name: "Carla"})
	require.NoError(t, err)
	_, err = repos.Services.Create(ctx, entities.Service{ID: "s1", Name: "Corte", Price: 30})
	require.NoError(t, err)

	c, err := repos.Clients.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", c.Name)

	ps, err := repos.Professionals.List(ctx)
	require.NoError(t, err)
	assert.Len(t, ps, 1)

	s, err := repos.Services.Update(ctx, entities.Service{ID: "s1", Name: "Corte", Price: 35})
	require.NoError(t, err)
	assert.Equal(t, 35.0, s.Price)
}

func TestUserRedisRepository_KeepsPasswordHash(t *testing.T) {
	ctx := context.Background()
	_, rdb := newTestRedis(t)
	repo := NewUserRedisRepository(rdb)

	_, err := repo.Create(ctx, entities.User{ID: "u1", Email: "ana@example.com", PasswordHash: "$2a$10$hash"})
	require.NoError(t, err)

	dup, err := repo.Create(ctx, entities.User{ID: "u2", Email: "ana@example.com"})
	require.NoError(t, err)
	assert.Empty(t, dup.ID)

	got, err := repo.GetByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "$2a$10$hash", got.PasswordHash)
}
