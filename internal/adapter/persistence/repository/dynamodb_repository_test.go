package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"agenda_facil/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientDynamoRepository(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDynamo()
	repo := NewClientDynamoRepository(ddb)

	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	for i, id := range []string{"c-a", "c-b", "c-c"} {
		_, err := repo.Create(ctx, entities.Client{ID: id, Name: id, Phone: "+55 11 98765-4321", Email: id + "@x.com", CreatedAt: base.Add(time.Duration(i) * time.Minute)})
		require.NoError(t, err)
	}

	t.Run("duplicate create", func(t *testing.T) {
		_, err := repo.Create(ctx, entities.Client{ID: "c-a"})
		assert.True(t, errors.Is(err, ErrDuplicateKey))
	})

	t.Run("get round trips", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "c-b")
		require.NoError(t, err)
		assert.Equal(t, "c-b@x.com", got.Email)
		assert.True(t, got.CreatedAt.Equal(base.Add(time.Minute)))
	})

	t.Run("get missing returns zero", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "nope")
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})

	t.Run("list is paginated and ordered by creation", func(t *testing.T) {
		got, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, []string{"c-a", "c-b", "c-c"}, []string{got[0].ID, got[1].ID, got[2].ID})
	})

	t.Run("update missing returns zero", func(t *testing.T) {
		got, err := repo.Update(ctx, entities.Client{ID: "nope", Name: "x"})
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})

	t.Run("update existing", func(t *testing.T) {
		_, err := repo.Update(ctx, entities.Client{ID: "c-a", Name: "Ana", CreatedAt: base})
		require.NoError(t, err)
		got, err := repo.GetByID(ctx, "c-a")
		require.NoError(t, err)
		assert.Equal(t, "Ana", got.Name)
	})

	t.Run("delete reports existence", func(t *testing.T) {
		ok, err := repo.Delete(ctx, "c-c")
		require.NoError(t, err)
		assert.True(t, ok)
		ok, err = repo.Delete(ctx, "c-c")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("backend error", func(t *testing.T) {
		ddb.err = errors.New("throttled")
		defer func() { ddb.err = nil }()
		_, err := repo.List(ctx)
		assert.Error(t, err)
	})
}

func TestServiceAndAppointmentDynamoRepositories(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDynamo()
	services := NewServiceDynamoRepository(ddb)
	appointments := NewAppointmentDynamoRepository(ddb)
	professionals := NewProfessionalDynamoRepository(ddb)

	_, err := services.Create(ctx, entities.Service{ID: "s1", Name: "Corte", Duration: "30 min", Price: 45.5})
	require.NoError(t, err)
	_, err = professionals.Create(ctx, entities.Professional{ID: "p1", Name: "Carla", Specialty: "Corte"})
	require.NoError(t, err)
	_, err = appointments.Create(ctx, entities.Appointment{ID: "a1", Title: "Corte", Date: "2024-05-10", Time: "14:30", ServiceID: "s1", Status: entities.AppointmentStatusConfirmed})
	require.NoError(t, err)

	s, err := services.GetByID(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 45.5, s.Price)

	p, err := professionals.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Corte", p.Specialty)

	a, err := appointments.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, entities.AppointmentStatusConfirmed, a.Status)
	assert.Equal(t, "14:30", a.Time)

	// tables are isolated by name
	all, err := services.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUserDynamoRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserDynamoRepository(newFakeDynamo())

	u := entities.User{ID: "u1", Email: "ana@example.com", PasswordHash: "hash", CreatedAt: time.Now().UTC()}
	created, err := repo.Create(ctx, u)
	require.NoError(t, err)
	assert.Equal(t, "u1", created.ID)

	dup, err := repo.Create(ctx, entities.User{ID: "u2", Email: "ana@example.com"})
	require.NoError(t, err)
	assert.Empty(t, dup.ID)

	got, err := repo.GetByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "hash", got.PasswordHash)
	assert.Equal(t, "u1", got.ID)
}
