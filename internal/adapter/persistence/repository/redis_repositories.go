package repository

import (
	"context"
	"time"

	"agenda_facil/internal/domain/entities"
	"agenda_facil/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// ClientRedisRepository stores clients in the "<prefix>:clientes" hash.
type ClientRedisRepository struct {
	col redisCollection[entities.Client, entities.Client]
}

var _ interfaces.IClientRepository = (*ClientRedisRepository)(nil)

func NewClientRedisRepository(rdb redis.UniversalClient) *ClientRedisRepository {
	return &ClientRedisRepository{col: newRedisCollection(rdb, redisClientsKey,
		func(c entities.Client) string { return c.ID },
		func(c entities.Client) time.Time { return c.CreatedAt },
	)}
}

func (r *ClientRedisRepository) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	ok, err := r.col.create(ctx, c)
	if err != nil {
		return entities.Client{}, err
	}
	if !ok {
		return entities.Client{}, ErrDuplicateKey
	}
	return c, nil
}

func (r *ClientRedisRepository) GetByID(ctx context.Context, id string) (entities.Client, error) {
	return r.col.get(ctx, id)
}

func (r *ClientRedisRepository) List(ctx context.Context) ([]entities.Client, error) {
	return r.col.list(ctx)
}

func (r *ClientRedisRepository) Update(ctx context.Context, c entities.Client) (entities.Client, error) {
	ok, err := r.col.update(ctx, c)
	if err != nil || !ok {
		return entities.Client{}, err
	}
	return c, nil
}

func (r *ClientRedisRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.col.delete(ctx, id)
}

// ProfessionalRedisRepository stores professionals in the "<prefix>:profissionais" hash.
type ProfessionalRedisRepository struct {
	col redisCollection[entities.Professional, entities.Professional]
}

var _ interfaces.IProfessionalRepository = (*ProfessionalRedisRepository)(nil)

func NewProfessionalRedisRepository(rdb redis.UniversalClient) *ProfessionalRedisRepository {
	return &ProfessionalRedisRepository{col: newRedisCollection(rdb, redisProfessionalsKey,
		func(p entities.Professional) string { return p.ID },
		func(p entities.Professional) time.Time { return p.CreatedAt },
	)}
}

func (r *ProfessionalRedisRepository) Create(ctx context.Context, p entities.Professional) (entities.Professional, error) {
	ok, err := r.col.create(ctx, p)
	if err != nil {
		return entities.Professional{}, err
	}
	if !ok {
		return entities.Professional{}, ErrDuplicateKey
	}
	return p, nil
}

func (r *ProfessionalRedisRepository) GetByID(ctx context.Context, id string) (entities.Professional, error) {
	return r.col.get(ctx, id)
}

func (r *ProfessionalRedisRepository) List(ctx context.Context) ([]entities.Professional, error) {
	return r.col.list(ctx)
}

func (r *ProfessionalRedisRepository) Update(ctx context.Context, p entities.Professional) (entities.Professional, error) {
	ok, err := r.col.update(ctx, p)
	if err != nil || !ok {
		return entities.Professional{}, err
	}
	return p, nil
}

func (r *ProfessionalRedisRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.col.delete(ctx, id)
}

// ServiceRedisRepository stores services in the "<prefix>:servicos" hash.
type ServiceRedisRepository struct {
	col redisCollection[entities.Service, entities.Service]
}

var _ interfaces.IServiceRepository = (*ServiceRedisRepository)(nil)

func NewServiceRedisRepository(rdb redis.UniversalClient) *ServiceRedisRepository {
	return &ServiceRedisRepository{col: newRedisCollection(rdb, redisServicesKey,
		func(s entities.Service) string { return s.ID },
		func(s entities.Service) time.Time { return s.CreatedAt },
	)}
}

func (r *ServiceRedisRepository) Create(ctx context.Context, s entities.Service) (entities.Service, error) {
	ok, err := r.col.create(ctx, s)
	if err != nil {
		return entities.Service{}, err
	}
	if !ok {
		return entities.Service{}, ErrDuplicateKey
	}
	return s, nil
}

func (r *ServiceRedisRepository) GetByID(ctx context.Context, id string) (entities.Service, error) {
	return r.col.get(ctx, id)
}

func (r *ServiceRedisRepository) List(ctx context.Context) ([]entities.Service, error) {
	return r.col.list(ctx)
}

func (r *ServiceRedisRepository) Update(ctx context.Context, s entities.Service) (entities.Service, error) {
	ok, err := r.col.update(ctx, s)
	if err != nil || !ok {
		return entities.Service{}, err
	}
	return s, nil
}

func (r *ServiceRedisRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.col.delete(ctx, id)
}

// AppointmentRedisRepository stores appointments in the "<prefix>:agendamentos" hash.
type AppointmentRedisRepository struct {
	col redisCollection[entities.Appointment, entities.Appointment]
}

var _ interfaces.IAppointmentRepository = (*AppointmentRedisRepository)(nil)

func NewAppointmentRedisRepository(rdb redis.UniversalClient) *AppointmentRedisRepository {
	return &AppointmentRedisRepository{col: newRedisCollection(rdb, redisAppointmentsKey,
		func(a entities.Appointment) string { return a.ID },
		func(a entities.Appointment) time.Time { return a.CreatedAt },
	)}
}

func (r *AppointmentRedisRepository) Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error) {
	ok, err := r.col.create(ctx, a)
	if err != nil {
		return entities.Appointment{}, err
	}
	if !ok {
		return entities.Appointment{}, ErrDuplicateKey
	}
	return a, nil
}

func (r *AppointmentRedisRepository) GetByID(ctx context.Context, id string) (entities.Appointment, error) {
	return r.col.get(ctx, id)
}

func (r *AppointmentRedisRepository) List(ctx context.Context) ([]entities.Appointment, error) {
	return r.col.list(ctx)
}

func (r *AppointmentRedisRepository) Update(ctx context.Context, a entities.Appointment) (entities.Appointment, error) {
	ok, err := r.col.update(ctx, a)
	if err != nil || !ok {
		return entities.Appointment{}, err
	}
	return a, nil
}

func (r *AppointmentRedisRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.col.delete(ctx, id)
}

// userRecord keeps the password hash, which entities.User hides from JSON.
type userRecord struct {
	ID           string    `json:"id"`
	Name         string    `json:"name,omitempty"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserRedisRepository stores accounts in the "<prefix>:usuarios" hash keyed by email.
type UserRedisRepository struct {
	col redisCollection[entities.User, userRecord]
}

var _ interfaces.IUserRepository = (*UserRedisRepository)(nil)

func NewUserRedisRepository(rdb redis.UniversalClient) *UserRedisRepository {
	return &UserRedisRepository{col: redisCollection[entities.User, userRecord]{
		rdb: rdb,
		key: redisKey(redisUsersKey),
		toRecord: func(u entities.User) userRecord {
			return userRecord{ID: u.ID, Name: u.Name, Email: u.Email, PasswordHash: u.PasswordHash, CreatedAt: u.CreatedAt}
		},
		fromRecord: func(r userRecord) entities.User {
			return entities.User{ID: r.ID, Name: r.Name, Email: r.Email, PasswordHash: r.PasswordHash, CreatedAt: r.CreatedAt}
		},
		keyOf:     func(u entities.User) string { return u.Email },
		createdAt: func(u entities.User) time.Time { return u.CreatedAt },
	}}
}

// Create returns a zero User when the email is already registered.
func (r *UserRedisRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	ok, err := r.col.create(ctx, u)
	if err != nil || !ok {
		return entities.User{}, err
	}
	return u, nil
}

func (r *UserRedisRepository) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	return r.col.get(ctx, email)
}
