package repository

import (
	"context"
	"fmt"
	"log"
	"strings"

	"agenda_facil/internal/infrastructure/database"
	"agenda_facil/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const (
	StorageDynamoDB = "dynamodb"
	StorageRedis    = "redis"
)

// Repositories groups every port implementation of one storage backend.
type Repositories struct {
	Clients       interfaces.IClientRepository
	Professionals interfaces.IProfessionalRepository
	Services      interfaces.IServiceRepository
	Appointments  interfaces.IAppointmentRepository
	Users         interfaces.IUserRepository

	close func() error
}

func (r Repositories) Close() error {
	if r.close == nil {
		return nil
	}
	return r.close()
}

// NewRepositoriesFromEnv builds the repositories selected by STORAGE_DRIVER
// ("dynamodb" by default, or "redis").
func NewRepositoriesFromEnv(ctx context.Context) (Repositories, error) {
	driver := strings.ToLower(strings.TrimSpace(getenvDefault("STORAGE_DRIVER", StorageDynamoDB)))
	log.Printf("[storage] driver=%s", driver)

	switch driver {
	case StorageDynamoDB:
		ddb, err := database.NewDynamoDBClientFromEnv(ctx)
		if err != nil {
			return Repositories{}, fmt.Errorf("dynamodb config: %w", err)
		}
		return NewDynamoRepositories(ddb), nil
	case StorageRedis:
		rdb, err := database.NewRedisClientFromEnv(ctx)
		if err != nil {
			return Repositories{}, err
		}
		repos := NewRedisRepositories(rdb)
		repos.close = rdb.Close
		return repos, nil
	default:
		return Repositories{}, fmt.Errorf("unsupported STORAGE_DRIVER %q", driver)
	}
}

func NewDynamoRepositories(ddb DynamoAPI) Repositories {
	return Repositories{
		Clients:       NewClientDynamoRepository(ddb),
		Professionals: NewProfessionalDynamoRepository(ddb),
		Services:      NewServiceDynamoRepository(ddb),
		Appointments:  NewAppointmentDynamoRepository(ddb),
		Users:         NewUserDynamoRepository(ddb),
	}
}

func NewRedisRepositories(rdb redis.UniversalClient) Repositories {
	return Repositories{
		Clients:       NewClientRedisRepository(rdb),
		Professionals: NewProfessionalRedisRepository(rdb),
		Services:      NewServiceRedisRepository(rdb),
		Appointments:  NewAppointmentRedisRepository(rdb),
		Users:         NewUserRedisRepository(rdb),
	}
}
