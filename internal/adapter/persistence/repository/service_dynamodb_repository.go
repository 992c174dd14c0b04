package repository

import (
	"context"
	"time"

	"agenda_facil/internal/domain/entities"
	"agenda_facil/internal/usecase/interfaces"
)

const defaultServicesTableName = "services"

type serviceItem struct {
	ID        string  `dynamodbav:"id"`
	Name      string  `dynamodbav:"name"`
	Duration  string  `dynamodbav:"duration"`
	Price     float64 `dynamodbav:"price"`
	CreatedAt string  `dynamodbav:"created_at"`
	UpdatedAt string  `dynamodbav:"updated_at"`
}

type ServiceDynamoRepository struct {
	table dynamoTable[entities.Service, serviceItem]
}

var _ interfaces.IServiceRepository = (*ServiceDynamoRepository)(nil)

func NewServiceDynamoRepository(ddb DynamoAPI) *ServiceDynamoRepository {
	return &ServiceDynamoRepository{table: dynamoTable[entities.Service, serviceItem]{
		ddb:       ddb,
		tableName: getenvDefault("SERVICES_TABLE", defaultServicesTableName),
		keyAttr:   "id",
		toItem:    toServiceItem,
		fromItem:  fromServiceItem,
		keyOf:     func(s entities.Service) string { return s.ID },
		createdAt: func(s entities.Service) time.Time { return s.CreatedAt },
	}}
}

func (r *ServiceDynamoRepository) Create(ctx context.Context, s entities.Service) (entities.Service, error) {
	return r.table.create(ctx, s)
}

func (r *ServiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Service, error) {
	return r.table.get(ctx, id)
}

func (r *ServiceDynamoRepository) List(ctx context.Context) ([]entities.Service, error) {
	return r.table.list(ctx)
}

func (r *ServiceDynamoRepository) Update(ctx context.Context, s entities.Service) (entities.Service, error) {
	ok, err := r.table.put(ctx, s, true)
	if err != nil || !ok {
		return entities.Service{}, err
	}
	return s, nil
}

func (r *ServiceDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.table.delete(ctx, id)
}

func toServiceItem(s entities.Service) serviceItem {
	return serviceItem{
		ID:        s.ID,
		Name:      s.Name,
		Duration:  s.Duration,
		Price:     s.Price,
		CreatedAt: formatTime(s.CreatedAt),
		UpdatedAt: formatTime(s.UpdatedAt),
	}
}

func fromServiceItem(it serviceItem) entities.Service {
	return entities.Service{
		ID:        it.ID,
		Name:      it.Name,
		Duration:  it.Duration,
		Price:     it.Price,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
