package repository

import (
	"context"
	"time"

	"agenda_facil/internal/domain/entities"
	"agenda_facil/internal/usecase/interfaces"
)

const defaultProfessionalsTableName = "professionals"

type professionalItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Specialty string `dynamodbav:"specialty,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

type ProfessionalDynamoRepository struct {
	table dynamoTable[entities.Professional, professionalItem]
}

var _ interfaces.IProfessionalRepository = (*ProfessionalDynamoRepository)(nil)

func NewProfessionalDynamoRepository(ddb DynamoAPI) *ProfessionalDynamoRepository {
	return &ProfessionalDynamoRepository{table: dynamoTable[entities.Professional, professionalItem]{
		ddb:       ddb,
		tableName: getenvDefault("PROFESSIONALS_TABLE", defaultProfessionalsTableName),
		keyAttr:   "id",
		toItem:    toProfessionalItem,
		fromItem:  fromProfessionalItem,
		keyOf:     func(p entities.Professional) string { return p.ID },
		createdAt: func(p entities.Professional) time.Time { return p.CreatedAt },
	}}
}

func (r *ProfessionalDynamoRepository) Create(ctx context.Context, p entities.Professional) (entities.Professional, error) {
	return r.table.create(ctx, p)
}

func (r *ProfessionalDynamoRepository) GetByID(ctx context.Context, id string) (entities.Professional, error) {
	return r.table.get(ctx, id)
}

func (r *ProfessionalDynamoRepository) List(ctx context.Context) ([]entities.Professional, error) {
	return r.table.list(ctx)
}

func (r *ProfessionalDynamoRepository) Update(ctx context.Context, p entities.Professional) (entities.Professional, error) {
	ok, err := r.table.put(ctx, p, true)
	if err != nil || !ok {
		return entities.Professional{}, err
	}
	return p, nil
}

func (r *ProfessionalDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.table.delete(ctx, id)
}

func toProfessionalItem(p entities.Professional) professionalItem {
	return professionalItem{
		ID:        p.ID,
		Name:      p.Name,
		Specialty: p.Specialty,
		CreatedAt: formatTime(p.CreatedAt),
		UpdatedAt: formatTime(p.UpdatedAt),
	}
}

func fromProfessionalItem(it professionalItem) entities.Professional {
	return entities.Professional{
		ID:        it.ID,
		Name:      it.Name,
		Specialty: it.Specialty,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
