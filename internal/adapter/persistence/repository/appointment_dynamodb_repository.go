package repository

import (
	"context"
	"time"

	"agenda_facil/internal/domain/entities"
	"agenda_facil/internal/usecase/interfaces"
)

const defaultAppointmentsTableName = "appointments"

type appointmentItem struct {
	ID             string `dynamodbav:"id"`
	Title          string `dynamodbav:"title"`
	Date           string `dynamodbav:"date"`
	Time           string `dynamodbav:"time"`
	ClientID       string `dynamodbav:"client_id"`
	ProfessionalID string `dynamodbav:"professional_id"`
	ServiceID      string `dynamodbav:"service_id"`
	Status         string `dynamodbav:"status"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// AppointmentDynamoRepository persists appointments in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Date and time are stored as entered; no instant is precomputed so that the
// reading process decides the time zone.
type AppointmentDynamoRepository struct {
	table dynamoTable[entities.Appointment, appointmentItem]
}

var _ interfaces.IAppointmentRepository = (*AppointmentDynamoRepository)(nil)

func NewAppointmentDynamoRepository(ddb DynamoAPI) *AppointmentDynamoRepository {
	return &AppointmentDynamoRepository{table: dynamoTable[entities.Appointment, appointmentItem]{
		ddb:       ddb,
		tableName: getenvDefault("APPOINTMENTS_TABLE", defaultAppointmentsTableName),
		keyAttr:   "id",
		toItem:    toAppointmentItem,
		fromItem:  fromAppointmentItem,
		keyOf:     func(a entities.Appointment) string { return a.ID },
		createdAt: func(a entities.Appointment) time.Time { return a.CreatedAt },
	}}
}

func (r *AppointmentDynamoRepository) Create(ctx context.Context, a entities.Appointment) (entities.Appointment, error) {
	return r.table.create(ctx, a)
}

func (r *AppointmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Appointment, error) {
	return r.table.get(ctx, id)
}

func (r *AppointmentDynamoRepository) List(ctx context.Context) ([]entities.Appointment, error) {
	return r.table.list(ctx)
}

func (r *AppointmentDynamoRepository) Update(ctx context.Context, a entities.Appointment) (entities.Appointment, error) {
	ok, err := r.table.put(ctx, a, true)
	if err != nil || !ok {
		return entities.Appointment{}, err
	}
	return a, nil
}

func (r *AppointmentDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.table.delete(ctx, id)
}

func toAppointmentItem(a entities.Appointment) appointmentItem {
	return appointmentItem{
		ID:             a.ID,
		Title:          a.Title,
		Date:           a.Date,
		Time:           a.Time,
		ClientID:       a.ClientID,
		ProfessionalID: a.ProfessionalID,
		ServiceID:      a.ServiceID,
		Status:         string(a.Status),
		CreatedAt:      formatTime(a.CreatedAt),
		UpdatedAt:      formatTime(a.UpdatedAt),
	}
}

func fromAppointmentItem(it appointmentItem) entities.Appointment {
	return entities.Appointment{
		ID:             it.ID,
		Title:          it.Title,
		Date:           it.Date,
		Time:           it.Time,
		ClientID:       it.ClientID,
		ProfessionalID: it.ProfessionalID,
		ServiceID:      it.ServiceID,
		Status:         entities.AppointmentStatus(it.Status),
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}
