package usecase

import (
	"context"
	"errors"
	"log"

	"agenda_facil/internal/domain/agenda"
	"agenda_facil/internal/usecase/interfaces"
)

// RepositorySnapshotProvider reads the four agenda collections through the repository
// ports, so it works the same over DynamoDB or Redis.
type RepositorySnapshotProvider struct {
	clients       interfaces.IClientRepository
	professionals interfaces.IProfessionalRepository
	services      interfaces.IServiceRepository
	appointments  interfaces.IAppointmentRepository
}

var _ interfaces.ISnapshotProvider = (*RepositorySnapshotProvider)(nil)

func NewRepositorySnapshotProvider(
	clients interfaces.IClientRepository,
	professionals interfaces.IProfessionalRepository,
	services interfaces.IServiceRepository,
	appointments interfaces.IAppointmentRepository,
) *RepositorySnapshotProvider {
	return &RepositorySnapshotProvider{
		clients:       clients,
		professionals: professionals,
		services:      services,
		appointments:  appointments,
	}
}

func (p *RepositorySnapshotProvider) Load(ctx context.Context) (agenda.Snapshot, error) {
	if p.clients == nil || p.professionals == nil || p.services == nil || p.appointments == nil {
		return agenda.Snapshot{}, errors.New("snapshot repositories not configured")
	}

	var (
		s   agenda.Snapshot
		err error
	)
	if s.Clients, err = p.clients.List(ctx); err != nil {
		log.Printf("[snapshot][usecase] list clients failed err=%v", err)
		return agenda.Snapshot{}, err
	}
	if s.Professionals, err = p.professionals.List(ctx); err != nil {
		log.Printf("[snapshot][usecase] list professionals failed err=%v", err)
		return agenda.Snapshot{}, err
	}
	if s.Services, err = p.services.List(ctx); err != nil {
		log.Printf("[snapshot][usecase] list services failed err=%v", err)
		return agenda.Snapshot{}, err
	}
	if s.Appointments, err = p.appointments.List(ctx); err != nil {
		log.Printf("[snapshot][usecase] list appointments failed err=%v", err)
		return agenda.Snapshot{}, err
	}
	return s, nil
}
