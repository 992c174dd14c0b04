package usecase

import (
	"context"
	"time"

	"agenda_facil/internal/domain/agenda"
	"agenda_facil/internal/usecase/interfaces"
)

type IDashboardUseCase interface {
	Monthly(ctx context.Context, reference time.Time) (agenda.MonthlyReport, error)
}

type DashboardUseCase struct {
	snapshots interfaces.ISnapshotProvider
	clock     interfaces.IClock
	loc       *time.Location
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(snapshots interfaces.ISnapshotProvider, clock interfaces.IClock, loc *time.Location) *DashboardUseCase {
	if clock == nil {
		clock = SystemClock{}
	}
	if loc == nil {
		loc = time.Local
	}
	return &DashboardUseCase{snapshots: snapshots, clock: clock, loc: loc}
}

// Monthly reports on the month containing reference, or the current month when
// reference is zero.
func (u *DashboardUseCase) Monthly(ctx context.Context, reference time.Time) (agenda.MonthlyReport, error) {
	if reference.IsZero() {
		reference = u.clock.Now()
	}
	snapshot, err := u.snapshots.Load(ctx)
	if err != nil {
		return agenda.MonthlyReport{}, err
	}
	return agenda.AggregateMonthly(snapshot, reference, u.loc), nil
}
