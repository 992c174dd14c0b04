package interfaces

import (
	"context"

	"agenda_facil/internal/domain/agenda"
)

// ISnapshotProvider supplies the four collections the agenda engine reads.
// Implementations decide where the data lives; the engine only sees the snapshot.

type ISnapshotProvider interface {
	Load(ctx context.Context) (agenda.Snapshot, error)
}
