package usecase

import (
	"time"

	"agenda_facil/internal/usecase/interfaces"
)

// SystemClock implements IClock with the process clock.
type SystemClock struct{}

var _ interfaces.IClock = SystemClock{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
