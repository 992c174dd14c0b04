package interfaces

import "time"

// IClock abstracts time.Now so "current month" logic stays testable.
type IClock interface {
	Now() time.Time
}
