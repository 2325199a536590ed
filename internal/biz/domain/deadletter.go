package domain

import "time"

// DeadLetter records a forward that failed after all retry attempts.
type DeadLetter struct {
	ID        string
	Source    string
	MessageID int32
	Reason    string
	CreatedAt time.Time
}
