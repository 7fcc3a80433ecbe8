package models

import "time"

const (
	SwipeLeft  = "left"
	SwipeRight = "right"
)

// Swipe is append-only: the same actor may swipe the same target any number
// of times.
type Swipe struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	TargetUserID string    `json:"targetUserId"`
	Direction    string    `json:"direction"`
	CreatedAt    time.Time `json:"createdAt"`
}
