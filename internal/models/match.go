package models

import "time"

// Match records a mutual right-swipe. UserA/UserB are stored in sorted
// order so the unordered pair has exactly one representation.
type Match struct {
	ID        string    `json:"id"`
	UserA     string    `json:"userA"`
	UserB     string    `json:"userB"`
	CreatedAt time.Time `json:"createdAt"`
}

// Other returns the member of the pair that is not userID.
func (m *Match) Other(userID string) string {
	if m.UserA == userID {
		return m.UserB
	}
	return m.UserA
}
