package store

import (
	"context"
	"sync"

	"roam/internal/models"
)

// MemoryStore is an in-memory Store used in tests. It keeps insertion
// order for users and swipes and enforces the same uniqueness rules as
// the MySQL schema.
type MemoryStore struct {
	mu      sync.Mutex
	users   []*models.User
	swipes  []*models.Swipe
	matches []*models.Match
	pairs   map[[2]string]bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{pairs: make(map[[2]string]bool)}
}

func copyUser(u *models.User) *models.User {
	c := *u
	c.Interests = append([]string(nil), u.Interests...)
	c.Photos = append([]string(nil), u.Photos...)
	return &c
}

func (s *MemoryStore) CreateUser(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return ErrDuplicateEmail
		}
	}
	s.users = append(s.users, copyUser(u))
	return nil
}

func (s *MemoryStore) GetUserByID(_ context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			return copyUser(u), nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return copyUser(u), nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) UpdateUser(_ context.Context, id string, upd models.ProfileUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID != id {
			continue
		}
		applyUpdate(u, upd)
		return nil
	}
	return ErrNotFound
}

func applyUpdate(u *models.User, upd models.ProfileUpdate) {
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Gender != nil {
		u.Gender = *upd.Gender
	}
	if upd.Age != nil {
		u.Age = *upd.Age
	}
	if upd.Race != nil {
		u.Race = *upd.Race
	}
	if upd.Reason != nil {
		u.Reason = *upd.Reason
	}
	if upd.Bio != nil {
		u.Bio = *upd.Bio
	}
	if upd.Location != nil {
		u.Location = *upd.Location
	}
	if upd.Interests != nil {
		u.Interests = append([]string(nil), (*upd.Interests)...)
	}
	if upd.Drinking != nil {
		u.Drinking = *upd.Drinking
	}
	if upd.Smokes != nil {
		u.Smokes = *upd.Smokes
	}
	if upd.Exercise != nil {
		u.Exercise = *upd.Exercise
	}
	if upd.Education != nil {
		u.Education = *upd.Education
	}
	if upd.HasPets != nil {
		u.HasPets = *upd.HasPets
	}
	if upd.HasKids != nil {
		u.HasKids = *upd.HasKids
	}
	if upd.CriminalRecord != nil {
		u.CriminalRecord = *upd.CriminalRecord
	}
	if upd.WeightKg != nil {
		u.WeightKg = *upd.WeightKg
	}
	if upd.WeightLbs != nil {
		u.WeightLbs = *upd.WeightLbs
	}
	if upd.Photos != nil {
		u.Photos = append([]string(nil), (*upd.Photos)...)
	}
	if upd.IsProfileComplete != nil {
		u.IsProfileComplete = *upd.IsProfileComplete
	}
}

func (s *MemoryStore) SetSubscription(_ context.Context, id, tier string, likesRemaining int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			u.Subscription = tier
			u.LikesRemaining = likesRemaining
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) FindDiscoverable(_ context.Context, exclude []string, limit int) ([]*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	skip := make(map[string]bool, len(exclude))
	for _, id := range exclude {
		skip[id] = true
	}
	var out []*models.User
	for _, u := range s.users {
		if !u.IsProfileComplete || skip[u.ID] {
			continue
		}
		out = append(out, copyUser(u))
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *MemoryStore) CreateSwipe(_ context.Context, sw *models.Swipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *sw
	s.swipes = append(s.swipes, &c)
	return nil
}

func (s *MemoryStore) HasRightSwipe(_ context.Context, userID, targetID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sw := range s.swipes {
		if sw.UserID == userID && sw.TargetUserID == targetID && sw.Direction == models.SwipeRight {
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryStore) SwipedTargetIDs(_ context.Context, userID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := make(map[string]bool)
	var ids []string
	for _, sw := range s.swipes {
		if sw.UserID == userID && !seen[sw.TargetUserID] {
			seen[sw.TargetUserID] = true
			ids = append(ids, sw.TargetUserID)
		}
	}
	return ids, nil
}

func (s *MemoryStore) CreateMatch(_ context.Context, m *models.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := [2]string{m.UserA, m.UserB}
	if s.pairs[key] {
		return ErrDuplicatePair
	}
	s.pairs[key] = true
	c := *m
	s.matches = append(s.matches, &c)
	return nil
}

// RemoveUser deletes a user row. Only tests use it, to simulate an account
// vanishing after swipes or matches referenced it.
func (s *MemoryStore) RemoveUser(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, u := range s.users {
		if u.ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return
		}
	}
}

func (s *MemoryStore) MatchesForUser(_ context.Context, userID string) ([]*models.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*models.Match
	for _, m := range s.matches {
		if m.UserA == userID || m.UserB == userID {
			c := *m
			out = append(out, &c)
		}
	}
	return out, nil
}
