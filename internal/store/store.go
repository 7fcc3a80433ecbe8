package store

import (
	"context"
	"errors"

	"roam/internal/models"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrDuplicatePair is returned when a match for the same unordered pair
	// already exists. Callers treat it as success.
	ErrDuplicatePair = errors.New("match already exists for pair")
)

// Store is the persistence boundary. Implementations must enforce email
// uniqueness and match-pair uniqueness themselves; callers never rely on a
// read-then-write sequence for either.
type Store interface {
	CreateUser(ctx context.Context, u *models.User) error
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUser(ctx context.Context, id string, upd models.ProfileUpdate) error
	SetSubscription(ctx context.Context, id, tier string, likesRemaining int) error
	// FindDiscoverable returns complete profiles whose id is not in exclude,
	// in storage order, at most limit.
	FindDiscoverable(ctx context.Context, exclude []string, limit int) ([]*models.User, error)

	CreateSwipe(ctx context.Context, s *models.Swipe) error
	// HasRightSwipe reports whether userID has an outstanding right swipe
	// on targetID.
	HasRightSwipe(ctx context.Context, userID, targetID string) (bool, error)
	SwipedTargetIDs(ctx context.Context, userID string) ([]string, error)

	// CreateMatch inserts a match for the canonical pair (UserA < UserB).
	// Returns ErrDuplicatePair if one already exists.
	CreateMatch(ctx context.Context, m *models.Match) error
	MatchesForUser(ctx context.Context, userID string) ([]*models.Match, error)
}
