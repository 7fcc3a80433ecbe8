package profile

import (
	"context"

	"roam/internal/models"
	"roam/internal/store"
)

// DiscoverPageSize caps a single discovery result.
const DiscoverPageSize = 50

// Directory owns profile edits and the discovery candidate set.
type Directory struct {
	store store.Store
}

func NewDirectory(st store.Store) *Directory {
	return &Directory{store: st}
}

// Update merges the provided fields onto the stored profile and returns
// the resulting full user. Absent fields are left untouched.
func (d *Directory) Update(ctx context.Context, userID string, upd models.ProfileUpdate) (*models.User, error) {
	if err := d.store.UpdateUser(ctx, userID, upd); err != nil {
		return nil, err
	}
	return d.store.GetUserByID(ctx, userID)
}

// Discover returns complete profiles the user has not swiped on yet, in
// storage order, excluding the user themselves.
func (d *Directory) Discover(ctx context.Context, userID string) ([]*models.User, error) {
	swiped, err := d.store.SwipedTargetIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	exclude := append(swiped, userID)
	candidates, err := d.store.FindDiscoverable(ctx, exclude, DiscoverPageSize)
	if err != nil {
		return nil, err
	}
	if candidates == nil {
		candidates = []*models.User{}
	}
	return candidates, nil
}
