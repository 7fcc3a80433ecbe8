package subscription

import (
	"context"
	"errors"

	"roam/internal/models"
	"roam/internal/store"
)

// ErrInvalidPlan is returned for a plan id outside the catalog.
var ErrInvalidPlan = errors.New("invalid plan")

// catalog is static; there is no storage behind it.
var catalog = []models.Plan{
	{
		ID:    models.TierPlus,
		Name:  "Roam Plus",
		Price: 1.99,
		Features: []string{
			"Unlimited likes", "Rewind last swipe", "5 Super Likes per week",
			"1 Boost per month", "Passport to any location", "Hide ads", "Control your profile",
		},
	},
	{
		ID:      models.TierGold,
		Name:    "Roam Gold",
		Price:   10.99,
		Popular: true,
		Features: []string{
			"Everything in Plus", "See who likes you", "New Top Picks every day",
			"Weekly Super Likes", "Priority likes", "Message before matching",
		},
	},
	{
		ID:    models.TierPlatinum,
		Name:  "Roam Platinum",
		Price: 20.99,
		Features: []string{
			"Everything in Gold", "Prioritized likes", "See likes sent in the last 7 days",
			"Top-of-stack placement", "First impressions", "Exclusive badge",
		},
	},
}

// Ledger assigns subscription tiers.
type Ledger struct {
	store store.Store
}

func NewLedger(st store.Store) *Ledger {
	return &Ledger{store: st}
}

// Plans returns the static catalog in display order.
func (l *Ledger) Plans() []models.Plan {
	return catalog
}

// Subscribe sets the user's tier and lifts the likes cap. Subscribing to
// the same plan twice is a no-op on the second call.
func (l *Ledger) Subscribe(ctx context.Context, userID, planID string) (*models.Plan, error) {
	var plan *models.Plan
	for i := range catalog {
		if catalog[i].ID == planID {
			plan = &catalog[i]
			break
		}
	}
	if plan == nil {
		return nil, ErrInvalidPlan
	}
	if err := l.store.SetSubscription(ctx, userID, plan.ID, models.UnlimitedLikes); err != nil {
		return nil, err
	}
	return plan, nil
}
