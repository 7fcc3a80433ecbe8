package match

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"roam/internal/models"
	"roam/internal/store"
)

// Engine records swipes and derives matches from mutual right-swipes.
type Engine struct {
	store store.Store
}

func NewEngine(st store.Store) *Engine {
	return &Engine{store: st}
}

// Entry is one row of a user's match list.
type Entry struct {
	MatchID   string       `json:"matchId"`
	User      *models.User `json:"user"`
	CreatedAt time.Time    `json:"createdAt"`
}

// RecordSwipe appends the swipe and reports whether the pair is now
// matched. The swipe log is append-only; repeat swipes on the same target
// are allowed and recorded as new rows. The returned Match is non-nil only
// when this call created the record, so callers can fire one-shot
// notifications without double-sending on the losing side of the race.
func (e *Engine) RecordSwipe(ctx context.Context, actorID, targetID, direction string) (bool, *models.Match, error) {
	sw := &models.Swipe{
		ID:           uuid.NewString(),
		UserID:       actorID,
		TargetUserID: targetID,
		Direction:    direction,
		CreatedAt:    time.Now().UTC(),
	}
	if err := e.store.CreateSwipe(ctx, sw); err != nil {
		return false, nil, err
	}
	if direction != models.SwipeRight {
		return false, nil, nil
	}

	mutual, err := e.store.HasRightSwipe(ctx, targetID, actorID)
	if err != nil {
		return false, nil, err
	}
	if !mutual {
		return false, nil, nil
	}

	a, b := actorID, targetID
	if b < a {
		a, b = b, a
	}
	m := &models.Match{
		ID:        uuid.NewString(),
		UserA:     a,
		UserB:     b,
		CreatedAt: time.Now().UTC(),
	}
	err = e.store.CreateMatch(ctx, m)
	if errors.Is(err, store.ErrDuplicatePair) {
		// Lost the insert race or the pair matched earlier; either way the
		// pair is matched and this call still reports true.
		return true, nil, nil
	} else if err != nil {
		return false, nil, err
	}
	return true, m, nil
}

// ListMatches resolves each match to the other member's profile. Matches
// whose other user has since vanished are dropped, not errored.
func (e *Engine) ListMatches(ctx context.Context, userID string) ([]Entry, error) {
	matches, err := e.store.MatchesForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	entries := []Entry{}
	for _, m := range matches {
		other, err := e.store.GetUserByID(ctx, m.Other(userID))
		if errors.Is(err, store.ErrNotFound) {
			continue
		} else if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{MatchID: m.ID, User: other, CreatedAt: m.CreatedAt})
	}
	return entries, nil
}
