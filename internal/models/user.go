package models

import "time"

// Subscription tiers. Free is assigned on registration; the rest come from
// the plan catalog.
const (
	TierFree     = "free"
	TierPlus     = "plus"
	TierGold     = "gold"
	TierPlatinum = "platinum"
)

// UnlimitedLikes is the likes_remaining sentinel set on any paid tier.
const UnlimitedLikes = -1

type User struct {
	ID                string    `json:"id"`
	Email             string    `json:"email"`
	PasswordHash      string    `json:"-"`
	Name              string    `json:"name"`
	Gender            string    `json:"gender,omitempty"`
	Age               int       `json:"age,omitempty"`
	Race              string    `json:"race,omitempty"`
	Reason            string    `json:"reason,omitempty"`
	Bio               string    `json:"bio,omitempty"`
	Location          string    `json:"location,omitempty"`
	Interests         []string  `json:"interests,omitempty"`
	Drinking          string    `json:"drinking,omitempty"`
	Smokes            string    `json:"smokes,omitempty"`
	Exercise          string    `json:"exercise,omitempty"`
	Education         string    `json:"education,omitempty"`
	HasPets           string    `json:"hasPets,omitempty"`
	HasKids           string    `json:"hasKids,omitempty"`
	CriminalRecord    string    `json:"criminalRecord,omitempty"`
	WeightKg          string    `json:"weightKg,omitempty"`
	WeightLbs         string    `json:"weightLbs,omitempty"`
	Photos            []string  `json:"photos,omitempty"`
	IsProfileComplete bool      `json:"isProfileComplete"`
	Subscription      string    `json:"subscription"`
	LikesRemaining    int       `json:"likesRemaining"`
	CreatedAt         time.Time `json:"createdAt"`
}

// ProfileUpdate carries a partial profile edit. A nil field means "not
// provided"; a pointer to a zero value is still applied.
type ProfileUpdate struct {
	Name              *string   `json:"name,omitempty"`
	Gender            *string   `json:"gender,omitempty"`
	Age               *int      `json:"age,omitempty"`
	Race              *string   `json:"race,omitempty"`
	Reason            *string   `json:"reason,omitempty"`
	Bio               *string   `json:"bio,omitempty"`
	Location          *string   `json:"location,omitempty"`
	Interests         *[]string `json:"interests,omitempty"`
	Drinking          *string   `json:"drinking,omitempty"`
	Smokes            *string   `json:"smokes,omitempty"`
	Exercise          *string   `json:"exercise,omitempty"`
	Education         *string   `json:"education,omitempty"`
	HasPets           *string   `json:"hasPets,omitempty"`
	HasKids           *string   `json:"hasKids,omitempty"`
	CriminalRecord    *string   `json:"criminalRecord,omitempty"`
	WeightKg          *string   `json:"weightKg,omitempty"`
	WeightLbs         *string   `json:"weightLbs,omitempty"`
	Photos            *[]string `json:"photos,omitempty"`
	IsProfileComplete *bool     `json:"isProfileComplete,omitempty"`
}
