package entity

import (
	"time"

	"github.com/google/uuid"
)

type Instructor struct {
	Name       string `json:"name"`
	Bio        string `json:"bio"`
	Experience string `json:"experience"`
	Avatar     string `json:"avatar"`
}

// Pricing holds the per-type amounts. Amounts are informational; no charge is made.
type Pricing struct {
	DropIn    float64 `json:"drop_in"`
	Monthly   float64 `json:"monthly"`
	Quarterly float64 `json:"quarterly"`
}

// Price returns the amount for a subscription type, or false for an unknown type.
func (p Pricing) Price(t SubscriptionType) (float64, bool) {
	switch t {
	case SubscriptionDropIn:
		return p.DropIn, true
	case SubscriptionMonthly:
		return p.Monthly, true
	case SubscriptionQuarterly:
		return p.Quarterly, true
	}
	return 0, false
}

type Course struct {
	ID             uuid.UUID       `db:"id"`
	ClubID         uuid.UUID       `db:"club_id"`
	Name           string          `db:"name"`
	Description    string          `db:"description"`
	Instructor     Instructor      `db:"instructor"`
	Schedule       []ScheduleEntry `db:"schedule"`
	Pricing        Pricing         `db:"pricing"`
	AgeRange       string          `db:"age_range"`
	SkillLevel     string          `db:"skill_level"`
	SpotsAvailable int             `db:"spots_available"`
	TotalSpots     int             `db:"total_spots"`
	Category       string          `db:"category"`
	CreatedAt      time.Time       `db:"created_at"`
}
