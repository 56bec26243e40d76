package entity

import (
	"time"

	"github.com/google/uuid"
)

type OpeningHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

type ClubContact struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

type Club struct {
	ID             uuid.UUID               `db:"id"`
	Name           string                  `db:"name"`
	Description    string                  `db:"description"`
	Location       string                  `db:"location"`
	Distance       float64                 `db:"distance"`
	Rating         float64                 `db:"rating"`
	ReviewCount    int                     `db:"review_count"`
	Images         []string                `db:"images"`
	Amenities      []string                `db:"amenities"`
	OperatingHours map[string]OpeningHours `db:"operating_hours"`
	Contact        ClubContact             `db:"contact"`
	Category       string                  `db:"category"`
	CreatedAt      time.Time               `db:"created_at"`
}
