package entity

import (
	"time"

	"github.com/google/uuid"
)

// Child is a dependent profile under a parent account and the subject of subscriptions.
type Child struct {
	ID        uuid.UUID `db:"id"`
	ParentID  uuid.UUID `db:"parent_id"`
	Name      string    `db:"name"`
	Age       int       `db:"age"`
	Avatar    string    `db:"avatar"`
	Color     string    `db:"color"`
	CreatedAt time.Time `db:"created_at"`
}
