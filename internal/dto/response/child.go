package response

import (
	"time"

	"club-booking/internal/data/entity"
)

type ChildResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Avatar    string    `json:"avatar"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

func ChildToResponse(c *entity.Child) ChildResponse {
	return ChildResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Age:       c.Age,
		Avatar:    c.Avatar,
		Color:     c.Color,
		CreatedAt: c.CreatedAt.UTC(),
	}
}

func ChildrenToResponse(children []*entity.Child) []ChildResponse {
	out := make([]ChildResponse, len(children))
	for i, c := range children {
		out[i] = ChildToResponse(c)
	}
	return out
}
