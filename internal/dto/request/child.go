package request

type CreateChildRequest struct {
	Name   string `json:"name" validate:"required,min=1,max=100"`
	Age    int    `json:"age" validate:"gte=0,lte=18"`
	Avatar string `json:"avatar" validate:"omitempty,max=20"`
	Color  string `json:"color" validate:"omitempty,max=20"`
}

// UpdateChildRequest is a partial update; nil fields are left unchanged.
type UpdateChildRequest struct {
	Name   *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Age    *int    `json:"age,omitempty" validate:"omitempty,gte=0,lte=18"`
	Avatar *string `json:"avatar,omitempty" validate:"omitempty,max=20"`
	Color  *string `json:"color,omitempty" validate:"omitempty,max=20"`
}
