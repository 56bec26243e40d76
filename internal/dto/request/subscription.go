package request

type SubscribeRequest struct {
	ChildID          string `json:"child_id" validate:"required,uuid"`
	CourseID         string `json:"course_id" validate:"required,uuid"`
	SubscriptionType string `json:"subscription_type" validate:"required,oneof=drop_in monthly quarterly"`
	PaymentMethod    string `json:"payment_method" validate:"required,max=100"`
}

type UpdateSubscriptionStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active expiring expired on_hold"`
}
