package response

import (
	"time"

	"club-booking/internal/data/entity"
)

type SubscriptionResponse struct {
	ID               string                    `json:"id"`
	ChildID          string                    `json:"child_id"`
	CourseID         string                    `json:"course_id"`
	SubscriptionType entity.SubscriptionType   `json:"subscription_type"`
	Status           entity.SubscriptionStatus `json:"status"`
	StartDate        time.Time                 `json:"start_date"`
	EndDate          time.Time                 `json:"end_date"`
	NextSession      *time.Time                `json:"next_session"`
	RenewalDate      time.Time                 `json:"renewal_date"`
	PaymentMethod    string                    `json:"payment_method"`
	CreatedAt        time.Time                 `json:"created_at"`
	BookingCount     *int                      `json:"booking_count,omitempty"`
}

type SubscriptionListResponse struct {
	Subscriptions []SubscriptionResponse `json:"subscriptions"`
	Source        Source                 `json:"source"`
	Warning       string                 `json:"warning,omitempty"`
}

// SubscriptionLookupResponse answers "is this child subscribed to this course";
// Subscription is nil when not.
type SubscriptionLookupResponse struct {
	Subscription *SubscriptionResponse `json:"subscription"`
	Source       Source                `json:"source"`
}

type BookingResponse struct {
	ID             string               `json:"id"`
	SubscriptionID string               `json:"subscription_id"`
	SessionDate    time.Time            `json:"session_date"`
	Status         entity.BookingStatus `json:"status"`
	CanReschedule  bool                 `json:"can_reschedule"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Source   Source            `json:"source"`
	Warning  string            `json:"warning,omitempty"`
}

func SubscriptionToResponse(s *entity.Subscription) SubscriptionResponse {
	resp := SubscriptionResponse{
		ID:               s.ID.String(),
		ChildID:          s.ChildID.String(),
		CourseID:         s.CourseID.String(),
		SubscriptionType: s.Type,
		Status:           s.Status,
		StartDate:        s.StartDate.UTC(),
		EndDate:          s.EndDate.UTC(),
		RenewalDate:      s.RenewalDate.UTC(),
		PaymentMethod:    s.PaymentMethod,
		CreatedAt:        s.CreatedAt.UTC(),
	}
	if s.NextSession != nil {
		next := s.NextSession.UTC()
		resp.NextSession = &next
	}
	return resp
}

func SubscriptionsToResponse(subs []*entity.Subscription) []SubscriptionResponse {
	out := make([]SubscriptionResponse, len(subs))
	for i, s := range subs {
		out[i] = SubscriptionToResponse(s)
	}
	return out
}

func BookingToResponse(b *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:             b.ID.String(),
		SubscriptionID: b.SubscriptionID.String(),
		SessionDate:    b.SessionDate.UTC(),
		Status:         b.Status,
		CanReschedule:  b.CanReschedule,
	}
}

func BookingsToResponse(bookings []*entity.Booking) []BookingResponse {
	out := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = BookingToResponse(b)
	}
	return out
}
