package adaptor

import (
	"club-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth         *AuthHandler
	Profile      *ProfileHandler
	Club         *ClubHandler
	Subscription *SubscriptionHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(service.Auth, log),
		Profile:      NewProfileHandler(service.Profile, log),
		Club:         NewClubHandler(service.Club, log),
		Subscription: NewSubscriptionHandler(service.Subscription, log),
	}
}
