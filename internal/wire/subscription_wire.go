package wire

import (
	"club-booking/internal/adaptor"
	"club-booking/internal/data/repository"
	"club-booking/pkg/middleware"
	"club-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireSubscription(
	r chi.Router,
	subscriptionHandler *adaptor.SubscriptionHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		r.Post("/api/subscriptions", subscriptionHandler.Subscribe)
		r.Get("/api/subscriptions/{id}/bookings", subscriptionHandler.Bookings)
		r.Put("/api/subscriptions/{id}/cancel", subscriptionHandler.Cancel)
		r.Put("/api/subscriptions/{id}/status", subscriptionHandler.UpdateStatus)

		r.Get("/api/children/{id}/subscriptions", subscriptionHandler.ListForChild)
		r.Get("/api/children/{id}/courses/{courseId}/subscription", subscriptionHandler.ForCourse)
	})
}
