package wire

import (
	"club-booking/internal/adaptor"
	"club-booking/internal/data/repository"
	"club-booking/pkg/middleware"
	"club-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProfile(
	r chi.Router,
	profileHandler *adaptor.ProfileHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// /api/children/{id}/... subscription routes live in subscription_wire.go
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		r.Get("/api/children", profileHandler.ListChildren)
		r.Post("/api/children", profileHandler.CreateChild)
		r.Put("/api/children/{id}", profileHandler.UpdateChild)
		r.Delete("/api/children/{id}", profileHandler.DeleteChild)
	})
}
