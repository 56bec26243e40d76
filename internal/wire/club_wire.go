package wire

import (
	"club-booking/internal/adaptor"
	"club-booking/internal/data/repository"
	"club-booking/pkg/middleware"
	"club-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireClub(
	r chi.Router,
	clubHandler *adaptor.ClubHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		r.Get("/api/clubs", clubHandler.ListClubs)
		r.Get("/api/clubs/featured", clubHandler.FeaturedClubs)
		r.Get("/api/clubs/{id}", clubHandler.GetClub)

		r.Get("/api/courses", clubHandler.ListCourses)
		r.Get("/api/courses/{id}", clubHandler.GetCourse)

		r.Get("/api/searches/recent", clubHandler.RecentSearches)
		r.Delete("/api/searches/recent", clubHandler.ClearRecentSearches)
	})
}
