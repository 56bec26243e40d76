package usecase

import (
	"club-booking/internal/data/cache"
	"club-booking/internal/data/repository"
	"club-booking/internal/events"
	"club-booking/internal/notify"
	"club-booking/internal/schedule"
	"club-booking/pkg/utils"

	"go.uber.org/zap"
)

// Deps are the collaborators that are not database repositories.
type Deps struct {
	Subscriptions *cache.SubscriptionCache
	Catalog       cache.CatalogCache
	Searches      cache.RecentSearches
	Publisher     events.Publisher
	Mailer        notify.Mailer
	Schedule      schedule.Options
}

type Service struct {
	Auth         AuthService
	Profile      ProfileService
	Club         ClubService
	Subscription SubscriptionService
}

func NewService(repo *repository.Repository, deps Deps, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:         NewAuthService(repo, deps.Mailer, config, log),
		Profile:      NewProfileService(repo.Child, deps.Subscriptions, log),
		Club:         NewClubService(repo.Club, repo.Course, deps.Catalog, deps.Searches, log),
		Subscription: NewSubscriptionService(repo, deps.Subscriptions, deps.Publisher, deps.Schedule, log),
	}
}
