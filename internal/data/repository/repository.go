package repository

import (
	"club-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User         UserRepository
	Session      SessionRepository
	OTP          OTPRepository
	Child        ChildRepository
	Club         ClubRepository
	Course       CourseRepository
	Subscription SubscriptionRepository
	Booking      BookingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:         NewUserRepository(db, log),
		Session:      NewSessionRepository(db, log),
		OTP:          NewOTPRepository(db, log),
		Child:        NewChildRepository(db, log),
		Club:         NewClubRepository(db, log),
		Course:       NewCourseRepository(db, log),
		Subscription: NewSubscriptionRepository(db, log),
		Booking:      NewBookingRepository(db, log),
	}
}

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}
