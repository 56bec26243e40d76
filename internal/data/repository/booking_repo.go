package repository

import (
	"context"
	"fmt"
	"time"

	"club-booking/internal/data/entity"
	"club-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	// CreateBatch inserts all bookings in one transaction; either all rows land or none do.
	CreateBatch(ctx context.Context, bookings []*entity.Booking) error
	FindBySubscriptionID(ctx context.Context, subscriptionID uuid.UUID) ([]*entity.Booking, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

var bookingCopyColumns = []string{"id", "subscription_id", "session_date", "status", "can_reschedule", "created_at"}

func (r *bookingRepository) CreateBatch(ctx context.Context, bookings []*entity.Booking) error {
	if len(bookings) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	// COPY bypasses column defaults, so id and created_at are set here.
	now := time.Now().UTC()
	rows := make([][]any, len(bookings))
	for i, b := range bookings {
		if b.ID == uuid.Nil {
			b.ID = uuid.New()
		}
		if b.CreatedAt.IsZero() {
			b.CreatedAt = now
		}
		rows[i] = []any{b.ID, b.SubscriptionID, b.SessionDate, b.Status, b.CanReschedule, b.CreatedAt}
	}

	n, err := tx.CopyFrom(ctx, pgx.Identifier{"bookings"}, bookingCopyColumns, pgx.CopyFromRows(rows))
	if err != nil {
		r.log.Error("Failed to copy bookings",
			zap.Error(err),
			zap.String("subscription_id", bookings[0].SubscriptionID.String()),
			zap.Int("count", len(bookings)),
		)
		return fmt.Errorf("copy %d bookings: %w", len(bookings), err)
	}
	if int(n) != len(bookings) {
		return fmt.Errorf("copied %d of %d bookings", n, len(bookings))
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit bookings: %w", err)
	}

	return nil
}

func (r *bookingRepository) FindBySubscriptionID(ctx context.Context, subscriptionID uuid.UUID) ([]*entity.Booking, error) {
	query := `
		SELECT id, subscription_id, session_date, status, can_reschedule, created_at
		FROM bookings
		WHERE subscription_id = $1
		ORDER BY session_date ASC
	`

	rows, err := r.db.Query(ctx, query, subscriptionID)
	if err != nil {
		r.log.Error("Failed to query bookings",
			zap.Error(err),
			zap.String("subscription_id", subscriptionID.String()),
		)
		return nil, fmt.Errorf("query bookings of subscription %s: %w", subscriptionID, err)
	}
	defer rows.Close()

	bookings := make([]*entity.Booking, 0)
	for rows.Next() {
		var b entity.Booking
		if err := rows.Scan(&b.ID, &b.SubscriptionID, &b.SessionDate, &b.Status, &b.CanReschedule, &b.CreatedAt); err != nil {
			r.log.Error("Failed to scan booking", zap.Error(err))
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookings: %w", err)
	}

	return bookings, nil
}
