package repository

import (
	"context"
	"errors"
	"fmt"

	"club-booking/internal/data/entity"
	"club-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type SubscriptionRepository interface {
	Create(ctx context.Context, sub *entity.Subscription) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error)
	FindByChildID(ctx context.Context, childID uuid.UUID) ([]*entity.Subscription, error)
	FindByChildAndCourse(ctx context.Context, childID, courseID uuid.UUID) (*entity.Subscription, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.SubscriptionStatus) error
}

type subscriptionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSubscriptionRepository(db database.PgxIface, log *zap.Logger) SubscriptionRepository {
	return &subscriptionRepository{
		db:  db,
		log: log.With(zap.String("repository", "subscription")),
	}
}

const subscriptionColumns = `id, child_id, course_id, subscription_type, status, start_date, end_date,
	next_session, renewal_date, payment_method, created_at, updated_at`

func scanSubscription(row rowScanner) (*entity.Subscription, error) {
	var s entity.Subscription
	err := row.Scan(
		&s.ID,
		&s.ChildID,
		&s.CourseID,
		&s.Type,
		&s.Status,
		&s.StartDate,
		&s.EndDate,
		&s.NextSession,
		&s.RenewalDate,
		&s.PaymentMethod,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts the row and fills ID, CreatedAt and UpdatedAt from the database.
// A second subscription for the same child and course yields ErrDuplicate.
func (r *subscriptionRepository) Create(ctx context.Context, sub *entity.Subscription) error {
	query := `
		INSERT INTO subscriptions (child_id, course_id, subscription_type, status, start_date,
		                           end_date, next_session, renewal_date, payment_method)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		sub.ChildID,
		sub.CourseID,
		sub.Type,
		sub.Status,
		sub.StartDate,
		sub.EndDate,
		sub.NextSession,
		sub.RenewalDate,
		sub.PaymentMethod,
	).Scan(&sub.ID, &sub.CreatedAt, &sub.UpdatedAt)

	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	if err != nil {
		r.log.Error("Failed to create subscription",
			zap.Error(err),
			zap.String("child_id", sub.ChildID.String()),
			zap.String("course_id", sub.CourseID.String()),
		)
		return fmt.Errorf("create subscription for child %s: %w", sub.ChildID, err)
	}

	return nil
}

func (r *subscriptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions WHERE id = $1`

	sub, err := scanSubscription(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find subscription", zap.Error(err), zap.String("subscription_id", id.String()))
		return nil, fmt.Errorf("find subscription %s: %w", id, err)
	}

	return sub, nil
}

func (r *subscriptionRepository) FindByChildID(ctx context.Context, childID uuid.UUID) ([]*entity.Subscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions WHERE child_id = $1 ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query, childID)
	if err != nil {
		r.log.Error("Failed to query subscriptions", zap.Error(err), zap.String("child_id", childID.String()))
		return nil, fmt.Errorf("query subscriptions of child %s: %w", childID, err)
	}
	defer rows.Close()

	subs := make([]*entity.Subscription, 0)
	for rows.Next() {
		sub, err := scanSubscription(rows)
		if err != nil {
			r.log.Error("Failed to scan subscription", zap.Error(err))
			return nil, fmt.Errorf("scan subscription: %w", err)
		}
		subs = append(subs, sub)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate subscriptions: %w", err)
	}

	return subs, nil
}

func (r *subscriptionRepository) FindByChildAndCourse(ctx context.Context, childID, courseID uuid.UUID) (*entity.Subscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions WHERE child_id = $1 AND course_id = $2`

	sub, err := scanSubscription(r.db.QueryRow(ctx, query, childID, courseID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find subscription for course",
			zap.Error(err),
			zap.String("child_id", childID.String()),
			zap.String("course_id", courseID.String()),
		)
		return nil, fmt.Errorf("find subscription of child %s for course %s: %w", childID, courseID, err)
	}

	return sub, nil
}

func (r *subscriptionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.SubscriptionStatus) error {
	query := `UPDATE subscriptions SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update subscription status",
			zap.Error(err),
			zap.String("subscription_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update status of subscription %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("subscription %s not found", id)
	}

	return nil
}
