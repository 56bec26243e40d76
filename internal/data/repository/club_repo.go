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

type ClubRepository interface {
	FindAll(ctx context.Context) ([]*entity.Club, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Club, error)
}

type clubRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewClubRepository(db database.PgxIface, log *zap.Logger) ClubRepository {
	return &clubRepository{
		db:  db,
		log: log.With(zap.String("repository", "club")),
	}
}

const clubColumns = `id, name, description, location, distance, rating, review_count,
	images, amenities, operating_hours, contact, category, created_at`

// operating_hours and contact are JSONB; pgx decodes them straight into the map and struct.
func scanClub(row rowScanner) (*entity.Club, error) {
	var c entity.Club
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Description,
		&c.Location,
		&c.Distance,
		&c.Rating,
		&c.ReviewCount,
		&c.Images,
		&c.Amenities,
		&c.OperatingHours,
		&c.Contact,
		&c.Category,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// FindAll returns every club, best rated first.
func (r *clubRepository) FindAll(ctx context.Context) ([]*entity.Club, error) {
	query := `SELECT ` + clubColumns + ` FROM clubs ORDER BY rating DESC, name ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to query clubs", zap.Error(err))
		return nil, fmt.Errorf("query clubs: %w", err)
	}
	defer rows.Close()

	clubs := make([]*entity.Club, 0)
	for rows.Next() {
		club, err := scanClub(rows)
		if err != nil {
			r.log.Error("Failed to scan club", zap.Error(err))
			return nil, fmt.Errorf("scan club: %w", err)
		}
		clubs = append(clubs, club)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate clubs: %w", err)
	}

	return clubs, nil
}

func (r *clubRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Club, error) {
	query := `SELECT ` + clubColumns + ` FROM clubs WHERE id = $1`

	club, err := scanClub(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find club", zap.Error(err), zap.String("club_id", id.String()))
		return nil, fmt.Errorf("find club %s: %w", id, err)
	}

	return club, nil
}
