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

type CourseRepository interface {
	// FindAll lists courses newest first; a nil clubID lists every club's courses.
	FindAll(ctx context.Context, clubID *uuid.UUID) ([]*entity.Course, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Course, error)
}

type courseRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCourseRepository(db database.PgxIface, log *zap.Logger) CourseRepository {
	return &courseRepository{
		db:  db,
		log: log.With(zap.String("repository", "course")),
	}
}

const courseColumns = `id, club_id, name, description, instructor, schedule, pricing,
	age_range, skill_level, spots_available, total_spots, category, created_at`

func scanCourse(row rowScanner) (*entity.Course, error) {
	var c entity.Course
	err := row.Scan(
		&c.ID,
		&c.ClubID,
		&c.Name,
		&c.Description,
		&c.Instructor,
		&c.Schedule,
		&c.Pricing,
		&c.AgeRange,
		&c.SkillLevel,
		&c.SpotsAvailable,
		&c.TotalSpots,
		&c.Category,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *courseRepository) FindAll(ctx context.Context, clubID *uuid.UUID) ([]*entity.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses`
	args := []any{}
	if clubID != nil {
		query += ` WHERE club_id = $1`
		args = append(args, *clubID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query courses", zap.Error(err))
		return nil, fmt.Errorf("query courses: %w", err)
	}
	defer rows.Close()

	courses := make([]*entity.Course, 0)
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			r.log.Error("Failed to scan course", zap.Error(err))
			return nil, fmt.Errorf("scan course: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate courses: %w", err)
	}

	return courses, nil
}

func (r *courseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = $1`

	course, err := scanCourse(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find course", zap.Error(err), zap.String("course_id", id.String()))
		return nil, fmt.Errorf("find course %s: %w", id, err)
	}

	return course, nil
}
