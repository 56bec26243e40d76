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

type ChildRepository interface {
	Create(ctx context.Context, child *entity.Child) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Child, error)
	FindByParentID(ctx context.Context, parentID uuid.UUID) ([]*entity.Child, error)
	Update(ctx context.Context, child *entity.Child) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type childRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewChildRepository(db database.PgxIface, log *zap.Logger) ChildRepository {
	return &childRepository{
		db:  db,
		log: log.With(zap.String("repository", "child")),
	}
}

func scanChild(row rowScanner) (*entity.Child, error) {
	var c entity.Child
	if err := row.Scan(&c.ID, &c.ParentID, &c.Name, &c.Age, &c.Avatar, &c.Color, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create fills in ID and CreatedAt from the database.
func (r *childRepository) Create(ctx context.Context, child *entity.Child) error {
	query := `
		INSERT INTO children (parent_id, name, age, avatar, color)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		child.ParentID,
		child.Name,
		child.Age,
		child.Avatar,
		child.Color,
	).Scan(&child.ID, &child.CreatedAt)
	if err != nil {
		r.log.Error("Failed to create child",
			zap.Error(err),
			zap.String("parent_id", child.ParentID.String()),
		)
		return fmt.Errorf("create child for parent %s: %w", child.ParentID, err)
	}

	return nil
}

func (r *childRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Child, error) {
	query := `SELECT id, parent_id, name, age, avatar, color, created_at FROM children WHERE id = $1`

	child, err := scanChild(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find child", zap.Error(err), zap.String("child_id", id.String()))
		return nil, fmt.Errorf("find child %s: %w", id, err)
	}

	return child, nil
}

func (r *childRepository) FindByParentID(ctx context.Context, parentID uuid.UUID) ([]*entity.Child, error) {
	query := `
		SELECT id, parent_id, name, age, avatar, color, created_at
		FROM children
		WHERE parent_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(ctx, query, parentID)
	if err != nil {
		r.log.Error("Failed to query children", zap.Error(err), zap.String("parent_id", parentID.String()))
		return nil, fmt.Errorf("query children of %s: %w", parentID, err)
	}
	defer rows.Close()

	children := make([]*entity.Child, 0)
	for rows.Next() {
		child, err := scanChild(rows)
		if err != nil {
			r.log.Error("Failed to scan child", zap.Error(err))
			return nil, fmt.Errorf("scan child: %w", err)
		}
		children = append(children, child)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate children: %w", err)
	}

	return children, nil
}

func (r *childRepository) Update(ctx context.Context, child *entity.Child) error {
	query := `UPDATE children SET name = $2, age = $3, avatar = $4, color = $5 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, child.ID, child.Name, child.Age, child.Avatar, child.Color)
	if err != nil {
		r.log.Error("Failed to update child", zap.Error(err), zap.String("child_id", child.ID.String()))
		return fmt.Errorf("update child %s: %w", child.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("child %s not found", child.ID)
	}

	return nil
}

func (r *childRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM children WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete child", zap.Error(err), zap.String("child_id", id.String()))
		return fmt.Errorf("delete child %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("child %s not found", id)
	}

	return nil
}
