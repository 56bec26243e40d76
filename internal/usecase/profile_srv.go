package usecase

import (
	"context"

	"club-booking/internal/data/cache"
	"club-booking/internal/data/entity"
	"club-booking/internal/data/repository"
	"club-booking/internal/dto/request"
	"club-booking/internal/dto/response"
	"club-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProfileService manages the child profiles of the authenticated parent.
type ProfileService interface {
	FetchChildren(ctx context.Context, parentID uuid.UUID) ([]response.ChildResponse, error)
	AddChild(ctx context.Context, parentID uuid.UUID, req *request.CreateChildRequest) (*response.ChildResponse, error)
	UpdateChild(ctx context.Context, parentID, childID uuid.UUID, req *request.UpdateChildRequest) (*response.ChildResponse, error)
	RemoveChild(ctx context.Context, parentID, childID uuid.UUID) error
}

type profileService struct {
	childRepo repository.ChildRepository
	subs      *cache.SubscriptionCache
	log       *zap.Logger
}

func NewProfileService(childRepo repository.ChildRepository, subs *cache.SubscriptionCache, log *zap.Logger) ProfileService {
	return &profileService{
		childRepo: childRepo,
		subs:      subs,
		log:       log.With(zap.String("service", "profile")),
	}
}

func (s *profileService) FetchChildren(ctx context.Context, parentID uuid.UUID) ([]response.ChildResponse, error) {
	children, err := s.childRepo.FindByParentID(ctx, parentID)
	if err != nil {
		return nil, wrapError(ErrPersistence, "Failed to load profiles. Please try again.", err)
	}
	return response.ChildrenToResponse(children), nil
}

func (s *profileService) AddChild(ctx context.Context, parentID uuid.UUID, req *request.CreateChildRequest) (*response.ChildResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, newError(ErrValidation, "validation failed: "+utils.FormatValidationErrors(errs))
	}

	child := &entity.Child{
		ParentID: parentID,
		Name:     req.Name,
		Age:      req.Age,
		Avatar:   req.Avatar,
		Color:    req.Color,
	}
	if child.Avatar == "" && child.Name != "" {
		child.Avatar = string([]rune(child.Name)[:1])
	}

	if err := s.childRepo.Create(ctx, child); err != nil {
		return nil, wrapError(ErrPersistence, "Failed to add profile. Please try again.", err)
	}

	s.log.Info("Child added", zap.String("parent_id", parentID.String()), zap.String("child_id", child.ID.String()))

	resp := response.ChildToResponse(child)
	return &resp, nil
}

func (s *profileService) UpdateChild(ctx context.Context, parentID, childID uuid.UUID, req *request.UpdateChildRequest) (*response.ChildResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, newError(ErrValidation, "validation failed: "+utils.FormatValidationErrors(errs))
	}

	child, err := s.ownedChild(ctx, parentID, childID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		child.Name = *req.Name
	}
	if req.Age != nil {
		child.Age = *req.Age
	}
	if req.Avatar != nil {
		child.Avatar = *req.Avatar
	}
	if req.Color != nil {
		child.Color = *req.Color
	}

	if err := s.childRepo.Update(ctx, child); err != nil {
		return nil, wrapError(ErrPersistence, "Failed to update profile. Please try again.", err)
	}

	resp := response.ChildToResponse(child)
	return &resp, nil
}

func (s *profileService) RemoveChild(ctx context.Context, parentID, childID uuid.UUID) error {
	if _, err := s.ownedChild(ctx, parentID, childID); err != nil {
		return err
	}

	if err := s.childRepo.Delete(ctx, childID); err != nil {
		return wrapError(ErrPersistence, "Failed to remove profile. Please try again.", err)
	}

	// subscriptions go with the child row
	s.subs.Invalidate(childID)

	s.log.Info("Child removed", zap.String("parent_id", parentID.String()), zap.String("child_id", childID.String()))
	return nil
}

func (s *profileService) ownedChild(ctx context.Context, parentID, childID uuid.UUID) (*entity.Child, error) {
	return findOwnedChild(ctx, s.childRepo, parentID, childID)
}

// findOwnedChild loads a child and checks that it belongs to parentID.
func findOwnedChild(ctx context.Context, repo repository.ChildRepository, parentID, childID uuid.UUID) (*entity.Child, error) {
	child, err := repo.FindByID(ctx, childID)
	if err != nil {
		return nil, wrapError(ErrPersistence, "Failed to load profile. Please try again.", err)
	}
	if child == nil {
		return nil, newError(ErrNotFound, "Child profile not found")
	}
	if child.ParentID != parentID {
		return nil, newError(ErrForbidden, "This profile belongs to another account")
	}
	return child, nil
}
