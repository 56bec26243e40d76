package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"club-booking/internal/data/cache"
	"club-booking/internal/data/entity"
	"club-booking/internal/data/fallback"
	"club-booking/internal/data/repository"
	"club-booking/internal/dto/request"
	"club-booking/internal/dto/response"
	"club-booking/internal/events"
	"club-booking/internal/schedule"
	"club-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	msgSubscribeFailed   = "Failed to create subscription. Please try again."
	msgDateFormat        = "Date format error. Please try subscribing again."
	msgAlreadySubscribed = "This child already has a subscription to this course."
	msgBookingsFailed    = "Subscription created, but its sessions could not be scheduled."

	publishTimeout = 5 * time.Second
)

// SubscriptionService owns the subscription lifecycle and keeps the
// per-child subscription cache in step with the database.
type SubscriptionService interface {
	SubscribeToCourse(ctx context.Context, parentID uuid.UUID, req *request.SubscribeRequest) (*response.SubscriptionResponse, error)
	CancelSubscription(ctx context.Context, parentID, subscriptionID uuid.UUID) error
	UpdateSubscriptionStatus(ctx context.Context, parentID, subscriptionID uuid.UUID, req *request.UpdateSubscriptionStatusRequest) error
	FetchSubscriptions(ctx context.Context, parentID, childID uuid.UUID) (*response.SubscriptionListResponse, error)
	FetchBookings(ctx context.Context, parentID, subscriptionID uuid.UUID) (*response.BookingListResponse, error)
	GetSubscriptionsForChild(ctx context.Context, parentID, childID uuid.UUID) (*response.SubscriptionListResponse, error)
	GetSubscriptionForCourse(ctx context.Context, parentID, childID, courseID uuid.UUID) (*response.SubscriptionLookupResponse, error)
}

type subscriptionService struct {
	childRepo   repository.ChildRepository
	courseRepo  repository.CourseRepository
	subRepo     repository.SubscriptionRepository
	bookingRepo repository.BookingRepository
	subs        *cache.SubscriptionCache
	publisher   events.Publisher
	schedule    schedule.Options
	now         func() time.Time
	log         *zap.Logger
}

func NewSubscriptionService(
	repo *repository.Repository,
	subs *cache.SubscriptionCache,
	publisher events.Publisher,
	opts schedule.Options,
	log *zap.Logger,
) SubscriptionService {
	return &subscriptionService{
		childRepo:   repo.Child,
		courseRepo:  repo.Course,
		subRepo:     repo.Subscription,
		bookingRepo: repo.Booking,
		subs:        subs,
		publisher:   publisher,
		schedule:    opts,
		now:         time.Now,
		log:         log.With(zap.String("service", "subscription")),
	}
}

// SubscribeToCourse creates an active subscription and, for monthly and
// quarterly plans, one booking per scheduled session in the period.
//
// When the subscription row is stored but its bookings are not, the
// subscription is still returned, together with ErrPartialMaterialization.
func (s *subscriptionService) SubscribeToCourse(ctx context.Context, parentID uuid.UUID, req *request.SubscribeRequest) (*response.SubscriptionResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Subscribe validation failed", zap.Any("errors", errs))
		return nil, newError(ErrValidation, "validation failed: "+utils.FormatValidationErrors(errs))
	}

	childID, err := uuid.Parse(req.ChildID)
	if err != nil {
		return nil, newError(ErrValidation, "validation failed: child_id: Must be a valid UUID")
	}
	courseID, err := uuid.Parse(req.CourseID)
	if err != nil {
		return nil, newError(ErrValidation, "validation failed: course_id: Must be a valid UUID")
	}
	subType := entity.SubscriptionType(req.SubscriptionType)

	if _, err := findOwnedChild(ctx, s.childRepo, parentID, childID); err != nil {
		return nil, err
	}

	course, err := s.courseRepo.FindByID(ctx, courseID)
	if err != nil {
		return nil, wrapError(ErrPersistence, msgSubscribeFailed, err)
	}
	if course == nil {
		return nil, newError(ErrNotFound, "Course not found")
	}

	existing, err := s.findExisting(ctx, childID, courseID)
	if err != nil {
		return nil, wrapError(ErrPersistence, msgSubscribeFailed, err)
	}
	if existing != nil {
		s.log.Info("Duplicate subscription rejected",
			zap.String("child_id", childID.String()),
			zap.String("course_id", courseID.String()),
			zap.String("existing_id", existing.ID.String()),
		)
		return nil, newError(ErrDuplicateSubscription, msgAlreadySubscribed)
	}

	period, err := schedule.ComputeDates(subType, s.now())
	if err != nil {
		return nil, wrapError(ErrValidation, "validation failed: subscription_type: Must be one of: drop_in, monthly, quarterly", err)
	}

	var sessions []time.Time
	if subType != entity.SubscriptionDropIn {
		sessions = schedule.Expand(course.Schedule, period.Start, period.End, s.schedule)
	}

	sub := &entity.Subscription{
		ChildID:       childID,
		CourseID:      courseID,
		Type:          subType,
		Status:        entity.SubscriptionStatusActive,
		StartDate:     period.Start,
		EndDate:       period.End,
		NextSession:   firstSessionFrom(sessions, period.Start),
		RenewalDate:   period.Renewal,
		PaymentMethod: req.PaymentMethod,
	}

	if err := s.subRepo.Create(ctx, sub); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, newError(ErrDuplicateSubscription, msgAlreadySubscribed)
		}
		if isDateError(err) {
			return nil, wrapError(ErrPersistence, msgDateFormat, err)
		}
		return nil, wrapError(ErrPersistence, msgSubscribeFailed, err)
	}

	var (
		bookingCount int
		partialErr   error
	)
	if len(sessions) > 0 {
		bookings := schedule.MaterializeBookings(sub.ID, sessions)
		if err := s.bookingRepo.CreateBatch(ctx, bookings); err != nil {
			s.log.Error("Failed to materialize bookings",
				zap.Error(err),
				zap.String("subscription_id", sub.ID.String()),
				zap.Int("sessions", len(sessions)),
			)
			partialErr = wrapError(ErrPartialMaterialization, msgBookingsFailed, err)
		} else {
			bookingCount = len(bookings)
		}
	}

	s.subs.Add(sub)

	ev := events.NewSubscriptionEvent(sub, bookingCount, s.now())
	ev.Amount, _ = course.Pricing.Price(subType)
	s.publish(ctx, events.SubscriptionCreated, ev)

	s.log.Info("Subscription created",
		zap.String("subscription_id", sub.ID.String()),
		zap.String("child_id", childID.String()),
		zap.String("course_id", courseID.String()),
		zap.String("type", string(subType)),
		zap.Int("bookings", bookingCount),
	)

	resp := response.SubscriptionToResponse(sub)
	resp.BookingCount = &bookingCount
	return &resp, partialErr
}

// CancelSubscription marks the subscription expired. Its bookings are kept.
func (s *subscriptionService) CancelSubscription(ctx context.Context, parentID, subscriptionID uuid.UUID) error {
	sub, err := s.ownedSubscription(ctx, parentID, subscriptionID)
	if err != nil {
		return err
	}

	if err := s.subRepo.UpdateStatus(ctx, subscriptionID, entity.SubscriptionStatusExpired); err != nil {
		return wrapError(ErrPersistence, "Failed to cancel subscription. Please try again.", err)
	}

	s.subs.UpdateStatus(subscriptionID, entity.SubscriptionStatusExpired)
	sub.Status = entity.SubscriptionStatusExpired
	s.publish(ctx, events.SubscriptionCancelled, events.NewSubscriptionEvent(sub, 0, s.now()))

	s.log.Info("Subscription cancelled", zap.String("subscription_id", subscriptionID.String()))
	return nil
}

// UpdateSubscriptionStatus overwrites the status. Any of the four statuses
// may follow any other.
func (s *subscriptionService) UpdateSubscriptionStatus(ctx context.Context, parentID, subscriptionID uuid.UUID, req *request.UpdateSubscriptionStatusRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return newError(ErrValidation, "validation failed: "+utils.FormatValidationErrors(errs))
	}

	status := entity.SubscriptionStatus(req.Status)
	if !status.Valid() {
		return newError(ErrValidation, "validation failed: status: Must be one of: active, expiring, expired, on_hold")
	}

	sub, err := s.ownedSubscription(ctx, parentID, subscriptionID)
	if err != nil {
		return err
	}

	if err := s.subRepo.UpdateStatus(ctx, subscriptionID, status); err != nil {
		return wrapError(ErrPersistence, "Failed to update subscription status. Please try again.", err)
	}

	s.subs.UpdateStatus(subscriptionID, status)
	sub.Status = status
	s.publish(ctx, events.SubscriptionStatusChanged, events.NewSubscriptionEvent(sub, 0, s.now()))

	return nil
}

// FetchSubscriptions reloads the child's subscriptions from the database and
// replaces the cached entry. On failure it answers from the offline dataset
// and leaves the cache untouched.
func (s *subscriptionService) FetchSubscriptions(ctx context.Context, parentID, childID uuid.UUID) (*response.SubscriptionListResponse, error) {
	if _, err := findOwnedChild(ctx, s.childRepo, parentID, childID); err != nil {
		if errors.Is(err, ErrPersistence) {
			return fallbackSubscriptions(childID, err), nil
		}
		return nil, err
	}

	subs, err := s.subRepo.FindByChildID(ctx, childID)
	if err != nil {
		s.log.Warn("Falling back to offline subscriptions", zap.Error(err), zap.String("child_id", childID.String()))
		return fallbackSubscriptions(childID, err), nil
	}

	s.subs.Replace(childID, subs)

	return &response.SubscriptionListResponse{
		Subscriptions: response.SubscriptionsToResponse(subs),
		Source:        response.SourceLive,
	}, nil
}

// FetchBookings lists a subscription's sessions in chronological order.
func (s *subscriptionService) FetchBookings(ctx context.Context, parentID, subscriptionID uuid.UUID) (*response.BookingListResponse, error) {
	if _, err := s.ownedSubscription(ctx, parentID, subscriptionID); err != nil {
		if errors.Is(err, ErrPersistence) {
			return fallbackBookings(subscriptionID, err), nil
		}
		return nil, err
	}

	bookings, err := s.bookingRepo.FindBySubscriptionID(ctx, subscriptionID)
	if err != nil {
		s.log.Warn("Falling back to offline bookings", zap.Error(err), zap.String("subscription_id", subscriptionID.String()))
		return fallbackBookings(subscriptionID, err), nil
	}

	return &response.BookingListResponse{
		Bookings: response.BookingsToResponse(bookings),
		Source:   response.SourceLive,
	}, nil
}

// GetSubscriptionsForChild answers from the cache only.
func (s *subscriptionService) GetSubscriptionsForChild(ctx context.Context, parentID, childID uuid.UUID) (*response.SubscriptionListResponse, error) {
	if _, err := findOwnedChild(ctx, s.childRepo, parentID, childID); err != nil {
		return nil, err
	}

	return &response.SubscriptionListResponse{
		Subscriptions: response.SubscriptionsToResponse(s.subs.ForChild(childID)),
		Source:        response.SourceCached,
	}, nil
}

// GetSubscriptionForCourse answers from the cache only; a nil Subscription
// means the child is not subscribed as far as this process knows.
func (s *subscriptionService) GetSubscriptionForCourse(ctx context.Context, parentID, childID, courseID uuid.UUID) (*response.SubscriptionLookupResponse, error) {
	if _, err := findOwnedChild(ctx, s.childRepo, parentID, childID); err != nil {
		return nil, err
	}

	resp := &response.SubscriptionLookupResponse{Source: response.SourceCached}
	if sub := s.subs.FindForCourse(childID, courseID); sub != nil {
		r := response.SubscriptionToResponse(sub)
		resp.Subscription = &r
	}
	return resp, nil
}

// findExisting checks the cache first and the database only when the
// child's cache entry does not mirror a full read.
func (s *subscriptionService) findExisting(ctx context.Context, childID, courseID uuid.UUID) (*entity.Subscription, error) {
	if sub := s.subs.FindForCourse(childID, courseID); sub != nil {
		return sub, nil
	}
	if s.subs.Loaded(childID) {
		return nil, nil
	}

	sub, err := s.subRepo.FindByChildAndCourse(ctx, childID, courseID)
	if err != nil {
		return nil, err
	}
	if sub != nil {
		s.subs.Add(sub)
	}
	return sub, nil
}

func (s *subscriptionService) ownedSubscription(ctx context.Context, parentID, subscriptionID uuid.UUID) (*entity.Subscription, error) {
	sub, err := s.subRepo.FindByID(ctx, subscriptionID)
	if err != nil {
		return nil, wrapError(ErrPersistence, "Failed to load subscription. Please try again.", err)
	}
	if sub == nil {
		return nil, newError(ErrNotFound, "Subscription not found")
	}

	if _, err := findOwnedChild(ctx, s.childRepo, parentID, sub.ChildID); err != nil {
		return nil, err
	}
	return sub, nil
}

// publish is best effort and outlives a cancelled request.
func (s *subscriptionService) publish(ctx context.Context, key string, ev events.SubscriptionEvent) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := s.publisher.Publish(ctx, key, ev); err != nil {
		s.log.Warn("Failed to publish event",
			zap.Error(err),
			zap.String("event", key),
			zap.String("subscription_id", ev.SubscriptionID.String()),
		)
	}
}

func firstSessionFrom(sessions []time.Time, from time.Time) *time.Time {
	for _, t := range sessions {
		if !t.Before(from) {
			next := t
			return &next
		}
	}
	return nil
}

func isDateError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "timestamp") || strings.Contains(msg, "timezone") || strings.Contains(msg, "time zone")
}

func fallbackSubscriptions(childID uuid.UUID, cause error) *response.SubscriptionListResponse {
	return &response.SubscriptionListResponse{
		Subscriptions: response.SubscriptionsToResponse(fallback.SubscriptionsForChild(childID)),
		Source:        response.SourceFallback,
		Warning:       offlineWarning(cause),
	}
}

func fallbackBookings(subscriptionID uuid.UUID, cause error) *response.BookingListResponse {
	return &response.BookingListResponse{
		Bookings: response.BookingsToResponse(fallback.BookingsForSubscription(subscriptionID)),
		Source:   response.SourceFallback,
		Warning:  offlineWarning(cause),
	}
}
