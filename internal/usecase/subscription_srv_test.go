package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"club-booking/internal/data/cache"
	"club-booking/internal/data/entity"
	"club-booking/internal/data/fallback"
	"club-booking/internal/data/repository"
	"club-booking/internal/dto/request"
	"club-booking/internal/dto/response"
	"club-booking/internal/events"
	"club-booking/internal/schedule"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Monday, 3 March 2025.
var fixedNow = time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC)

type subscriptionFixture struct {
	children  *MockChildRepository
	courses   *MockCourseRepository
	subRepo   *MockSubscriptionRepository
	bookings  *MockBookingRepository
	publisher *MockPublisher
	cache     *cache.SubscriptionCache
	svc       *subscriptionService

	parentID uuid.UUID
	child    *entity.Child
	course   *entity.Course
}

func newSubscriptionFixture(t *testing.T) *subscriptionFixture {
	t.Helper()

	f := &subscriptionFixture{
		children:  new(MockChildRepository),
		courses:   new(MockCourseRepository),
		subRepo:   new(MockSubscriptionRepository),
		bookings:  new(MockBookingRepository),
		publisher: new(MockPublisher),
		cache:     cache.NewSubscriptionCache(),
		parentID:  uuid.New(),
	}
	f.child = &entity.Child{ID: uuid.New(), ParentID: f.parentID, Name: "Sarah", Age: 8}
	f.course = &entity.Course{
		ID:      uuid.New(),
		ClubID:  uuid.New(),
		Name:    "Swimming Basics",
		Pricing: entity.Pricing{DropIn: 25, Monthly: 120, Quarterly: 300},
		Schedule: []entity.ScheduleEntry{
			{Days: []time.Weekday{time.Monday, time.Wednesday}, Time: entity.TimeOfDay{Hour: 16}},
		},
	}

	f.svc = &subscriptionService{
		childRepo:   f.children,
		courseRepo:  f.courses,
		subRepo:     f.subRepo,
		bookingRepo: f.bookings,
		subs:        f.cache,
		publisher:   f.publisher,
		schedule:    schedule.DefaultOptions,
		now:         func() time.Time { return fixedNow },
		log:         zap.NewNop(),
	}
	return f
}

func (f *subscriptionFixture) request(subType entity.SubscriptionType) *request.SubscribeRequest {
	return &request.SubscribeRequest{
		ChildID:          f.child.ID.String(),
		CourseID:         f.course.ID.String(),
		SubscriptionType: string(subType),
		PaymentMethod:    "card",
	}
}

func (f *subscriptionFixture) expectOwnership() {
	f.children.On("FindByID", mock.Anything, f.child.ID).Return(f.child, nil)
}

func (f *subscriptionFixture) expectCourse() {
	f.courses.On("FindByID", mock.Anything, f.course.ID).Return(f.course, nil)
}

func (f *subscriptionFixture) expectCreate(id uuid.UUID) {
	f.subRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Subscription")).
		Run(func(args mock.Arguments) {
			sub := args.Get(1).(*entity.Subscription)
			sub.ID = id
			sub.CreatedAt = fixedNow
			sub.UpdatedAt = fixedNow
		}).
		Return(nil).Once()
}

func (f *subscriptionFixture) assertAll(t *testing.T) {
	f.children.AssertExpectations(t)
	f.courses.AssertExpectations(t)
	f.subRepo.AssertExpectations(t)
	f.bookings.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
}

func TestSubscribeToCourse_MonthlyCreatesBookings(t *testing.T) {
	f := newSubscriptionFixture(t)
	subID := uuid.New()

	f.expectOwnership()
	f.expectCourse()
	f.subRepo.On("FindByChildAndCourse", mock.Anything, f.child.ID, f.course.ID).Return(nil, nil).Once()
	f.expectCreate(subID)

	var stored []*entity.Booking
	f.bookings.On("CreateBatch", mock.Anything, mock.AnythingOfType("[]*entity.Booking")).
		Run(func(args mock.Arguments) { stored = args.Get(1).([]*entity.Booking) }).
		Return(nil).Once()
	f.publisher.On("Publish", mock.Anything, events.SubscriptionCreated, mock.MatchedBy(func(ev events.SubscriptionEvent) bool {
		return ev.SubscriptionID == subID && ev.BookingCount == 10 && ev.Amount == 120
	})).Return(nil).Once()

	resp, err := f.svc.SubscribeToCourse(context.Background(), f.parentID, f.request(entity.SubscriptionMonthly))
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, subID.String(), resp.ID)
	assert.Equal(t, entity.SubscriptionStatusActive, resp.Status)
	assert.Equal(t, fixedNow, resp.StartDate)
	assert.Equal(t, time.Date(2025, time.April, 3, 10, 0, 0, 0, time.UTC), resp.EndDate)
	assert.Equal(t, resp.EndDate, resp.RenewalDate)
	require.NotNil(t, resp.NextSession)
	assert.Equal(t, time.Date(2025, time.March, 3, 16, 0, 0, 0, time.UTC), *resp.NextSession)

	// Mondays 3..31 March and Wednesdays 5 March..2 April
	require.Len(t, stored, 10)
	require.NotNil(t, resp.BookingCount)
	assert.Equal(t, 10, *resp.BookingCount)
	for i, b := range stored {
		assert.Equal(t, subID, b.SubscriptionID)
		assert.Equal(t, entity.BookingStatusBooked, b.Status)
		assert.True(t, b.CanReschedule)
		if i > 0 {
			assert.True(t, b.SessionDate.After(stored[i-1].SessionDate))
		}
	}
	assert.Equal(t, time.Date(2025, time.April, 2, 16, 0, 0, 0, time.UTC), stored[len(stored)-1].SessionDate)

	cached := f.cache.FindForCourse(f.child.ID, f.course.ID)
	require.NotNil(t, cached)
	assert.Equal(t, subID, cached.ID)
	assert.False(t, f.cache.Loaded(f.child.ID))

	f.assertAll(t)
}

func TestSubscribeToCourse_DropInSkipsBookings(t *testing.T) {
	f := newSubscriptionFixture(t)

	f.expectOwnership()
	f.expectCourse()
	f.subRepo.On("FindByChildAndCourse", mock.Anything, f.child.ID, f.course.ID).Return(nil, nil).Once()
	f.expectCreate(uuid.New())
	f.publisher.On("Publish", mock.Anything, events.SubscriptionCreated, mock.Anything).Return(nil).Once()

	resp, err := f.svc.SubscribeToCourse(context.Background(), f.parentID, f.request(entity.SubscriptionDropIn))
	require.NoError(t, err)

	assert.Equal(t, entity.SubscriptionDropIn, resp.SubscriptionType)
	assert.Equal(t, time.Date(2025, time.September, 3, 10, 0, 0, 0, time.UTC), resp.EndDate)
	assert.Nil(t, resp.NextSession)
	assert.Equal(t, 0, *resp.BookingCount)

	f.bookings.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
	f.assertAll(t)
}

func TestSubscribeToCourse_DuplicateFromCache(t *testing.T) {
	f := newSubscriptionFixture(t)
	f.cache.Add(&entity.Subscription{
		Base:     entity.Base{ID: uuid.New()},
		ChildID:  f.child.ID,
		CourseID: f.course.ID,
		Status:   entity.SubscriptionStatusExpired,
	})

	f.expectOwnership()
	f.expectCourse()

	resp, err := f.svc.SubscribeToCourse(context.Background(), f.parentID, f.request(entity.SubscriptionMonthly))
	assert.Nil(t, resp)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateSubscription)
	assert.Equal(t, msgAlreadySubscribed, err.Error())

	f.subRepo.AssertNotCalled(t, "FindByChildAndCourse", mock.Anything, mock.Anything, mock.Anything)
	f.subRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.assertAll(t)
}

func TestSubscribeToCourse_SecondCallIsDuplicate(t *testing.T) {
	f := newSubscriptionFixture(t)
	subID := uuid.New()

	f.expectOwnership()
	f.expectCourse()
	f.subRepo.On("FindByChildAndCourse", mock.Anything, f.child.ID, f.course.ID).Return(nil, nil).Once()
	f.expectCreate(subID)
	f.bookings.On("CreateBatch", mock.Anything, mock.Anything).Return(nil).Once()
	f.publisher.On("Publish", mock.Anything, events.SubscriptionCreated, mock.Anything).Return(nil).Once()

	first, err := f.svc.SubscribeToCourse(context.Background(), f.parentID, f.request(entity.SubscriptionMonthly))
	require.NoError(t, err)
	assert.Equal(t, subID.String(), first.ID)

	second, err := f.svc.SubscribeToCourse(context.Background(), f.parentID, f.request(entity.SubscriptionMonthly))
	assert.Nil(t, second)
	assert.ErrorIs(t, err, ErrDuplicateSubscription)

	f.subRepo.AssertNumberOfCalls(t, "Create", 1)
	f.subRepo.AssertNumberOfCalls(t, "FindByChildAndCourse", 1)
	f.bookings.AssertNumberOfCalls(t, "CreateBatch", 1)
	f.publisher.AssertNumberOfCalls(t, "Publish", 1)
	f.assertAll(t)
}

func TestSubscribeToCourse_DuplicateFromDatabaseWhenCacheCold(t *testing.T) {
	f := newSubscriptionFixture(t)
	existing := &entity.Subscription{
		Base:     entity.Base{ID: uuid.New()},
		ChildID:  f.child.ID,
		CourseID: f.course.ID,
		Status:   entity.SubscriptionStatusActive,
	}

	f.expectOwnership()
	f.expectCourse()
	f.subRepo.On("FindByChildAndCourse", mock.Anything, f.child.ID, f.course.ID).Return(existing, nil).Once()

	_, err := f.svc.SubscribeToCourse(context.Background(), f.parentID, f.request(entity.SubscriptionQuarterly))
	assert.ErrorIs(t, err, ErrDuplicateSubscription)

	// the row found in the database is now cached
	assert.NotNil(t, f.cache.FindForCourse(f.child.ID, f.course.ID))
	f.assertAll(t)
}

func TestSubscribeToCourse_LoadedCacheSkipsDatabaseCheck(t *testing.T) {
	f := newSubscriptionFixture(t)
	f.cache.Replace(f.child.ID, nil)

	f.expectOwnership()
	f.expectCourse()
	f.expectCreate(uuid.New())
	f.bookings.On("CreateBatch", mock.Anything, mock.Anything).Return(nil).Once()
	f.publisher.On("Publish", mock.Anything, events.SubscriptionCreated, mock.Anything).Return(nil).Once()

	_, err := f.svc.SubscribeToCourse(context.Background(), f.parentID, f.request(entity.SubscriptionMonthly))
	require.NoError(t, err)

	f.subRepo.AssertNotCalled(t, "FindByChildAndCourse", mock.Anything, mock.Anything, mock.Anything)
	f.assertAll(t)
}

func TestSubscribeToCourse_UniqueViolationIsDuplicate(t *testing.T) {
	f := newSubscriptionFixture(t)

	f.expectOwnership()
	f.expectCourse()
	f.subRepo.On("FindByChildAndCourse", mock.Anything, f.child.ID, f.course.ID).Return(nil, nil).Once()
	f.subRepo.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicate).Once()

	_, err := f.svc.SubscribeToCourse(context.Background(), f.parentID, f.request(entity.SubscriptionMonthly))
	assert.ErrorIs(t, err, ErrDuplicateSubscription)
	assert.Nil(t, f.cache.FindForCourse(f.child.ID, f.course.ID))
	f.assertAll(t)
}

func TestSubscribeToCourse_CreateFailureMessages(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{
			name:    "date error",
			err:     &pgconn.PgError{Code: "22007", Message: "invalid input syntax for type timestamp with time zone"},
			message: msgDateFormat,
		},
		{
			name:    "other error",
			err:     errors.New("connection reset by peer"),
			message: msgSubscribeFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSubscriptionFixture(t)

			f.expectOwnership()
			f.expectCourse()
			f.subRepo.On("FindByChildAndCourse", mock.Anything, f.child.ID, f.course.ID).Return(nil, nil).Once()
			f.subRepo.On("Create", mock.Anything, mock.Anything).Return(tt.err).Once()

			resp, err := f.svc.SubscribeToCourse(context.Background(), f.parentID, f.request(entity.SubscriptionMonthly))
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, ErrPersistence)
			assert.Equal(t, tt.message, err.Error())
			f.assertAll(t)
		})
	}
}

func TestSubscribeToCourse_BookingFailureKeepsSubscription(t *testing.T) {
	f := newSubscriptionFixture(t)
	subID := uuid.New()

	f.expectOwnership()
	f.expectCourse()
	f.subRepo.On("FindByChildAndCourse", mock.Anything, f.child.ID, f.course.ID).Return(nil, nil).Once()
	f.expectCreate(subID)
	f.bookings.On("CreateBatch", mock.Anything, mock.Anything).Return(errors.New("copy failed")).Once()
	f.publisher.On("Publish", mock.Anything, events.SubscriptionCreated, mock.Anything).Return(nil).Once()

	resp, err := f.svc.SubscribeToCourse(context.Background(), f.parentID, f.request(entity.SubscriptionMonthly))
	require.NotNil(t, resp)
	assert.ErrorIs(t, err, ErrPartialMaterialization)
	assert.Equal(t, subID.String(), resp.ID)
	assert.Equal(t, 0, *resp.BookingCount)

	assert.NotNil(t, f.cache.FindForCourse(f.child.ID, f.course.ID))
	f.assertAll(t)
}

func TestSubscribeToCourse_PublishFailureIsIgnored(t *testing.T) {
	f := newSubscriptionFixture(t)

	f.expectOwnership()
	f.expectCourse()
	f.subRepo.On("FindByChildAndCourse", mock.Anything, f.child.ID, f.course.ID).Return(nil, nil).Once()
	f.expectCreate(uuid.New())
	f.bookings.On("CreateBatch", mock.Anything, mock.Anything).Return(nil).Once()
	f.publisher.On("Publish", mock.Anything, events.SubscriptionCreated, mock.Anything).Return(errors.New("channel closed")).Once()

	_, err := f.svc.SubscribeToCourse(context.Background(), f.parentID, f.request(entity.SubscriptionMonthly))
	assert.NoError(t, err)
	f.assertAll(t)
}

func TestSubscribeToCourse_Rejections(t *testing.T) {
	t.Run("invalid type", func(t *testing.T) {
		f := newSubscriptionFixture(t)
		_, err := f.svc.SubscribeToCourse(context.Background(), f.parentID, f.request("weekly"))
		assert.ErrorIs(t, err, ErrValidation)
		f.assertAll(t)
	})

	t.Run("child of another parent", func(t *testing.T) {
		f := newSubscriptionFixture(t)
		f.expectOwnership()
		_, err := f.svc.SubscribeToCourse(context.Background(), uuid.New(), f.request(entity.SubscriptionMonthly))
		assert.ErrorIs(t, err, ErrForbidden)
		f.assertAll(t)
	})

	t.Run("unknown course", func(t *testing.T) {
		f := newSubscriptionFixture(t)
		f.expectOwnership()
		f.courses.On("FindByID", mock.Anything, f.course.ID).Return(nil, nil)
		_, err := f.svc.SubscribeToCourse(context.Background(), f.parentID, f.request(entity.SubscriptionMonthly))
		assert.ErrorIs(t, err, ErrNotFound)
		f.assertAll(t)
	})
}

func TestCancelSubscription(t *testing.T) {
	f := newSubscriptionFixture(t)
	sub := &entity.Subscription{
		Base:     entity.Base{ID: uuid.New()},
		ChildID:  f.child.ID,
		CourseID: f.course.ID,
		Type:     entity.SubscriptionMonthly,
		Status:   entity.SubscriptionStatusActive,
	}
	f.cache.Add(sub)

	f.subRepo.On("FindByID", mock.Anything, sub.ID).Return(sub, nil).Once()
	f.expectOwnership()
	f.subRepo.On("UpdateStatus", mock.Anything, sub.ID, entity.SubscriptionStatusExpired).Return(nil).Once()
	f.publisher.On("Publish", mock.Anything, events.SubscriptionCancelled, mock.Anything).Return(nil).Once()

	err := f.svc.CancelSubscription(context.Background(), f.parentID, sub.ID)
	require.NoError(t, err)

	cached := f.cache.FindForCourse(f.child.ID, f.course.ID)
	require.NotNil(t, cached)
	assert.Equal(t, entity.SubscriptionStatusExpired, cached.Status)

	f.bookings.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
	f.bookings.AssertNotCalled(t, "FindBySubscriptionID", mock.Anything, mock.Anything)
	f.assertAll(t)
}

func TestCancelSubscription_NotFound(t *testing.T) {
	f := newSubscriptionFixture(t)
	id := uuid.New()
	f.subRepo.On("FindByID", mock.Anything, id).Return(nil, nil).Once()

	err := f.svc.CancelSubscription(context.Background(), f.parentID, id)
	assert.ErrorIs(t, err, ErrNotFound)
	f.assertAll(t)
}

func TestUpdateSubscriptionStatus(t *testing.T) {
	f := newSubscriptionFixture(t)
	sub := &entity.Subscription{
		Base:     entity.Base{ID: uuid.New()},
		ChildID:  f.child.ID,
		CourseID: f.course.ID,
		Status:   entity.SubscriptionStatusExpired,
	}
	f.cache.Add(sub)

	f.subRepo.On("FindByID", mock.Anything, sub.ID).Return(sub, nil).Once()
	f.expectOwnership()
	f.subRepo.On("UpdateStatus", mock.Anything, sub.ID, entity.SubscriptionStatusOnHold).Return(nil).Once()
	f.publisher.On("Publish", mock.Anything, events.SubscriptionStatusChanged, mock.Anything).Return(nil).Once()

	err := f.svc.UpdateSubscriptionStatus(context.Background(), f.parentID, sub.ID, &request.UpdateSubscriptionStatusRequest{Status: "on_hold"})
	require.NoError(t, err)
	assert.Equal(t, entity.SubscriptionStatusOnHold, f.cache.FindForCourse(f.child.ID, f.course.ID).Status)
	f.assertAll(t)

	err = f.svc.UpdateSubscriptionStatus(context.Background(), f.parentID, sub.ID, &request.UpdateSubscriptionStatusRequest{Status: "paused"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestFetchSubscriptions_ReplacesCache(t *testing.T) {
	f := newSubscriptionFixture(t)
	stale := &entity.Subscription{Base: entity.Base{ID: uuid.New()}, ChildID: f.child.ID, CourseID: uuid.New()}
	f.cache.Add(stale)

	fresh := []*entity.Subscription{
		{Base: entity.Base{ID: uuid.New()}, ChildID: f.child.ID, CourseID: f.course.ID, Status: entity.SubscriptionStatusActive},
	}
	f.expectOwnership()
	f.subRepo.On("FindByChildID", mock.Anything, f.child.ID).Return(fresh, nil).Once()

	resp, err := f.svc.FetchSubscriptions(context.Background(), f.parentID, f.child.ID)
	require.NoError(t, err)
	assert.Equal(t, response.SourceLive, resp.Source)
	assert.Empty(t, resp.Warning)
	require.Len(t, resp.Subscriptions, 1)

	assert.True(t, f.cache.Loaded(f.child.ID))
	assert.Nil(t, f.cache.FindForCourse(f.child.ID, stale.CourseID))
	assert.Len(t, f.cache.ForChild(f.child.ID), 1)
	f.assertAll(t)
}

func TestFetchSubscriptions_FallbackLeavesCache(t *testing.T) {
	f := newSubscriptionFixture(t)
	f.child.ID = fallback.ChildSarah
	f.cache.Replace(f.child.ID, nil)

	f.expectOwnership()
	f.subRepo.On("FindByChildID", mock.Anything, f.child.ID).Return(nil, errors.New("dial tcp: connection refused")).Once()

	resp, err := f.svc.FetchSubscriptions(context.Background(), f.parentID, f.child.ID)
	require.NoError(t, err)
	assert.Equal(t, response.SourceFallback, resp.Source)
	assert.Equal(t, warnOfflineConnection, resp.Warning)
	assert.Len(t, resp.Subscriptions, len(fallback.SubscriptionsForChild(fallback.ChildSarah)))
	assert.NotEmpty(t, resp.Subscriptions)

	assert.Empty(t, f.cache.ForChild(f.child.ID))
	f.assertAll(t)
}

func TestFetchSubscriptions_QueryErrorWarning(t *testing.T) {
	f := newSubscriptionFixture(t)

	f.expectOwnership()
	f.subRepo.On("FindByChildID", mock.Anything, f.child.ID).
		Return(nil, &pgconn.PgError{Code: "42P01", Message: `relation "subscriptions" does not exist`}).Once()

	resp, err := f.svc.FetchSubscriptions(context.Background(), f.parentID, f.child.ID)
	require.NoError(t, err)
	assert.Equal(t, warnOfflineLimited, resp.Warning)
	assert.Empty(t, resp.Subscriptions)
	f.assertAll(t)
}

func TestFetchBookings(t *testing.T) {
	f := newSubscriptionFixture(t)
	sub := &entity.Subscription{Base: entity.Base{ID: uuid.New()}, ChildID: f.child.ID, CourseID: f.course.ID}
	bookings := schedule.MaterializeBookings(sub.ID, []time.Time{
		time.Date(2025, time.March, 3, 16, 0, 0, 0, time.UTC),
		time.Date(2025, time.March, 5, 16, 0, 0, 0, time.UTC),
	})

	f.subRepo.On("FindByID", mock.Anything, sub.ID).Return(sub, nil).Once()
	f.expectOwnership()
	f.bookings.On("FindBySubscriptionID", mock.Anything, sub.ID).Return(bookings, nil).Once()

	resp, err := f.svc.FetchBookings(context.Background(), f.parentID, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, response.SourceLive, resp.Source)
	require.Len(t, resp.Bookings, 2)
	assert.Equal(t, sub.ID.String(), resp.Bookings[0].SubscriptionID)
	f.assertAll(t)
}

func TestGetSubscriptionForCourse_CacheOnly(t *testing.T) {
	f := newSubscriptionFixture(t)
	f.expectOwnership()

	resp, err := f.svc.GetSubscriptionForCourse(context.Background(), f.parentID, f.child.ID, f.course.ID)
	require.NoError(t, err)
	assert.Nil(t, resp.Subscription)
	assert.Equal(t, response.SourceCached, resp.Source)

	sub := &entity.Subscription{Base: entity.Base{ID: uuid.New()}, ChildID: f.child.ID, CourseID: f.course.ID}
	f.cache.Add(sub)

	for i := 0; i < 2; i++ {
		resp, err = f.svc.GetSubscriptionForCourse(context.Background(), f.parentID, f.child.ID, f.course.ID)
		require.NoError(t, err)
		require.NotNil(t, resp.Subscription)
		assert.Equal(t, sub.ID.String(), resp.Subscription.ID)
	}

	f.subRepo.AssertNotCalled(t, "FindByChildAndCourse", mock.Anything, mock.Anything, mock.Anything)
	f.subRepo.AssertNotCalled(t, "FindByChildID", mock.Anything, mock.Anything)
	f.assertAll(t)
}

func TestGetSubscriptionsForChild_CacheOnly(t *testing.T) {
	f := newSubscriptionFixture(t)
	f.expectOwnership()
	f.cache.Add(&entity.Subscription{Base: entity.Base{ID: uuid.New()}, ChildID: f.child.ID, CourseID: f.course.ID})

	resp, err := f.svc.GetSubscriptionsForChild(context.Background(), f.parentID, f.child.ID)
	require.NoError(t, err)
	assert.Equal(t, response.SourceCached, resp.Source)
	assert.Len(t, resp.Subscriptions, 1)
	f.assertAll(t)
}
