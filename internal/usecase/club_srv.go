package usecase

import (
	"context"
	"strings"

	"club-booking/internal/data/cache"
	"club-booking/internal/data/entity"
	"club-booking/internal/data/fallback"
	"club-booking/internal/data/repository"
	"club-booking/internal/dto/request"
	"club-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const featuredClubCount = 3

// ClubService serves the read-only catalog. Reads never fail: when the
// database is unavailable they answer from the offline dataset.
type ClubService interface {
	ListClubs(ctx context.Context, userID uuid.UUID, filter request.ClubFilter) (*response.ClubListResponse, error)
	FeaturedClubs(ctx context.Context) (*response.ClubListResponse, error)
	GetClub(ctx context.Context, id uuid.UUID) (*response.ClubDetailResponse, error)
	ListCourses(ctx context.Context, clubID *uuid.UUID) (*response.CourseListResponse, error)
	GetCourse(ctx context.Context, id uuid.UUID) (*response.CourseDetailResponse, error)
	RecentSearches(ctx context.Context, userID uuid.UUID) ([]string, error)
	ClearRecentSearches(ctx context.Context, userID uuid.UUID) error
}

type clubService struct {
	clubRepo   repository.ClubRepository
	courseRepo repository.CourseRepository
	catalog    cache.CatalogCache
	searches   cache.RecentSearches
	log        *zap.Logger
}

func NewClubService(
	clubRepo repository.ClubRepository,
	courseRepo repository.CourseRepository,
	catalog cache.CatalogCache,
	searches cache.RecentSearches,
	log *zap.Logger,
) ClubService {
	return &clubService{
		clubRepo:   clubRepo,
		courseRepo: courseRepo,
		catalog:    catalog,
		searches:   searches,
		log:        log.With(zap.String("service", "club")),
	}
}

func (s *clubService) ListClubs(ctx context.Context, userID uuid.UUID, filter request.ClubFilter) (*response.ClubListResponse, error) {
	clubs, source, warning := s.loadClubs(ctx)

	if q := strings.TrimSpace(filter.Search); q != "" {
		if err := s.searches.Add(ctx, userID, q); err != nil {
			s.log.Warn("Failed to record recent search", zap.Error(err))
		}
	}

	return &response.ClubListResponse{
		Clubs:   response.ClubsToResponse(filterClubs(clubs, filter)),
		Source:  source,
		Warning: warning,
	}, nil
}

// FeaturedClubs is the head of the unfiltered, rating-ordered list.
func (s *clubService) FeaturedClubs(ctx context.Context) (*response.ClubListResponse, error) {
	clubs, source, warning := s.loadClubs(ctx)
	if len(clubs) > featuredClubCount {
		clubs = clubs[:featuredClubCount]
	}

	return &response.ClubListResponse{
		Clubs:   response.ClubsToResponse(clubs),
		Source:  source,
		Warning: warning,
	}, nil
}

func (s *clubService) GetClub(ctx context.Context, id uuid.UUID) (*response.ClubDetailResponse, error) {
	club, err := s.clubRepo.FindByID(ctx, id)
	source, warning := response.SourceLive, ""
	if err != nil || club == nil {
		if err != nil {
			warning = offlineWarning(err)
		} else {
			warning = warnOfflineLimited
		}
		club = fallback.Club(id)
		source = response.SourceFallback
	}
	if club == nil {
		return nil, newError(ErrNotFound, "Club not found")
	}

	var courses []*entity.Course
	if source == response.SourceLive {
		courses, err = s.courseRepo.FindAll(ctx, &club.ID)
		if err != nil {
			s.log.Warn("Failed to load club courses", zap.Error(err), zap.String("club_id", id.String()))
			courses, source, warning = fallbackCourses(&club.ID), response.SourceFallback, offlineWarning(err)
		}
	} else {
		courses = fallbackCourses(&club.ID)
	}

	return &response.ClubDetailResponse{
		Club:    response.ClubToResponse(club),
		Courses: response.CoursesToResponse(normalizeCourses(courses)),
		Source:  source,
		Warning: warning,
	}, nil
}

func (s *clubService) ListCourses(ctx context.Context, clubID *uuid.UUID) (*response.CourseListResponse, error) {
	scope := "all"
	if clubID != nil {
		scope = clubID.String()
	}

	if cached, err := s.catalog.GetCourses(ctx, scope); err == nil && len(cached) > 0 {
		return &response.CourseListResponse{
			Courses: response.CoursesToResponse(cached),
			Source:  response.SourceCached,
		}, nil
	}

	courses, err := s.courseRepo.FindAll(ctx, clubID)
	if err != nil {
		s.log.Warn("Falling back to offline courses", zap.Error(err))
		return &response.CourseListResponse{
			Courses: response.CoursesToResponse(fallbackCourses(clubID)),
			Source:  response.SourceFallback,
			Warning: offlineWarning(err),
		}, nil
	}
	if len(courses) == 0 {
		return &response.CourseListResponse{
			Courses: response.CoursesToResponse(fallbackCourses(clubID)),
			Source:  response.SourceFallback,
		}, nil
	}

	courses = normalizeCourses(courses)
	if err := s.catalog.SetCourses(ctx, scope, courses); err != nil {
		s.log.Warn("Failed to cache courses", zap.Error(err))
	}

	return &response.CourseListResponse{
		Courses: response.CoursesToResponse(courses),
		Source:  response.SourceLive,
	}, nil
}

func (s *clubService) GetCourse(ctx context.Context, id uuid.UUID) (*response.CourseDetailResponse, error) {
	course, err := s.courseRepo.FindByID(ctx, id)
	if err == nil && course != nil {
		return &response.CourseDetailResponse{
			Course: response.CourseToResponse(normalizeCourse(course)),
			Source: response.SourceLive,
		}, nil
	}

	warning := warnOfflineLimited
	if err != nil {
		warning = offlineWarning(err)
	}

	course = fallback.Course(id)
	if course == nil {
		return nil, newError(ErrNotFound, "Course not found")
	}

	return &response.CourseDetailResponse{
		Course:  response.CourseToResponse(course),
		Source:  response.SourceFallback,
		Warning: warning,
	}, nil
}

func (s *clubService) RecentSearches(ctx context.Context, userID uuid.UUID) ([]string, error) {
	items, err := s.searches.List(ctx, userID)
	if err != nil {
		s.log.Warn("Failed to read recent searches", zap.Error(err))
		return []string{}, nil
	}
	return items, nil
}

func (s *clubService) ClearRecentSearches(ctx context.Context, userID uuid.UUID) error {
	if err := s.searches.Clear(ctx, userID); err != nil {
		return wrapError(ErrPersistence, "Failed to clear recent searches.", err)
	}
	return nil
}

// loadClubs reads through the catalog cache. An empty table is served from
// the offline dataset without a warning.
func (s *clubService) loadClubs(ctx context.Context) ([]*entity.Club, response.Source, string) {
	if cached, err := s.catalog.GetClubs(ctx); err == nil && len(cached) > 0 {
		return cached, response.SourceCached, ""
	}

	clubs, err := s.clubRepo.FindAll(ctx)
	if err != nil {
		s.log.Warn("Falling back to offline clubs", zap.Error(err))
		return fallback.Clubs(), response.SourceFallback, offlineWarning(err)
	}
	if len(clubs) == 0 {
		return fallback.Clubs(), response.SourceFallback, ""
	}

	if err := s.catalog.SetClubs(ctx, clubs); err != nil {
		s.log.Warn("Failed to cache clubs", zap.Error(err))
	}
	return clubs, response.SourceLive, ""
}

// filterClubs keeps the input order. Category matches exactly, location by
// substring, search by case-insensitive substring of name or description.
func filterClubs(clubs []*entity.Club, f request.ClubFilter) []*entity.Club {
	if f.IsEmpty() {
		return clubs
	}

	query := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]*entity.Club, 0, len(clubs))
	for _, c := range clubs {
		if f.Category != "" && c.Category != f.Category {
			continue
		}
		if f.Location != "" && !strings.Contains(c.Location, f.Location) {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(c.Name), query) &&
			!strings.Contains(strings.ToLower(c.Description), query) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func fallbackCourses(clubID *uuid.UUID) []*entity.Course {
	all := fallback.Courses()
	if clubID == nil {
		return all
	}
	out := make([]*entity.Course, 0)
	for _, c := range all {
		if c.ClubID == *clubID {
			out = append(out, c)
		}
	}
	return out
}

func normalizeCourses(courses []*entity.Course) []*entity.Course {
	for _, c := range courses {
		normalizeCourse(c)
	}
	return courses
}

// normalizeCourse fills display defaults for columns left blank by data entry.
func normalizeCourse(c *entity.Course) *entity.Course {
	if c.Instructor.Name == "" {
		c.Instructor.Name = "Instructor"
	}
	if c.Instructor.Avatar == "" {
		c.Instructor.Avatar = string([]rune(c.Instructor.Name)[:1])
	}
	if c.AgeRange == "" {
		c.AgeRange = "5-12 years"
	}
	if c.SkillLevel == "" {
		c.SkillLevel = "Beginner"
	}
	if c.Category == "" {
		c.Category = "General"
	}
	return c
}
