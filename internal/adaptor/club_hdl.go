package adaptor

import (
	"net/http"

	"club-booking/internal/dto/request"
	"club-booking/internal/dto/response"
	"club-booking/internal/usecase"
	"club-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ClubHandler struct {
	service usecase.ClubService
	log     *zap.Logger
}

func NewClubHandler(service usecase.ClubService, log *zap.Logger) *ClubHandler {
	return &ClubHandler{
		service: service,
		log:     log.With(zap.String("handler", "club")),
	}
}

// ListClubs handles GET /api/clubs?category=&location=&search= (protected)
func (h *ClubHandler) ListClubs(w http.ResponseWriter, r *http.Request) {
	parentID, ok := currentParent(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	filter := request.ClubFilter{
		Category: query.Get("category"),
		Location: query.Get("location"),
		Search:   query.Get("search"),
	}

	clubs, err := h.service.ListClubs(r.Context(), parentID, filter)
	if err != nil {
		handleServiceError(w, h.log, err, "list clubs")
		return
	}

	utils.ResponseWarning(w, http.StatusOK, "success", clubs.Warning, clubs)
}

// FeaturedClubs handles GET /api/clubs/featured (protected)
func (h *ClubHandler) FeaturedClubs(w http.ResponseWriter, r *http.Request) {
	clubs, err := h.service.FeaturedClubs(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "featured clubs")
		return
	}

	utils.ResponseWarning(w, http.StatusOK, "success", clubs.Warning, clubs)
}

// GetClub handles GET /api/clubs/{id} (protected)
func (h *ClubHandler) GetClub(w http.ResponseWriter, r *http.Request) {
	clubID, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	club, err := h.service.GetClub(r.Context(), clubID)
	if err != nil {
		handleServiceError(w, h.log, err, "get club")
		return
	}

	utils.ResponseWarning(w, http.StatusOK, "success", club.Warning, club)
}

// ListCourses handles GET /api/courses?club_id= (protected)
func (h *ClubHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	var clubID *uuid.UUID
	if raw := r.URL.Query().Get("club_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid club_id", map[string]string{"club_id": "Must be a valid UUID"})
			return
		}
		clubID = &id
	}

	courses, err := h.service.ListCourses(r.Context(), clubID)
	if err != nil {
		handleServiceError(w, h.log, err, "list courses")
		return
	}

	utils.ResponseWarning(w, http.StatusOK, "success", courses.Warning, courses)
}

// GetCourse handles GET /api/courses/{id} (protected)
func (h *ClubHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	courseID, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	course, err := h.service.GetCourse(r.Context(), courseID)
	if err != nil {
		handleServiceError(w, h.log, err, "get course")
		return
	}

	utils.ResponseWarning(w, http.StatusOK, "success", course.Warning, course)
}

// RecentSearches handles GET /api/searches/recent (protected)
func (h *ClubHandler) RecentSearches(w http.ResponseWriter, r *http.Request) {
	parentID, ok := currentParent(w, r)
	if !ok {
		return
	}

	searches, err := h.service.RecentSearches(r.Context(), parentID)
	if err != nil {
		handleServiceError(w, h.log, err, "recent searches")
		return
	}

	utils.ResponseSuccess(w, "success", response.RecentSearchesResponse{Searches: searches})
}

// ClearRecentSearches handles DELETE /api/searches/recent (protected)
func (h *ClubHandler) ClearRecentSearches(w http.ResponseWriter, r *http.Request) {
	parentID, ok := currentParent(w, r)
	if !ok {
		return
	}

	if err := h.service.ClearRecentSearches(r.Context(), parentID); err != nil {
		handleServiceError(w, h.log, err, "clear recent searches")
		return
	}

	utils.ResponseSuccess(w, "Recent searches cleared", nil)
}
