package adaptor

import (
	"encoding/json"
	"net/http"

	"club-booking/internal/dto/request"
	"club-booking/internal/usecase"
	"club-booking/pkg/utils"

	"go.uber.org/zap"
)

type ProfileHandler struct {
	service usecase.ProfileService
	log     *zap.Logger
}

func NewProfileHandler(service usecase.ProfileService, log *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		service: service,
		log:     log.With(zap.String("handler", "profile")),
	}
}

// ListChildren handles GET /api/children (protected)
func (h *ProfileHandler) ListChildren(w http.ResponseWriter, r *http.Request) {
	parentID, ok := currentParent(w, r)
	if !ok {
		return
	}

	children, err := h.service.FetchChildren(r.Context(), parentID)
	if err != nil {
		handleServiceError(w, h.log, err, "list children")
		return
	}

	utils.ResponseSuccess(w, "success", children)
}

// CreateChild handles POST /api/children (protected)
func (h *ProfileHandler) CreateChild(w http.ResponseWriter, r *http.Request) {
	parentID, ok := currentParent(w, r)
	if !ok {
		return
	}

	var req request.CreateChildRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	child, err := h.service.AddChild(r.Context(), parentID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "add child")
		return
	}

	utils.ResponseCreated(w, "Profile added", child)
}

// UpdateChild handles PUT /api/children/{id} (protected)
func (h *ProfileHandler) UpdateChild(w http.ResponseWriter, r *http.Request) {
	parentID, ok := currentParent(w, r)
	if !ok {
		return
	}
	childID, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	var req request.UpdateChildRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	child, err := h.service.UpdateChild(r.Context(), parentID, childID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update child")
		return
	}

	utils.ResponseSuccess(w, "Profile updated", child)
}

// DeleteChild handles DELETE /api/children/{id} (protected)
func (h *ProfileHandler) DeleteChild(w http.ResponseWriter, r *http.Request) {
	parentID, ok := currentParent(w, r)
	if !ok {
		return
	}
	childID, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.RemoveChild(r.Context(), parentID, childID); err != nil {
		handleServiceError(w, h.log, err, "remove child")
		return
	}

	utils.ResponseSuccess(w, "Profile removed", nil)
}
