package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"club-booking/internal/dto/request"
	"club-booking/internal/usecase"
	"club-booking/pkg/utils"

	"go.uber.org/zap"
)

type SubscriptionHandler struct {
	service usecase.SubscriptionService
	log     *zap.Logger
}

func NewSubscriptionHandler(service usecase.SubscriptionService, log *zap.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		service: service,
		log:     log.With(zap.String("handler", "subscription")),
	}
}

// Subscribe handles POST /api/subscriptions (protected)
func (h *SubscriptionHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	parentID, ok := currentParent(w, r)
	if !ok {
		return
	}

	var req request.SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	sub, err := h.service.SubscribeToCourse(r.Context(), parentID, &req)
	if err != nil {
		// the subscription exists; only its sessions are missing
		if sub != nil && errors.Is(err, usecase.ErrPartialMaterialization) {
			h.log.Warn("Subscription created without bookings", zap.Error(err), zap.String("subscription_id", sub.ID))
			utils.ResponseWarning(w, http.StatusCreated, "Subscription created", err.Error(), sub)
			return
		}
		handleServiceError(w, h.log, err, "subscribe")
		return
	}

	utils.ResponseCreated(w, "Subscription created", sub)
}

// ListForChild handles GET /api/children/{id}/subscriptions (protected).
// With ?source=cache it answers from the in-process cache only.
func (h *SubscriptionHandler) ListForChild(w http.ResponseWriter, r *http.Request) {
	parentID, ok := currentParent(w, r)
	if !ok {
		return
	}
	childID, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	fetch := h.service.FetchSubscriptions
	if r.URL.Query().Get("source") == "cache" {
		fetch = h.service.GetSubscriptionsForChild
	}

	subs, err := fetch(r.Context(), parentID, childID)
	if err != nil {
		handleServiceError(w, h.log, err, "list subscriptions")
		return
	}

	utils.ResponseWarning(w, http.StatusOK, "success", subs.Warning, subs)
}

// ForCourse handles GET /api/children/{id}/courses/{courseId}/subscription (protected)
func (h *SubscriptionHandler) ForCourse(w http.ResponseWriter, r *http.Request) {
	parentID, ok := currentParent(w, r)
	if !ok {
		return
	}
	childID, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	courseID, ok := uuidParam(w, r, "courseId")
	if !ok {
		return
	}

	resp, err := h.service.GetSubscriptionForCourse(r.Context(), parentID, childID, courseID)
	if err != nil {
		handleServiceError(w, h.log, err, "find subscription")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// Bookings handles GET /api/subscriptions/{id}/bookings (protected)
func (h *SubscriptionHandler) Bookings(w http.ResponseWriter, r *http.Request) {
	parentID, ok := currentParent(w, r)
	if !ok {
		return
	}
	subID, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	bookings, err := h.service.FetchBookings(r.Context(), parentID, subID)
	if err != nil {
		handleServiceError(w, h.log, err, "list bookings")
		return
	}

	utils.ResponseWarning(w, http.StatusOK, "success", bookings.Warning, bookings)
}

// Cancel handles PUT /api/subscriptions/{id}/cancel (protected)
func (h *SubscriptionHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	parentID, ok := currentParent(w, r)
	if !ok {
		return
	}
	subID, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.CancelSubscription(r.Context(), parentID, subID); err != nil {
		handleServiceError(w, h.log, err, "cancel subscription")
		return
	}

	utils.ResponseSuccess(w, "Subscription cancelled", nil)
}

// UpdateStatus handles PUT /api/subscriptions/{id}/status (protected)
func (h *SubscriptionHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	parentID, ok := currentParent(w, r)
	if !ok {
		return
	}
	subID, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	var req request.UpdateSubscriptionStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.UpdateSubscriptionStatus(r.Context(), parentID, subID, &req); err != nil {
		handleServiceError(w, h.log, err, "update subscription status")
		return
	}

	utils.ResponseSuccess(w, "Subscription status updated", nil)
}
