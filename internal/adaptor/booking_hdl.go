package adaptor

import (
	"encoding/json"
	"net/http"

	"service-booking/internal/dto/request"
	"service-booking/internal/usecase"
	"service-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log,
	}
}

// Create handles POST /bookings
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Missing authentication token")
		return
	}

	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		respondError(w, h.log, err, "create_booking")
		return
	}

	utils.ResponseCreated(w, "Booking created", resp)
}

// Update handles PATCH /bookings/{bookingID}
func (h *BookingHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Missing authentication token")
		return
	}

	var req request.UpdateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Update(r.Context(), userID, chi.URLParam(r, "bookingID"), &req)
	if err != nil {
		respondError(w, h.log, err, "update_booking")
		return
	}

	utils.ResponseSuccess(w, "Booking updated", resp)
}

// ListForUser handles GET /bookings/{userID}
func (h *BookingHandler) ListForUser(w http.ResponseWriter, r *http.Request) {
	callerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Missing authentication token")
		return
	}

	resp, err := h.service.ListForUser(r.Context(), callerID, chi.URLParam(r, "userID"))
	if err != nil {
		respondError(w, h.log, err, "list_bookings")
		return
	}

	utils.ResponseSuccess(w, "Bookings retrieved", resp)
}
