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

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log,
	}
}

// Create handles POST /services
func (h *CatalogHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Missing authentication token")
		return
	}

	var req request.CreateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		respondError(w, h.log, err, "create_service")
		return
	}

	utils.ResponseCreated(w, "Service created", resp)
}

// GetByID handles GET /services/{id}
func (h *CatalogHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.log, err, "get_service")
		return
	}

	utils.ResponseSuccess(w, "Service retrieved", resp)
}

// List handles GET /services
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.List(r.Context(), parsePagination(r))
	if err != nil {
		respondError(w, h.log, err, "list_services")
		return
	}

	utils.ResponseSuccess(w, "Services retrieved", resp)
}

// Update handles PUT /services/{id}
func (h *CatalogHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Missing authentication token")
		return
	}

	var req request.UpdateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Update(r.Context(), userID, chi.URLParam(r, "id"), &req)
	if err != nil {
		respondError(w, h.log, err, "update_service")
		return
	}

	utils.ResponseSuccess(w, "Service updated", resp)
}

// Delete handles DELETE /services/{id}
func (h *CatalogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Missing authentication token")
		return
	}

	if err := h.service.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		respondError(w, h.log, err, "delete_service")
		return
	}

	utils.ResponseSuccess(w, "Service deleted", nil)
}
