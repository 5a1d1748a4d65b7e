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

type CareerTypeHandler struct {
	service usecase.CareerTypeService
	log     *zap.Logger
}

func NewCareerTypeHandler(service usecase.CareerTypeService, log *zap.Logger) *CareerTypeHandler {
	return &CareerTypeHandler{
		service: service,
		log:     log,
	}
}

// Create handles POST /career-types
func (h *CareerTypeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateCareerTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Create(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err, "create_career_type")
		return
	}

	utils.ResponseCreated(w, "Career type created", resp)
}

// List handles GET /career-types
func (h *CareerTypeHandler) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.List(r.Context())
	if err != nil {
		respondError(w, h.log, err, "list_career_types")
		return
	}

	utils.ResponseSuccess(w, "Career types retrieved", resp)
}

// Approve handles PUT /career-types/{id}/approve
func (h *CareerTypeHandler) Approve(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Approve(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.log, err, "approve_career_type")
		return
	}

	utils.ResponseSuccess(w, "Career type approved", resp)
}
