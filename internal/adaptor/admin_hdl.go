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

type AdminHandler struct {
	service usecase.AdminService
	log     *zap.Logger
}

func NewAdminHandler(service usecase.AdminService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		log:     log,
	}
}

// ListUsers handles GET /admin/users
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.ListUsers(r.Context(), parsePagination(r))
	if err != nil {
		respondError(w, h.log, err, "admin_list_users")
		return
	}

	utils.ResponseSuccess(w, "Users retrieved", resp)
}

// GetUser handles GET /admin/users/{id}
func (h *AdminHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.log, err, "admin_get_user")
		return
	}

	utils.ResponseSuccess(w, "User retrieved", resp)
}

// CreateUser handles POST /admin/users
func (h *AdminHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	actorID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Missing authentication token")
		return
	}

	var req request.AdminCreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.CreateUser(r.Context(), actorID, &req)
	if err != nil {
		respondError(w, h.log, err, "admin_create_user")
		return
	}

	utils.ResponseCreated(w, "User created. A verification email has been sent.", resp)
}

// UpdateUser handles PATCH /admin/users/{id}
func (h *AdminHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	actorID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Missing authentication token")
		return
	}

	var req request.AdminUpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.UpdateUser(r.Context(), actorID, chi.URLParam(r, "id"), &req)
	if err != nil {
		respondError(w, h.log, err, "admin_update_user")
		return
	}

	utils.ResponseSuccess(w, "User updated", resp)
}

// DeactivateUser handles PUT /admin/users/{id}/deactivate
func (h *AdminHandler) DeactivateUser(w http.ResponseWriter, r *http.Request) {
	actorID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Missing authentication token")
		return
	}

	if err := h.service.DeactivateUser(r.Context(), actorID, chi.URLParam(r, "id")); err != nil {
		respondError(w, h.log, err, "admin_deactivate_user")
		return
	}

	utils.ResponseSuccess(w, "User deactivated", nil)
}

// AssignRole handles POST /roles/assign-role
func (h *AdminHandler) AssignRole(w http.ResponseWriter, r *http.Request) {
	actorID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Missing authentication token")
		return
	}

	var req request.AssignRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.AssignRole(r.Context(), actorID, &req); err != nil {
		respondError(w, h.log, err, "assign_role")
		return
	}

	utils.ResponseSuccess(w, "Role assigned", nil)
}

// ActivityLogs handles GET /admin/activity-logs
func (h *AdminHandler) ActivityLogs(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.ActivityLogs(r.Context(), parsePagination(r))
	if err != nil {
		respondError(w, h.log, err, "activity_logs")
		return
	}

	utils.ResponseSuccess(w, "Activity logs retrieved", resp)
}
