package adaptor

import (
	"net/http"

	"service-booking/internal/usecase"
	"service-booking/pkg/utils"

	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log,
	}
}

// Me handles GET /users/me
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Missing authentication token")
		return
	}

	resp, err := h.service.Me(r.Context(), userID)
	if err != nil {
		respondError(w, h.log, err, "me")
		return
	}

	utils.ResponseSuccess(w, "User retrieved", resp)
}
