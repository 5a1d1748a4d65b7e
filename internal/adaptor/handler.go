package adaptor

import (
	"net/http"

	"service-booking/internal/dto/request"
	"service-booking/internal/usecase"
	"service-booking/pkg/apperrors"
	"service-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	User    *UserHandler
	Booking *BookingHandler
	Catalog *CatalogHandler
	Career  *CareerTypeHandler
	Profile *ProfileHandler
	Admin   *AdminHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, config, log),
		User:    NewUserHandler(service.User, log),
		Booking: NewBookingHandler(service.Booking, log),
		Catalog: NewCatalogHandler(service.Catalog, log),
		Career:  NewCareerTypeHandler(service.Career, log),
		Profile: NewProfileHandler(service.Profile, log),
		Admin:   NewAdminHandler(service.Admin, log),
	}
}

// respondError maps a service-layer error to its HTTP response. Internal
// errors are logged with their cause; the client only sees the message.
func respondError(w http.ResponseWriter, log *zap.Logger, err error, op string) {
	appErr := apperrors.FromError(err)
	if appErr.HTTPCode >= http.StatusInternalServerError {
		log.Error("Request failed",
			zap.String("operation", op),
			zap.Error(appErr))
	}
	utils.ResponseAppError(w, appErr.HTTPCode, appErr.Message, appErr.Details)
}

// parsePagination reads ?page= and ?per_page= with sane defaults.
func parsePagination(r *http.Request) *request.PaginatedRequest {
	return &request.PaginatedRequest{
		Page:    utils.ParseInt(r.URL.Query().Get("page"), 1),
		PerPage: utils.ParseInt(r.URL.Query().Get("per_page"), 10),
	}
}
