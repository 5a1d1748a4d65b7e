package wire

import (
	"net/http"

	"service-booking/internal/adaptor"
	"service-booking/internal/data/entity"
	"service-booking/internal/data/repository"
	"service-booking/internal/token"
	"service-booking/internal/usecase"
	"service-booking/pkg/middleware"
	"service-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// guards bundles the route predicates so every wire file declares
// explicitly which ones protect each route.
type guards struct {
	authn func(http.Handler) http.Handler
	admin func(http.Handler) http.Handler
}

func Wiring(
	repo *repository.Repository,
	issuer *token.Issuer,
	service *usecase.Service,
	config *utils.Config,
	logger *zap.Logger,
) *App {
	handler := adaptor.NewHandler(service, config, logger)

	g := guards{
		authn: middleware.Authenticate(issuer, repo.User, logger),
		admin: middleware.RequireRole(repo.Role, logger, entity.RoleAdmin),
	}

	return &App{
		Router: setupRouter(handler, g, logger),
	}
}

func setupRouter(handler *adaptor.Handler, g guards, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireAuth(r, handler.Auth, g)
	wireUser(r, handler.Auth, handler.User, g)
	wireBooking(r, handler.Booking, g)
	wireCatalog(r, handler.Catalog, g)
	wireCareerType(r, handler.Career, g)
	wireProfile(r, handler.Profile, g)
	wireAdmin(r, handler.Admin, g)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
