// internal/wire/wire.go
package wire

import (
	"net/http"

	"hawc-booking/internal/adaptor"
	"hawc-booking/internal/data/repository"
	"hawc-booking/internal/usecase"
	"hawc-booking/pkg/mailer"
	"hawc-booking/pkg/middleware"
	"hawc-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and routes
func Wiring(repo *repository.Repository, processor usecase.PaymentProcessor, notifier mailer.Notifier, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, processor, notifier, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the chi router
func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wirePayment(r, handler.Payment)
	wireBooking(r, handler.Booking)
	wireAccount(r, handler.Account)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
