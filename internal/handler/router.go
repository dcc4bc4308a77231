package handler

import (
	"net/http"

	"github.com/Dan9191/bizplan/internal/config"
	"github.com/Dan9191/bizplan/internal/middleware"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// NewRouter wires the public and authenticated routes
func NewRouter(h *Handler, cfg *config.Config, log *logrus.Logger) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.Logger(log))

	// Public routes
	r.HandleFunc("/register", h.Register).Methods(http.MethodPost)
	r.HandleFunc("/login", h.Login).Methods(http.MethodPost)
	r.HandleFunc("/key-rate", h.KeyRate).Methods(http.MethodGet)
	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)

	// Protected routes
	authRouter := r.PathPrefix("/").Subrouter()
	authRouter.Use(middleware.AuthMiddleware(cfg))
	authRouter.HandleFunc("/products", h.GetProducts).Methods(http.MethodGet)
	authRouter.HandleFunc("/products", h.SaveProducts).Methods(http.MethodPut)
	authRouter.HandleFunc("/forecast", h.Forecast).Methods(http.MethodGet)
	authRouter.HandleFunc("/forecast/recalculate", h.RecalculateForecast).Methods(http.MethodPost)
	authRouter.HandleFunc("/loan", h.Loan).Methods(http.MethodGet)
	authRouter.HandleFunc("/loan", h.SubmitLoan).Methods(http.MethodPost)
	authRouter.HandleFunc("/export", h.Export).Methods(http.MethodGet)
	authRouter.HandleFunc("/export/email", h.EmailExport).Methods(http.MethodPost)
	authRouter.HandleFunc("/startup-activities", h.StartupActivities).Methods(http.MethodGet)
	authRouter.HandleFunc("/startup-activities", h.SaveStartupActivities).Methods(http.MethodPut)

	return r
}
