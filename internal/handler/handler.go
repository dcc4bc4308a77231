package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Dan9191/bizplan/internal/export"
	"github.com/Dan9191/bizplan/internal/middleware"
	"github.com/Dan9191/bizplan/internal/models"
	"github.com/Dan9191/bizplan/internal/repository"
	"github.com/Dan9191/bizplan/internal/service"
	"github.com/sirupsen/logrus"
)

// Service is the business API the handlers expose
type Service interface {
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	KeyRate(ctx context.Context) (float64, error)

	GetProductDetails(ctx context.Context, userID int64) (*models.ProductDetails, error)
	SaveProductDetails(ctx context.Context, userID int64, details models.ProductDetails) error

	Forecast(ctx context.Context, userID int64) (*models.ForecastView, error)
	RecalculateForecast(ctx context.Context, userID int64, in service.ForecastInput) (*models.ForecastView, error)

	LoanCalculator(ctx context.Context, userID int64) (*models.LoanView, error)
	SubmitLoan(ctx context.Context, userID int64, terms models.LoanTerms) (*models.LoanView, error)

	Export(ctx context.Context, userID int64) (*bytes.Buffer, error)
	EmailExport(ctx context.Context, userID int64) error

	StartupActivities(ctx context.Context, userID int64) (*models.StartupChecklist, error)
	SaveStartupActivities(ctx context.Context, userID int64, activities []models.StartupActivity) (*models.StartupChecklist, error)
}

var _ Service = (*service.Service)(nil)

type Handler struct {
	svc Service
	log *logrus.Logger
}

func NewHandler(svc Service, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

type credentials struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles user registration
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if !h.decode(w, r, &req) {
		return
	}
	user, err := h.svc.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

// Login handles user authentication
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if !h.decode(w, r, &req) {
		return
	}
	token, err := h.svc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// KeyRate returns the reference lending rate
func (h *Handler) KeyRate(w http.ResponseWriter, r *http.Request) {
	rate, err := h.svc.KeyRate(r.Context())
	if err != nil {
		h.log.Errorf("Failed to get key rate: %v", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "key rate is unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]float64{"key_rate": rate})
}

// Health reports that the process is serving
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetProducts returns the product and expense sheet
func (h *Handler) GetProducts(w http.ResponseWriter, r *http.Request) {
	userID := mustUserID(r)
	details, err := h.svc.GetProductDetails(r.Context(), userID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

// SaveProducts replaces the product and expense sheet
func (h *Handler) SaveProducts(w http.ResponseWriter, r *http.Request) {
	var req models.ProductDetails
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.svc.SaveProductDetails(r.Context(), mustUserID(r), req); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

// Forecast computes the forecast from stored parameters
func (h *Handler) Forecast(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.Forecast(r.Context(), mustUserID(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// RecalculateForecast applies new parameters and recomputes the forecast
func (h *Handler) RecalculateForecast(w http.ResponseWriter, r *http.Request) {
	var req service.ForecastInput
	if !h.decode(w, r, &req) {
		return
	}
	view, err := h.svc.RecalculateForecast(r.Context(), mustUserID(r), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Loan shows the stored loan and its coverage
func (h *Handler) Loan(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.LoanCalculator(r.Context(), mustUserID(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// SubmitLoan computes and stores a loan schedule
func (h *Handler) SubmitLoan(w http.ResponseWriter, r *http.Request) {
	var req models.LoanTerms
	if !h.decode(w, r, &req) {
		return
	}
	view, err := h.svc.SubmitLoan(r.Context(), mustUserID(r), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Export downloads the forecast workbook
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	buf, err := h.svc.Export(r.Context(), mustUserID(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.log.Errorf("Failed to write export: %v", err)
	}
}

// EmailExport mails the forecast workbook to the user
func (h *Handler) EmailExport(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.EmailExport(r.Context(), mustUserID(r)); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "sent"})
}

// StartupActivities returns the launch checklist
func (h *Handler) StartupActivities(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.StartupActivities(r.Context(), mustUserID(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// SaveStartupActivities replaces the launch checklist
func (h *Handler) SaveStartupActivities(w http.ResponseWriter, r *http.Request) {
	var req []models.StartupActivity
	if !h.decode(w, r, &req) {
		return
	}
	c, err := h.svc.SaveStartupActivities(r.Context(), mustUserID(r), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// mustUserID reads the id set by the auth middleware, which guards every
// route that calls it.
func mustUserID(r *http.Request) int64 {
	id, _ := middleware.UserIDFromContext(r.Context())
	return id
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("invalid request body: %v", err)})
		return false
	}
	return true
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrMissingPrerequisite):
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error(), "code": "no_data"})
	case errors.Is(err, service.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": err.Error()})
	case errors.Is(err, repository.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, repository.ErrDuplicate):
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
	default:
		h.log.Errorf("Request failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
