package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Dan9191/bizplan/internal/config"
	"github.com/Dan9191/bizplan/internal/export"
	"github.com/Dan9191/bizplan/internal/models"
	"github.com/Dan9191/bizplan/internal/repository"
	"github.com/Dan9191/bizplan/internal/service"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const uid int64 = 9

type mockService struct {
	mock.Mock
}

func (m *mockService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	args := m.Called(ctx, username, email, password)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *mockService) Login(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

func (m *mockService) KeyRate(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockService) GetProductDetails(ctx context.Context, userID int64) (*models.ProductDetails, error) {
	args := m.Called(ctx, userID)
	d, _ := args.Get(0).(*models.ProductDetails)
	return d, args.Error(1)
}

func (m *mockService) SaveProductDetails(ctx context.Context, userID int64, details models.ProductDetails) error {
	return m.Called(ctx, userID, details).Error(0)
}

func (m *mockService) Forecast(ctx context.Context, userID int64) (*models.ForecastView, error) {
	args := m.Called(ctx, userID)
	v, _ := args.Get(0).(*models.ForecastView)
	return v, args.Error(1)
}

func (m *mockService) RecalculateForecast(ctx context.Context, userID int64, in service.ForecastInput) (*models.ForecastView, error) {
	args := m.Called(ctx, userID, in)
	v, _ := args.Get(0).(*models.ForecastView)
	return v, args.Error(1)
}

func (m *mockService) LoanCalculator(ctx context.Context, userID int64) (*models.LoanView, error) {
	args := m.Called(ctx, userID)
	v, _ := args.Get(0).(*models.LoanView)
	return v, args.Error(1)
}

func (m *mockService) SubmitLoan(ctx context.Context, userID int64, terms models.LoanTerms) (*models.LoanView, error) {
	args := m.Called(ctx, userID, terms)
	v, _ := args.Get(0).(*models.LoanView)
	return v, args.Error(1)
}

func (m *mockService) Export(ctx context.Context, userID int64) (*bytes.Buffer, error) {
	args := m.Called(ctx, userID)
	b, _ := args.Get(0).(*bytes.Buffer)
	return b, args.Error(1)
}

func (m *mockService) EmailExport(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *mockService) StartupActivities(ctx context.Context, userID int64) (*models.StartupChecklist, error) {
	args := m.Called(ctx, userID)
	c, _ := args.Get(0).(*models.StartupChecklist)
	return c, args.Error(1)
}

func (m *mockService) SaveStartupActivities(ctx context.Context, userID int64, activities []models.StartupActivity) (*models.StartupChecklist, error) {
	args := m.Called(ctx, userID, activities)
	c, _ := args.Get(0).(*models.StartupChecklist)
	return c, args.Error(1)
}

type testServer struct {
	svc    *mockService
	router http.Handler
	token  string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	cfg := &config.Config{JWTSecret: "test-secret"}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "9",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(cfg.JWTSecret))
	require.NoError(t, err)

	svc := &mockService{}
	return &testServer{
		svc:    svc,
		router: NewRouter(NewHandler(svc, log), cfg, log),
		token:  token,
	}
}

func (s *testServer) do(method, path, body string, auth bool) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if auth {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestPublicRoutes(t *testing.T) {
	s := newTestServer(t)
	s.svc.On("Register", mock.Anything, "alice", "a@example.com", "pw").
		Return(&models.User{ID: uid, Username: "alice", PasswordHash: "hash"}, nil)
	s.svc.On("Login", mock.Anything, "alice", "pw").Return("tok", nil)
	s.svc.On("Login", mock.Anything, "alice", "bad").Return("", service.ErrInvalidCredentials)
	s.svc.On("KeyRate", mock.Anything).Return(21.0, nil)

	rec := s.do(http.MethodPost, "/register", `{"username":"alice","email":"a@example.com","password":"pw"}`, false)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "hash")

	rec = s.do(http.MethodPost, "/login", `{"username":"alice","password":"pw"}`, false)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "tok", decodeBody(t, rec)["token"])

	rec = s.do(http.MethodPost, "/login", `{"username":"alice","password":"bad"}`, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(http.MethodGet, "/key-rate", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 21.0, decodeBody(t, rec)["key_rate"])

	rec = s.do(http.MethodGet, "/health", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestKeyRateUnavailable(t *testing.T) {
	s := newTestServer(t)
	s.svc.On("KeyRate", mock.Anything).Return(0.0, errors.New("timeout"))

	rec := s.do(http.MethodGet, "/key-rate", "", false)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	s := newTestServer(t)
	for _, path := range []string{"/products", "/forecast", "/loan", "/export", "/startup-activities"} {
		rec := s.do(http.MethodGet, path, "", false)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
	s.svc.AssertNotCalled(t, "Forecast", mock.Anything, mock.Anything)
}

func TestProducts(t *testing.T) {
	s := newTestServer(t)
	details := &models.ProductDetails{CompanyName: "Acme", Products: []models.Product{{Description: "Widget"}}}
	s.svc.On("GetProductDetails", mock.Anything, uid).Return(details, nil)
	s.svc.On("SaveProductDetails", mock.Anything, uid, mock.MatchedBy(func(d models.ProductDetails) bool {
		return d.CompanyName == "Acme" && len(d.Products) == 1 && d.Products[0].VolumeUnit == models.VolumeQuarterly
	})).Return(nil)

	rec := s.do(http.MethodGet, "/products", "", true)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Acme", decodeBody(t, rec)["company_name"])

	body := `{"company_name":"Acme","products":[{"description":"Widget","price":10,"sales_volume":5,"sales_volume_unit":"quarterly"}]}`
	rec = s.do(http.MethodPut, "/products", body, true)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodPut, "/products", `{"products":[{"price":"ten"}]}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	s.svc.AssertNumberOfCalls(t, "SaveProductDetails", 1)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"invalid input", wrapped(service.ErrInvalidInput), http.StatusBadRequest, ""},
		{"no products", service.ErrNoProducts, http.StatusConflict, "no_data"},
		{"not found", repository.ErrNotFound, http.StatusNotFound, ""},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			s.svc.On("RecalculateForecast", mock.Anything, uid, mock.Anything).Return(nil, tt.err)

			rec := s.do(http.MethodPost, "/forecast/recalculate", `{"cogs_percentage":35}`, true)
			assert.Equal(t, tt.status, rec.Code)
			body := decodeBody(t, rec)
			assert.NotEmpty(t, body["error"])
			if tt.code != "" {
				assert.Equal(t, tt.code, body["code"])
			}
		})
	}
}

func wrapped(err error) error {
	return errors.Join(errors.New("cogs_percentage must be between 0 and 100"), err)
}

func TestForecastAndLoan(t *testing.T) {
	s := newTestServer(t)
	view := &models.ForecastView{Forecast: models.Forecast{Annual: models.Statement{Period: "annual", Revenue: 12000}}}
	s.svc.On("Forecast", mock.Anything, uid).Return(view, nil)
	s.svc.On("LoanCalculator", mock.Anything, uid).Return(nil, service.ErrNoForecast)
	s.svc.On("SubmitLoan", mock.Anything, uid, models.LoanTerms{Amount: 1200, InterestRate: 0, TermYears: 1}).
		Return(&models.LoanView{MonthlyPayment: 100, DSCR: 1.5, RiskLevel: models.RiskLow}, nil)

	rec := s.do(http.MethodGet, "/forecast", "", true)
	assert.Equal(t, http.StatusOK, rec.Code)
	annual := decodeBody(t, rec)["forecast"].(map[string]any)["annual"].(map[string]any)
	assert.Equal(t, 12000.0, annual["revenue"])

	rec = s.do(http.MethodGet, "/loan", "", true)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "no_data", decodeBody(t, rec)["code"])

	rec = s.do(http.MethodPost, "/loan", `{"loan_amount":1200,"interest_rate":0,"loan_term":1}`, true)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "low_risk", decodeBody(t, rec)["risk_level"])
}

func TestExport(t *testing.T) {
	s := newTestServer(t)
	s.svc.On("Export", mock.Anything, uid).Return(bytes.NewBufferString("xlsx-bytes"), nil)
	s.svc.On("EmailExport", mock.Anything, uid).Return(nil)

	rec := s.do(http.MethodGet, "/export", "", true)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, export.ContentType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), export.FileName)
	assert.Equal(t, "xlsx-bytes", rec.Body.String())

	rec = s.do(http.MethodPost, "/export/email", "", true)
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestStartupActivities(t *testing.T) {
	s := newTestServer(t)
	checklist := &models.StartupChecklist{TotalWeight: 10, Readiness: 5}
	s.svc.On("StartupActivities", mock.Anything, uid).Return(checklist, nil)
	s.svc.On("SaveStartupActivities", mock.Anything, uid, mock.MatchedBy(func(a []models.StartupActivity) bool {
		return len(a) == 1 && a[0].Weight == 10
	})).Return(checklist, nil)

	rec := s.do(http.MethodGet, "/startup-activities", "", true)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 10.0, decodeBody(t, rec)["total_weight"])

	rec = s.do(http.MethodPut, "/startup-activities", `[{"activity":"Research","weight":10,"progress":50}]`, true)
	assert.Equal(t, http.StatusOK, rec.Code)
}
