package service

import (
	"context"

	"github.com/Dan9191/bizplan/internal/models"
	"github.com/Dan9191/bizplan/internal/repository"
	"github.com/stretchr/testify/mock"
)

type mockStore struct {
	mock.Mock
}

var _ repository.Store = (*mockStore)(nil)

func (m *mockStore) WithTx(ctx context.Context, fn func(tx repository.Store) error) error {
	return fn(m)
}

func (m *mockStore) CreateUser(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockStore) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *mockStore) FindUserByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *mockStore) ListProducts(ctx context.Context, userID int64) ([]models.Product, error) {
	args := m.Called(ctx, userID)
	p, _ := args.Get(0).([]models.Product)
	return p, args.Error(1)
}

func (m *mockStore) ReplaceProducts(ctx context.Context, userID int64, products []models.Product) error {
	return m.Called(ctx, userID, products).Error(0)
}

func (m *mockStore) ListExpenses(ctx context.Context, userID int64) ([]models.Expense, error) {
	args := m.Called(ctx, userID)
	e, _ := args.Get(0).([]models.Expense)
	return e, args.Error(1)
}

func (m *mockStore) ReplaceExpenses(ctx context.Context, userID int64, expenses []models.Expense) error {
	return m.Called(ctx, userID, expenses).Error(0)
}

func (m *mockStore) ListAssets(ctx context.Context, userID int64) ([]models.Asset, error) {
	args := m.Called(ctx, userID)
	a, _ := args.Get(0).([]models.Asset)
	return a, args.Error(1)
}

func (m *mockStore) ReplaceAssets(ctx context.Context, userID int64, assets []models.Asset) error {
	return m.Called(ctx, userID, assets).Error(0)
}

func (m *mockStore) ListLiabilities(ctx context.Context, userID int64) ([]models.Liability, error) {
	args := m.Called(ctx, userID)
	l, _ := args.Get(0).([]models.Liability)
	return l, args.Error(1)
}

func (m *mockStore) ReplaceLiabilities(ctx context.Context, userID int64, liabilities []models.Liability) error {
	return m.Called(ctx, userID, liabilities).Error(0)
}

func (m *mockStore) GetFinancialParams(ctx context.Context, userID int64) (*models.FinancialParameters, error) {
	args := m.Called(ctx, userID)
	p, _ := args.Get(0).(*models.FinancialParameters)
	return p, args.Error(1)
}

func (m *mockStore) CreateFinancialParams(ctx context.Context, params *models.FinancialParameters) (bool, error) {
	args := m.Called(ctx, params)
	return args.Bool(0), args.Error(1)
}

func (m *mockStore) UpdateFinancialParams(ctx context.Context, params *models.FinancialParameters) error {
	return m.Called(ctx, params).Error(0)
}

func (m *mockStore) ListStartupActivities(ctx context.Context, userID int64) ([]models.StartupActivity, error) {
	args := m.Called(ctx, userID)
	a, _ := args.Get(0).([]models.StartupActivity)
	return a, args.Error(1)
}

func (m *mockStore) ReplaceStartupActivities(ctx context.Context, userID int64, activities []models.StartupActivity) error {
	return m.Called(ctx, userID, activities).Error(0)
}

func (m *mockStore) ListAssessmentMessages(ctx context.Context) ([]models.AssessmentMessage, error) {
	args := m.Called(ctx)
	msgs, _ := args.Get(0).([]models.AssessmentMessage)
	return msgs, args.Error(1)
}

func (m *mockStore) SeedAssessmentMessages(ctx context.Context, messages []models.AssessmentMessage) (int, error) {
	args := m.Called(ctx, messages)
	return args.Int(0), args.Error(1)
}
