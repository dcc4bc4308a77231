package repository

import (
	"context"

	"github.com/Dan9191/bizplan/internal/models"
)

// Store defines the persistence operations the service layer relies on
type Store interface {
	// WithTx runs fn inside a single transaction. The transaction commits
	// when fn returns nil and rolls back otherwise.
	WithTx(ctx context.Context, fn func(tx Store) error) error

	CreateUser(ctx context.Context, user *models.User) error
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
	FindUserByID(ctx context.Context, id int64) (*models.User, error)

	ListProducts(ctx context.Context, userID int64) ([]models.Product, error)
	ReplaceProducts(ctx context.Context, userID int64, products []models.Product) error
	ListExpenses(ctx context.Context, userID int64) ([]models.Expense, error)
	ReplaceExpenses(ctx context.Context, userID int64, expenses []models.Expense) error

	ListAssets(ctx context.Context, userID int64) ([]models.Asset, error)
	ReplaceAssets(ctx context.Context, userID int64, assets []models.Asset) error
	ListLiabilities(ctx context.Context, userID int64) ([]models.Liability, error)
	ReplaceLiabilities(ctx context.Context, userID int64, liabilities []models.Liability) error

	GetFinancialParams(ctx context.Context, userID int64) (*models.FinancialParameters, error)
	CreateFinancialParams(ctx context.Context, params *models.FinancialParameters) (bool, error)
	UpdateFinancialParams(ctx context.Context, params *models.FinancialParameters) error

	ListStartupActivities(ctx context.Context, userID int64) ([]models.StartupActivity, error)
	ReplaceStartupActivities(ctx context.Context, userID int64, activities []models.StartupActivity) error

	ListAssessmentMessages(ctx context.Context) ([]models.AssessmentMessage, error)
	SeedAssessmentMessages(ctx context.Context, messages []models.AssessmentMessage) (int, error)
}
