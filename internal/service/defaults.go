package service

import (
	"context"
	"fmt"

	"github.com/Dan9191/bizplan/internal/models"
	"github.com/Dan9191/bizplan/internal/repository"
)

const blankProducts = 4

func defaultExpenses() []models.Expense {
	return []models.Expense{
		{Item: "Rent/Lease", Amount: 1200, Frequency: models.FrequencyMonthly},
		{Item: "Utilities", Amount: 300, Frequency: models.FrequencyMonthly},
		{Item: "Salaries & Wages", Amount: 4000, Frequency: models.FrequencyMonthly},
		{Item: "Marketing & Advertising", Amount: 500, Frequency: models.FrequencyMonthly},
		{Item: "Insurance", Amount: 600, Frequency: models.FrequencyQuarterly},
		{Item: "Software & Subscriptions", Amount: 150, Frequency: models.FrequencyMonthly},
		{Item: "Accounting", Amount: 450, Frequency: models.FrequencyQuarterly},
		{Item: "Legal", Amount: 100, Frequency: models.FrequencyMonthly},
	}
}

func defaultAssets() []models.Asset {
	return []models.Asset{
		{Description: "Cash & Equivalents", Amount: 10000},
		{Description: "Inventory", Amount: 5000},
		{Description: "Equipment", Amount: 35000},
	}
}

func defaultLiabilities() []models.Liability {
	return []models.Liability{
		{Description: "Credit Card Debt", Amount: 5000},
		{Description: "Bank Loan", Amount: 20000},
	}
}

func defaultActivities() []models.StartupActivity {
	return []models.StartupActivity{
		{Activity: "Conduct Market Research", Description: "Analyze competitors and demand", Weight: 10},
		{Activity: "Write Business Plan", Description: "Goals, strategy, financial projections", Weight: 15},
		{Activity: "Register the Business", Description: "Legal structure, name, licenses and permits", Weight: 10},
		{Activity: "Secure Funding", Description: "Savings, loans, investors or grants", Weight: 15},
		{Activity: "Set Up Finances", Description: "Business bank account, bookkeeping, tax IDs", Weight: 10},
		{Activity: "Find a Location", Description: "Lease premises or set up a home office", Weight: 10},
		{Activity: "Build the Product or Service", Description: "Suppliers, inventory, first offering", Weight: 10},
		{Activity: "Launch Marketing", Description: "Brand, website, social media, launch campaign", Weight: 10},
		{Activity: "Hire Staff", Description: "Roles, recruiting, onboarding", Weight: 5},
		{Activity: "Prepare Operational & Privacy Policies", Description: "SOPs, data/privacy, contracts, legal docs", Weight: 5},
	}
}

// EnsureDefaults seeds a user's starting data unless it already exists
func (s *Service) EnsureDefaults(ctx context.Context, userID int64) error {
	return s.store.WithTx(ctx, func(tx repository.Store) error {
		return s.ensureDefaults(ctx, tx, userID)
	})
}

// ensureDefaults is keyed on the financial parameters row: once it exists the
// user is considered initialized and nothing is touched.
func (s *Service) ensureDefaults(ctx context.Context, tx repository.Store, userID int64) error {
	created, err := tx.CreateFinancialParams(ctx, models.DefaultFinancialParameters(userID))
	if err != nil {
		return fmt.Errorf("failed to seed financial parameters: %w", err)
	}
	if !created {
		return nil
	}

	products := make([]models.Product, blankProducts)
	for i := range products {
		products[i].VolumeUnit = models.VolumeMonthly
	}
	if err := tx.ReplaceProducts(ctx, userID, products); err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}
	if err := tx.ReplaceExpenses(ctx, userID, defaultExpenses()); err != nil {
		return fmt.Errorf("failed to seed expenses: %w", err)
	}
	if err := tx.ReplaceAssets(ctx, userID, defaultAssets()); err != nil {
		return fmt.Errorf("failed to seed assets: %w", err)
	}
	if err := tx.ReplaceLiabilities(ctx, userID, defaultLiabilities()); err != nil {
		return fmt.Errorf("failed to seed liabilities: %w", err)
	}
	if err := tx.ReplaceStartupActivities(ctx, userID, defaultActivities()); err != nil {
		return fmt.Errorf("failed to seed startup activities: %w", err)
	}

	s.log.Infof("Seeded default data for user %d", userID)
	return nil
}
