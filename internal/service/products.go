package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/Dan9191/bizplan/internal/models"
	"github.com/Dan9191/bizplan/internal/repository"
)

// GetProductDetails returns a user's products, expenses and company name
func (s *Service) GetProductDetails(ctx context.Context, userID int64) (*models.ProductDetails, error) {
	params, err := s.store.GetFinancialParams(ctx, userID)
	if err != nil {
		return nil, err
	}
	products, err := s.store.ListProducts(ctx, userID)
	if err != nil {
		return nil, err
	}
	expenses, err := s.store.ListExpenses(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &models.ProductDetails{
		CompanyName: params.CompanyName,
		Products:    products,
		Expenses:    expenses,
	}, nil
}

// SaveProductDetails replaces a user's products and expenses and renames the company
func (s *Service) SaveProductDetails(ctx context.Context, userID int64, details models.ProductDetails) error {
	products := make([]models.Product, 0, len(details.Products))
	for i, p := range details.Products {
		if p.VolumeUnit == "" {
			p.VolumeUnit = models.VolumeMonthly
		}
		if !p.VolumeUnit.Valid() {
			return invalidInput("product %d: unknown sales volume unit %q", i+1, p.VolumeUnit)
		}
		if !isFinite(p.Price) {
			return invalidInput("product %d: price is not a number", i+1)
		}
		p.Description = strings.TrimSpace(p.Description)
		p.Price = math.Max(0, p.Price)
		p.SalesVolume = max(0, p.SalesVolume)
		products = append(products, p)
	}

	expenses := make([]models.Expense, 0, len(details.Expenses))
	for i, e := range details.Expenses {
		if e.Frequency == "" {
			e.Frequency = models.FrequencyMonthly
		}
		if !e.Frequency.Valid() {
			return invalidInput("expense %d: unknown frequency %q", i+1, e.Frequency)
		}
		if !isFinite(e.Amount) {
			return invalidInput("expense %d: amount is not a number", i+1)
		}
		e.Item = strings.TrimSpace(e.Item)
		e.Amount = math.Max(0, e.Amount)
		expenses = append(expenses, e)
	}

	err := s.store.WithTx(ctx, func(tx repository.Store) error {
		params, err := tx.GetFinancialParams(ctx, userID)
		if err != nil {
			return err
		}
		if err := tx.ReplaceProducts(ctx, userID, products); err != nil {
			return err
		}
		if err := tx.ReplaceExpenses(ctx, userID, expenses); err != nil {
			return err
		}
		params.CompanyName = strings.TrimSpace(details.CompanyName)
		return tx.UpdateFinancialParams(ctx, params)
	})
	if err != nil {
		return fmt.Errorf("failed to save product details: %w", err)
	}

	s.log.Infof("Product details saved for user %d: %d products, %d expenses", userID, len(products), len(expenses))
	return nil
}

func isFinite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
