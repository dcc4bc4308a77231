package repository

import (
	"context"
	"fmt"

	"github.com/Dan9191/bizplan/internal/models"
)

// ListProducts returns a user's products in insertion order
func (r *Repository) ListProducts(ctx context.Context, userID int64) ([]models.Product, error) {
	query := `
		SELECT id, user_id, description, price, sales_volume, sales_volume_unit
		FROM bizplan.products
		WHERE user_id = $1
		ORDER BY id`
	rows, err := r.q.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.UserID, &p.Description, &p.Price, &p.SalesVolume, &p.VolumeUnit); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// ReplaceProducts deletes a user's products and inserts the given ones
func (r *Repository) ReplaceProducts(ctx context.Context, userID int64, products []models.Product) error {
	if _, err := r.q.ExecContext(ctx, `DELETE FROM bizplan.products WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("failed to delete products: %w", err)
	}

	query := `
		INSERT INTO bizplan.products (user_id, description, price, sales_volume, sales_volume_unit)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	for i := range products {
		p := &products[i]
		p.UserID = userID
		if err := r.q.QueryRowContext(ctx, query, userID, p.Description, p.Price, p.SalesVolume, p.VolumeUnit).
			Scan(&p.ID); err != nil {
			return fmt.Errorf("failed to insert product: %w", err)
		}
	}
	return nil
}

// ListExpenses returns a user's expenses in insertion order
func (r *Repository) ListExpenses(ctx context.Context, userID int64) ([]models.Expense, error) {
	query := `
		SELECT id, user_id, item, amount, frequency
		FROM bizplan.expenses
		WHERE user_id = $1
		ORDER BY id`
	rows, err := r.q.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	expenses := []models.Expense{}
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(&e.ID, &e.UserID, &e.Item, &e.Amount, &e.Frequency); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

// ReplaceExpenses deletes a user's expenses and inserts the given ones
func (r *Repository) ReplaceExpenses(ctx context.Context, userID int64, expenses []models.Expense) error {
	if _, err := r.q.ExecContext(ctx, `DELETE FROM bizplan.expenses WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("failed to delete expenses: %w", err)
	}

	query := `
		INSERT INTO bizplan.expenses (user_id, item, amount, frequency)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	for i := range expenses {
		e := &expenses[i]
		e.UserID = userID
		if err := r.q.QueryRowContext(ctx, query, userID, e.Item, e.Amount, e.Frequency).Scan(&e.ID); err != nil {
			return fmt.Errorf("failed to insert expense: %w", err)
		}
	}
	return nil
}
