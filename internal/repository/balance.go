package repository

import (
	"context"
	"fmt"

	"github.com/Dan9191/bizplan/internal/models"
)

// balanceLine is the shared shape of asset and liability rows
type balanceLine struct {
	ID          int64
	UserID      int64
	Description string
	Amount      float64
}

func (r *Repository) listBalanceLines(ctx context.Context, table string, userID int64) ([]balanceLine, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, description, amount
		FROM bizplan.%s
		WHERE user_id = $1
		ORDER BY id`, table)
	rows, err := r.q.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", table, err)
	}
	defer rows.Close()

	var lines []balanceLine
	for rows.Next() {
		var l balanceLine
		if err := rows.Scan(&l.ID, &l.UserID, &l.Description, &l.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", table, err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", table, err)
	}
	return lines, nil
}

func (r *Repository) replaceBalanceLines(ctx context.Context, table string, userID int64, lines []balanceLine) ([]int64, error) {
	if _, err := r.q.ExecContext(ctx, fmt.Sprintf(`DELETE FROM bizplan.%s WHERE user_id = $1`, table), userID); err != nil {
		return nil, fmt.Errorf("failed to delete %s: %w", table, err)
	}

	query := fmt.Sprintf(`
		INSERT INTO bizplan.%s (user_id, description, amount)
		VALUES ($1, $2, $3)
		RETURNING id`, table)
	ids := make([]int64, len(lines))
	for i, l := range lines {
		if err := r.q.QueryRowContext(ctx, query, userID, l.Description, l.Amount).Scan(&ids[i]); err != nil {
			return nil, fmt.Errorf("failed to insert into %s: %w", table, err)
		}
	}
	return ids, nil
}

// ListAssets returns a user's assets
func (r *Repository) ListAssets(ctx context.Context, userID int64) ([]models.Asset, error) {
	lines, err := r.listBalanceLines(ctx, "assets", userID)
	if err != nil {
		return nil, err
	}
	assets := make([]models.Asset, len(lines))
	for i, l := range lines {
		assets[i] = models.Asset(l)
	}
	return assets, nil
}

// ReplaceAssets deletes a user's assets and inserts the given ones
func (r *Repository) ReplaceAssets(ctx context.Context, userID int64, assets []models.Asset) error {
	lines := make([]balanceLine, len(assets))
	for i, a := range assets {
		lines[i] = balanceLine(a)
	}
	ids, err := r.replaceBalanceLines(ctx, "assets", userID, lines)
	if err != nil {
		return err
	}
	for i := range assets {
		assets[i].ID, assets[i].UserID = ids[i], userID
	}
	return nil
}

// ListLiabilities returns a user's liabilities
func (r *Repository) ListLiabilities(ctx context.Context, userID int64) ([]models.Liability, error) {
	lines, err := r.listBalanceLines(ctx, "liabilities", userID)
	if err != nil {
		return nil, err
	}
	liabilities := make([]models.Liability, len(lines))
	for i, l := range lines {
		liabilities[i] = models.Liability(l)
	}
	return liabilities, nil
}

// ReplaceLiabilities deletes a user's liabilities and inserts the given ones
func (r *Repository) ReplaceLiabilities(ctx context.Context, userID int64, liabilities []models.Liability) error {
	lines := make([]balanceLine, len(liabilities))
	for i, l := range liabilities {
		lines[i] = balanceLine(l)
	}
	ids, err := r.replaceBalanceLines(ctx, "liabilities", userID, lines)
	if err != nil {
		return err
	}
	for i := range liabilities {
		liabilities[i].ID, liabilities[i].UserID = ids[i], userID
	}
	return nil
}
