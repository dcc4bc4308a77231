package repository

import (
	"context"
	"fmt"

	"github.com/Dan9191/bizplan/internal/models"
)

// ListStartupActivities returns a user's checklist in insertion order
func (r *Repository) ListStartupActivities(ctx context.Context, userID int64) ([]models.StartupActivity, error) {
	query := `
		SELECT id, user_id, activity, description, weight, progress
		FROM bizplan.startup_activities
		WHERE user_id = $1
		ORDER BY id`
	rows, err := r.q.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list startup activities: %w", err)
	}
	defer rows.Close()

	activities := []models.StartupActivity{}
	for rows.Next() {
		var a models.StartupActivity
		if err := rows.Scan(&a.ID, &a.UserID, &a.Activity, &a.Description, &a.Weight, &a.Progress); err != nil {
			return nil, fmt.Errorf("failed to scan startup activity: %w", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list startup activities: %w", err)
	}
	return activities, nil
}

// ReplaceStartupActivities deletes a user's checklist and inserts the given one
func (r *Repository) ReplaceStartupActivities(ctx context.Context, userID int64, activities []models.StartupActivity) error {
	if _, err := r.q.ExecContext(ctx, `DELETE FROM bizplan.startup_activities WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("failed to delete startup activities: %w", err)
	}

	query := `
		INSERT INTO bizplan.startup_activities (user_id, activity, description, weight, progress)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	for i := range activities {
		a := &activities[i]
		a.UserID = userID
		if err := r.q.QueryRowContext(ctx, query, userID, a.Activity, a.Description, a.Weight, a.Progress).
			Scan(&a.ID); err != nil {
			return fmt.Errorf("failed to insert startup activity: %w", err)
		}
	}
	return nil
}
