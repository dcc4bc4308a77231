package repository

import (
	"context"
	"fmt"

	"github.com/Dan9191/bizplan/internal/models"
)

// ListAssessmentMessages returns the risk message reference table
func (r *Repository) ListAssessmentMessages(ctx context.Context) ([]models.AssessmentMessage, error) {
	query := `
		SELECT risk_level, status, caption, status_class, dscr_status
		FROM bizplan.assessment_messages`
	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list assessment messages: %w", err)
	}
	defer rows.Close()

	var messages []models.AssessmentMessage
	for rows.Next() {
		var m models.AssessmentMessage
		if err := rows.Scan(&m.RiskLevel, &m.Status, &m.Caption, &m.StatusClass, &m.DSCRStatus); err != nil {
			return nil, fmt.Errorf("failed to scan assessment message: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list assessment messages: %w", err)
	}
	return messages, nil
}

// SeedAssessmentMessages inserts the messages whose risk level is not yet
// present and returns how many were added
func (r *Repository) SeedAssessmentMessages(ctx context.Context, messages []models.AssessmentMessage) (int, error) {
	query := `
		INSERT INTO bizplan.assessment_messages (risk_level, status, caption, status_class, dscr_status)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (risk_level) DO NOTHING`
	var inserted int
	for _, m := range messages {
		res, err := r.q.ExecContext(ctx, query, m.RiskLevel, m.Status, m.Caption, m.StatusClass, m.DSCRStatus)
		if err != nil {
			return inserted, fmt.Errorf("failed to seed assessment message %s: %w", m.RiskLevel, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return inserted, fmt.Errorf("failed to seed assessment message %s: %w", m.RiskLevel, err)
		}
		inserted += int(n)
	}
	return inserted, nil
}
