package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Dan9191/bizplan/internal/models"
	"github.com/Dan9191/bizplan/internal/repository"
)

const maxTotalWeight = 100

// StartupActivities returns the user's launch checklist with its readiness
func (s *Service) StartupActivities(ctx context.Context, userID int64) (*models.StartupChecklist, error) {
	activities, err := s.store.ListStartupActivities(ctx, userID)
	if err != nil {
		return nil, err
	}
	return checklist(activities), nil
}

// SaveStartupActivities replaces the checklist. Rows without an activity name
// are dropped and the weights may add up to at most 100.
func (s *Service) SaveStartupActivities(ctx context.Context, userID int64, in []models.StartupActivity) (*models.StartupChecklist, error) {
	activities := make([]models.StartupActivity, 0, len(in))
	total := 0
	for i, a := range in {
		a.Activity = strings.TrimSpace(a.Activity)
		if a.Activity == "" {
			continue
		}
		if a.Weight < 0 || a.Weight > maxTotalWeight {
			return nil, invalidInput("activity %d: weight must be between 0 and %d", i+1, maxTotalWeight)
		}
		if a.Progress < 0 || a.Progress > 100 {
			return nil, invalidInput("activity %d: progress must be between 0 and 100", i+1)
		}
		a.Description = strings.TrimSpace(a.Description)
		total += a.Weight
		activities = append(activities, a)
	}
	if total > maxTotalWeight {
		return nil, invalidInput("total weight cannot exceed %d%%, got %d%%", maxTotalWeight, total)
	}

	err := s.store.WithTx(ctx, func(tx repository.Store) error {
		return tx.ReplaceStartupActivities(ctx, userID, activities)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save startup activities: %w", err)
	}

	s.log.Infof("Startup activities updated for user %d", userID)
	return checklist(activities), nil
}

func checklist(activities []models.StartupActivity) *models.StartupChecklist {
	c := &models.StartupChecklist{Activities: activities}
	for _, a := range activities {
		c.TotalWeight += a.Weight
		c.Readiness += float64(a.Weight*a.Progress) / 100
	}
	return c
}
