// Package assessment serves the risk message reference data.
package assessment

import (
	"context"
	"fmt"
	"sync"

	"github.com/Dan9191/bizplan/internal/models"
	"github.com/Dan9191/bizplan/internal/repository"
	"github.com/sirupsen/logrus"
)

// Loader reads the full message table
type Loader interface {
	ListAssessmentMessages(ctx context.Context) ([]models.AssessmentMessage, error)
}

// Cache is a read-through cache of assessment messages keyed by risk level.
// The table is loaded on first use and kept for the life of the process. A
// failed load is not remembered, so the next call tries again.
type Cache struct {
	loader Loader
	log    *logrus.Logger

	mu       sync.RWMutex
	loaded   bool
	messages map[models.RiskLevel]models.AssessmentMessage
}

// NewCache creates an empty cache backed by loader
func NewCache(loader Loader, log *logrus.Logger) *Cache {
	return &Cache{loader: loader, log: log}
}

// Get returns the message for a risk level. A level missing from the table
// yields repository.ErrNotFound.
func (c *Cache) Get(ctx context.Context, level models.RiskLevel) (*models.AssessmentMessage, error) {
	messages, err := c.all(ctx)
	if err != nil {
		return nil, err
	}
	m, ok := messages[level]
	if !ok {
		c.log.Warnf("No assessment message for risk level %s", level)
		return nil, fmt.Errorf("assessment message %s: %w", level, repository.ErrNotFound)
	}
	return &m, nil
}

func (c *Cache) all(ctx context.Context) (map[models.RiskLevel]models.AssessmentMessage, error) {
	c.mu.RLock()
	if c.loaded {
		defer c.mu.RUnlock()
		return c.messages, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loaded {
		return c.messages, nil
	}

	c.log.Info("Populating assessment messages cache")
	rows, err := c.loader.ListAssessmentMessages(ctx)
	if err != nil {
		c.log.Warnf("Failed to load assessment messages: %v", err)
		return nil, fmt.Errorf("failed to load assessment messages: %w", err)
	}
	c.messages = make(map[models.RiskLevel]models.AssessmentMessage, len(rows))
	for _, m := range rows {
		c.messages[m.RiskLevel] = m
	}
	c.loaded = true
	return c.messages, nil
}

// DefaultMessages is the reference table seeded into an empty database
func DefaultMessages() []models.AssessmentMessage {
	return []models.AssessmentMessage{
		{
			RiskLevel:   models.RiskHigh,
			Status:      "High Risk",
			Caption:     "Projected operating income does not cover the loan payments. Lenders are likely to decline or ask for collateral.",
			StatusClass: "danger",
			DSCRStatus:  "Below 1.0: the business would need outside cash to service this debt.",
		},
		{
			RiskLevel:   models.RiskMedium,
			Status:      "Moderate Risk",
			Caption:     "Operating income covers the payments with little margin. Consider a smaller amount or a longer term.",
			StatusClass: "warning",
			DSCRStatus:  "Between 1.0 and 1.25: payments are covered but below most lender minimums.",
		},
		{
			RiskLevel:   models.RiskLow,
			Status:      "Low Risk",
			Caption:     "Operating income comfortably covers the loan payments.",
			StatusClass: "success",
			DSCRStatus:  "1.25 or above: meets typical lender coverage requirements.",
		},
	}
}
