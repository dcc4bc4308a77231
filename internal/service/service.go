package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Dan9191/bizplan/internal/assessment"
	"github.com/Dan9191/bizplan/internal/config"
	"github.com/Dan9191/bizplan/internal/export"
	"github.com/Dan9191/bizplan/internal/models"
	"github.com/Dan9191/bizplan/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrMissingPrerequisite = errors.New("missing prerequisite")
	ErrInvalidCredentials  = errors.New("invalid credentials")

	ErrNoProducts = fmt.Errorf("no products to forecast: %w", ErrMissingPrerequisite)
	ErrNoForecast = fmt.Errorf("no forecast has been computed yet: %w", ErrMissingPrerequisite)
	ErrNoEmail    = fmt.Errorf("no email address on file: %w", ErrMissingPrerequisite)
)

// KeyRateSource provides the reference lending rate, in percent
type KeyRateSource interface {
	KeyRate(ctx context.Context) (float64, error)
}

// Mailer delivers exported workbooks
type Mailer interface {
	SendExport(to, username string, workbook []byte) error
}

// Service handles business logic
type Service struct {
	store    repository.Store
	cache    *assessment.Cache
	exporter *export.Exporter
	rates    KeyRateSource
	mailer   Mailer
	log      *logrus.Logger
	config   *config.Config
	now      func() time.Time
}

// NewService initializes a new service
func NewService(
	store repository.Store,
	cache *assessment.Cache,
	rates KeyRateSource,
	mailer Mailer,
	log *logrus.Logger,
	cfg *config.Config,
) *Service {
	return &Service{
		store:    store,
		cache:    cache,
		exporter: export.NewExporter(cfg.Projection),
		rates:    rates,
		mailer:   mailer,
		log:      log,
		config:   cfg,
		now:      time.Now,
	}
}

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidInput)
}

// Register creates a new user with hashed password and seeds their defaults
func (s *Service) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, invalidInput("username and password are required")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        strings.TrimSpace(email),
		PasswordHash: string(hashedPassword),
	}

	err = s.store.WithTx(ctx, func(tx repository.Store) error {
		if err := tx.CreateUser(ctx, user); err != nil {
			return err
		}
		return s.ensureDefaults(ctx, tx, user.ID)
	})
	if err != nil {
		return nil, err
	}

	s.log.Infof("User registered: %s", user.Username)
	return user, nil
}

// Login authenticates a user and returns a JWT token
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.store.FindUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   fmt.Sprintf("%d", user.ID),
		IssuedAt:  jwt.NewNumericDate(s.now()),
		ExpiresAt: jwt.NewNumericDate(s.now().Add(s.config.TokenTTL)),
	})
	tokenString, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.log.Infof("User logged in: %s", user.Username)
	return tokenString, nil
}

// KeyRate returns the reference lending rate offered as a loan-rate suggestion
func (s *Service) KeyRate(ctx context.Context) (float64, error) {
	if s.rates == nil {
		return 0, errors.New("key rate source is not configured")
	}
	return s.rates.KeyRate(ctx)
}

// SeedReferenceData fills the risk message table when it is empty
func (s *Service) SeedReferenceData(ctx context.Context) error {
	n, err := s.store.SeedAssessmentMessages(ctx, assessment.DefaultMessages())
	if err != nil {
		return fmt.Errorf("failed to seed assessment messages: %w", err)
	}
	if n > 0 {
		s.log.Infof("Seeded %d assessment messages", n)
	}
	return nil
}
