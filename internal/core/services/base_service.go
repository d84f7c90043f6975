package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/sitebooks_ledger/internal/apperrors"
	portsrepo "github.com/SscSPs/sitebooks_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/sitebooks_ledger/internal/middleware"
	"github.com/jackc/pgx/v5"
)

// BaseService provides common functionality for all services
type BaseService struct {
	// CompanyReader scopes every operation; nil skips the company check.
	CompanyReader portsrepo.CompanyReader
	now           func() time.Time
}

// Option configures the BaseService embedded in every service.
type Option func(*BaseService)

// WithCompanyReader enables the company existence check.
func WithCompanyReader(reader portsrepo.CompanyReader) Option {
	return func(s *BaseService) {
		s.CompanyReader = reader
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *BaseService) {
		s.now = now
	}
}

func (s *BaseService) apply(opts []Option) {
	for _, opt := range opts {
		opt(s)
	}
}

// Now returns the current time in UTC.
func (s *BaseService) Now() time.Time {
	if s.now == nil {
		return time.Now().UTC()
	}
	return s.now().UTC()
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// RequireCompany fails with ErrNotFound when the company does not exist.
func (s *BaseService) RequireCompany(ctx context.Context, companyID string) error {
	if companyID == "" {
		return fmt.Errorf("%w: company id is required", apperrors.ErrValidation)
	}
	if s.CompanyReader == nil {
		s.LogDebug(ctx, "No company reader provided, skipping company check", slog.String("company_id", companyID))
		return nil
	}
	if _, err := s.CompanyReader.FindCompanyByID(ctx, companyID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load company", slog.String("company_id", companyID))
		}
		return err
	}
	return nil
}

// rollback is deferred after Begin; it is a no-op once the tx is committed.
func rollback(ctx context.Context, tm portsrepo.TransactionManager, tx pgx.Tx, logger *slog.Logger) {
	if err := tm.Rollback(ctx, tx); err != nil {
		logger.Error("Failed to roll back transaction", slog.String("error", err.Error()))
	}
}
