package services

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/sitebooks_ledger/internal/apperrors"
	"github.com/SscSPs/sitebooks_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/sitebooks_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sitebooks_ledger/internal/core/ports/services"
	"github.com/SscSPs/sitebooks_ledger/internal/dto"
	"github.com/SscSPs/sitebooks_ledger/internal/importer"
	"github.com/google/uuid"
)

// importService registers cards and imports their statements.
type importService struct {
	BaseService
	cardRepo   portsrepo.CreditCardRepositoryWithTx
	classifier *importer.Classifier
	maxBytes   int64
}

// NewImportService creates a new ImportService. maxBytes <= 0 disables the size check.
func NewImportService(cardRepo portsrepo.CreditCardRepositoryWithTx, classifier *importer.Classifier, maxBytes int64, opts ...Option) portssvc.ImportSvcFacade {
	svc := &importService{
		cardRepo:   cardRepo,
		classifier: classifier,
		maxBytes:   maxBytes,
	}
	svc.apply(opts)
	return svc
}

var _ portssvc.ImportSvcFacade = (*importService)(nil)

func (s *importService) CreateCreditCard(ctx context.Context, companyID string, req dto.CreateCreditCardRequest, userID string) (*domain.CreditCard, error) {
	if err := s.RequireCompany(ctx, companyID); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: card name is required", apperrors.ErrValidation)
	}

	card := domain.CreditCard{
		CardID:      uuid.NewString(),
		CompanyID:   companyID,
		Name:        name,
		LastFour:    req.LastFour,
		AuditFields: domain.NewAuditFields(userID, s.Now()),
	}
	if err := s.cardRepo.SaveCreditCard(ctx, card); err != nil {
		s.LogError(ctx, err, "Failed to save credit card", slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to create credit card: %w", err)
	}
	s.LogInfo(ctx, "Credit card created", slog.String("card_id", card.CardID))
	return &card, nil
}

func (s *importService) GetCreditCard(ctx context.Context, companyID string, cardID string) (*domain.CreditCard, error) {
	if err := s.RequireCompany(ctx, companyID); err != nil {
		return nil, err
	}
	return s.cardRepo.FindCreditCardByID(ctx, companyID, cardID)
}

func (s *importService) ListCreditCards(ctx context.Context, companyID string) ([]domain.CreditCard, error) {
	if err := s.RequireCompany(ctx, companyID); err != nil {
		return nil, err
	}
	return s.cardRepo.ListCreditCards(ctx, companyID)
}

// ImportStatement reads the file, classifies every row, drops rows whose dedup
// key the card already has, and stores the rest with the batch record in one
// transaction. Rows that lose a race with a concurrent import of the same
// statement are counted as duplicates.
func (s *importService) ImportStatement(ctx context.Context, companyID string, cardID string, fileName string, data []byte, userID string) (*domain.ImportResult, error) {
	logger := s.GetLogger(ctx)
	if err := s.RequireCompany(ctx, companyID); err != nil {
		return nil, err
	}
	card, err := s.cardRepo.FindCreditCardByID(ctx, companyID, cardID)
	if err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("%w: statement file is empty", apperrors.ErrValidation)
	}
	if s.maxBytes > 0 && int64(len(data)) > s.maxBytes {
		return nil, fmt.Errorf("%w: statement file exceeds %d bytes", apperrors.ErrValidation, s.maxBytes)
	}

	sheet, err := importer.ReadFile(fileName, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	existing, err := s.cardRepo.ListDedupKeys(ctx, card.CardID)
	if err != nil {
		return nil, err
	}
	classified := s.classifier.Classify(sheet, importer.NewKeySet(existing...))

	now := s.Now()
	batchID := uuid.NewString()
	txns := make([]domain.CreditCardTransaction, len(classified.Accepted))
	for i, t := range classified.Accepted {
		t.TransactionID = uuid.NewString()
		t.CardID = card.CardID
		t.CompanyID = companyID
		t.ImportBatchID = &batchID
		t.AuditFields = domain.NewAuditFields(userID, now)
		txns[i] = t
	}

	tx, err := s.cardRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer rollback(ctx, s.cardRepo, tx, logger)

	inserted, err := s.cardRepo.InsertTransactionsInTx(ctx, tx, txns)
	if err != nil {
		s.LogError(ctx, err, "Failed to insert statement rows", slog.String("card_id", card.CardID))
		return nil, err
	}
	raced := len(txns) - inserted

	batch := domain.ImportBatch{
		BatchID:        batchID,
		CardID:         card.CardID,
		CompanyID:      companyID,
		FileName:       fileName,
		FileDigest:     importer.Digest(data),
		Format:         string(classified.Format),
		TotalRows:      classified.TotalRows,
		ImportedCount:  inserted,
		DuplicateCount: classified.DuplicateCount + raced,
		SkippedCount:   classified.SkippedCount,
		ExcludedCount:  classified.ExcludedCount,
		ImportedAt:     now,
		ImportedBy:     userID,
	}
	if err := s.cardRepo.RecordImportInTx(ctx, tx, batch); err != nil {
		s.LogError(ctx, err, "Failed to record import batch", slog.String("card_id", card.CardID))
		return nil, err
	}
	if err := s.cardRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	result := &domain.ImportResult{
		BatchID:        batchID,
		Format:         batch.Format,
		ImportedCount:  batch.ImportedCount,
		DuplicateCount: batch.DuplicateCount,
		SkippedCount:   batch.SkippedCount,
		ExcludedCount:  batch.ExcludedCount,
	}
	for _, rowErr := range classified.RowErrors {
		result.RowErrors = append(result.RowErrors, rowErr.Error())
	}
	if result.ImportedCount == 0 {
		result.Message = domain.NoNewTransactionsMessage
	}

	logger.Info("Statement imported",
		slog.String("card_id", card.CardID),
		slog.String("batch_id", batchID),
		slog.String("format", result.Format),
		slog.Int("imported", result.ImportedCount),
		slog.Int("duplicates", result.DuplicateCount),
		slog.Int("skipped", result.SkippedCount),
		slog.Int("excluded", result.ExcludedCount))
	if raced > 0 {
		logger.Warn("Rows already inserted by a concurrent import", slog.Int("count", raced))
	}
	return result, nil
}

func (s *importService) ListCardTransactions(ctx context.Context, companyID string, cardID string, params dto.ListCardTransactionsParams) (*dto.ListCardTransactionsResponse, error) {
	if err := s.RequireCompany(ctx, companyID); err != nil {
		return nil, err
	}
	card, err := s.cardRepo.FindCreditCardByID(ctx, companyID, cardID)
	if err != nil {
		return nil, err
	}
	limit := params.Limit
	if limit <= 0 {
		limit = 50
	}

	txns, nextToken, err := s.cardRepo.ListTransactions(ctx, card.CardID, limit, params.NextToken)
	if err != nil {
		return nil, err
	}
	return &dto.ListCardTransactionsResponse{
		Transactions: dto.ToCardTransactionResponses(txns),
		NextToken:    nextToken,
	}, nil
}
