package services

import (
	"context"

	"github.com/SscSPs/sitebooks_ledger/internal/core/domain"
	"github.com/SscSPs/sitebooks_ledger/internal/dto"
)

// JournalReaderSvc defines read operations for journal data
type JournalReaderSvc interface {
	// GetJournalEntry retrieves an entry with its lines.
	GetJournalEntry(ctx context.Context, companyID string, entryID string) (*domain.JournalEntry, []domain.JournalEntryLine, error)

	// ListJournalEntries retrieves a page of entries in a company.
	ListJournalEntries(ctx context.Context, companyID string, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error)
}

// JournalWriterSvc defines write operations for journal data
type JournalWriterSvc interface {
	// CreateJournalEntry persists a manual entry as DRAFT or POSTED.
	CreateJournalEntry(ctx context.Context, companyID string, req dto.CreateJournalEntryRequest, userID string) (*domain.JournalEntry, []domain.JournalEntryLine, error)

	// PostJournalEntry moves a DRAFT entry to POSTED.
	PostJournalEntry(ctx context.Context, companyID string, entryID string, userID string) (*domain.JournalEntry, error)

	// DeleteJournalEntry deletes an entry if the deletion policy allows it.
	DeleteJournalEntry(ctx context.Context, companyID string, entryID string, userID string) error
}

// JournalReverserSvc defines the reversal operation
type JournalReverserSvc interface {
	// ReverseJournalEntry creates the offsetting entry for a posted entry.
	ReverseJournalEntry(ctx context.Context, companyID string, entryID string, userID string) (*domain.JournalEntry, error)
}

// JournalSvcFacade combines all journal-related service interfaces
// This is a facade for clients that need access to all operations
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
	JournalReverserSvc
}
