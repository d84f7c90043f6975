package mapping

import (
	"github.com/SscSPs/sitebooks_ledger/internal/core/domain"
	"github.com/SscSPs/sitebooks_ledger/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry to a model JournalEntry
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:           d.EntryID,
		CompanyID:         d.CompanyID,
		EntryDate:         d.EntryDate,
		Reference:         d.Reference,
		Description:       d.Description,
		Status:            models.EntryStatus(d.Status),
		TotalDebit:        d.TotalDebit,
		TotalCredit:       d.TotalCredit,
		ReversedByEntryID: d.ReversedByEntryID,
		ReversalDate:      d.ReversalDate,
		ReversalOfEntryID: d.ReversalOfEntryID,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:           m.EntryID,
		CompanyID:         m.CompanyID,
		EntryDate:         m.EntryDate,
		Reference:         m.Reference,
		Description:       m.Description,
		Status:            domain.EntryStatus(m.Status),
		TotalDebit:        m.TotalDebit,
		TotalCredit:       m.TotalCredit,
		ReversedByEntryID: m.ReversedByEntryID,
		ReversalDate:      m.ReversalDate,
		ReversalOfEntryID: m.ReversalOfEntryID,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelJournalEntryLine converts a domain line to a model line
func ToModelJournalEntryLine(d domain.JournalEntryLine) models.JournalEntryLine {
	return models.JournalEntryLine{
		LineID:       d.LineID,
		EntryID:      d.EntryID,
		AccountID:    d.AccountID,
		Description:  d.Description,
		DebitAmount:  d.DebitAmount,
		CreditAmount: d.CreditAmount,
		LineOrder:    d.LineOrder,
		IsReconciled: d.IsReconciled,
		ReconciledAt: d.ReconciledAt,
		ReconciledBy: d.ReconciledBy,
	}
}

// ToDomainJournalEntryLine converts a model line to a domain line
func ToDomainJournalEntryLine(m models.JournalEntryLine) domain.JournalEntryLine {
	return domain.JournalEntryLine{
		LineID:       m.LineID,
		EntryID:      m.EntryID,
		AccountID:    m.AccountID,
		Description:  m.Description,
		DebitAmount:  m.DebitAmount,
		CreditAmount: m.CreditAmount,
		LineOrder:    m.LineOrder,
		IsReconciled: m.IsReconciled,
		ReconciledAt: m.ReconciledAt,
		ReconciledBy: m.ReconciledBy,
	}
}
