package mapping

import (
	"github.com/SscSPs/sitebooks_ledger/internal/core/domain"
	"github.com/SscSPs/sitebooks_ledger/internal/models"
)

// ToModelBankAccount converts a domain BankAccount to a model BankAccount
func ToModelBankAccount(d domain.BankAccount) models.BankAccount {
	return models.BankAccount{
		BankAccountID: d.BankAccountID,
		CompanyID:     d.CompanyID,
		Name:          d.Name,
		Institution:   d.Institution,
		LastFour:      d.LastFour,
		IsActive:      d.IsActive,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBankAccount converts a model BankAccount to a domain BankAccount
func ToDomainBankAccount(m models.BankAccount) domain.BankAccount {
	return domain.BankAccount{
		BankAccountID: m.BankAccountID,
		CompanyID:     m.CompanyID,
		Name:          m.Name,
		Institution:   m.Institution,
		LastFour:      m.LastFour,
		IsActive:      m.IsActive,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelBankReconciliation converts a domain session to a model row
func ToModelBankReconciliation(d domain.BankReconciliation) models.BankReconciliation {
	return models.BankReconciliation{
		ReconciliationID: d.ReconciliationID,
		CompanyID:        d.CompanyID,
		BankAccountID:    d.BankAccountID,
		PeriodStart:      d.PeriodStart,
		PeriodEnd:        d.PeriodEnd,
		BeginningBalance: d.BeginningBalance,
		EndingBalance:    d.EndingBalance,
		Status:           string(d.Status),
		ReconciledAt:     d.ReconciledAt,
		ReconciledBy:     d.ReconciledBy,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBankReconciliation converts a model row to a domain session
func ToDomainBankReconciliation(m models.BankReconciliation) domain.BankReconciliation {
	return domain.BankReconciliation{
		ReconciliationID: m.ReconciliationID,
		CompanyID:        m.CompanyID,
		BankAccountID:    m.BankAccountID,
		PeriodStart:      m.PeriodStart,
		PeriodEnd:        m.PeriodEnd,
		BeginningBalance: m.BeginningBalance,
		EndingBalance:    m.EndingBalance,
		Status:           domain.ReconciliationStatus(m.Status),
		ReconciledAt:     m.ReconciledAt,
		ReconciledBy:     m.ReconciledBy,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelBankReconciliationItem converts a domain item to a model row
func ToModelBankReconciliationItem(d domain.BankReconciliationItem) models.BankReconciliationItem {
	return models.BankReconciliationItem{
		ItemID:           d.ItemID,
		ReconciliationID: d.ReconciliationID,
		SourceKind:       string(d.SourceKind),
		SourceID:         d.SourceID,
		Direction:        string(d.Direction),
		Amount:           d.Amount,
		ClearedAt:        d.ClearedAt,
		ClearedBy:        d.ClearedBy,
	}
}

// ToDomainBankReconciliationItem converts a model row to a domain item
func ToDomainBankReconciliationItem(m models.BankReconciliationItem) domain.BankReconciliationItem {
	return domain.BankReconciliationItem{
		ItemID:           m.ItemID,
		ReconciliationID: m.ReconciliationID,
		SourceKind:       domain.SourceKind(m.SourceKind),
		SourceID:         m.SourceID,
		Direction:        domain.Direction(m.Direction),
		Amount:           m.Amount,
		ClearedAt:        m.ClearedAt,
		ClearedBy:        m.ClearedBy,
	}
}
