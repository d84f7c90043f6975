package mapping

import (
	"github.com/SscSPs/sitebooks_ledger/internal/core/domain"
	"github.com/SscSPs/sitebooks_ledger/internal/models"
)

// ToModelCreditCard converts a domain CreditCard to a model CreditCard
func ToModelCreditCard(d domain.CreditCard) models.CreditCard {
	return models.CreditCard{
		CardID:                   d.CardID,
		CompanyID:                d.CompanyID,
		Name:                     d.Name,
		LastFour:                 d.LastFour,
		ImportCount:              d.ImportCount,
		ImportedTransactionCount: d.ImportedTransactionCount,
		LastImportAt:             d.LastImportAt,
		LastImportBy:             d.LastImportBy,
		AuditFields:              ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCreditCard converts a model CreditCard to a domain CreditCard
func ToDomainCreditCard(m models.CreditCard) domain.CreditCard {
	return domain.CreditCard{
		CardID:                   m.CardID,
		CompanyID:                m.CompanyID,
		Name:                     m.Name,
		LastFour:                 m.LastFour,
		ImportCount:              m.ImportCount,
		ImportedTransactionCount: m.ImportedTransactionCount,
		LastImportAt:             m.LastImportAt,
		LastImportBy:             m.LastImportBy,
		AuditFields:              ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelCreditCardTransaction converts a domain card transaction to a model row
func ToModelCreditCardTransaction(d domain.CreditCardTransaction) models.CreditCardTransaction {
	return models.CreditCardTransaction{
		TransactionID:   d.TransactionID,
		CardID:          d.CardID,
		CompanyID:       d.CompanyID,
		TransactionDate: d.TransactionDate,
		PostDate:        d.PostDate,
		Description:     d.Description,
		Merchant:        d.Merchant,
		Category:        d.Category,
		Reference:       d.Reference,
		Memo:            d.Memo,
		Amount:          d.Amount,
		TransactionType: string(d.TransactionType),
		CodingStatus:    string(d.CodingStatus),
		ImportedFromCSV: d.ImportedFromCSV,
		DedupKey:        d.DedupKey,
		ImportBatchID:   d.ImportBatchID,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCreditCardTransaction converts a model row to a domain card transaction
func ToDomainCreditCardTransaction(m models.CreditCardTransaction) domain.CreditCardTransaction {
	return domain.CreditCardTransaction{
		TransactionID:   m.TransactionID,
		CardID:          m.CardID,
		CompanyID:       m.CompanyID,
		TransactionDate: m.TransactionDate,
		PostDate:        m.PostDate,
		Description:     m.Description,
		Merchant:        m.Merchant,
		Category:        m.Category,
		Reference:       m.Reference,
		Memo:            m.Memo,
		Amount:          m.Amount,
		TransactionType: domain.TransactionType(m.TransactionType),
		CodingStatus:    domain.CodingStatus(m.CodingStatus),
		ImportedFromCSV: m.ImportedFromCSV,
		DedupKey:        m.DedupKey,
		ImportBatchID:   m.ImportBatchID,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelImportBatch converts a domain ImportBatch to a model ImportBatch
func ToModelImportBatch(d domain.ImportBatch) models.ImportBatch {
	return models.ImportBatch{
		BatchID:        d.BatchID,
		CardID:         d.CardID,
		CompanyID:      d.CompanyID,
		FileName:       d.FileName,
		FileDigest:     d.FileDigest,
		Format:         d.Format,
		TotalRows:      d.TotalRows,
		ImportedCount:  d.ImportedCount,
		DuplicateCount: d.DuplicateCount,
		SkippedCount:   d.SkippedCount,
		ExcludedCount:  d.ExcludedCount,
		ImportedAt:     d.ImportedAt,
		ImportedBy:     d.ImportedBy,
	}
}
