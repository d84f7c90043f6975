package mapping

import (
	"github.com/SscSPs/sitebooks_ledger/internal/core/domain"
	"github.com/SscSPs/sitebooks_ledger/internal/models"
)

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:      d.PaymentID,
		CompanyID:      d.CompanyID,
		PayeeKind:      string(d.PayeeKind),
		PayeeID:        d.PayeeID,
		Amount:         d.Amount,
		PaymentDate:    d.PaymentDate,
		Method:         string(d.Method),
		BankAccountID:  d.BankAccountID,
		BankFee:        d.BankFee,
		Reference:      d.Reference,
		Memo:           d.Memo,
		JournalEntryID: d.JournalEntryID,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:      m.PaymentID,
		CompanyID:      m.CompanyID,
		PayeeKind:      domain.PayeeKind(m.PayeeKind),
		PayeeID:        m.PayeeID,
		Amount:         m.Amount,
		PaymentDate:    m.PaymentDate,
		Method:         domain.PaymentMethod(m.Method),
		BankAccountID:  m.BankAccountID,
		BankFee:        m.BankFee,
		Reference:      m.Reference,
		Memo:           m.Memo,
		JournalEntryID: m.JournalEntryID,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
