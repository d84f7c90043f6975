package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/sitebooks_ledger/internal/apperrors"
	"github.com/SscSPs/sitebooks_ledger/internal/core/domain"
	"github.com/SscSPs/sitebooks_ledger/internal/utils/money"
	"github.com/shopspring/decimal"
)

// Format names the column schema of a statement.
type Format string

const (
	// FormatBankCard is the bank-specific card export: card identifier,
	// separate transaction and post dates, and a Type column.
	FormatBankCard Format = "bank_card"
	// FormatGeneric is any date/description/amount sheet.
	FormatGeneric Format = "generic"
)

// NegativePaymentRule decides what happens to a bank-card "Payment" row
// carrying a negative amount.
type NegativePaymentRule string

const (
	NegativePaymentInclude NegativePaymentRule = "include"
	NegativePaymentRefund  NegativePaymentRule = "refund"
	NegativePaymentExclude NegativePaymentRule = "exclude"
)

// ParseNegativePaymentRule validates a configured rule; empty means include.
func ParseNegativePaymentRule(s string) (NegativePaymentRule, error) {
	switch rule := NegativePaymentRule(strings.ToLower(strings.TrimSpace(s))); rule {
	case "":
		return NegativePaymentInclude, nil
	case NegativePaymentInclude, NegativePaymentRefund, NegativePaymentExclude:
		return rule, nil
	}
	return "", fmt.Errorf("unknown negative payment rule %q", s)
}

type rowOutcome int

const (
	rowAccepted rowOutcome = iota
	rowSkipped
	rowExcluded
)

// Mapper turns rows of one statement format into canonical transactions.
type Mapper interface {
	Format() Format
	Matches(sheet *Sheet) bool
	MapRow(row Row) (domain.CreditCardTransaction, rowOutcome, error)
}

// Registry holds mappers in detection order. The last registered mapper
// is the fallback when nothing else matches.
type Registry struct {
	mappers []Mapper
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a mapper. Panics on a duplicate format.
func (r *Registry) Register(m Mapper) {
	for _, existing := range r.mappers {
		if existing.Format() == m.Format() {
			panic("duplicate statement format: " + string(m.Format()))
		}
	}
	r.mappers = append(r.mappers, m)
}

// Detect returns the first mapper whose schema matches the sheet.
func (r *Registry) Detect(sheet *Sheet) Mapper {
	for _, m := range r.mappers {
		if m.Matches(sheet) {
			return m
		}
	}
	if len(r.mappers) == 0 {
		return nil
	}
	return r.mappers[len(r.mappers)-1]
}

// DefaultRegistry returns the bank-card mapper followed by the generic fallback.
func DefaultRegistry(rule NegativePaymentRule) *Registry {
	r := NewRegistry()
	r.Register(&bankCardMapper{negativePayments: rule})
	r.Register(&genericMapper{})
	return r
}

var (
	cardColumns = []string{"card", "card no.", "card no", "card number", "card member", "card identifier"}

	bankTxnDateColumn = "transaction date"
	bankPostDateCol   = "post date"
	bankTypeColumn    = "type"
)

// bankCardMapper handles the bank-specific card export.
type bankCardMapper struct {
	negativePayments NegativePaymentRule
}

func (m *bankCardMapper) Format() Format { return FormatBankCard }

func (m *bankCardMapper) Matches(sheet *Sheet) bool {
	return sheet.HasHeader(cardColumns...) &&
		sheet.HasHeader(bankTxnDateColumn) &&
		sheet.HasHeader(bankPostDateCol) &&
		sheet.HasHeader(bankTypeColumn)
}

func (m *bankCardMapper) MapRow(row Row) (domain.CreditCardTransaction, rowOutcome, error) {
	rawAmount, _ := row.Get("amount")
	amount, negative, err := money.ParseAmount(rawAmount)
	if err != nil {
		return domain.CreditCardTransaction{}, rowSkipped, rowError(row, "amount", rawAmount, "unparsable amount")
	}

	rawType, _ := row.Get(bankTypeColumn)
	txnType := bankCardType(rawType)
	if txnType == domain.TxnPayment {
		if !negative {
			// positive payments are credits already booked through payments
			return domain.CreditCardTransaction{}, rowExcluded, nil
		}
		switch m.negativePayments {
		case NegativePaymentExclude:
			return domain.CreditCardTransaction{}, rowExcluded, nil
		case NegativePaymentRefund:
			txnType = domain.TxnRefund
		}
	}

	rawDate, _ := row.Get(bankTxnDateColumn)
	date, err := ParseDate(rawDate)
	if err != nil {
		return domain.CreditCardTransaction{}, rowSkipped, rowError(row, bankTxnDateColumn, rawDate, "unparsable date")
	}
	var postDate *time.Time
	if rawPost, _ := row.Get(bankPostDateCol); rawPost != "" {
		if pd, err := ParseDate(rawPost); err == nil {
			postDate = &pd
		}
	}

	description, _ := row.Get("description")
	if description == "" {
		return domain.CreditCardTransaction{}, rowSkipped, rowError(row, "description", "", "missing description")
	}
	category, _ := row.Get("category")
	memo, _ := row.Get("memo")

	return canonical(date, postDate, description, "", category, "", memo, amount, txnType), rowAccepted, nil
}

func bankCardType(raw string) domain.TransactionType {
	switch {
	case strings.EqualFold(raw, "Payment"):
		return domain.TxnPayment
	case strings.EqualFold(raw, "Fee"):
		return domain.TxnFee
	case strings.EqualFold(raw, "Adjustment"):
		return domain.TxnAdjustment
	}
	return domain.TxnPurchase
}

var (
	genericDateColumns        = []string{"date", "transaction date", "trans date", "posted date", "posting date"}
	genericDescriptionColumns = []string{"description", "details", "transaction description", "narrative"}
	genericAmountColumns      = []string{"amount", "transaction amount"}
	genericMerchantColumns    = []string{"vendor", "merchant", "payee"}
	genericCategoryColumns    = []string{"category"}
	genericTypeColumns        = []string{"type", "transaction type"}
	genericReferenceColumns   = []string{"reference", "ref", "reference number", "check number"}
	genericMemoColumns        = []string{"memo", "notes"}
)

// genericMapper handles any date/description/amount sheet.
type genericMapper struct{}

func (m *genericMapper) Format() Format { return FormatGeneric }

func (m *genericMapper) Matches(sheet *Sheet) bool {
	return sheet.HasHeader(genericDateColumns...) &&
		sheet.HasHeader(genericDescriptionColumns...) &&
		sheet.HasHeader(genericAmountColumns...)
}

func (m *genericMapper) MapRow(row Row) (domain.CreditCardTransaction, rowOutcome, error) {
	rawDate, _ := row.Get(genericDateColumns...)
	description, _ := row.Get(genericDescriptionColumns...)
	rawAmount, _ := row.Get(genericAmountColumns...)
	switch {
	case rawDate == "":
		return domain.CreditCardTransaction{}, rowSkipped, rowError(row, "date", "", "missing date")
	case description == "":
		return domain.CreditCardTransaction{}, rowSkipped, rowError(row, "description", "", "missing description")
	case rawAmount == "":
		return domain.CreditCardTransaction{}, rowSkipped, rowError(row, "amount", "", "missing amount")
	}

	date, err := ParseDate(rawDate)
	if err != nil {
		return domain.CreditCardTransaction{}, rowSkipped, rowError(row, "date", rawDate, "unparsable date")
	}
	amount, negative, err := money.ParseAmount(rawAmount)
	if err != nil {
		return domain.CreditCardTransaction{}, rowSkipped, rowError(row, "amount", rawAmount, "unparsable amount")
	}

	txnType := domain.TxnPurchase
	if rawType, hasType := row.Get(genericTypeColumns...); hasType && rawType != "" {
		txnType = genericType(rawType)
	} else if negative {
		txnType = domain.TxnRefund
	}

	merchant, _ := row.Get(genericMerchantColumns...)
	category, _ := row.Get(genericCategoryColumns...)
	reference, _ := row.Get(genericReferenceColumns...)
	memo, _ := row.Get(genericMemoColumns...)

	return canonical(date, nil, description, merchant, category, reference, memo, amount, txnType), rowAccepted, nil
}

func genericType(raw string) domain.TransactionType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "payment":
		return domain.TxnPayment
	case "refund", "return":
		return domain.TxnRefund
	case "fee":
		return domain.TxnFee
	case "adjustment":
		return domain.TxnAdjustment
	}
	return domain.TxnPurchase
}

func canonical(date time.Time, postDate *time.Time, description, merchant, category, reference, memo string, amount decimal.Decimal, txnType domain.TransactionType) domain.CreditCardTransaction {
	description = strings.TrimSpace(description)
	return domain.CreditCardTransaction{
		TransactionDate: date,
		PostDate:        postDate,
		Description:     description,
		Merchant:        merchant,
		Category:        category,
		Reference:       reference,
		Memo:            memo,
		Amount:          amount,
		TransactionType: txnType,
		CodingStatus:    domain.Uncoded,
		ImportedFromCSV: true,
		DedupKey:        DedupKey(date, amount, description, txnType),
	}
}

func rowError(row Row, column, value, reason string) error {
	return &apperrors.RowParseError{Row: row.Line, Column: column, Value: value, Reason: reason}
}
