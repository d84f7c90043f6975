package domain

// AccountClassification is the role an account can play in generated postings.
type AccountClassification string

const (
	ClassificationCash            AccountClassification = "CASH"
	ClassificationAccountsPayable AccountClassification = "ACCOUNTS_PAYABLE"
	ClassificationFeeExpense      AccountClassification = "FEE_EXPENSE"
	ClassificationOther           AccountClassification = "OTHER"
)

// IsValid reports whether c is a known classification.
func (c AccountClassification) IsValid() bool {
	switch c {
	case ClassificationCash, ClassificationAccountsPayable, ClassificationFeeExpense, ClassificationOther:
		return true
	}
	return false
}

// Account represents a ledger account owned by one company.
// Classification is fixed at creation; only metadata changes afterwards.
type Account struct {
	AccountID      string                `json:"accountID"`
	CompanyID      string                `json:"companyID"`
	Name           string                `json:"name"`
	Classification AccountClassification `json:"classification"`
	Description    string                `json:"description"`
	IsActive       bool                  `json:"isActive"`
	AuditFields
}

// AccountRole is the semantic slot the compiler asks the resolver to fill.
type AccountRole string

const (
	RoleCash            AccountRole = "CASH"
	RoleAccountsPayable AccountRole = "ACCOUNTS_PAYABLE"
	RoleFeeExpense      AccountRole = "FEE_EXPENSE"
)

// IsValid reports whether r is a known role.
func (r AccountRole) IsValid() bool {
	switch r {
	case RoleCash, RoleAccountsPayable, RoleFeeExpense:
		return true
	}
	return false
}

// Classification returns the account classification a mapping for r must point at.
func (r AccountRole) Classification() AccountClassification {
	return AccountClassification(r)
}

// AllowsCompanyDefault reports whether resolution may fall back to the
// company-level mapping (empty subject). Cash is always bank-account specific.
func (r AccountRole) AllowsCompanyDefault() bool {
	return r != RoleCash
}

// AccountMapping resolves (company, role, subject) to an account.
// SubjectID is a bank account id for CASH and FEE_EXPENSE, a payee id for
// ACCOUNTS_PAYABLE, or empty for the company default.
type AccountMapping struct {
	CompanyID string      `json:"companyID"`
	Role      AccountRole `json:"role"`
	SubjectID string      `json:"subjectID"`
	AccountID string      `json:"accountID"`
	AuditFields
}
