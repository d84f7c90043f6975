package models

// AccountClassification mirrors the classification column.
type AccountClassification string

// Account represents a ledger account row.
type Account struct {
	AccountID      string                `db:"account_id"`
	CompanyID      string                `db:"company_id"`
	Name           string                `db:"name"`
	Classification AccountClassification `db:"classification"`
	Description    string                `db:"description"`
	IsActive       bool                  `db:"is_active"`
	AuditFields
}

// AccountMapping is a row of account_mappings. SubjectID is ” for the company default.
type AccountMapping struct {
	CompanyID string `db:"company_id"`
	Role      string `db:"role"`
	SubjectID string `db:"subject_id"`
	AccountID string `db:"account_id"`
	AuditFields
}
