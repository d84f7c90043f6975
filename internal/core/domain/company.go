package domain

// Company is the ownership scope of every ledger record.
type Company struct {
	CompanyID   string `json:"companyID"`
	Name        string `json:"name"`
	Description string `json:"description"`
	AuditFields
}
