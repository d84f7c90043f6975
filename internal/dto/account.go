package dto

import (
	"time"

	"github.com/SscSPs/sitebooks_ledger/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name           string                       `json:"name" binding:"required"`
	Classification domain.AccountClassification `json:"classification" binding:"required,oneof=CASH ACCOUNTS_PAYABLE FEE_EXPENSE OTHER"`
	Description    string                       `json:"description"`
}

// UpdateAccountRequest defines the metadata allowed for updating an account.
// Classification is deliberately absent: it never changes after creation.
type UpdateAccountRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID      string                       `json:"accountID"`
	CompanyID      string                       `json:"companyID"`
	Name           string                       `json:"name"`
	Classification domain.AccountClassification `json:"classification"`
	Description    string                       `json:"description"`
	IsActive       bool                         `json:"isActive"`
	CreatedAt      time.Time                    `json:"createdAt"`
	CreatedBy      string                       `json:"createdBy"`
	LastUpdatedAt  time.Time                    `json:"lastUpdatedAt"`
	LastUpdatedBy  string                       `json:"lastUpdatedBy"`
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Limit  int `form:"limit,default=50" binding:"min=1,max=500"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// UpsertAccountMappingRequest sets the account used for a role. An empty
// SubjectID configures the company default (not allowed for CASH).
type UpsertAccountMappingRequest struct {
	Role      domain.AccountRole `json:"role" binding:"required,oneof=CASH ACCOUNTS_PAYABLE FEE_EXPENSE"`
	SubjectID string             `json:"subjectID"`
	AccountID string             `json:"accountID" binding:"required"`
}

// AccountMappingResponse defines the data returned for an account mapping.
type AccountMappingResponse struct {
	Role          domain.AccountRole `json:"role"`
	SubjectID     string             `json:"subjectID"`
	AccountID     string             `json:"accountID"`
	LastUpdatedAt time.Time          `json:"lastUpdatedAt"`
	LastUpdatedBy string             `json:"lastUpdatedBy"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:      acc.AccountID,
		CompanyID:      acc.CompanyID,
		Name:           acc.Name,
		Classification: acc.Classification,
		Description:    acc.Description,
		IsActive:       acc.IsActive,
		CreatedAt:      acc.CreatedAt,
		CreatedBy:      acc.CreatedBy,
		LastUpdatedAt:  acc.LastUpdatedAt,
		LastUpdatedBy:  acc.LastUpdatedBy,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

// ToAccountMappingResponse converts a domain.AccountMapping to its response DTO.
func ToAccountMappingResponse(m *domain.AccountMapping) AccountMappingResponse {
	return AccountMappingResponse{
		Role:          m.Role,
		SubjectID:     m.SubjectID,
		AccountID:     m.AccountID,
		LastUpdatedAt: m.LastUpdatedAt,
		LastUpdatedBy: m.LastUpdatedBy,
	}
}

// ToAccountMappingResponses converts mappings to their response DTOs.
func ToAccountMappingResponses(mappings []domain.AccountMapping) []AccountMappingResponse {
	res := make([]AccountMappingResponse, len(mappings))
	for i := range mappings {
		res[i] = ToAccountMappingResponse(&mappings[i])
	}
	return res
}
