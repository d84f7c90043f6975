package apperrors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the resource changed state underneath the caller (a lost compare-and-swap).
var ErrConflict = errors.New("resource state conflict")

// ErrForbidden indicates that the operation is not allowed on the resource in its current state.
var ErrForbidden = errors.New("operation not allowed")

// ErrInternal indicates an unexpected storage or infrastructure failure.
var ErrInternal = errors.New("internal error")

// AppError wraps a lower level error with an HTTP-ish status code and a message.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match AppErrors against the sentinel for their code.
func (e *AppError) Is(target error) bool {
	switch e.Code {
	case http.StatusNotFound:
		return target == ErrNotFound
	case http.StatusBadRequest:
		return target == ErrValidation
	case http.StatusConflict:
		return target == ErrConflict
	case http.StatusInternalServerError:
		return target == ErrInternal
	}
	return false
}

// RowParseError reports a single statement row that could not be read.
// The row is skipped and the import continues.
type RowParseError struct {
	Row    int // 1-based data row, header excluded
	Column string
	Value  string
	Reason string
}

func (e *RowParseError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("row %d: %s", e.Row, e.Reason)
	}
	return fmt.Sprintf("row %d: column %q value %q: %s", e.Row, e.Column, e.Value, e.Reason)
}

func (e *RowParseError) Is(target error) bool {
	return target == ErrValidation
}

// AccountResolutionError reports a missing account mapping for a role.
type AccountResolutionError struct {
	CompanyID string
	Role      string
	SubjectID string
}

func (e *AccountResolutionError) Error() string {
	if e.SubjectID == "" {
		return fmt.Sprintf("no %s account mapped for company %s", e.Role, e.CompanyID)
	}
	return fmt.Sprintf("no %s account mapped for %s in company %s", e.Role, e.SubjectID, e.CompanyID)
}

func (e *AccountResolutionError) Is(target error) bool {
	return target == ErrValidation
}

// UnbalancedEntryError reports an entry whose debit and credit sums disagree.
type UnbalancedEntryError struct {
	EntryID string
	Debits  decimal.Decimal
	Credits decimal.Decimal
}

func (e *UnbalancedEntryError) Error() string {
	return fmt.Sprintf("journal entry %s is unbalanced: debits %s, credits %s", e.EntryID, e.Debits.String(), e.Credits.String())
}

func (e *UnbalancedEntryError) Is(target error) bool {
	return target == ErrValidation
}

// Deletion block reasons.
const (
	ReasonLinkedPayment  = "linked_payment"
	ReasonReversalLinked = "reversal_linked"
	ReasonReconciled     = "reconciled"
)

// ProtectedDeletionError reports why a journal entry cannot be deleted.
type ProtectedDeletionError struct {
	EntryID   string
	PaymentID string
	Reason    string
}

func (e *ProtectedDeletionError) Error() string {
	switch e.Reason {
	case ReasonLinkedPayment:
		return fmt.Sprintf("journal entry %s is posted for payment %s and cannot be deleted", e.EntryID, e.PaymentID)
	case ReasonReversalLinked:
		return fmt.Sprintf("journal entry %s is linked to a reversal and cannot be deleted", e.EntryID)
	case ReasonReconciled:
		return fmt.Sprintf("journal entry %s has reconciled lines and cannot be deleted", e.EntryID)
	}
	return fmt.Sprintf("journal entry %s cannot be deleted", e.EntryID)
}

func (e *ProtectedDeletionError) Is(target error) bool {
	return target == ErrForbidden
}
