package accounting

import (
	"github.com/SscSPs/sitebooks_ledger/internal/apperrors"
	"github.com/SscSPs/sitebooks_ledger/internal/core/domain"
)

// DeletionAction is what the repository must do to delete an entry.
type DeletionAction int

const (
	// DeleteEntryOnly removes lines then the entry.
	DeleteEntryOnly DeletionAction = iota
	// UnlinkPaymentThenDelete clears the malformed payment link first.
	UnlinkPaymentThenDelete
)

// DeletionPlan is the allowed deletion path for an entry.
type DeletionPlan struct {
	Action    DeletionAction
	PaymentID string
}

// EvaluateDeletion applies the deletion policy. Reconciled or reversal-linked
// entries are kept for audit. An entry linked from a payment can only go when
// it is malformed (no lines), and then the payment link is cleared first.
func EvaluateDeletion(state domain.DeletionState) (DeletionPlan, error) {
	entry := state.Entry
	if state.ReconciledLineCount > 0 {
		return DeletionPlan{}, &apperrors.ProtectedDeletionError{EntryID: entry.EntryID, Reason: apperrors.ReasonReconciled}
	}
	if entry.ReversedByEntryID != nil || entry.ReversalOfEntryID != nil {
		return DeletionPlan{}, &apperrors.ProtectedDeletionError{EntryID: entry.EntryID, Reason: apperrors.ReasonReversalLinked}
	}
	if state.LinkedPaymentID == nil {
		return DeletionPlan{Action: DeleteEntryOnly}, nil
	}
	if state.LineCount > 0 {
		return DeletionPlan{}, &apperrors.ProtectedDeletionError{
			EntryID:   entry.EntryID,
			PaymentID: *state.LinkedPaymentID,
			Reason:    apperrors.ReasonLinkedPayment,
		}
	}
	return DeletionPlan{Action: UnlinkPaymentThenDelete, PaymentID: *state.LinkedPaymentID}, nil
}
