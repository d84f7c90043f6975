package accounting_test

import (
	"testing"

	"github.com/SscSPs/sitebooks_ledger/internal/apperrors"
	"github.com/SscSPs/sitebooks_ledger/internal/core/domain"
	"github.com/SscSPs/sitebooks_ledger/internal/utils/accounting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateDeletion(t *testing.T) {
	entry := domain.JournalEntry{EntryID: "e1", Status: domain.Posted}

	t.Run("unlinked entry is deletable", func(t *testing.T) {
		plan, err := accounting.EvaluateDeletion(domain.DeletionState{Entry: entry, LineCount: 2})
		require.NoError(t, err)
		assert.Equal(t, accounting.DeleteEntryOnly, plan.Action)
	})

	t.Run("malformed linked entry unlinks payment first", func(t *testing.T) {
		plan, err := accounting.EvaluateDeletion(domain.DeletionState{Entry: entry, LineCount: 0, LinkedPaymentID: strPtr("p1")})
		require.NoError(t, err)
		assert.Equal(t, accounting.UnlinkPaymentThenDelete, plan.Action)
		assert.Equal(t, "p1", plan.PaymentID)
	})

	t.Run("well-formed linked entry is protected", func(t *testing.T) {
		_, err := accounting.EvaluateDeletion(domain.DeletionState{Entry: entry, LineCount: 4, LinkedPaymentID: strPtr("p1")})
		var protected *apperrors.ProtectedDeletionError
		require.ErrorAs(t, err, &protected)
		assert.Equal(t, "p1", protected.PaymentID)
		assert.Equal(t, apperrors.ReasonLinkedPayment, protected.Reason)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		assert.Contains(t, err.Error(), "p1")
	})

	t.Run("reversed entry is protected", func(t *testing.T) {
		reversed := entry
		reversed.ReversedByEntryID = strPtr("e2")
		_, err := accounting.EvaluateDeletion(domain.DeletionState{Entry: reversed, LineCount: 2})
		var protected *apperrors.ProtectedDeletionError
		require.ErrorAs(t, err, &protected)
		assert.Equal(t, apperrors.ReasonReversalLinked, protected.Reason)
	})

	t.Run("reversal entry is protected", func(t *testing.T) {
		reversal := entry
		reversal.ReversalOfEntryID = strPtr("e0")
		_, err := accounting.EvaluateDeletion(domain.DeletionState{Entry: reversal, LineCount: 2})
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("reconciled lines are protected", func(t *testing.T) {
		_, err := accounting.EvaluateDeletion(domain.DeletionState{Entry: entry, LineCount: 2, ReconciledLineCount: 1})
		var protected *apperrors.ProtectedDeletionError
		require.ErrorAs(t, err, &protected)
		assert.Equal(t, apperrors.ReasonReconciled, protected.Reason)
	})
}
