// Package importer reads card statement exports, classifies each row and
// drops rows already known for the card.
package importer

import (
	"github.com/SscSPs/sitebooks_ledger/internal/core/domain"
)

// Result is the outcome of classifying one statement.
type Result struct {
	Format         Format
	TotalRows      int
	Accepted       []domain.CreditCardTransaction
	DuplicateCount int
	SkippedCount   int
	ExcludedCount  int
	RowErrors      []error
}

// Classifier maps statement rows to canonical transactions.
type Classifier struct {
	registry *Registry
}

// NewClassifier creates a classifier with the built-in formats.
func NewClassifier(rule NegativePaymentRule) *Classifier {
	return &Classifier{registry: DefaultRegistry(rule)}
}

// Classify maps every row and removes duplicates of existing keys. Accepted
// keys are added to existing, so repeats inside the same sheet are caught too.
// A bad row never fails the batch.
func (c *Classifier) Classify(sheet *Sheet, existing KeySet) Result {
	mapper := c.registry.Detect(sheet)
	result := Result{Format: mapper.Format(), TotalRows: len(sheet.Rows)}
	if existing == nil {
		existing = NewKeySet()
	}

	for _, row := range sheet.Rows {
		txn, outcome, err := mapper.MapRow(row)
		switch outcome {
		case rowSkipped:
			result.SkippedCount++
			if err != nil {
				result.RowErrors = append(result.RowErrors, err)
			}
			continue
		case rowExcluded:
			result.ExcludedCount++
			continue
		}

		if existing.Has(txn.DedupKey) {
			result.DuplicateCount++
			continue
		}
		existing.Add(txn.DedupKey)
		result.Accepted = append(result.Accepted, txn)
	}
	return result
}
