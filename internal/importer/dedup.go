package importer

import (
	"encoding/hex"
	"strings"
	"time"

	"github.com/SscSPs/sitebooks_ledger/internal/core/domain"
	"github.com/SscSPs/sitebooks_ledger/internal/utils/money"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/blake2b"
)

// DedupKey is the identity of a real-world card transaction within one card:
// date, amount rounded to cents, trimmed description and type.
func DedupKey(date time.Time, amount decimal.Decimal, description string, txnType domain.TransactionType) string {
	return strings.Join([]string{
		date.Format("2006-01-02"),
		money.FormatCents(amount),
		strings.TrimSpace(description),
		string(txnType),
	}, "|")
}

// KeySet holds the dedup keys already known for a card.
type KeySet map[string]struct{}

// NewKeySet builds a set from existing keys.
func NewKeySet(keys ...string) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// Has reports whether key is in the set.
func (s KeySet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Add inserts key into the set.
func (s KeySet) Add(key string) {
	s[key] = struct{}{}
}

// Digest is the BLAKE2b-256 fingerprint of an uploaded statement.
func Digest(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}
