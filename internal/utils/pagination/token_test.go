package pagination

import (
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/sitebooks_ledger/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeCursor(t *testing.T) {
	cursor := Cursor{
		Date:      time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Date(2024, 3, 15, 14, 30, 45, 123456789, time.UTC),
		ID:        "0b7c6f3e-5f1c-4a44-9d7e-2d7c4c1f3a10",
	}

	token := EncodeCursor(cursor)
	assert.NotEmpty(t, token, "Token should not be empty")

	decoded, err := DecodeCursor(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, cursor, decoded, "Cursor should match after decode")

	// Zero time values
	zero := Cursor{ID: "x"}
	decodedZero, err := DecodeCursor(EncodeCursor(zero))
	assert.NoError(t, err)
	assert.Equal(t, zero, decodedZero)
}

func TestDecodeCursorError(t *testing.T) {
	_, err := DecodeCursor("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode")
	assert.True(t, errors.Is(err, apperrors.ErrValidation))

	_, err = DecodeCursor(EncodeMultiFieldToken("2024-03-15T00:00:00Z"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	_, err = DecodeCursor(EncodeMultiFieldToken("notadate", "2024-03-15T00:00:00Z", "id"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "date parse")
	assert.True(t, errors.Is(err, apperrors.ErrValidation))

	_, err = DecodeCursor(EncodeMultiFieldToken("2024-03-15T00:00:00Z", "2024-03-15T00:00:00Z", ""))
	assert.Error(t, err, "Empty ID is rejected")
}

func TestEncodeMultiFieldToken(t *testing.T) {
	fields := []string{"field1", "field2", "field3"}
	decodedFields, err := DecodeMultiFieldToken(EncodeMultiFieldToken(fields...))
	assert.NoError(t, err)
	assert.Equal(t, fields, decodedFields)

	// When splitting an empty string with strings.Split, we get a slice with one empty string
	decodedEmpty, err := DecodeMultiFieldToken(EncodeMultiFieldToken())
	assert.NoError(t, err)
	assert.Equal(t, []string{""}, decodedEmpty)

	decodedSpecial, err := DecodeMultiFieldToken(EncodeMultiFieldToken("field|with|pipes", "plain"))
	assert.NoError(t, err)
	assert.Len(t, decodedSpecial, 4, "Should split on all pipe characters")
}
