package importer_test

import (
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/sitebooks_ledger/internal/apperrors"
	"github.com/SscSPs/sitebooks_ledger/internal/core/domain"
	"github.com/SscSPs/sitebooks_ledger/internal/importer"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bankCardCSV = `Card,Transaction Date,Post Date,Description,Category,Type,Amount,Memo
1234,01/05/2024,01/06/2024,HOME DEPOT #123,Home,Sale,-125.50,
1234,01/07/2024,01/07/2024,AUTOPAY PAYMENT,,Payment,250.00,
1234,01/08/2024,01/09/2024,LATE FEE,Fees,Fee,-39.00,
1234,01/10/2024,01/10/2024,STATEMENT CREDIT,,Adjustment,5.00,goodwill
1234,01/11/2024,01/11/2024,PAYMENT REVERSAL,,Payment,-250.00,
`

func readCSV(t *testing.T, data string) *importer.Sheet {
	t.Helper()
	sheet, err := importer.ReadCSV(strings.NewReader(data))
	require.NoError(t, err)
	return sheet
}

func TestClassify_BankCardFormat(t *testing.T) {
	sheet := readCSV(t, bankCardCSV)
	res := importer.NewClassifier(importer.NegativePaymentInclude).Classify(sheet, nil)

	assert.Equal(t, importer.FormatBankCard, res.Format)
	assert.Equal(t, 5, res.TotalRows)
	assert.Equal(t, 1, res.ExcludedCount)
	assert.Equal(t, 0, res.SkippedCount)
	require.Len(t, res.Accepted, 4)

	sale := res.Accepted[0]
	assert.Equal(t, domain.TxnPurchase, sale.TransactionType)
	assert.True(t, decimal.RequireFromString("125.50").Equal(sale.Amount))
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), sale.TransactionDate)
	require.NotNil(t, sale.PostDate)
	assert.Equal(t, time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC), *sale.PostDate)
	assert.Equal(t, "HOME DEPOT #123", sale.Description)
	assert.Equal(t, "Home", sale.Category)
	assert.Equal(t, domain.Uncoded, sale.CodingStatus)
	assert.True(t, sale.ImportedFromCSV)
	assert.Equal(t, "2024-01-05|125.50|HOME DEPOT #123|purchase", sale.DedupKey)

	assert.Equal(t, domain.TxnFee, res.Accepted[1].TransactionType)
	assert.Equal(t, domain.TxnAdjustment, res.Accepted[2].TransactionType)
	assert.Equal(t, "goodwill", res.Accepted[2].Memo)
	assert.Equal(t, domain.TxnPayment, res.Accepted[3].TransactionType)
	assert.True(t, decimal.NewFromInt(250).Equal(res.Accepted[3].Amount))
}

func TestClassify_BankCardAccountingFormatAmount(t *testing.T) {
	sheet := readCSV(t, `Card,Transaction Date,Post Date,Description,Category,Type,Amount,Memo
1234,02/03/2024,02/04/2024,LUMBER YARD,Materials,Sale,"$(1,045.20)",
1234,02/05/2024,02/05/2024,PAYMENT RETURNED,,Payment,$(250.00),
`)
	res := importer.NewClassifier(importer.NegativePaymentInclude).Classify(sheet, nil)

	assert.Equal(t, 0, res.SkippedCount)
	assert.Equal(t, 0, res.ExcludedCount)
	assert.Empty(t, res.RowErrors)
	require.Len(t, res.Accepted, 2)
	assert.Equal(t, domain.TxnPurchase, res.Accepted[0].TransactionType)
	assert.True(t, decimal.RequireFromString("1045.20").Equal(res.Accepted[0].Amount))
	assert.Equal(t, domain.TxnPayment, res.Accepted[1].TransactionType)
	assert.True(t, decimal.NewFromInt(250).Equal(res.Accepted[1].Amount))
}

func TestClassify_BankCardPositivePaymentExcluded(t *testing.T) {
	sheet := readCSV(t, `Card,Transaction Date,Post Date,Description,Category,Type,Amount,Memo
1234,01/07/2024,01/07/2024,AUTOPAY PAYMENT,,Payment,250.00,
`)
	res := importer.NewClassifier(importer.NegativePaymentInclude).Classify(sheet, nil)

	assert.Empty(t, res.Accepted)
	assert.Equal(t, 1, res.ExcludedCount)
	assert.Equal(t, 0, res.DuplicateCount)
}

func TestClassify_NegativePaymentRule(t *testing.T) {
	data := `Card,Transaction Date,Post Date,Description,Category,Type,Amount,Memo
1234,01/11/2024,01/11/2024,PAYMENT REVERSAL,,Payment,-250.00,
`
	t.Run("refund", func(t *testing.T) {
		res := importer.NewClassifier(importer.NegativePaymentRefund).Classify(readCSV(t, data), nil)
		require.Len(t, res.Accepted, 1)
		assert.Equal(t, domain.TxnRefund, res.Accepted[0].TransactionType)
	})
	t.Run("exclude", func(t *testing.T) {
		res := importer.NewClassifier(importer.NegativePaymentExclude).Classify(readCSV(t, data), nil)
		assert.Empty(t, res.Accepted)
		assert.Equal(t, 1, res.ExcludedCount)
	})
}

func TestParseNegativePaymentRule(t *testing.T) {
	rule, err := importer.ParseNegativePaymentRule("")
	require.NoError(t, err)
	assert.Equal(t, importer.NegativePaymentInclude, rule)

	rule, err = importer.ParseNegativePaymentRule(" Refund ")
	require.NoError(t, err)
	assert.Equal(t, importer.NegativePaymentRefund, rule)

	_, err = importer.ParseNegativePaymentRule("ignore")
	assert.Error(t, err)
}

func TestClassify_GenericFormat(t *testing.T) {
	sheet := readCSV(t, ` Date ,DESCRIPTION, Amount ,Vendor,Type,Reference
2024-02-01,Lumber,"$1,200.00",Acme Lumber,,PO-1
2024-02-02,Returned drill,(89.99),Tool Shed,return,
2024-02-03,Wire fee,15,,Fee,
2024-02-04,Card payment,500,,Payment,
2024-02-05,Misc,12.00,,Adjustment,
2024-02-06,Concrete,300,,Something,
`)
	res := importer.NewClassifier(importer.NegativePaymentInclude).Classify(sheet, nil)

	assert.Equal(t, importer.FormatGeneric, res.Format)
	require.Len(t, res.Accepted, 6)
	assert.Equal(t, domain.TxnPurchase, res.Accepted[0].TransactionType)
	assert.True(t, decimal.NewFromInt(1200).Equal(res.Accepted[0].Amount))
	assert.Equal(t, "Acme Lumber", res.Accepted[0].Merchant)
	assert.Equal(t, "PO-1", res.Accepted[0].Reference)
	assert.Equal(t, domain.TxnRefund, res.Accepted[1].TransactionType)
	assert.True(t, decimal.RequireFromString("89.99").Equal(res.Accepted[1].Amount))
	assert.Equal(t, domain.TxnFee, res.Accepted[2].TransactionType)
	assert.Equal(t, domain.TxnPayment, res.Accepted[3].TransactionType)
	assert.Equal(t, domain.TxnAdjustment, res.Accepted[4].TransactionType)
	assert.Equal(t, domain.TxnPurchase, res.Accepted[5].TransactionType)
}

func TestClassify_GenericSignDecidesTypeWithoutTypeColumn(t *testing.T) {
	sheet := readCSV(t, `date,description,amount
01/15/2024,Refund from supplier,-40.00
01/16/2024,Gravel,40.00
`)
	res := importer.NewClassifier(importer.NegativePaymentInclude).Classify(sheet, nil)

	require.Len(t, res.Accepted, 2)
	assert.Equal(t, domain.TxnRefund, res.Accepted[0].TransactionType)
	assert.Equal(t, domain.TxnPurchase, res.Accepted[1].TransactionType)
	assert.NotEqual(t, res.Accepted[0].DedupKey, res.Accepted[1].DedupKey)
}

func TestClassify_SkipsIncompleteAndUnparsableRows(t *testing.T) {
	sheet := readCSV(t, `Date,Description,Amount
2024-03-01,,10.00
,No date,10.00
2024-03-02,No amount,
2024-03-03,Bad amount,ten
not-a-date,Bad date,10.00
2024-03-04,Good,10.00
`)
	res := importer.NewClassifier(importer.NegativePaymentInclude).Classify(sheet, nil)

	assert.Len(t, res.Accepted, 1)
	assert.Equal(t, 5, res.SkippedCount)
	require.Len(t, res.RowErrors, 5)
	for _, err := range res.RowErrors {
		var rowErr *apperrors.RowParseError
		assert.ErrorAs(t, err, &rowErr)
	}
	var first *apperrors.RowParseError
	require.ErrorAs(t, res.RowErrors[0], &first)
	assert.Equal(t, 1, first.Row)
	assert.Equal(t, "description", first.Column)
}

func TestClassify_IdempotentReimport(t *testing.T) {
	classifier := importer.NewClassifier(importer.NegativePaymentInclude)
	existing := importer.NewKeySet()

	first := classifier.Classify(readCSV(t, bankCardCSV), existing)
	require.Len(t, first.Accepted, 4)
	assert.Equal(t, 0, first.DuplicateCount)

	second := classifier.Classify(readCSV(t, bankCardCSV), existing)
	assert.Empty(t, second.Accepted)
	assert.Equal(t, len(first.Accepted), second.DuplicateCount)
	assert.Equal(t, first.ExcludedCount, second.ExcludedCount)
}

func TestClassify_DuplicatesWithinOneFile(t *testing.T) {
	sheet := readCSV(t, `Date,Description,Amount
2024-03-04,Fuel,45.001
2024-03-04, Fuel ,45.00
2024-03-04,Fuel,45.01
`)
	res := importer.NewClassifier(importer.NegativePaymentInclude).Classify(sheet, nil)

	assert.Len(t, res.Accepted, 2)
	assert.Equal(t, 1, res.DuplicateCount)
	assert.True(t, decimal.RequireFromString("45.001").Equal(res.Accepted[0].Amount), "magnitude is stored unrounded")
}

func TestDedupKey(t *testing.T) {
	key := importer.DedupKey(time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), decimal.RequireFromString("125.5"), "  HOME DEPOT ", domain.TxnPurchase)
	assert.Equal(t, "2024-01-05|125.50|HOME DEPOT|purchase", key)
}

func TestDigest(t *testing.T) {
	a := importer.Digest([]byte("statement"))
	assert.Len(t, a, 64)
	assert.Equal(t, a, importer.Digest([]byte("statement")))
	assert.NotEqual(t, a, importer.Digest([]byte("statement2")))
}
