package header

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdnguyen/sales-ledger/constants"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestResolveFindsColumns(t *testing.T) {
	row := []string{"Ngày", "Số HĐ", "Mã SP", "Số lượng", "Tổng tiền", "Khách hàng", "Điện thoại"}

	idx := Resolve(row, DefaultKeywords())

	assert.Equal(t, 0, idx[constants.FieldDate])
	assert.Equal(t, 1, idx[constants.FieldBill])
	assert.Equal(t, 2, idx[constants.FieldUPC])
	assert.Equal(t, 3, idx[constants.FieldQty])
	assert.Equal(t, 4, idx[constants.FieldAmount])
	assert.Equal(t, 5, idx[constants.FieldCustomer])
	assert.Equal(t, 6, idx[constants.FieldMobile])
}

func TestResolveSkipsSummaryColumn(t *testing.T) {
	// The recognition-total column contains the amount keyword but must not
	// win over the real amount column.
	row := []string{"Ngày", "Tổng nhận diện", "Tổng tiền"}

	idx := Resolve(row, DefaultKeywords())

	assert.Equal(t, 2, idx[constants.FieldAmount])
}

func TestResolveCustomerIsExactMatch(t *testing.T) {
	// A substring hit is not enough for the customer column.
	row := []string{"Mã khách hàng", "Khách hàng"}

	idx := Resolve(row, DefaultKeywords())

	assert.Equal(t, 1, idx[constants.FieldCustomer])
}

func TestResolveMissingColumns(t *testing.T) {
	idx := Resolve([]string{"Ghi chú"}, DefaultKeywords())

	for field, i := range idx {
		assert.Equal(t, NotFound, i, string(field))
	}
}

func TestLoadKeywordsOverlaysDefaults(t *testing.T) {
	path := t.TempDir() + "/keywords.yaml"
	writeFile(t, path, "bill: invoice\n")

	kw, err := LoadKeywords(path)
	assert.NoError(t, err)
	assert.Equal(t, "invoice", kw.Bill)
	assert.Equal(t, DefaultKeywords().Date, kw.Date)
}
