package constants

// FieldKey identifies one logical column of a sales record. The same keys
// drive header resolution, filtering, inline edits, and export layout.
type FieldKey string

const (
	FieldDate      FieldKey = "date"
	FieldBill      FieldKey = "bill"
	FieldUPC       FieldKey = "upc"
	FieldSKU       FieldKey = "skus"
	FieldQty       FieldKey = "qty"
	FieldAmount    FieldKey = "amount"
	FieldCustomer  FieldKey = "customer"
	FieldMobile    FieldKey = "mobile"
	FieldPromotion FieldKey = "promotion"
	FieldCashier   FieldKey = "cashier"
	FieldType      FieldKey = "type"
	FieldGender    FieldKey = "gender"
	FieldDivision  FieldKey = "division"
	FieldCategory  FieldKey = "category"
	FieldYear      FieldKey = "year"
	FieldSeason    FieldKey = "season"
	FieldSize      FieldKey = "size"
)

// Field pairs a key with its display label for selectors and export headers.
type Field struct {
	Key   FieldKey
	Label string
}

// Fields is the canonical column order. Spreadsheet export and the filter
// field selector both follow this order.
var Fields = []Field{
	{FieldDate, "Date"},
	{FieldBill, "Bill No."},
	{FieldUPC, "UPC"},
	{FieldSKU, "SKU"},
	{FieldQty, "Quantity"},
	{FieldAmount, "Amount"},
	{FieldCustomer, "Customer"},
	{FieldMobile, "Mobile"},
	{FieldPromotion, "Promotion"},
	{FieldCashier, "Cashier"},
	{FieldType, "Type"},
	{FieldGender, "Gender"},
	{FieldDivision, "Division"},
	{FieldCategory, "Category"},
	{FieldYear, "Year"},
	{FieldSeason, "Season"},
	{FieldSize, "Size"},
}

// FieldKeys returns the keys in canonical order.
func FieldKeys() []FieldKey {
	keys := make([]FieldKey, len(Fields))
	for i, f := range Fields {
		keys[i] = f.Key
	}
	return keys
}

// IsField reports whether key names one of the logical fields.
func IsField(key FieldKey) bool {
	for _, f := range Fields {
		if f.Key == key {
			return true
		}
	}
	return false
}

// Label returns the display label for key, or the key itself when unknown.
func Label(key FieldKey) string {
	for _, f := range Fields {
		if f.Key == key {
			return f.Label
		}
	}
	return string(key)
}
