package entity

import "github.com/tdnguyen/sales-ledger/constants"

// Record represents one sales-transaction line item for data transfer between
// layers. Every field is a string so heterogeneous spreadsheet input survives
// a round trip unchanged; qty and amount are parsed only at aggregation time.
// The JSON keys are the wire format of the save endpoint.
type Record struct {
	Date      string `json:"date"`
	Bill      string `json:"bill"`
	UPC       string `json:"upc"`
	SKU       string `json:"skus"`
	Qty       string `json:"qty"`
	Amount    string `json:"amount"`
	Customer  string `json:"customer"`
	Mobile    string `json:"mobile"`
	Promotion string `json:"promotion"`
	Cashier   string `json:"cashier"`
	Type      string `json:"type"`
	Gender    string `json:"gender"`
	Division  string `json:"division"`
	Category  string `json:"category"`
	Year      string `json:"year"`
	Season    string `json:"season"`
	Size      string `json:"size"`
}

// Get returns the value of the named logical field. Unknown keys read as "".
func (r *Record) Get(key constants.FieldKey) string {
	switch key {
	case constants.FieldDate:
		return r.Date
	case constants.FieldBill:
		return r.Bill
	case constants.FieldUPC:
		return r.UPC
	case constants.FieldSKU:
		return r.SKU
	case constants.FieldQty:
		return r.Qty
	case constants.FieldAmount:
		return r.Amount
	case constants.FieldCustomer:
		return r.Customer
	case constants.FieldMobile:
		return r.Mobile
	case constants.FieldPromotion:
		return r.Promotion
	case constants.FieldCashier:
		return r.Cashier
	case constants.FieldType:
		return r.Type
	case constants.FieldGender:
		return r.Gender
	case constants.FieldDivision:
		return r.Division
	case constants.FieldCategory:
		return r.Category
	case constants.FieldYear:
		return r.Year
	case constants.FieldSeason:
		return r.Season
	case constants.FieldSize:
		return r.Size
	}
	return ""
}

// Set assigns the named logical field. Unknown keys are ignored so that a
// stale filter-field selection can never corrupt a record.
func (r *Record) Set(key constants.FieldKey, value string) {
	switch key {
	case constants.FieldDate:
		r.Date = value
	case constants.FieldBill:
		r.Bill = value
	case constants.FieldUPC:
		r.UPC = value
	case constants.FieldSKU:
		r.SKU = value
	case constants.FieldQty:
		r.Qty = value
	case constants.FieldAmount:
		r.Amount = value
	case constants.FieldCustomer:
		r.Customer = value
	case constants.FieldMobile:
		r.Mobile = value
	case constants.FieldPromotion:
		r.Promotion = value
	case constants.FieldCashier:
		r.Cashier = value
	case constants.FieldType:
		r.Type = value
	case constants.FieldGender:
		r.Gender = value
	case constants.FieldDivision:
		r.Division = value
	case constants.FieldCategory:
		r.Category = value
	case constants.FieldYear:
		r.Year = value
	case constants.FieldSeason:
		r.Season = value
	case constants.FieldSize:
		r.Size = value
	}
}

// Values returns the record's fields in canonical column order, for export.
func (r *Record) Values() []string {
	out := make([]string, len(constants.Fields))
	for i, f := range constants.Fields {
		out[i] = r.Get(f.Key)
	}
	return out
}
