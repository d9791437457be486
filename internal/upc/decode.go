// Package upc decodes the 14-character product codes printed on garment tags.
// Positions are fixed: chars 0-1 select line and gender, 2-3 the category,
// 4 the launch year digit, 5 the season, 11-13 the size; the first 11 chars
// form the SKU.
package upc

// CodeLength is the only code length the decoder accepts. Callers gate on it;
// Decode on shorter input is undefined.
const CodeLength = 14

var (
	golfPrefixes = map[string]struct{}{"HU": {}, "HW": {}}
	malePrefixes = map[string]struct{}{"HU": {}, "HZ": {}, "HJ": {}}

	// Apparel category codes; everything else is an accessory.
	appCategories = map[string]struct{}{
		"TS": {}, "SH": {}, "SW": {}, "JU": {}, "JA": {},
		"DR": {}, "PA": {}, "SK": {}, "CO": {},
	}
)

// Attributes are the fields derived from a full-length product code.
type Attributes struct {
	SKU      string
	Type     string // GOLF or CASUAL
	Gender   string // Male or Female
	Division string // APP or ACC
	Category string
	Year     string
	Season   string
	Size     string
}

// Decode slices a full-length product code into its derived attributes.
// It is total over any 14-character input: unknown prefixes classify as
// CASUAL/Female and unknown category codes as ACC, never an error.
func Decode(code string) Attributes {
	prefix := code[0:2]
	category := code[2:4]

	attrs := Attributes{
		SKU:      code[0:11],
		Category: category,
		Year:     "202" + string(code[4]),
		Season:   string(code[5]),
		Size:     code[11:14],
		Type:     "CASUAL",
		Gender:   "Female",
		Division: "ACC",
	}
	if _, ok := golfPrefixes[prefix]; ok {
		attrs.Type = "GOLF"
	}
	if _, ok := malePrefixes[prefix]; ok {
		attrs.Gender = "Male"
	}
	if _, ok := appCategories[category]; ok {
		attrs.Division = "APP"
	}
	return attrs
}
