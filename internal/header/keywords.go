package header

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Keywords is the vocabulary used to locate columns in a header row. It
// encodes the export's language, not algorithm, so it ships as swappable
// configuration with Vietnamese defaults matching the POS export.
type Keywords struct {
	Date   string `yaml:"date"`
	Bill   string `yaml:"bill"`
	UPC    string `yaml:"upc"`
	Qty    string `yaml:"qty"`
	Amount string `yaml:"amount"`
	Mobile string `yaml:"mobile"`

	// Customer is matched exactly (case-insensitive), not by substring.
	Customer string `yaml:"customer"`

	// Exclude guards against summary columns: a header cell containing this
	// phrase never matches a keyword.
	Exclude string `yaml:"exclude"`

	// TotalMarker flags spreadsheet subtotal/footer rows during import.
	TotalMarker string `yaml:"total_marker"`
}

// DefaultKeywords returns the vocabulary of the stock POS export.
func DefaultKeywords() Keywords {
	return Keywords{
		Date:        "ngày",
		Bill:        "số hđ",
		UPC:         "mã",
		Qty:         "lượng",
		Amount:      "tổng",
		Mobile:      "thoại",
		Customer:    "khách hàng",
		Exclude:     "tổng nhận diện",
		TotalMarker: "tổng",
	}
}

// LoadKeywords reads a YAML keyword table from path, overlaying the defaults
// so a partial file only overrides what it names.
func LoadKeywords(path string) (Keywords, error) {
	kw := DefaultKeywords()
	data, err := os.ReadFile(path)
	if err != nil {
		return kw, fmt.Errorf("read keywords: %w", err)
	}
	if err := yaml.Unmarshal(data, &kw); err != nil {
		return kw, fmt.Errorf("parse keywords: %w", err)
	}
	return kw, nil
}
