package upc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeSlicing(t *testing.T) {
	attrs := Decode("HU12A567891234")

	assert.Equal(t, "HU12A567891", attrs.SKU)
	assert.Equal(t, "12", attrs.Category)
	assert.Equal(t, "202A", attrs.Year) // "202" + char at index 4, whatever it is
	assert.Equal(t, "5", attrs.Season)
	assert.Equal(t, "234", attrs.Size)
}

func TestDecodeDigitYearCode(t *testing.T) {
	attrs := Decode("HUTS2A12345678")

	assert.Equal(t, "2022", attrs.Year)
	assert.Equal(t, "A", attrs.Season)
	assert.Equal(t, "TS", attrs.Category)
	assert.Equal(t, "678", attrs.Size)
}

func TestDecodeClassification(t *testing.T) {
	cases := []struct {
		code     string
		typ      string
		gender   string
		division string
	}{
		{"HU12A567891234", "GOLF", "Male", "ACC"},
		{"HWTS2A12345678", "GOLF", "Female", "APP"},
		{"HZSH3B12345XLG", "CASUAL", "Male", "APP"},
		{"HJBA4C12345MED", "CASUAL", "Male", "ACC"},
		{"HXCO5D12345SML", "CASUAL", "Female", "APP"},
		{"ZZZZ9Z12345000", "CASUAL", "Female", "ACC"},
	}
	for _, tc := range cases {
		attrs := Decode(tc.code)
		assert.Equal(t, tc.typ, attrs.Type, tc.code)
		assert.Equal(t, tc.gender, attrs.Gender, tc.code)
		assert.Equal(t, tc.division, attrs.Division, tc.code)
	}
}

func TestDecodeDeterministic(t *testing.T) {
	a := Decode("HWDR7E98765LRG")
	b := Decode("HWDR7E98765LRG")
	assert.Equal(t, a, b)
}
