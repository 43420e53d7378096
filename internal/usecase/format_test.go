package usecase

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{name: "zero", amount: 0, want: "₹0"},
		{name: "hundreds", amount: 999, want: "₹999"},
		{name: "thousands", amount: 1000, want: "₹1,000"},
		{name: "lakh", amount: 123456, want: "₹1,23,456"},
		{name: "crore", amount: 12345678, want: "₹1,23,45,678"},
		{name: "one fraction digit", amount: 4999.5, want: "₹4,999.5"},
		{name: "rounded to two digits", amount: 1234.567, want: "₹1,234.57"},
		{name: "trailing zero dropped", amount: 100.10, want: "₹100.1"},
		{name: "negative", amount: -2500, want: "-₹2,500"},
		{name: "negative crore", amount: -12345678.9, want: "-₹1,23,45,678.9"},
		{name: "tiny negative rounds to zero", amount: -0.001, want: "₹0"},
		{name: "ten crore", amount: 100000000, want: "₹10,00,00,000"},
		{name: "NaN", amount: math.NaN(), want: "₹0"},
		{name: "infinity", amount: math.Inf(1), want: "₹0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPrice(tt.amount))
		})
	}
}

func TestFormatPriceText(t *testing.T) {
	assert.Equal(t, "₹4,500", FormatPriceText("4500/-"))
	assert.Equal(t, "₹45,000", FormatPriceText(" 45000 "))
	assert.Equal(t, "₹0", FormatPriceText("abc"))
	assert.Equal(t, "₹0", FormatPriceText(""))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "1 June 2025", FormatDate("2025-06-01"))
	assert.Equal(t, "31 December 2025", FormatDate("2025-12-31"))
	assert.Equal(t, "", FormatDate(""))
	assert.Equal(t, "", FormatDate("2025-13-01"))
}
