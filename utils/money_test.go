package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatINR(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "₹0"},
		{999, "₹999"},
		{1500, "₹1,500"},
		{12500, "₹12,500"},
		{123500, "₹1,23,500"},
		{1234567, "₹12,34,567"},
		{-2500, "-₹2,500"},
		{2499.6, "₹2,500"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatINR(tc.amount), "amount %v", tc.amount)
	}
}

func TestCapitalizeWords(t *testing.T) {
	assert.Equal(t, "Banarasi Silk", CapitalizeWords("banarasi silk"))
	assert.Equal(t, "", CapitalizeWords(""))
	assert.Equal(t, "Gold", CapitalizeWords("GOLD"))
}

func TestNormaliseTag(t *testing.T) {
	assert.Equal(t, "date_night", NormaliseTag(" Date Night "))
	assert.Equal(t, "wedding", NormaliseTag("Wedding"))
}
