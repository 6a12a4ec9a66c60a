package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		amount Cents
		want   string
	}{
		{0, "$0.00"},
		{5, "$0.05"},
		{99, "$0.99"},
		{100, "$1.00"},
		{135, "$1.35"},
		{15500, "$155.00"},
		{33000, "$330.00"},
		{123456, "$1,234.56"},
		{100000000, "$1,000,000.00"},
		{-135, "-$1.35"},
		{-123456, "-$1,234.56"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.amount.Format(), "amount %d", tc.amount)
	}
}

func TestMul(t *testing.T) {
	assert.Equal(t, Cents(3375), Cents(135).Mul(25))
	assert.Equal(t, Cents(0), Cents(0).Mul(300))
	assert.Equal(t, Cents(485), Cents(485).Mul(1))
	assert.Equal(t, Cents(-250), Cents(-10).Mul(25))
}
