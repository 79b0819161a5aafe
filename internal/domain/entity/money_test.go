package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoney_Display(t *testing.T) {
	tests := []struct {
		name  string
		money Money
		want  string
	}{
		{name: "zero", money: 0, want: "KES 0.00"},
		{name: "cents only", money: 5, want: "KES 0.05"},
		{name: "thousands separator", money: 123450, want: "KES 1,234.50"},
		{name: "millions", money: 123456789, want: "KES 1,234,567.89"},
		{name: "negative", money: -250, want: "KES -2.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.money.Display("KES"))
		})
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	price := Money(1999)

	assert.Equal(t, Money(5997), price.Mul(3))
	assert.Equal(t, Money(2499), price.Add(500))
	assert.Equal(t, "19.99", price.Decimal().StringFixed(2))
}

func TestMoney_ApplyBasisPoints(t *testing.T) {
	assert.Equal(t, Money(0), Money(10000).ApplyBasisPoints(0))
	assert.Equal(t, Money(1600), Money(10000).ApplyBasisPoints(1600))
	// 0.5 cent rounds away from zero
	assert.Equal(t, Money(1), Money(5).ApplyBasisPoints(1000))
	assert.Equal(t, Money(0), Money(4).ApplyBasisPoints(1000))
}
