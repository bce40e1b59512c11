package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSellPrice(t *testing.T) {
	assert.Equal(t, 120.0, Product{PriceCost: 120, PriceRetail: 150}.SellPrice())
	assert.Equal(t, 150.0, Product{PriceRetail: 150}.SellPrice())
	assert.Zero(t, Product{}.SellPrice())
}

func TestCanonicalize(t *testing.T) {
	p := Product{PriceRetail: 90, QuantityTotal: -2}
	p.Canonicalize()

	assert.Equal(t, []string{SizeUniversal}, p.SizesAvailable)
	assert.Equal(t, CurrencyEUR, p.Currency)
	assert.Equal(t, 90.0, p.PriceCost)
	assert.Zero(t, p.QuantityTotal)
	assert.True(t, p.HasSize("UNI"))
	assert.False(t, p.HasSize("M"))
}
