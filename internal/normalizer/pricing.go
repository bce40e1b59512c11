package normalizer

import "github.com/shopspring/decimal"

// DefaultMarkup es el margen aplicado cuando solo hay precio de coste
var DefaultMarkup = decimal.RequireFromString("1.3")

// markupRounded calcula round(cost × markup)
func markupRounded(cost float64) float64 {
	return decimal.NewFromFloat(cost).Mul(DefaultMarkup).Round(0).InexactFloat64()
}

// markupExact calcula cost × markup sin redondear
func markupExact(cost float64) float64 {
	return decimal.NewFromFloat(cost).Mul(DefaultMarkup).InexactFloat64()
}
