package models

import (
	"time"
)

const (
	// Talla única usada cuando no hay desglose de tallas
	SizeUniversal = "UNI"
	CurrencyEUR   = "EUR"

	SourceJSON  = "json"
	SourceExcel = "excel"
)

// Product representa un producto canónico del catálogo
type Product struct {
	ID             string         `json:"id" bson:"id"`
	Brand          string         `json:"brand" bson:"brand"`
	Reference      string         `json:"reference" bson:"reference"`
	Name           string         `json:"name" bson:"name"`
	Category       string         `json:"category" bson:"category"`
	CategoryFR     string         `json:"category_fr" bson:"category_fr"`
	PriceRetail    float64        `json:"price_retail" bson:"price_retail"`
	PriceCost      float64        `json:"price_cost" bson:"price_cost"`
	Currency       string         `json:"currency" bson:"currency"`
	ColorName      string         `json:"color_name,omitempty" bson:"color_name,omitempty"`
	ColorCode      string         `json:"color_code,omitempty" bson:"color_code,omitempty"`
	ImageURL       string         `json:"image_url,omitempty" bson:"image_url,omitempty"`
	SizesAvailable []string       `json:"sizes_available" bson:"sizes_available"`
	QuantityTotal  int            `json:"quantity_total" bson:"quantity_total"`
	QuantityBySize map[string]int `json:"quantity_by_size,omitempty" bson:"quantity_by_size,omitempty"`
	Source         string         `json:"source" bson:"source"`
	Active         bool           `json:"active" bson:"active"`
	ImportedAt     time.Time      `json:"imported_at" bson:"imported_at"`
}

// SellPrice devuelve el precio de venta, o el precio de coste si no hay
func (p Product) SellPrice() float64 {
	if p.PriceCost != 0 {
		return p.PriceCost
	}
	return p.PriceRetail
}

// HasSize indica si la talla está disponible
func (p Product) HasSize(size string) bool {
	for _, s := range p.SizesAvailable {
		if s == size {
			return true
		}
	}
	return false
}

// Canonicalize aplica las reglas por defecto del esquema canónico
func (p *Product) Canonicalize() {
	if len(p.SizesAvailable) == 0 {
		p.SizesAvailable = []string{SizeUniversal}
	}
	if p.Currency == "" {
		p.Currency = CurrencyEUR
	}
	if p.PriceCost == 0 && p.PriceRetail > 0 {
		p.PriceCost = p.PriceRetail
	}
	if p.QuantityTotal < 0 {
		p.QuantityTotal = 0
	}
}
