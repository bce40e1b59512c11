// Package normalizer convierte hojas de cálculo heterogéneas en productos canónicos.
//
// Detecta la disposición de la hoja (bloques agrupados "Brand:" o una fila por
// producto con cabecera) y aplica el conversor correspondiente. Las filas
// inválidas se descartan; nunca devuelve error por contenido.
package normalizer

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"fashion-catalog/internal/models"
)

// Result agrupa los productos convertidos y los avisos de calidad de datos
type Result struct {
	Format   Format           `json:"format"`
	Products []models.Product `json:"products"`
	Warnings []string         `json:"warnings,omitempty"`
	Dropped  int              `json:"dropped"`
}

type Normalizer struct {
	log zerolog.Logger
	now func() time.Time
}

type Option func(*Normalizer)

// WithClock fija el reloj usado para imported_at y los identificadores sintéticos
func WithClock(now func() time.Time) Option {
	return func(n *Normalizer) { n.now = now }
}

func New(log zerolog.Logger, opts ...Option) *Normalizer {
	n := &Normalizer{log: log, now: time.Now}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize detecta el formato y convierte la hoja en productos de la marca
func (n *Normalizer) Normalize(data [][]any, brand string) Result {
	format := DetectFormat(data)
	log := n.log.With().Str("brand", brand).Str("format", string(format)).Logger()

	var res Result
	switch format {
	case FormatUnknown:
		res = Result{}
	case FormatGrouped:
		res = n.convertGrouped(data, brand)
	default:
		// italian y custom comparten el conversor estándar
		res = n.convertStandard(data, brand)
	}
	res.Format = format
	if res.Products == nil {
		res.Products = []models.Product{}
	}

	for _, w := range res.Warnings {
		log.Warn().Msg(w)
	}
	log.Debug().Int("products", len(res.Products)).Int("dropped", res.Dropped).Msg("sheet normalized")
	return res
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

func (n *Normalizer) newProduct(brand string, seq int, importedAt time.Time) models.Product {
	return models.Product{
		ID:             fmt.Sprintf("%s_EXCEL_%d", brand, seq),
		Brand:          brand,
		Currency:       models.CurrencyEUR,
		SizesAvailable: []string{},
		Source:         models.SourceExcel,
		Active:         true,
		ImportedAt:     importedAt,
	}
}
