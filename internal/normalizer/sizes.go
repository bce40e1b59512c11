package normalizer

import (
	"strings"

	"fashion-catalog/internal/models"
)

// ParseSizes separa una celda de tallas por coma, punto y coma o barra
func ParseSizes(raw string) []string {
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == '/'
	})

	sizes := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			sizes = append(sizes, p)
		}
	}
	if len(sizes) == 0 {
		return []string{models.SizeUniversal}
	}
	return sizes
}

// isUniversalToken reconoce "UNICA" y "UNI" como talla única
func isUniversalToken(s string) bool {
	s = strings.TrimSpace(s)
	return strings.EqualFold(s, "UNICA") || strings.EqualFold(s, models.SizeUniversal)
}
