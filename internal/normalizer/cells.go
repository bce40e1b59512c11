package normalizer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	leadingFloat = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
	leadingInt   = regexp.MustCompile(`^[+-]?\d+`)
	commaDecimal = regexp.MustCompile(`^([+-]?\d+),(\d+)`)
)

// cell devuelve la celda idx de la fila, nil si no existe
func cell(row []any, idx int) any {
	if idx < 0 || idx >= len(row) {
		return nil
	}
	return row[idx]
}

// cellText convierte una celda a texto sin recortar
func cellText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

// cellLower es cellText en minúsculas y sin espacios laterales
func cellLower(v any) string {
	return strings.ToLower(strings.TrimSpace(cellText(v)))
}

// isBlank indica si la celda no tiene contenido
func isBlank(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	default:
		return false
	}
}

func rowBlank(row []any) bool {
	for _, v := range row {
		if !isBlank(v) {
			return false
		}
	}
	return true
}

// parseNumber lee el número inicial de la celda ("99€" -> 99)
func parseNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	}

	s := strings.TrimSpace(cellText(v))
	if s == "" {
		return 0, false
	}
	// Decimales con coma de los exports europeos ("12,50")
	if !strings.Contains(s, ".") {
		s = commaDecimal.ReplaceAllString(s, "$1.$2")
	}
	m := leadingFloat.FindString(s)
	if m == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// floatOrZero aplica la regla "no numérico = 0"
func floatOrZero(v any) float64 {
	f, _ := parseNumber(v)
	return f
}

// intOrZero lee la parte entera inicial, 0 si no hay
func intOrZero(v any) int {
	switch t := v.(type) {
	case float64:
		return int(t)
	case int:
		return t
	case int64:
		return int(t)
	}
	m := leadingInt.FindString(strings.TrimSpace(cellText(v)))
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}
