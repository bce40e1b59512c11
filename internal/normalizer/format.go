package normalizer

import "strings"

// Format es la disposición detectada de una hoja
type Format string

const (
	FormatGrouped  Format = "grouped-format"
	FormatStandard Format = "standard"
	FormatItalian  Format = "italian"
	FormatCustom   Format = "custom"
	FormatUnknown  Format = "unknown"
)

const groupedMarker = "brand:"

var (
	detectReference = []string{"référence", "reference", "ref"}
	detectName      = []string{"nom", "name", "produit"}
	detectPrice     = []string{"prix", "price"}
	detectCode      = []string{"codice", "articolo"}
	detectItPrice   = []string{"prezzo", "costo"}
)

// DetectFormat clasifica la hoja según su cabecera y las filas "Brand:"
func DetectFormat(data [][]any) Format {
	if len(data) < 2 {
		return FormatUnknown
	}

	for _, row := range data {
		if strings.Contains(cellLower(cell(row, 0)), groupedMarker) {
			return FormatGrouped
		}
	}

	headers := headerRow(data)
	if anyHeader(headers, detectReference) && anyHeader(headers, detectName) && anyHeader(headers, detectPrice) {
		return FormatStandard
	}
	if anyHeader(headers, detectCode) && anyHeader(headers, detectItPrice) {
		return FormatItalian
	}
	return FormatCustom
}

// headerRow devuelve la primera fila en minúsculas
func headerRow(data [][]any) []string {
	if len(data) == 0 {
		return nil
	}
	headers := make([]string, len(data[0]))
	for i, v := range data[0] {
		headers[i] = cellLower(v)
	}
	return headers
}

func anyHeader(headers []string, aliases []string) bool {
	return findColumn(headers, aliases) != -1
}

// findColumn devuelve la primera columna que contiene algún alias
func findColumn(headers []string, aliases []string) int {
	for i, h := range headers {
		if h == "" {
			continue
		}
		for _, a := range aliases {
			if strings.Contains(h, a) {
				return i
			}
		}
	}
	return -1
}
