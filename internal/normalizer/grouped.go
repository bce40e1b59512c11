package normalizer

import (
	"strings"

	"fashion-catalog/internal/models"
)

// convertGrouped lee hojas donde cada producto ocupa un bloque de filas
// etiquetadas que empieza con "Brand:"
func (n *Normalizer) convertGrouped(data [][]any, brand string) Result {
	var res Result
	importedAt := n.now().UTC()
	seq := 0

	for i := 0; i < len(data); i++ {
		row := data[i]
		if len(row) == 0 || !isBrandRow(row) {
			continue
		}

		seq++
		label := brand
		if label == "" {
			label = strings.TrimSpace(cellText(cell(row, 1)))
		}
		p := n.newProduct(label, seq, importedAt)

		j := i
		for ; j < len(data); j++ {
			if j > i && isBrandRow(data[j]) {
				break
			}
			readGroupedRow(&p, data, j)
		}
		// Reanudar en la fila "Brand:" que cerró el bloque
		i = j - 1

		if p.Reference == "" {
			res.Dropped++
			res.warnf("block %d dropped: no reference", seq)
			continue
		}
		if len(p.SizesAvailable) == 0 {
			p.SizesAvailable = []string{models.SizeUniversal}
		}
		res.Products = append(res.Products, p)
	}
	return res
}

func isBrandRow(row []any) bool {
	return strings.Contains(cellLower(cell(row, 0)), groupedMarker)
}

func hasAny(s string, labels ...string) bool {
	for _, l := range labels {
		if strings.Contains(s, l) {
			return true
		}
	}
	return false
}

// readGroupedRow extrae los campos de la fila j según su etiqueta
func readGroupedRow(p *models.Product, data [][]any, j int) {
	row := data[j]
	if len(row) == 0 {
		return
	}
	label := cellLower(cell(row, 0))

	if hasAny(label, "code:", "codice:") {
		p.Reference = strings.TrimSpace(cellText(cell(row, 1)))
	}

	if hasAny(label, "description:", "descrizione:") {
		desc := strings.TrimSpace(cellText(cell(row, 1)))
		p.Name = desc
		p.CategoryFR = TranslateCategory(desc)
	}

	if hasAny(label, "costo:", "cost:", "prix:") {
		cost := floatOrZero(cell(row, 1))
		p.PriceRetail = cost
		if strings.Contains(cellLower(cell(row, 2)), "retail:") {
			if retail := floatOrZero(cell(row, 3)); retail != 0 {
				p.PriceCost = retail
			} else {
				p.PriceCost = markupExact(cost)
			}
		} else {
			p.PriceCost = markupRounded(cost)
		}
	}

	for k, v := range row {
		if strings.Contains(cellLower(v), "color:") {
			if k+1 < len(row) {
				p.ColorName = strings.TrimSpace(cellText(row[k+1]))
			}
			break
		}
	}

	if hasAny(label, "size:", "taglia:") {
		readSizes(p, data, j)
	}

	if hasAny(label, "q.tot:", "total:") {
		if qty := intOrZero(cell(row, 1)); qty > 0 && p.QuantityTotal == 0 {
			p.QuantityTotal = qty
		}
	}
}

// readSizes lee las tallas de la fila y las cantidades de la fila "Qty:" siguiente
func readSizes(p *models.Product, data [][]any, j int) {
	row := data[j]
	var sizes []string
	for _, v := range row[1:] {
		if isBlank(v) {
			continue
		}
		text := strings.TrimSpace(cellText(v))
		if isUniversalToken(text) {
			sizes = append(sizes, models.SizeUniversal)
		} else {
			sizes = append(sizes, text)
		}
	}
	if len(sizes) == 0 {
		return
	}

	quantities := map[string]int{}
	total := 0
	if j+1 < len(data) {
		next := data[j+1]
		if strings.Contains(cellLower(cell(next, 0)), "qty:") {
			for k := 1; k < len(next) && k-1 < len(sizes); k++ {
				if isBlank(next[k]) {
					continue
				}
				if qty := intOrZero(next[k]); qty > 0 {
					quantities[sizes[k-1]] = qty
					total += qty
				}
			}
		}
	}

	p.SizesAvailable = sizes
	p.QuantityBySize = quantities
	p.QuantityTotal = total
}
