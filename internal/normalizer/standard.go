package normalizer

import (
	"fmt"
	"strings"

	"fashion-catalog/internal/models"
)

// Vocabulario de cabeceras por campo (francés, inglés, italiano)
var (
	columnReference   = []string{"référence", "reference", "ref", "sku", "code", "codice", "articolo", "modello", "cod", "item", "codpro"}
	columnName        = []string{"nom", "name", "produit", "product", "article", "descrizione", "description", "modello", "nome", "libellé", "designation"}
	columnCategory    = []string{"catégorie", "category", "type", "tipo", "famille", "gamme", "collection", "linea", "gruppo"}
	columnPriceRetail = []string{"prix achat", "prix revient", "cost", "costo", "buy", "wholesale"}
	columnPriceCost   = []string{"prix vente", "prix", "price", "prezzo", "sell", "retail", "pvp", "euro", "eur", "€"}
	columnColor       = []string{"couleur", "color", "colore", "teinte", "coloris", "col"}
	columnSizes       = []string{"taille", "size", "taglia", "misura", "pointure"}
	columnQuantity    = []string{"quantité", "quantity", "qté", "qty", "stock", "disponible", "disponibilità", "giacenza", "qta"}
)

type columnMap struct {
	reference   int
	name        int
	category    int
	priceRetail int
	priceCost   int
	color       int
	sizes       int
	quantity    int
}

func mapColumns(headers []string) columnMap {
	return columnMap{
		reference:   findColumn(headers, columnReference),
		name:        findColumn(headers, columnName),
		category:    findColumn(headers, columnCategory),
		priceRetail: findColumn(headers, columnPriceRetail),
		priceCost:   findColumn(headers, columnPriceCost),
		color:       findColumn(headers, columnColor),
		sizes:       findColumn(headers, columnSizes),
		quantity:    findColumn(headers, columnQuantity),
	}
}

// convertStandard convierte hojas de una fila por producto con cabecera
func (n *Normalizer) convertStandard(data [][]any, brand string) Result {
	var res Result
	if len(data) < 2 {
		return res
	}

	headers := headerRow(data)
	cols := mapColumns(headers)
	importedAt := n.now().UTC()
	stamp := n.now().UnixMilli()

	// Sin columna de precio de venta: usar la primera columna numérica de la primera fila
	if cols.priceCost == -1 {
		first := data[1]
		for i := range headers {
			v := cell(first, i)
			if isBlank(v) {
				continue
			}
			if _, ok := parseNumber(v); ok {
				cols.priceCost = i
				res.warnf("price column auto-detected: %q (column %d)", headers[i], i)
				break
			}
		}
	}

	synthRefs, synthNames := 0, 0
	for i := 1; i < len(data); i++ {
		row := data[i]
		if rowBlank(row) {
			continue
		}

		p := n.newProduct(brand, i, importedAt)

		refSynth := false
		if cols.reference != -1 {
			p.Reference = strings.TrimSpace(cellText(cell(row, cols.reference)))
			if p.Reference == "" {
				p.Reference = fmt.Sprintf("%s_%d", brand, i)
				refSynth = true
			}
		} else {
			p.Reference = fmt.Sprintf("%s_%d_%d", brand, stamp, i)
			refSynth = true
		}

		nameSynth := false
		if cols.name != -1 {
			p.Name = strings.TrimSpace(cellText(cell(row, cols.name)))
			if p.Name == "" {
				p.Name = "Produit sans nom"
				nameSynth = true
			}
		} else {
			p.Name = fmt.Sprintf("Produit %d", i)
			nameSynth = true
		}

		if refSynth && nameSynth {
			res.Dropped++
			continue
		}
		if refSynth {
			synthRefs++
		}
		if nameSynth {
			synthNames++
		}

		if cols.category != -1 {
			raw := strings.TrimSpace(cellText(cell(row, cols.category)))
			p.Category = raw
			p.CategoryFR = TranslateCategory(raw)
		} else {
			p.Category = Uncategorized
			p.CategoryFR = Uncategorized
		}

		if cols.priceRetail != -1 {
			p.PriceRetail = floatOrZero(cell(row, cols.priceRetail))
		}
		if cols.priceCost != -1 {
			p.PriceCost = floatOrZero(cell(row, cols.priceCost))
		}
		if p.PriceCost == 0 && p.PriceRetail > 0 {
			p.PriceCost = p.PriceRetail
		}

		if cols.color != -1 {
			p.ColorName = strings.TrimSpace(cellText(cell(row, cols.color)))
		}

		if cols.sizes != -1 {
			p.SizesAvailable = ParseSizes(cellText(cell(row, cols.sizes)))
		} else {
			p.SizesAvailable = []string{models.SizeUniversal}
		}

		if cols.quantity != -1 {
			p.QuantityTotal = max(intOrZero(cell(row, cols.quantity)), 0)
		}

		res.Products = append(res.Products, p)
	}

	if res.Dropped > 0 {
		res.warnf("%d row(s) dropped: no reference and no name", res.Dropped)
	}
	if synthRefs > 0 {
		res.warnf("%d product(s) with synthesized reference", synthRefs)
	}
	if synthNames > 0 {
		res.warnf("%d product(s) with placeholder name", synthNames)
	}
	return res
}
