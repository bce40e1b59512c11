package search

import (
	"regexp"
	"strconv"
	"strings"
)

// QueryIntent son los filtros estructurados reconocidos en una consulta
type QueryIntent struct {
	Category string   `json:"category,omitempty"`
	Brand    string   `json:"brand,omitempty"`
	Size     string   `json:"size,omitempty"`
	MaxPrice int      `json:"max_price,omitempty"`
	Keywords []string `json:"keywords"`
}

// HasFilters indica si se reconoció algún filtro
func (q QueryIntent) HasFilters() bool {
	return q.Category != "" || q.Brand != "" || q.Size != "" || q.MaxPrice > 0
}

type categoryFamily struct {
	synonyms []string
	category string
}

// Familias de palabras clave y la categoría de proveedor que activan
var categoryFamilies = []categoryFamily{
	{[]string{"sac", "sacoche", "bandoulière", "borse", "bag"}, "Borse a tracolla"},
	{[]string{"sweat", "hoodie", "pull", "felpe", "sweater"}, "Felpe"},
	{[]string{"veste", "jacket", "giacche", "blazer"}, "Giacche"},
	{[]string{"blouson", "bomber", "giubbotti", "doudoune"}, "Giubbotti e Bomber"},
	{[]string{"pantalon", "pants", "pantaloni", "jean", "jeans"}, "Pantaloni"},
	{[]string{"tshirt", "t-shirt", "tee", "maglia"}, "T-shirt"},
}

var (
	sizeToken  = regexp.MustCompile(`^(xxxs|xxs|xs|s|m|l|xl|xxl|xxxl|38|40|42|44|46|48|50|52|54)$`)
	digitsOnly = regexp.MustCompile(`^\d+$`)
	lessThan   = regexp.MustCompile(`moins de (\d+)`)

	// Palabras francesas que coinciden con alias cortos de marca
	brandStopWords = map[string]bool{
		"si": true, "se": true, "sa": true, "ce": true, "ou": true, "et": true,
		"un": true, "le": true, "la": true, "de": true, "en": true, "du": true,
	}
)

const maxQueryPrice = 10000

// ParseQuery reconoce categoría, marca, talla y precio máximo en una consulta del buscador
func (e *Engine) ParseQuery(query string) QueryIntent {
	q := strings.ToLower(strings.TrimSpace(query))
	intent := QueryIntent{Keywords: []string{}}
	if q == "" {
		return intent
	}

	words := strings.Fields(q)
	for i, word := range words {
		for _, fam := range categoryFamilies {
			for _, syn := range fam.synonyms {
				if strings.Contains(word, syn) {
					intent.Category = fam.category
					break
				}
			}
		}

		if !brandStopWords[word] {
			if code, ok := e.brands.AliasCode(strings.Trim(word, ".,!?")); ok {
				intent.Brand = code
			}
		}

		isSize := sizeToken.MatchString(word)
		if isSize {
			intent.Size = strings.ToUpper(word)
		}
		if word == "taille" && i+1 < len(words) && sizeToken.MatchString(words[i+1]) {
			intent.Size = strings.ToUpper(words[i+1])
		}

		if strings.Contains(word, "€") || (digitsOnly.MatchString(word) && !isSize) {
			if price, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(word, "€"), "€")); err == nil && price > 0 && price < maxQueryPrice {
				intent.MaxPrice = price
			}
		}

		intent.Keywords = append(intent.Keywords, word)
	}

	if m := lessThan.FindStringSubmatch(q); m != nil {
		if price, err := strconv.Atoi(m[1]); err == nil {
			intent.MaxPrice = price
		}
	}

	// Alias de varias palabras ("stone island", "c.p. company")
	if intent.Brand == "" {
		for _, entry := range e.brands.entries {
			for _, alias := range entry.Aliases {
				if strings.Contains(alias, " ") && containsPhrase(q, alias) {
					intent.Brand = entry.Code
					break
				}
			}
			if intent.Brand != "" {
				break
			}
		}
	}
	return intent
}

func containsPhrase(text, phrase string) bool {
	idx := strings.Index(" "+text+" ", " "+phrase+" ")
	return idx >= 0
}
