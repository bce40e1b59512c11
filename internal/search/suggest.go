package search

import "strings"

const maxSuggestions = 5

var (
	suggestedCategories = []string{
		"Sacs bandoulière",
		"Sweats",
		"Vestes",
		"Blousons",
		"Pantalons",
		"T-shirts",
	}

	popularSearches = []string{
		"Pantalon taille 46",
		"Sweat blanc",
		"Veste grise",
		"Moins de 300€",
		"C.P. Company sac",
	}
)

// Suggest propone hasta cinco búsquedas para una consulta parcial
func Suggest(query string, brands []string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if len([]rune(q)) < 2 {
		return []string{}
	}

	var out []string
	add := func(candidates []string) {
		for _, c := range candidates {
			if strings.Contains(strings.ToLower(c), q) {
				out = appendUnique(out, c)
			}
		}
	}
	add(suggestedCategories)
	add(brands)
	add(popularSearches)

	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	if out == nil {
		out = []string{}
	}
	return out
}
