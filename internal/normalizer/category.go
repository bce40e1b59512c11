package normalizer

import "strings"

// Uncategorized es la categoría por defecto
const Uncategorized = "Non catégorisé"

type translation struct {
	key   string
	value string
}

// El orden importa: gana la primera clave contenida en el texto
var categoryTranslations = []translation{
	{"bag", "Sacs"},
	{"bags", "Sacs"},
	{"sac", "Sacs"},
	{"cap", "Casquettes"},
	{"cappello", "Casquettes"},
	{"baseball cap", "Casquettes"},
	{"sweat", "Sweats"},
	{"sweater", "Sweats"},
	{"hoodie", "Sweats"},
	{"jacket", "Vestes"},
	{"veste", "Vestes"},
	{"coat", "Manteaux"},
	{"pants", "Pantalons"},
	{"pantalon", "Pantalons"},
	{"jeans", "Jeans"},
	{"shirt", "Chemises"},
	{"t-shirt", "T-shirts"},
	{"tshirt", "T-shirts"},
	{"tee", "T-shirts"},
	{"shoes", "Chaussures"},
	{"sneakers", "Baskets"},
	{"accessories", "Accessoires"},
	{"polo", "Polos"},
}

// TranslateCategory traduce una categoría o descripción a la categoría francesa
func TranslateCategory(category string) string {
	if strings.TrimSpace(category) == "" {
		return Uncategorized
	}

	lower := strings.ToLower(category)
	for _, t := range categoryTranslations {
		if strings.Contains(lower, t.key) {
			return t.value
		}
	}
	return category
}
