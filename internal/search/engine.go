// Package search ordena productos contra consultas de texto libre y responde
// preguntas simples en francés sobre el catálogo.
//
// Todas las operaciones son puras: reciben la colección de productos y no
// guardan estado salvo la tabla de sinónimos de marcas, de solo lectura.
package search

import (
	"sort"
	"strings"

	"fashion-catalog/internal/models"
)

// Pesos de puntuación por campo
const (
	scoreName      = 10
	scoreReference = 8
	scoreBrand     = 7
	scoreCategory  = 5
	scoreColor     = 3
	scoreSynonym   = 7
)

type Engine struct {
	brands *BrandTable
}

func NewEngine(brands *BrandTable) *Engine {
	if brands == nil {
		brands = DefaultBrandTable()
	}
	return &Engine{brands: brands}
}

func (e *Engine) Brands() *BrandTable { return e.brands }

type scored struct {
	product models.Product
	score   int
}

// Search devuelve los productos con puntuación positiva, de mayor a menor;
// los empates conservan el orden de la colección
func (e *Engine) Search(query string, products []models.Product) []models.Product {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return []models.Product{}
	}

	synonyms := make([]map[string]bool, len(terms))
	for i, term := range terms {
		synonyms[i] = e.brands.CodesMatching(term)
	}

	results := make([]scored, 0)
	for _, p := range products {
		if s := scoreProduct(p, terms, synonyms); s > 0 {
			results = append(results, scored{product: p, score: s})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})

	out := make([]models.Product, len(results))
	for i, r := range results {
		out[i] = r.product
	}
	return out
}

// Score expone la puntuación de un producto para una consulta
func (e *Engine) Score(query string, p models.Product) int {
	terms := strings.Fields(strings.ToLower(query))
	synonyms := make([]map[string]bool, len(terms))
	for i, term := range terms {
		synonyms[i] = e.brands.CodesMatching(term)
	}
	return scoreProduct(p, terms, synonyms)
}

func scoreProduct(p models.Product, terms []string, synonyms []map[string]bool) int {
	name := strings.ToLower(p.Name)
	reference := strings.ToLower(p.Reference)
	brand := strings.ToLower(p.Brand)
	category := strings.ToLower(p.Category)
	categoryFR := strings.ToLower(p.CategoryFR)
	colorName := strings.ToLower(p.ColorName)
	colorCode := strings.ToLower(p.ColorCode)

	score := 0
	for i, term := range terms {
		score += fieldScore(name, term, scoreName)
		score += fieldScore(reference, term, scoreReference)
		score += fieldScore(brand, term, scoreBrand)
		score += fieldScore(category, term, scoreCategory)
		score += fieldScore(categoryFR, term, scoreCategory)
		score += fieldScore(colorName, term, scoreColor)
		score += fieldScore(colorCode, term, scoreColor)
		if synonyms[i][p.Brand] {
			score += scoreSynonym
		}
	}
	return score
}

func fieldScore(field, term string, weight int) int {
	if field != "" && strings.Contains(field, term) {
		return weight
	}
	return 0
}
