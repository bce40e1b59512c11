// Package catalog mantiene la colección de productos servida por la API:
// productos estáticos primero y después los importados.
package catalog

import (
	"sort"
	"strings"
	"sync"

	"fashion-catalog/internal/models"
	"fashion-catalog/internal/search"
)

// Filters son los filtros del listado de productos
type Filters struct {
	Search   string
	Category string
	Brand    string
	Size     string
	MaxPrice float64
}

type Catalog struct {
	mu       sync.RWMutex
	static   []models.Product
	imported []models.Product
	all      []models.Product
	byID     map[string]int
	engine   *search.Engine
	gen      uint64
}

func New(engine *search.Engine) *Catalog {
	if engine == nil {
		engine = search.NewEngine(nil)
	}
	c := &Catalog{engine: engine}
	c.rebuild()
	return c
}

func (c *Catalog) Engine() *search.Engine { return c.engine }

// Replace sustituye ambas colecciones
func (c *Catalog) Replace(static, imported []models.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.static = append([]models.Product(nil), static...)
	c.imported = append([]models.Product(nil), imported...)
	c.rebuild()
}

// SetImported sustituye solo los productos importados
func (c *Catalog) SetImported(imported []models.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.imported = append([]models.Product(nil), imported...)
	c.rebuild()
}

// rebuild se llama con el lock de escritura tomado
func (c *Catalog) rebuild() {
	all := make([]models.Product, 0, len(c.static)+len(c.imported))
	all = append(all, c.static...)
	all = append(all, c.imported...)

	byID := make(map[string]int, len(all))
	for i, p := range all {
		if _, exists := byID[p.ID]; !exists {
			byID[p.ID] = i
		}
	}
	c.all = all
	c.byID = byID
	c.gen++
}

// Generation cambia con cada Replace o SetImported; forma parte de las claves de caché
func (c *Catalog) Generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.gen
}

// Products devuelve una instantánea de la colección completa
func (c *Catalog) Products() []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.Product(nil), c.all...)
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.all)
}

// Counts devuelve el número de productos estáticos e importados
func (c *Catalog) Counts() (static, imported int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.static), len(c.imported)
}

func (c *Catalog) FindByID(id string) (models.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.byID[id]
	if !ok {
		return models.Product{}, false
	}
	return c.all[i], true
}

// Brands devuelve las marcas presentes, ordenadas y sin repetir
func (c *Catalog) Brands() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := make(map[string]bool)
	brands := make([]string, 0)
	for _, p := range c.all {
		if p.Brand == "" || seen[p.Brand] {
			continue
		}
		seen[p.Brand] = true
		brands = append(brands, p.Brand)
	}
	sort.Strings(brands)
	return brands
}

func (c *Catalog) Search(query string) []models.Product {
	return c.engine.Search(query, c.Products())
}

func (c *Catalog) Ask(question string) models.Answer {
	return c.engine.Answer(question, c.Products())
}

func (c *Catalog) Suggest(query string) []string {
	return search.Suggest(query, c.Brands())
}

// Filter aplica búsqueda, categoría, marca, talla y precio máximo en ese orden
func (c *Catalog) Filter(f Filters) []models.Product {
	products := c.Products()
	if q := strings.TrimSpace(f.Search); q != "" {
		products = c.engine.Search(q, products)
	}
	return applyFilters(products, f)
}

func applyFilters(products []models.Product, f Filters) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if f.Category != "" && f.Category != "all" && p.Category != f.Category {
			continue
		}
		if f.Brand != "" && p.Brand != f.Brand {
			continue
		}
		if f.Size != "" && !p.HasSize(f.Size) {
			continue
		}
		if f.MaxPrice > 0 && p.PriceCost > f.MaxPrice {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SmartResult es el resultado de una búsqueda interpretada
type SmartResult struct {
	Intent   search.QueryIntent `json:"intent"`
	Products []models.Product   `json:"products"`
}

// SmartSearch interpreta la consulta; sin filtros reconocidos hace búsqueda de texto
func (c *Catalog) SmartSearch(query string) SmartResult {
	intent := c.engine.ParseQuery(query)
	if !intent.HasFilters() {
		return SmartResult{Intent: intent, Products: c.Search(query)}
	}
	products := applyFilters(c.Products(), Filters{
		Category: intent.Category,
		Brand:    intent.Brand,
		Size:     intent.Size,
		MaxPrice: float64(intent.MaxPrice),
	})
	return SmartResult{Intent: intent, Products: products}
}
