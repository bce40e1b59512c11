// Package loader carga los documentos JSON estáticos de cada marca.
package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"fashion-catalog/internal/models"
	"fashion-catalog/internal/search"
)

// Document es el formato de un fichero estático: {"brand": ..., "products": [...]}
type Document struct {
	Brand    string          `json:"brand"`
	Products []staticProduct `json:"products"`
}

// staticProduct acepta la clave antigua "color" además de "color_name"
type staticProduct struct {
	models.Product
	Color string `json:"color,omitempty"`
}

type Loader struct {
	brands *search.BrandTable
	log    zerolog.Logger
	now    func() time.Time
}

func New(brands *search.BrandTable, log zerolog.Logger) *Loader {
	if brands == nil {
		brands = search.DefaultBrandTable()
	}
	return &Loader{brands: brands, log: log, now: time.Now}
}

// LoadFiles lee los ficheros en paralelo; un fichero que falla se registra y se omite.
// El resultado conserva el orden de paths.
func (l *Loader) LoadFiles(ctx context.Context, paths []string) ([]models.Product, error) {
	results := make([][]models.Product, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			products, err := l.LoadFile(path)
			if err != nil {
				l.log.Error().Err(err).Str("file", path).Msg("static catalog file skipped")
				return nil
			}
			results[i] = products
			l.log.Debug().Str("file", path).Int("products", len(products)).Msg("static catalog file loaded")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []models.Product
	for _, r := range results {
		all = append(all, r...)
	}
	return all, nil
}

func (l *Loader) LoadFile(path string) ([]models.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return l.Decode(data)
}

// Decode convierte un documento estático en productos canónicos
func (l *Loader) Decode(data []byte) ([]models.Product, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode static catalog: %w", err)
	}

	brand := l.brands.Resolve(doc.Brand)
	products := make([]models.Product, 0, len(doc.Products))
	for _, sp := range doc.Products {
		p := sp.Product
		if brand != "" {
			p.Brand = brand
		}
		if p.ColorName == "" {
			p.ColorName = sp.Color
		}
		p.Source = models.SourceJSON
		p.Active = true
		if p.ImportedAt.IsZero() {
			p.ImportedAt = l.now()
		}
		p.Canonicalize()
		products = append(products, p)
	}
	return products, nil
}
