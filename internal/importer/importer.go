// Package importer encadena lectura, validación, normalización y persistencia
// de las hojas de proveedores, y refresca el catálogo servido.
package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"fashion-catalog/internal/cache"
	"fashion-catalog/internal/catalog"
	"fashion-catalog/internal/metrics"
	"fashion-catalog/internal/models"
	"fashion-catalog/internal/normalizer"
	"fashion-catalog/internal/repository"
	"fashion-catalog/internal/search"
	"fashion-catalog/internal/sheet"
)

var (
	ErrMissingBrand = errors.New("brand is required")
	ErrInvalidSheet = errors.New("invalid sheet")
	ErrNoProducts   = errors.New("no products found in sheet")
)

// Request es un fichero subido para una marca
type Request struct {
	Brand    string
	FileName string
	Body     io.Reader
}

// Report describe el resultado de una importación o de una validación
type Report struct {
	Entry      models.ImportEntry          `json:"entry"`
	Validation normalizer.ValidationResult `json:"validation"`
	Format     normalizer.Format           `json:"format"`
	Products   []models.Product            `json:"products,omitempty"`
}

type Importer struct {
	store      repository.ImportStore
	catalog    *catalog.Catalog
	normalizer *normalizer.Normalizer
	brands     *search.BrandTable
	cache      cache.Store
	metrics    *metrics.Metrics
	log        zerolog.Logger
	now        func() time.Time
	newID      func() string
}

type Option func(*Importer)

func WithCache(s cache.Store) Option { return func(i *Importer) { i.cache = s } }

func WithMetrics(m *metrics.Metrics) Option { return func(i *Importer) { i.metrics = m } }

func WithClock(now func() time.Time) Option { return func(i *Importer) { i.now = now } }

func WithIDs(newID func() string) Option { return func(i *Importer) { i.newID = newID } }

func New(store repository.ImportStore, cat *catalog.Catalog, norm *normalizer.Normalizer, log zerolog.Logger, opts ...Option) *Importer {
	i := &Importer{
		store:      store,
		catalog:    cat,
		normalizer: norm,
		brands:     cat.Engine().Brands(),
		log:        log,
		now:        time.Now,
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Check lee y valida el fichero sin persistir nada
func (i *Importer) Check(req Request) (Report, error) {
	_, report, err := i.check(req)
	return report, err
}

func (i *Importer) check(req Request) ([][]any, Report, error) {
	data, err := sheet.Read(req.FileName, req.Body)
	if err != nil {
		return nil, Report{}, err
	}
	format := normalizer.DetectFormat(data)
	report := Report{Format: format, Validation: validate(data, format)}
	if !report.Validation.Valid {
		return nil, report, fmt.Errorf("%w: %s", ErrInvalidSheet, report.Validation.Message)
	}
	return data, report, nil
}

// Import normaliza el fichero, sustituye la importación anterior de la marca y refresca el catálogo
func (i *Importer) Import(ctx context.Context, req Request) (report Report, err error) {
	start := i.now()
	brand := i.brands.Resolve(req.Brand)
	log := i.log.With().Str("brand", brand).Str("file", req.FileName).Logger()

	defer func() {
		if i.metrics == nil {
			return
		}
		result := "ok"
		if err != nil {
			result = "error"
		}
		i.metrics.ObserveImport(string(report.Format), result, report.Entry.Count, report.Entry.Dropped, i.now().Sub(start))
	}()

	if brand == "" {
		return Report{}, ErrMissingBrand
	}

	data, report, err := i.check(req)
	if err != nil {
		log.Warn().Err(err).Msg("import rejected")
		return report, err
	}

	res := i.normalizer.Normalize(data, brand)
	report.Products = res.Products
	report.Entry = models.ImportEntry{
		ID:         i.newID(),
		Brand:      brand,
		FileName:   req.FileName,
		Format:     string(res.Format),
		Count:      len(res.Products),
		Dropped:    res.Dropped,
		Warnings:   res.Warnings,
		ImportedAt: i.now(),
	}
	if len(res.Products) == 0 {
		return report, ErrNoProducts
	}

	batch := models.ImportBatch{
		ID:         report.Entry.ID,
		Brand:      brand,
		FileName:   req.FileName,
		Format:     string(res.Format),
		Products:   res.Products,
		ImportedAt: report.Entry.ImportedAt,
	}
	if err := i.store.SaveBatch(ctx, batch); err != nil {
		return report, fmt.Errorf("save import: %w", err)
	}
	if err := i.store.AppendHistory(ctx, report.Entry); err != nil {
		return report, fmt.Errorf("save import history: %w", err)
	}
	if err := i.Refresh(ctx); err != nil {
		return report, err
	}

	log.Info().
		Str("format", string(res.Format)).
		Int("products", len(res.Products)).
		Int("dropped", res.Dropped).
		Msg("✅ sheet imported")
	return report, nil
}

// Delete borra los productos importados de una marca
func (i *Importer) Delete(ctx context.Context, brand string) error {
	brand = i.brands.Resolve(brand)
	if err := i.store.DeleteBrand(ctx, brand); err != nil {
		return err
	}
	i.log.Info().Str("brand", brand).Msg("imported products removed")
	return i.Refresh(ctx)
}

// History devuelve las últimas importaciones
func (i *Importer) History(ctx context.Context, limit int) ([]models.ImportEntry, error) {
	return i.store.History(ctx, limit)
}

// Refresh recarga los productos importados en el catálogo e invalida el caché
func (i *Importer) Refresh(ctx context.Context) error {
	products, err := i.store.ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("load imported products: %w", err)
	}
	i.catalog.SetImported(products)

	if i.cache != nil {
		if err := cache.Invalidate(ctx, i.cache); err != nil {
			i.log.Warn().Err(err).Msg("cache invalidation failed")
		}
	}
	if i.metrics != nil {
		i.metrics.SetCatalogSize(i.catalog.Counts())
	}
	return nil
}

// validate aplica la comprobación de cabecera salvo en el formato agrupado,
// que no tiene fila de cabecera
func validate(data [][]any, format normalizer.Format) normalizer.ValidationResult {
	if format == normalizer.FormatGrouped {
		return normalizer.ValidationResult{Valid: true}
	}
	return normalizer.Validate(data)
}

// IsClientError indica si el error se debe al fichero enviado
func IsClientError(err error) bool {
	return errors.Is(err, ErrMissingBrand) ||
		errors.Is(err, ErrInvalidSheet) ||
		errors.Is(err, ErrNoProducts) ||
		errors.Is(err, sheet.ErrUnsupportedFile) ||
		errors.Is(err, sheet.ErrEmptySheet) ||
		errors.Is(err, sheet.ErrUnreadable)
}
