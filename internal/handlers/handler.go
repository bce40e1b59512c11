package handlers

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"fashion-catalog/internal/cache"
	"fashion-catalog/internal/catalog"
	"fashion-catalog/internal/importer"
	"fashion-catalog/internal/metrics"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
	maxPageSize     = 100
	cacheTimeout    = 500 * time.Millisecond
)

type Handler struct {
	catalog   *catalog.Catalog
	importer  *importer.Importer
	cache     cache.Store
	metrics   *metrics.Metrics
	log       zerolog.Logger
	cacheTTL  time.Duration
	maxUpload int64
}

type Options struct {
	Cache       cache.Store
	Metrics     *metrics.Metrics
	CacheTTL    time.Duration
	MaxUploadMB int64
}

func New(cat *catalog.Catalog, imp *importer.Importer, log zerolog.Logger, opts Options) *Handler {
	maxUpload := opts.MaxUploadMB << 20
	if maxUpload <= 0 {
		maxUpload = 20 << 20
	}
	return &Handler{
		catalog:   cat,
		importer:  imp,
		cache:     opts.Cache,
		metrics:   opts.Metrics,
		log:       log,
		cacheTTL:  opts.CacheTTL,
		maxUpload: maxUpload,
	}
}

// Estructuras para respuestas
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

type SuccessResponse struct {
	Message string `json:"message"`
}

// ValidationError representa un error de validación de un parámetro
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// cached busca en caché; un fallo del caché se registra y se trata como ausencia
func (h *Handler) cached(ctx context.Context, key string, target any) bool {
	if h.cache == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, cacheTimeout)
	defer cancel()

	found, err := cache.Unmarshal(ctx, h.cache, key, target)
	if err != nil {
		h.log.Warn().Err(err).Str("key", key).Msg("cache read failed")
	}
	if h.metrics != nil {
		if found {
			h.metrics.CacheHits.Inc()
		} else {
			h.metrics.CacheMisses.Inc()
		}
	}
	return found
}

func (h *Handler) store(ctx context.Context, key string, value any) {
	if h.cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, cacheTimeout)
	defer cancel()

	if err := cache.Marshal(ctx, h.cache, key, value, h.cacheTTL); err != nil {
		h.log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
}

func (h *Handler) countSearch(kind string) {
	if h.metrics != nil {
		h.metrics.Searches.WithLabelValues(kind).Inc()
	}
}
