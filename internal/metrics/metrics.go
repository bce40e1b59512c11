// Package metrics expone las métricas Prometheus de la API y de las importaciones.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fashion_catalog"

type Metrics struct {
	registry *prometheus.Registry

	RequestDuration *prometheus.HistogramVec
	RequestTotal    *prometheus.CounterVec
	Imports         *prometheus.CounterVec
	ImportedRows    *prometheus.CounterVec
	ImportDuration  prometheus.Histogram
	Searches        *prometheus.CounterVec
	CatalogProducts *prometheus.GaugeVec
	CacheHits       prometheus.Counter
	CacheMisses     prometheus.Counter
}

// New registra todas las métricas en un registro propio
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		RequestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "path", "status"}),
		Imports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "import",
			Name:      "files_total",
			Help:      "Imported spreadsheets by detected format and result.",
		}, []string{"format", "result"}),
		ImportedRows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "import",
			Name:      "products_total",
			Help:      "Products produced or dropped by the normalizer.",
		}, []string{"outcome"}),
		ImportDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "import",
			Name:      "duration_seconds",
			Help:      "Duration of the import pipeline in seconds.",
			Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5},
		}),
		Searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "requests_total",
			Help:      "Search and question requests by kind (search, smart, ask intent).",
		}, []string{"kind"}),
		CatalogProducts: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "products",
			Help:      "Products currently served, by source.",
		}, []string{"source"}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Total cache hits.",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Total cache misses.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.RequestDuration,
		m.RequestTotal,
		m.Imports,
		m.ImportedRows,
		m.ImportDuration,
		m.Searches,
		m.CatalogProducts,
		m.CacheHits,
		m.CacheMisses,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler sirve /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware mide cada petición por ruta registrada
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		m.RequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
		m.RequestTotal.WithLabelValues(c.Request.Method, path, status).Inc()
	}
}

// SetCatalogSize actualiza el gauge de productos servidos
func (m *Metrics) SetCatalogSize(static, imported int) {
	m.CatalogProducts.WithLabelValues("json").Set(float64(static))
	m.CatalogProducts.WithLabelValues("excel").Set(float64(imported))
}

// ObserveImport registra el resultado de una importación
func (m *Metrics) ObserveImport(format, result string, products, dropped int, elapsed time.Duration) {
	m.Imports.WithLabelValues(format, result).Inc()
	m.ImportedRows.WithLabelValues("imported").Add(float64(products))
	m.ImportedRows.WithLabelValues("dropped").Add(float64(dropped))
	m.ImportDuration.Observe(elapsed.Seconds())
}
