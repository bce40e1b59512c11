package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"fashion-catalog/internal/handlers"
	"fashion-catalog/internal/metrics"
)

// NewRouter crea el motor gin con los middlewares de log, recuperación y métricas
func NewRouter(log zerolog.Logger, m *metrics.Metrics) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), handlers.RequestLogger(log))
	if m != nil {
		router.Use(m.Middleware())
		router.GET("/metrics", gin.WrapH(m.Handler()))
	}
	return router
}

func RegisterRoutes(router *gin.Engine, h *handlers.Handler) {
	router.GET("/healthz", h.Healthz)

	v1 := router.Group("/v1")
	{
		v1.GET("/products", h.ListProducts)
		v1.GET("/products/:id", h.GetProductByID)
		v1.GET("/brands", h.ListBrands)

		v1.GET("/search", h.Search)
		v1.GET("/search/smart", h.SmartSearch)
		v1.GET("/suggestions", h.Suggestions)
		v1.POST("/ask", h.Ask)

		v1.POST("/imports", h.Import)
		v1.POST("/imports/validate", h.ValidateImport)
		v1.GET("/imports", h.ImportHistory)
		v1.DELETE("/imports/:brand", h.DeleteImport)
	}
}
