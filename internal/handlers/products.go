package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"fashion-catalog/internal/catalog"
	"fashion-catalog/internal/models"
)

type ProductListResponse struct {
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
	Total    int              `json:"total"`
	Products []models.Product `json:"products"`
}

// GET /v1/products
func (h *Handler) ListProducts(c *gin.Context) {
	filters, err := buildFilters(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Details: err})
		return
	}
	page, pageSize := getPaginationParams(c)

	products := h.catalog.Filter(filters)
	total := len(products)

	start := min((page-1)*pageSize, total)
	end := min(start+pageSize, total)

	c.JSON(http.StatusOK, ProductListResponse{
		Page:     page,
		PageSize: pageSize,
		Total:    total,
		Products: products[start:end],
	})
}

// GET /v1/products/:id
func (h *Handler) GetProductByID(c *gin.Context) {
	product, ok := h.catalog.FindByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// GET /v1/brands
func (h *Handler) ListBrands(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"brands": h.catalog.Brands()})
}

// --- Métodos auxiliares ---

// buildFilters construye los filtros del catálogo a partir de los query params
func buildFilters(c *gin.Context) (catalog.Filters, *ValidationError) {
	f := catalog.Filters{
		Search:   strings.TrimSpace(c.Query("q")),
		Category: c.Query("category"),
		Brand:    c.Query("brand"),
		Size:     c.Query("size"),
	}
	if raw := c.Query("max_price"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil || price < 0 {
			return f, &ValidationError{Field: "max_price", Message: "max_price must be a positive number"}
		}
		f.MaxPrice = price
	}
	return f, nil
}

// getPaginationParams obtiene y valida los parámetros de paginación
func getPaginationParams(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(defaultPage)))
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))

	if page < 1 {
		page = defaultPage
	}
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}
	return page, pageSize
}
