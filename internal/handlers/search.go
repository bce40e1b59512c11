package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fashion-catalog/internal/cache"
	"fashion-catalog/internal/catalog"
	"fashion-catalog/internal/models"
)

type SearchResponse struct {
	Query    string           `json:"query"`
	Total    int              `json:"total"`
	Products []models.Product `json:"products"`
}

type AskRequest struct {
	Question string `json:"question" binding:"required,max=500"`
}

// GET /v1/search?q=
func (h *Handler) Search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "query parameter q is required"})
		return
	}
	h.countSearch("search")

	key := cache.Key(cache.PrefixSearch, h.catalog.Generation(), strings.ToLower(q))
	var resp SearchResponse
	if h.cached(c.Request.Context(), key, &resp) {
		c.JSON(http.StatusOK, resp)
		return
	}

	products := h.catalog.Search(q)
	resp = SearchResponse{Query: q, Total: len(products), Products: products}
	h.store(c.Request.Context(), key, resp)
	c.JSON(http.StatusOK, resp)
}

// GET /v1/search/smart?q=
func (h *Handler) SmartSearch(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "query parameter q is required"})
		return
	}
	h.countSearch("smart")

	key := cache.Key(cache.PrefixSearch, h.catalog.Generation(), "smart:"+strings.ToLower(q))
	var resp catalog.SmartResult
	if h.cached(c.Request.Context(), key, &resp) {
		c.JSON(http.StatusOK, resp)
		return
	}

	resp = h.catalog.SmartSearch(q)
	h.store(c.Request.Context(), key, resp)
	c.JSON(http.StatusOK, resp)
}

// GET /v1/suggestions?q=
func (h *Handler) Suggestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"suggestions": h.catalog.Suggest(c.Query("q"))})
}

// POST /v1/ask
func (h *Handler) Ask(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	question := strings.TrimSpace(req.Question)
	if question == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "question is required", Details: &ValidationError{Field: "question", Message: "empty question"}})
		return
	}

	key := cache.Key(cache.PrefixAsk, h.catalog.Generation(), strings.ToLower(strings.ReplaceAll(question, "’", "'")))
	var answer models.Answer
	if !h.cached(c.Request.Context(), key, &answer) {
		answer = h.catalog.Ask(question)
		h.store(c.Request.Context(), key, answer)
	}
	h.countSearch("ask_" + answer.Intent)
	c.JSON(http.StatusOK, answer)
}
