package repository

import (
	"context"
	"errors"

	"fashion-catalog/internal/models"
)

var ErrNotFound = errors.New("not found")

// ImportStore persiste los productos importados por marca y el historial de importaciones
type ImportStore interface {
	// SaveBatch sustituye la importación anterior de la misma marca
	SaveBatch(ctx context.Context, batch models.ImportBatch) error
	Batches(ctx context.Context) ([]models.ImportBatch, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	DeleteBrand(ctx context.Context, brand string) error
	AppendHistory(ctx context.Context, entry models.ImportEntry) error
	// History devuelve las entradas más recientes primero; limit <= 0 = todas
	History(ctx context.Context, limit int) ([]models.ImportEntry, error)
}

func flatten(batches []models.ImportBatch) []models.Product {
	products := make([]models.Product, 0)
	for _, b := range batches {
		products = append(products, b.Products...)
	}
	return products
}

var (
	_ ImportStore = (*MongoImportStore)(nil)
	_ ImportStore = (*MemoryImportStore)(nil)
)
