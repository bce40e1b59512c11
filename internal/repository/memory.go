package repository

import (
	"context"
	"sort"
	"sync"

	"fashion-catalog/internal/models"
)

// MemoryImportStore guarda las importaciones en memoria; se usa sin MONGO_URI y en tests
type MemoryImportStore struct {
	mu      sync.RWMutex
	batches map[string]models.ImportBatch
	history []models.ImportEntry
}

func NewMemoryImportStore() *MemoryImportStore {
	return &MemoryImportStore{batches: make(map[string]models.ImportBatch)}
}

func (s *MemoryImportStore) SaveBatch(ctx context.Context, batch models.ImportBatch) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	batch.Products = append([]models.Product(nil), batch.Products...)
	s.batches[batch.Brand] = batch
	return nil
}

func (s *MemoryImportStore) Batches(ctx context.Context) ([]models.ImportBatch, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	batches := make([]models.ImportBatch, 0, len(s.batches))
	for _, b := range s.batches {
		b.Products = append([]models.Product(nil), b.Products...)
		batches = append(batches, b)
	}
	sort.SliceStable(batches, func(i, j int) bool {
		if batches[i].ImportedAt.Equal(batches[j].ImportedAt) {
			return batches[i].Brand < batches[j].Brand
		}
		return batches[i].ImportedAt.Before(batches[j].ImportedAt)
	})
	return batches, nil
}

func (s *MemoryImportStore) ListProducts(ctx context.Context) ([]models.Product, error) {
	batches, err := s.Batches(ctx)
	if err != nil {
		return nil, err
	}
	return flatten(batches), nil
}

func (s *MemoryImportStore) DeleteBrand(ctx context.Context, brand string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.batches[brand]; !ok {
		return ErrNotFound
	}
	delete(s.batches, brand)
	return nil
}

func (s *MemoryImportStore) AppendHistory(ctx context.Context, entry models.ImportEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, entry)
	return nil
}

func (s *MemoryImportStore) History(ctx context.Context, limit int) ([]models.ImportEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]models.ImportEntry, 0, len(s.history))
	for i := len(s.history) - 1; i >= 0; i-- {
		entries = append(entries, s.history[i])
		if limit > 0 && len(entries) == limit {
			break
		}
	}
	return entries, nil
}
