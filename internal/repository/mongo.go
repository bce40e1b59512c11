package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fashion-catalog/internal/models"
)

const (
	defaultTimeout = 5 * time.Second
	queryTimeout   = 10 * time.Second

	importsCollection = "imports"
	historyCollection = "import_history"
)

type MongoImportStore struct {
	imports *mongo.Collection
	history *mongo.Collection
}

func NewMongoImportStore(db *mongo.Database) *MongoImportStore {
	return &MongoImportStore{
		imports: db.Collection(importsCollection),
		history: db.Collection(historyCollection),
	}
}

// Connect abre el cliente y comprueba la conexión con un ping
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}

// EnsureIndexes crea el índice único por marca y el de fecha del historial
func (s *MongoImportStore) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := s.imports.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "brand", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create imports index: %w", err)
	}
	_, err = s.history.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "imported_at", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("create history index: %w", err)
	}
	return nil
}

func (s *MongoImportStore) SaveBatch(ctx context.Context, batch models.ImportBatch) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	// El _id de la importación anterior no se puede reemplazar: se borra y se inserta
	if _, err := s.imports.DeleteOne(ctx, bson.M{"brand": batch.Brand}); err != nil {
		return fmt.Errorf("replace import %s: %w", batch.Brand, err)
	}
	if _, err := s.imports.InsertOne(ctx, batch); err != nil {
		return fmt.Errorf("save import %s: %w", batch.Brand, err)
	}
	return nil
}

func (s *MongoImportStore) Batches(ctx context.Context) ([]models.ImportBatch, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "imported_at", Value: 1}})
	cursor, err := s.imports.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list imports: %w", err)
	}
	defer cursor.Close(ctx)

	batches := make([]models.ImportBatch, 0)
	if err := cursor.All(ctx, &batches); err != nil {
		return nil, fmt.Errorf("decode imports: %w", err)
	}
	return batches, nil
}

func (s *MongoImportStore) ListProducts(ctx context.Context) ([]models.Product, error) {
	batches, err := s.Batches(ctx)
	if err != nil {
		return nil, err
	}
	return flatten(batches), nil
}

func (s *MongoImportStore) DeleteBrand(ctx context.Context, brand string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := s.imports.DeleteOne(ctx, bson.M{"brand": brand})
	if err != nil {
		return fmt.Errorf("delete import %s: %w", brand, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoImportStore) AppendHistory(ctx context.Context, entry models.ImportEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := s.history.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("append history: %w", err)
	}
	return nil
}

func (s *MongoImportStore) History(ctx context.Context, limit int) ([]models.ImportEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "imported_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	cursor, err := s.history.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer cursor.Close(ctx)

	entries := make([]models.ImportEntry, 0)
	if err := cursor.All(ctx, &entries); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return entries, nil
		}
		return nil, fmt.Errorf("decode history: %w", err)
	}
	return entries, nil
}
