package models

import "time"

// ImportBatch guarda los productos importados de una marca
type ImportBatch struct {
	ID         string    `json:"id" bson:"_id"`
	Brand      string    `json:"brand" bson:"brand"`
	FileName   string    `json:"file_name" bson:"file_name"`
	Format     string    `json:"format" bson:"format"`
	Products   []Product `json:"products" bson:"products"`
	ImportedAt time.Time `json:"imported_at" bson:"imported_at"`
}

// ImportEntry es una línea del historial de importaciones
type ImportEntry struct {
	ID         string    `json:"id" bson:"_id"`
	Brand      string    `json:"brand" bson:"brand"`
	FileName   string    `json:"file_name" bson:"file_name"`
	Format     string    `json:"format" bson:"format"`
	Count      int       `json:"count" bson:"count"`
	Dropped    int       `json:"dropped" bson:"dropped"`
	Warnings   []string  `json:"warnings,omitempty" bson:"warnings,omitempty"`
	ImportedAt time.Time `json:"imported_at" bson:"imported_at"`
}
