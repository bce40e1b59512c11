// Package cache guarda respuestas serializadas de búsqueda y preguntas.
package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"
)

// Prefijos de clave
const (
	PrefixSearch = "search:"
	PrefixAsk    = "ask:"
)

// Store es un almacén clave/valor con expiración
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeleteByPrefix(ctx context.Context, prefix string) error
	Clear(ctx context.Context) error
	Close() error
}

// Marshal serializa y guarda en caché
func Marshal(ctx context.Context, s Store, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, data, ttl)
}

// Unmarshal obtiene y deserializa del caché
func Unmarshal(ctx context.Context, s Store, key string, target any) (bool, error) {
	data, found, err := s.Get(ctx, key)
	if err != nil || !found {
		return false, err
	}
	if err := json.Unmarshal(data, target); err != nil {
		return false, err
	}
	return true, nil
}

// Key compone la clave de una respuesta calculada sobre la generación gen del catálogo.
// Una respuesta escrita tras una importación con datos anteriores queda bajo una
// generación que ya no se consulta.
func Key(prefix string, gen uint64, query string) string {
	return prefix + strconv.FormatUint(gen, 10) + ":" + query
}

// Invalidate vacía el caché; todas sus entradas dependen del contenido del catálogo
func Invalidate(ctx context.Context, s Store) error {
	return s.Clear(ctx)
}

var (
	_ Store = (*Memory)(nil)
	_ Store = (*Redis)(nil)
)
