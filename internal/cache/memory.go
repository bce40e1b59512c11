package cache

import (
	"context"
	"strings"
	"sync"
	"time"
)

type item struct {
	value      []byte
	expiration int64
}

// Memory es el caché en proceso con TTL
type Memory struct {
	items map[string]item
	mu    sync.RWMutex
	ttl   time.Duration
	now   func() time.Time
	stop  chan struct{}
	once  sync.Once
}

// NewMemory crea el caché y arranca la limpieza periódica de expirados
func NewMemory(defaultTTL time.Duration) *Memory {
	m := &Memory{
		items: make(map[string]item),
		ttl:   defaultTTL,
		now:   time.Now,
		stop:  make(chan struct{}),
	}
	// Limpiar caché expirado cada 5 minutos
	go m.cleanupExpired(5 * time.Minute)
	return m
}

// Set guarda un valor; ttl <= 0 usa el TTL por defecto
func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ttl <= 0 {
		ttl = m.ttl
	}
	m.items[key] = item{value: value, expiration: m.now().Add(ttl).UnixNano()}
	return nil
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	it, found := m.items[key]
	if !found || m.now().UnixNano() > it.expiration {
		return nil, false, nil
	}
	return it.value, true, nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

// DeleteByPrefix elimina todas las claves que empiecen con un prefijo
func (m *Memory) DeleteByPrefix(_ context.Context, prefix string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for key := range m.items {
		if strings.HasPrefix(key, prefix) {
			delete(m.items, key)
		}
	}
	return nil
}

// Clear limpia todo el caché
func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = make(map[string]item)
	return nil
}

// Size retorna el número de items en caché
func (m *Memory) Size() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// Close detiene la limpieza periódica
func (m *Memory) Close() error {
	m.once.Do(func() { close(m.stop) })
	return nil
}

func (m *Memory) cleanupExpired(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			m.removeExpired()
		}
	}
}

func (m *Memory) removeExpired() {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now().UnixNano()
	for key, it := range m.items {
		if now > it.expiration {
			delete(m.items, key)
		}
	}
}
