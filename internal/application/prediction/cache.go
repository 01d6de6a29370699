// Package prediction implementa la analítica predictiva de tiempos de entrega
// por artículo, con una caché explícita y acotada en lugar del estado global
// oculto del sistema de origen.
package prediction

import (
	"sync"
	"time"

	"github.com/invtrack/kardex-api/internal/application/dto"
)

type cacheEntry struct {
	value      dto.LeadTimePredictionDTO
	insertedAt time.Time
	expiresAt  time.Time
}

// Cache memoiza predicciones por código de artículo. Capacidad fija con
// desalojo de la entrada más antigua y expiración por TTL. Segura para uso
// concurrente; se inyecta al use case, no vive en una variable de paquete.
type Cache struct {
	mu       sync.Mutex
	entries  map[string]cacheEntry
	capacity int
	ttl      time.Duration
	now      func() time.Time
}

// NewCache construye la caché. capacity <= 0 se normaliza a 1.
func NewCache(capacity int, ttl time.Duration) *Cache {
	if capacity <= 0 {
		capacity = 1
	}
	return &Cache{
		entries:  make(map[string]cacheEntry, capacity),
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Get devuelve la predicción cacheada y true si existe y no expiró.
func (c *Cache) Get(nacCode string) (dto.LeadTimePredictionDTO, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[nacCode]
	if !ok {
		return dto.LeadTimePredictionDTO{}, false
	}
	if c.now().After(e.expiresAt) {
		delete(c.entries, nacCode)
		return dto.LeadTimePredictionDTO{}, false
	}
	return e.value, true
}

// Put guarda la predicción; si la caché está llena, desaloja la entrada más
// antigua por fecha de inserción.
func (c *Cache) Put(nacCode string, value dto.LeadTimePredictionDTO) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if _, exists := c.entries[nacCode]; !exists && len(c.entries) >= c.capacity {
		var oldestKey string
		var oldestAt time.Time
		first := true
		for k, e := range c.entries {
			if first || e.insertedAt.Before(oldestAt) {
				oldestKey, oldestAt = k, e.insertedAt
				first = false
			}
		}
		delete(c.entries, oldestKey)
	}
	c.entries[nacCode] = cacheEntry{
		value:      value,
		insertedAt: now,
		expiresAt:  now.Add(c.ttl),
	}
}

// Len devuelve la cantidad de entradas vivas (incluye expiradas no purgadas).
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
