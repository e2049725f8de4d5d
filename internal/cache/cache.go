package cache

import (
	"strings"
	"sync"
	"time"
)

type CacheItem struct {
	Value      interface{}
	Expiration int64
}

// Cache es el caché TTL en memoria para las lecturas del catálogo:
// listados hot/new y detalle de goodie
type Cache struct {
	items map[string]CacheItem
	mu    sync.RWMutex
	ttl   time.Duration
}

var (
	Instance *Cache
	once     sync.Once
)

// Init inicializa el caché global del proceso
func Init(defaultTTL time.Duration) *Cache {
	once.Do(func() {
		Instance = &Cache{
			items: make(map[string]CacheItem),
			ttl:   defaultTTL,
		}
		// Limpiar items expirados cada 5 minutos
		go Instance.cleanupExpired()
	})
	return Instance
}

// Get obtiene la instancia global del caché
func Get() *Cache {
	if Instance == nil {
		return Init(5 * time.Minute)
	}
	return Instance
}

// Set guarda un valor en caché
func (c *Cache) Set(key string, value interface{}, ttl ...time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	duration := c.ttl
	if len(ttl) > 0 {
		duration = ttl[0]
	}

	c.items[key] = CacheItem{
		Value:      value,
		Expiration: time.Now().Add(duration).UnixNano(),
	}
}

// GetValue obtiene un valor del caché
func (c *Cache) GetValue(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, found := c.items[key]
	if !found {
		return nil, false
	}

	if time.Now().UnixNano() > item.Expiration {
		return nil, false
	}

	return item.Value, true
}

// Delete elimina una clave del caché
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// DeleteByPrefix invalida todas las claves con un prefijo; se usa al
// crear goodies o mover contadores para tirar los listados cacheados
func (c *Cache) DeleteByPrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.items {
		if strings.HasPrefix(key, prefix) {
			delete(c.items, key)
		}
	}
}

// Size retorna el número de items en caché
func (c *Cache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// cleanupExpired limpia items expirados periódicamente
func (c *Cache) cleanupExpired() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		now := time.Now().UnixNano()
		for key, item := range c.items {
			if now > item.Expiration {
				delete(c.items, key)
			}
		}
		c.mu.Unlock()
	}
}
