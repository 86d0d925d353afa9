// Package cache содержит кеш подготовленных представлений с инвалидацией по пути.
package cache

import "sync"

// PathCache хранит подготовленные ответы по пути запроса. Успешная мутация
// счёта инвалидирует представление списка до перенаправления на него.
type PathCache struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewPathCache создаёт пустой кеш.
func NewPathCache() *PathCache {
	return &PathCache{entries: make(map[string][]byte)}
}

// Get возвращает закешированный ответ для пути.
func (c *PathCache) Get(path string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	body, ok := c.entries[path]
	return body, ok
}

// Set сохраняет ответ для пути.
func (c *PathCache) Set(path string, body []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[path] = body
}

// Invalidate помечает представление пути устаревшим.
func (c *PathCache) Invalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, path)
}
