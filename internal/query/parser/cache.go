package parser

import (
	"sync"
)

// DefaultCacheSize bounds the parse cache; typing a query produces many
// near-identical parses, so a small cache absorbs almost all of them.
const DefaultCacheSize = 256

type cacheEntry struct {
	result *Result
	err    error
}

// Cache memoizes Parse results keyed by raw query text. Eviction is
// FIFO; correctness never depends on what is cached.
type Cache struct {
	parser *Parser

	mu      sync.Mutex
	entries map[string]cacheEntry
	order   []string
	size    int
}

// NewCache wraps a parser with a bounded memo. A size of zero or less
// uses DefaultCacheSize.
func NewCache(p *Parser, size int) *Cache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &Cache{
		parser:  p,
		entries: make(map[string]cacheEntry, size),
		size:    size,
	}
}

// Parse parses via the cache
func (c *Cache) Parse(input string) (*Result, error) {
	c.mu.Lock()
	if e, ok := c.entries[input]; ok {
		c.mu.Unlock()
		return e.result, e.err
	}
	c.mu.Unlock()

	result, err := c.parser.Parse(input)

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[input]; !ok {
		if len(c.order) >= c.size {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.entries, oldest)
		}
		c.entries[input] = cacheEntry{result: result, err: err}
		c.order = append(c.order, input)
	}
	return result, err
}

// Len reports how many queries are memoized
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
