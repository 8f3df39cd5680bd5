package filter

import (
	"container/list"
	"sync"
)

// filterCache is a thread-safe LRU of compiled filters keyed by expression
type filterCache struct {
	capacity int
	order    *list.List
	items    map[string]*list.Element
	mu       sync.Mutex
}

type cacheEntry struct {
	expression string
	filter     CompiledFilter
}

func newFilterCache(capacity int) *filterCache {
	return &filterCache{
		capacity: capacity,
		order:    list.New(),
		items:    make(map[string]*list.Element, capacity),
	}
}

// get returns the cached filter and marks it most recently used
func (c *filterCache) get(expression string) (CompiledFilter, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[expression]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*cacheEntry).filter, true
}

// put stores f, evicting the least recently used entry when full
func (c *filterCache) put(expression string, f CompiledFilter) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[expression]; ok {
		c.order.MoveToFront(el)
		el.Value.(*cacheEntry).filter = f
		return
	}

	c.items[expression] = c.order.PushFront(&cacheEntry{expression: expression, filter: f})

	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(*cacheEntry).expression)
	}
}

func (c *filterCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*list.Element, c.capacity)
	c.order.Init()
}

func (c *filterCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.order.Len()
}
