package aggregation

// orderedCounter counts keys and remembers the order each key was first seen.
type orderedCounter[K comparable] struct {
	counts map[K]int
	order  []K
}

func newOrderedCounter[K comparable]() *orderedCounter[K] {
	return &orderedCounter[K]{counts: make(map[K]int)}
}

// Add increments key and reports whether this was its first occurrence.
func (c *orderedCounter[K]) Add(key K) bool {
	n, seen := c.counts[key]
	if !seen {
		c.order = append(c.order, key)
	}
	c.counts[key] = n + 1
	return !seen
}

// Len returns the number of distinct keys.
func (c *orderedCounter[K]) Len() int { return len(c.order) }

// Each visits keys in first-insertion order.
func (c *orderedCounter[K]) Each(fn func(key K, count int)) {
	for _, key := range c.order {
		fn(key, c.counts[key])
	}
}
