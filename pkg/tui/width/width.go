// ABOUTME: VisibleWidth computes the columns a string occupies once ANSI sequences are dropped
// ABOUTME: Grapheme-aware via uniseg/go-runewidth; LRU cache for non-ASCII input, fast path for ASCII

package width

import (
	"container/list"
	"sync"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const cacheSize = 256

// lruEntry holds a cached width measurement.
type lruEntry struct {
	key   string
	value int
}

// cache is a bounded LRU of string widths. Prompts are re-measured on every
// keystroke, so styled prompts hit it constantly.
type cache struct {
	mu    sync.Mutex
	items map[string]*list.Element
	order *list.List
	limit int
}

func newCache(limit int) *cache {
	return &cache{
		items: make(map[string]*list.Element, limit),
		order: list.New(),
		limit: limit,
	}
}

func (c *cache) get(key string) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		return 0, false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(lruEntry).value, true
}

func (c *cache) put(key string, value int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		return
	}
	if c.order.Len() >= c.limit {
		if back := c.order.Back(); back != nil {
			c.order.Remove(back)
			delete(c.items, back.Value.(lruEntry).key)
		}
	}
	c.items[key] = c.order.PushFront(lruEntry{key: key, value: value})
}

func (c *cache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.order.Len()
}

var widthCache = newCache(cacheSize)

// VisibleWidth returns the number of terminal columns s occupies when
// rendered. ANSI escape sequences contribute zero columns; East Asian wide
// characters and emoji contribute two.
func VisibleWidth(s string) int {
	if s == "" {
		return 0
	}
	if isPlainASCII(s) {
		return len(s)
	}
	if w, ok := widthCache.get(s); ok {
		return w
	}
	w := measure(StripANSI(s))
	widthCache.put(s, w)
	return w
}

// RunesWidth is VisibleWidth for an edit buffer slice.
func RunesWidth(rs []rune) int {
	return VisibleWidth(string(rs))
}

// isPlainASCII reports whether s holds only printable ASCII (0x20-0x7E),
// in which case every byte is exactly one column.
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return false
		}
	}
	return true
}

// measure sums grapheme cluster widths of an escape-free string.
func measure(s string) int {
	w := 0
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		r, _ := utf8.DecodeRuneInString(cluster)
		w += runewidth.RuneWidth(r)
	}
	return w
}
