package cache

import "zimvm/value"

// CharCache is the single-character string cache of §4.3: one *value.String
// entry per byte value, filled lazily on the first GET_CHAR that produces
// it. A nil slot reads as uninitialized; we use an explicit presence flag
// rather than the source's Value::FALSE sentinel, per the design notes'
// preferred re-architecture.
type CharCache struct {
	strs [256]*value.String
	set  [256]bool
}

// Get returns the cached single-character string for b, creating and
// caching it on first use.
func (c *CharCache) Get(b byte) *value.String {
	if c.set[b] {
		return c.strs[b]
	}
	s := value.NewStringBytes([]byte{b})
	c.strs[b] = s
	c.set[b] = true
	return s
}
