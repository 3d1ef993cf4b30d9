package font

import (
	"github.com/gogpu/glyphregion"
	"github.com/gogpu/glyphregion/internal/lru"
)

// Cached wraps a provider and memoizes its lookups in an LRU cache, so
// repeated builds of the same character decode the outline once.
//
// Unmapped characters are cached as well. Provider errors are not.
// The returned glyphs are shared between callers and must not be modified.
//
// Cached is safe for concurrent use if the wrapped provider is.
type Cached struct {
	provider glyphregion.FontProvider
	glyphs   *lru.Cache[rune, cachedGlyph]
}

type cachedGlyph struct {
	glyph *glyphregion.Glyph
	ok    bool
}

// CacheStats contains lookup statistics of a Cached provider.
type CacheStats struct {
	Len       int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// NewCached returns a provider that caches up to capacity glyphs from p.
// A non-positive capacity selects a default of 256.
func NewCached(p glyphregion.FontProvider, capacity int) *Cached {
	return &Cached{
		provider: p,
		glyphs:   lru.New[rune, cachedGlyph](capacity),
	}
}

// Glyph implements glyphregion.FontProvider.
func (c *Cached) Glyph(r rune) (*glyphregion.Glyph, bool, error) {
	e, err := c.glyphs.GetOrLoad(r, func() (cachedGlyph, error) {
		g, ok, err := c.provider.Glyph(r)
		return cachedGlyph{glyph: g, ok: ok}, err
	})
	if err != nil {
		return nil, false, err
	}
	return e.glyph, e.ok, nil
}

// Stats returns the cache statistics.
func (c *Cached) Stats() CacheStats {
	s := c.glyphs.Stats()
	return CacheStats{
		Len:       s.Len,
		Hits:      s.Hits,
		Misses:    s.Misses,
		Evictions: s.Evictions,
	}
}

// Reset drops every cached glyph.
func (c *Cached) Reset() {
	c.glyphs.Clear()
}
