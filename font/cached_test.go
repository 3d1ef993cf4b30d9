package font

import (
	"errors"
	"testing"

	"github.com/gogpu/glyphregion"
)

// countingProvider counts lookups and serves a single glyph for 'x'.
type countingProvider struct {
	calls int
	err   error
}

func (p *countingProvider) Glyph(r rune) (*glyphregion.Glyph, bool, error) {
	p.calls++
	if p.err != nil {
		return nil, false, p.err
	}
	if r != 'x' {
		return nil, false, nil
	}
	return &glyphregion.Glyph{Advance: 1}, true, nil
}

func TestCached_Memoizes(t *testing.T) {
	p := &countingProvider{}
	c := NewCached(p, 8)

	first, ok, err := c.Glyph('x')
	if err != nil || !ok {
		t.Fatalf("Glyph('x') = _, %v, %v", ok, err)
	}
	second, _, _ := c.Glyph('x')
	if first != second {
		t.Error("cached lookups should return the same glyph")
	}

	// Unmapped results are cached too.
	for i := 0; i < 2; i++ {
		if g, ok, err := c.Glyph('y'); g != nil || ok || err != nil {
			t.Errorf("Glyph('y') = %v, %v, %v", g, ok, err)
		}
	}

	if p.calls != 2 {
		t.Errorf("provider called %d times, want 2", p.calls)
	}
	st := c.Stats()
	if st.Len != 2 || st.Hits != 2 || st.Misses != 2 {
		t.Errorf("Stats() = %+v", st)
	}

	c.Reset()
	c.Glyph('x')
	if p.calls != 3 {
		t.Errorf("provider called %d times after Reset, want 3", p.calls)
	}
}

func TestCached_ErrorsNotCached(t *testing.T) {
	errBroken := errors.New("broken")
	p := &countingProvider{err: errBroken}
	c := NewCached(p, 8)

	if _, _, err := c.Glyph('x'); !errors.Is(err, errBroken) {
		t.Fatalf("Glyph() error = %v, want %v", err, errBroken)
	}
	p.err = nil
	if _, ok, err := c.Glyph('x'); err != nil || !ok {
		t.Errorf("Glyph() retry = _, %v, %v", ok, err)
	}
	if p.calls != 2 {
		t.Errorf("provider called %d times, want 2", p.calls)
	}
}

func TestCached_WithBuilder(t *testing.T) {
	face := NewCached(sfntTestFace(t), 0)

	for i := 0; i < 3; i++ {
		b, err := glyphregion.NewBuilder(face, 'o')
		if err != nil {
			t.Fatalf("NewBuilder() error = %v", err)
		}
		if _, err := b.Height(float64(i + 1)).Build(); err != nil {
			t.Fatalf("Build() error = %v", err)
		}
	}

	_, err := glyphregion.NewBuilder(face, '☃')
	if !errors.Is(err, glyphregion.ErrGlyphNotFound) {
		t.Errorf("NewBuilder('☃') error = %v, want ErrGlyphNotFound", err)
	}

	if st := face.Stats(); st.Misses != 2 || st.Hits != 2 {
		t.Errorf("Stats() = %+v, want 2 misses and 2 hits", st)
	}
}
