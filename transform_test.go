package glyphregion

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestHorizontalShift(t *testing.T) {
	tests := []struct {
		align HorizontalAlignment
		want  float64
	}{
		{AlignLeft, 0},
		{AlignCenter, 300},
		{AlignRight, 600},
	}
	for _, tt := range tests {
		t.Run(tt.align.String(), func(t *testing.T) {
			if got := horizontalShift(tt.align, 600); got != tt.want {
				t.Errorf("horizontalShift() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVerticalShift(t *testing.T) {
	// Height is taken from the font box, including the part below the
	// baseline.
	bounds := Rect{X0: 0, Y0: -200, X1: 500, Y1: 800}
	tests := []struct {
		align VerticalAlignment
		want  float64
	}{
		{AlignBottom, 0},
		{AlignMiddle, 500},
		{AlignTop, 1000},
	}
	for _, tt := range tests {
		t.Run(tt.align.String(), func(t *testing.T) {
			if got := verticalShift(tt.align, bounds); got != tt.want {
				t.Errorf("verticalShift() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScaleFactor(t *testing.T) {
	tests := []struct {
		name     string
		ext      Extent
		height   float64
		baseline bool
		want     float64
	}{
		{"span", Extent{YMin: 0, YMax: 10}, 2, false, 0.2},
		{"span with descender", Extent{YMin: -2, YMax: 8}, 5, false, 0.5},
		{"baseline", Extent{YMin: -2, YMax: 8}, 4, true, 0.5},
		{"empty", Extent{Empty: true}, 3, false, 1},
		{"flat", Extent{YMin: 4, YMax: 4}, 3, false, 1},
		{"baseline below zero", Extent{YMin: -5, YMax: -1}, 3, true, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scaleFactor(tt.ext, tt.height, tt.baseline); math.Abs(got-tt.want) > epsilon {
				t.Errorf("scaleFactor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	// Square from (0,0) to (10,10) with a 10 unit advance.
	square := [][]Point{{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)}}
	g := &Glyph{Advance: 10, Bounds: Rect{X1: 10, Y1: 10}}
	ext := Extent{YMin: 0, YMax: 10}

	tests := []struct {
		name string
		opts []Option
		want []Point
	}{
		{
			name: "scale to height",
			opts: []Option{WithHeight(2)},
			want: []Point{Pt(0, 0), Pt(2, 0), Pt(2, 2), Pt(0, 2)},
		},
		{
			name: "center middle",
			opts: []Option{WithHeight(10), WithAlignment(AlignCenter, AlignMiddle)},
			want: []Point{Pt(-5, -5), Pt(5, -5), Pt(5, 5), Pt(-5, 5)},
		},
		{
			name: "right top",
			opts: []Option{WithHeight(1), WithAlignment(AlignRight, AlignTop)},
			want: []Point{Pt(-1, -1), Pt(0, -1), Pt(0, 0), Pt(-1, 0)},
		},
		{
			name: "translation after scale",
			opts: []Option{WithHeight(1), WithTranslation(3, 4)},
			want: []Point{Pt(3, 4), Pt(4, 4), Pt(4, 5), Pt(3, 5)},
		},
		{
			name: "rotation before shift",
			opts: []Option{WithHeight(10), WithRotation(90), WithHorizontalAlignment(AlignCenter)},
			want: []Point{Pt(-5, 0), Pt(-5, 10), Pt(-15, 10), Pt(-15, 0)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(square, g, ext, NewConfig(tt.opts...))
			want := [][]Point{tt.want}
			if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
				t.Errorf("Normalize() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNormalize_DoesNotModifyInput(t *testing.T) {
	in := [][]Point{{Pt(1, 2), Pt(3, 4), Pt(5, 0)}}
	g := &Glyph{Advance: 6, Bounds: Rect{X1: 6, Y1: 4}}
	Normalize(in, g, Extent{YMin: 0, YMax: 4}, NewConfig(WithHeight(8), WithRotation(30)))

	want := [][]Point{{Pt(1, 2), Pt(3, 4), Pt(5, 0)}}
	if diff := cmp.Diff(want, in); diff != "" {
		t.Errorf("input modified (-want +got):\n%s", diff)
	}
}

func TestNormalizeTransform_Identity(t *testing.T) {
	g := &Glyph{Advance: 10, Bounds: Rect{X1: 10, Y1: 10}}
	m := NormalizeTransform(g, Extent{YMin: 0, YMax: 10}, NewConfig(WithHeight(10)))
	if !m.IsIdentity() {
		t.Errorf("NormalizeTransform() = %+v, want identity", m)
	}

	// The identity path copies instead of mapping; results still must not
	// alias the input.
	in := [][]Point{{Pt(0, 0), Pt(10, 0), Pt(10, 10)}}
	out := Normalize(in, g, Extent{YMin: 0, YMax: 10}, NewConfig(WithHeight(10)))
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("Normalize() identity mismatch (-in +out):\n%s", diff)
	}
	out[0][0] = Pt(99, 99)
	if in[0][0] != Pt(0, 0) {
		t.Error("Normalize() result aliases its input")
	}
}
