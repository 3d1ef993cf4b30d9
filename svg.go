package glyphregion

import (
	"bufio"
	"fmt"
	"io"
	"math"
)

// WriteSVG writes regions as an SVG document for visual inspection. Each
// region becomes one even-odd filled path holding the exterior and its
// holes. The Y axis is flipped so that glyphs appear upright.
func WriteSVG(w io.Writer, regions []Region) error {
	bw := bufio.NewWriter(w)

	b := Rect{}
	for i, r := range regions {
		rb := r.Bounds()
		if i == 0 {
			b = rb
			continue
		}
		b = Rect{
			X0: math.Min(b.X0, rb.X0), Y0: math.Min(b.Y0, rb.Y0),
			X1: math.Max(b.X1, rb.X1), Y1: math.Max(b.Y1, rb.Y1),
		}
	}
	margin := math.Max(b.Width(), b.Height()) / 20
	if margin == 0 {
		margin = 1
	}

	fmt.Fprintf(bw, "<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"%g %g %g %g\">\n",
		b.X0-margin, -b.Y1-margin, b.Width()+2*margin, b.Height()+2*margin)
	for _, r := range regions {
		fmt.Fprint(bw, `<path fill-rule="evenodd" d="`)
		writeRing(bw, r.Exterior)
		for _, h := range r.Holes {
			writeRing(bw, h)
		}
		fmt.Fprintln(bw, `"/>`)
	}
	fmt.Fprintln(bw, "</svg>")
	return bw.Flush()
}

func writeRing(w io.Writer, p Polygon) {
	for i, pt := range p {
		op := "L"
		if i == 0 {
			op = "M"
		}
		// 0-y avoids printing -0.
		fmt.Fprintf(w, "%s%g %g ", op, pt.X, 0-pt.Y)
	}
	if len(p) > 0 {
		fmt.Fprint(w, "Z ")
	}
}
