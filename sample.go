package glyphregion

import "sort"

// arcTableSteps is the number of uniform parameter steps used to tabulate
// cumulative chord length when mapping arc length back to a parameter.
const arcTableSteps = 256

// SampleEuclidean returns n points on c spaced at equal arc-length
// fractions i/(n-1). The first and last samples are exactly c.Start() and
// c.End(). Values of n below 2 are treated as 2.
func SampleEuclidean(c Curve, n int) []Point {
	n = max(n, 2)
	pts := make([]Point, n)
	pts[0] = c.Start()
	pts[n-1] = c.End()
	if n == 2 {
		return pts
	}

	step := 1 / float64(n-1)
	if c.Degree() == 1 {
		// Lines have uniform speed.
		for i := 1; i < n-1; i++ {
			pts[i] = c.Eval(float64(i) * step)
		}
		return pts
	}

	table := newArcTable(c)
	for i := 1; i < n-1; i++ {
		pts[i] = c.Eval(table.param(float64(i) * step))
	}
	return pts
}

// arcTable holds cumulative chord lengths at uniform parameter steps.
type arcTable struct {
	lengths [arcTableSteps + 1]float64
}

func newArcTable(c Curve) *arcTable {
	a := new(arcTable)
	prev := c.Start()
	for i := 1; i <= arcTableSteps; i++ {
		p := c.Eval(float64(i) / arcTableSteps)
		a.lengths[i] = a.lengths[i-1] + prev.Distance(p)
		prev = p
	}
	return a
}

func (a *arcTable) total() float64 {
	return a.lengths[arcTableSteps]
}

// param maps a fraction d of the total arc length to a curve parameter.
func (a *arcTable) param(d float64) float64 {
	total := a.total()
	if total == 0 {
		return d
	}
	target := d * total
	i := sort.SearchFloat64s(a.lengths[:], target)
	switch {
	case i == 0:
		return 0
	case i > arcTableSteps:
		return 1
	}
	l0, l1 := a.lengths[i-1], a.lengths[i]
	frac := 0.0
	if l1 > l0 {
		frac = (target - l0) / (l1 - l0)
	}
	return (float64(i-1) + frac) / arcTableSteps
}
