package metrics

import "math"

// Gap reports the distance between the last observed capital and k*.
type Gap struct {
	name    string
	kStar   float64
	last    float64
	samples int
}

func NewGap(kStar float64) *Gap {
	return &Gap{name: "gap", kStar: kStar}
}

func (g *Gap) Name() string { return g.name }

func (g *Gap) Observe(k float64, step int) {
	g.last = math.Abs(k - g.kStar)
	g.samples++
}

func (g *Gap) Value() float64 {
	if g.samples == 0 {
		return 0
	}
	return g.last
}

func (g *Gap) Reset() {
	g.last = 0
	g.samples = 0
}

// HalfLife reports the first step at which the gap to k* is at most half
// the initial gap, or -1 if that never happened.
type HalfLife struct {
	name       string
	kStar      float64
	initialGap float64
	reached    int
	samples    int
}

func NewHalfLife(kStar float64) *HalfLife {
	return &HalfLife{name: "half_life", kStar: kStar, reached: -1}
}

func (h *HalfLife) Name() string { return h.name }

func (h *HalfLife) Observe(k float64, step int) {
	gap := math.Abs(k - h.kStar)
	if h.samples == 0 {
		h.initialGap = gap
	}
	h.samples++

	if h.reached < 0 && gap <= h.initialGap/2 {
		h.reached = step
	}
}

func (h *HalfLife) Value() float64 { return float64(h.reached) }

func (h *HalfLife) Reset() {
	h.initialGap = 0
	h.reached = -1
	h.samples = 0
}

// Monotone is the fraction of consecutive steps where the gap to k* did
// not grow.
type Monotone struct {
	name      string
	kStar     float64
	prevGap   float64
	samples   int
	shrinking int
}

func NewMonotone(kStar float64) *Monotone {
	return &Monotone{name: "monotone", kStar: kStar}
}

func (m *Monotone) Name() string { return m.name }

func (m *Monotone) Observe(k float64, step int) {
	gap := math.Abs(k - m.kStar)
	if m.samples > 0 && gap <= m.prevGap {
		m.shrinking++
	}
	m.prevGap = gap
	m.samples++
}

func (m *Monotone) Value() float64 {
	if m.samples < 2 {
		return 1.0
	}
	return float64(m.shrinking) / float64(m.samples-1)
}

func (m *Monotone) Reset() {
	m.prevGap = 0
	m.samples = 0
	m.shrinking = 0
}
