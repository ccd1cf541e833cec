package metrics

import "math"

// GrowthRate is the mean per-period log growth of capital. Steps that
// involve a non-positive value are skipped.
type GrowthRate struct {
	name    string
	prev    float64
	sum     float64
	samples int
	seen    bool
}

func NewGrowthRate() *GrowthRate {
	return &GrowthRate{name: "growth_rate"}
}

func (g *GrowthRate) Name() string { return g.name }

func (g *GrowthRate) Observe(k float64, step int) {
	if g.seen && g.prev > 0 && k > 0 {
		g.sum += math.Log(k / g.prev)
		g.samples++
	}
	g.prev = k
	g.seen = true
}

func (g *GrowthRate) Value() float64 {
	if g.samples == 0 {
		return 0
	}
	return g.sum / float64(g.samples)
}

func (g *GrowthRate) Reset() {
	g.prev = 0
	g.sum = 0
	g.samples = 0
	g.seen = false
}
