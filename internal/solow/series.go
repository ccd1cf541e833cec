package solow

// Generate records the capital stock t times, advancing the model after
// each observation. The first element is always the capital held before
// the call. The model is mutated in place, so a second call continues
// where the first stopped. A negative t is treated as zero.
func Generate(m *Model, t int) []float64 {
	if t <= 0 {
		return []float64{}
	}
	seq := make([]float64, 0, t)
	for i := 0; i < t; i++ {
		seq = append(seq, m.Capital)
		m.Advance()
	}
	return seq
}
