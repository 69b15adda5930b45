package game

// FPSMeter keeps a moving average over the last few frame rate samples
type FPSMeter struct {
	samples []float64
	size    int
	next    int
}

// NewFPSMeter creates a meter averaging over size samples
func NewFPSMeter(size int) *FPSMeter {
	return &FPSMeter{
		samples: make([]float64, 0, size),
		size:    size,
	}
}

// Sample records one reading, evicting the oldest once the window is full
func (m *FPSMeter) Sample(fps float64) {
	if len(m.samples) < m.size {
		m.samples = append(m.samples, fps)
		return
	}
	m.samples[m.next] = fps
	m.next = (m.next + 1) % m.size
}

// Average returns the mean of the recorded samples, or 0 before the first one
func (m *FPSMeter) Average() float64 {
	if len(m.samples) == 0 {
		return 0
	}
	total := 0.0
	for _, v := range m.samples {
		total += v
	}
	return total / float64(len(m.samples))
}
