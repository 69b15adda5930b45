package game

import (
	"math"
	"testing"
)

func TestFPSMeterAverage(t *testing.T) {
	m := NewFPSMeter(3)
	if m.Average() != 0 {
		t.Errorf("expected 0 before any sample, got %f", m.Average())
	}

	for _, v := range []float64{10, 20, 30} {
		m.Sample(v)
	}
	if m.Average() != 20 {
		t.Errorf("expected 20, got %f", m.Average())
	}

	m.Sample(60) // evicts 10
	if math.Abs(m.Average()-110.0/3.0) > 1e-9 {
		t.Errorf("expected %f, got %f", 110.0/3.0, m.Average())
	}
}
