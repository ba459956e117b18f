package stats

import (
	"math"
	"testing"
)

func TestMovingAverageWindowOne(t *testing.T) {
	values := []float64{1, 2, 3}
	got := MovingAverage(values, 1)
	for i := range values {
		if got[i] != values[i] {
			t.Fatalf("expected identity for window 1, got %v", got)
		}
	}
}

func TestMovingAverage(t *testing.T) {
	values := []float64{10, 20, 30, 40}
	got := MovingAverage(values, 2)
	want := []float64{10, 15, 25, 35}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestMovingAverageDoesNotMutateInput(t *testing.T) {
	values := []float64{5, 6, 7}
	_ = MovingAverage(values, 2)
	if values[0] != 5 || values[1] != 6 || values[2] != 7 {
		t.Fatalf("input mutated: %v", values)
	}
}

func TestSparklineEmpty(t *testing.T) {
	if got := Sparkline(nil); got != "" {
		t.Fatalf("expected empty sparkline, got %q", got)
	}
}

func TestSparklineConstantSeries(t *testing.T) {
	got := Sparkline([]float64{5, 5, 5})
	if len(got) != 3 {
		t.Fatalf("expected 3 characters, got %q", got)
	}
	for i := 1; i < len(got); i++ {
		if got[i] != got[0] {
			t.Fatalf("expected uniform characters, got %q", got)
		}
	}
}

func TestSparklineUsesFullRange(t *testing.T) {
	got := Sparkline([]float64{0, 100})
	if len(got) != 2 {
		t.Fatalf("expected 2 characters, got %q", got)
	}
	if got[0] != sparkChars[0] {
		t.Fatalf("expected minimum char for the low point, got %q", got)
	}
	if got[1] != sparkChars[len(sparkChars)-1] {
		t.Fatalf("expected maximum char for the high point, got %q", got)
	}
}

func TestResamplePassthrough(t *testing.T) {
	values := []float64{1, 2, 3}
	got := Resample(values, 5)
	if len(got) != 3 {
		t.Fatalf("expected passthrough when series fits, got %v", got)
	}
}

func TestResampleBucketAverages(t *testing.T) {
	values := []float64{1, 3, 5, 7}
	got := Resample(values, 2)
	want := []float64{2, 6}
	if len(got) != 2 {
		t.Fatalf("expected 2 buckets, got %v", got)
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestResampleCoversAllValues(t *testing.T) {
	values := make([]float64, 97)
	for i := range values {
		values[i] = float64(i)
	}
	got := Resample(values, 10)
	if len(got) != 10 {
		t.Fatalf("expected 10 buckets, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i] <= got[i-1] {
			t.Fatalf("expected monotone buckets for a monotone series, got %v", got)
		}
	}
}
