package seq

import "testing"

func TestAnalyzeEmpty(t *testing.T) {
	got := Analyze(nil)
	if got.Average != nil || got.Min != nil || got.Max != nil {
		t.Fatalf("expected nil fields for empty input, got %+v", got)
	}
	if got.Length != 0 {
		t.Fatalf("expected length 0, got %d", got.Length)
	}
}

func TestAnalyze(t *testing.T) {
	got := Analyze([]float64{1, 8, 3, 4, 2, 6})
	if got.Length != 6 {
		t.Fatalf("expected length 6, got %d", got.Length)
	}
	if got.Average == nil || *got.Average != 4 {
		t.Fatalf("expected average 4, got %v", got.Average)
	}
	if got.Min == nil || *got.Min != 1 {
		t.Fatalf("expected min 1, got %v", got.Min)
	}
	if got.Max == nil || *got.Max != 8 {
		t.Fatalf("expected max 8, got %v", got.Max)
	}
}

func TestAnalyzeSingle(t *testing.T) {
	got := Analyze([]float64{-2.5})
	if got.Length != 1 {
		t.Fatalf("expected length 1, got %d", got.Length)
	}
	if got.Average == nil || *got.Average != -2.5 {
		t.Fatalf("expected average -2.5, got %v", got.Average)
	}
	if *got.Min != -2.5 || *got.Max != -2.5 {
		t.Fatalf("expected min and max -2.5, got %v and %v", *got.Min, *got.Max)
	}
}

func TestAnalyzeNegatives(t *testing.T) {
	got := Analyze([]float64{-1, -8, -3})
	if *got.Min != -8 {
		t.Fatalf("expected min -8, got %v", *got.Min)
	}
	if *got.Max != -1 {
		t.Fatalf("expected max -1, got %v", *got.Max)
	}
	if *got.Average != -4 {
		t.Fatalf("expected average -4, got %v", *got.Average)
	}
}
