package stats

import "testing"

func TestSparkline(t *testing.T) {
	if got := Sparkline(nil); got != "" {
		t.Fatalf("expected empty sparkline, got %q", got)
	}
	got := Sparkline([]float64{0, 5, 10})
	if len(got) != 3 {
		t.Fatalf("expected 3 chars, got %q", got)
	}
	if got[0] != ' ' || got[2] != '@' {
		t.Fatalf("expected min and max glyphs, got %q", got)
	}
	flat := Sparkline([]float64{2, 2})
	if flat != "==" {
		t.Fatalf("expected flat sparkline, got %q", flat)
	}
}

func TestSumAndMean(t *testing.T) {
	values := []float64{60, 120, 180}
	if got := Sum(values); got != 360 {
		t.Fatalf("expected sum 360, got %v", got)
	}
	mean, ok := Mean(values)
	if !ok || mean != 120 {
		t.Fatalf("expected mean 120, got %v %v", mean, ok)
	}
	if _, ok := Mean(nil); ok {
		t.Fatalf("expected no mean for empty input")
	}
}
