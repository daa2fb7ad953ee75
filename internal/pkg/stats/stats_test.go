package stats

import (
	"reflect"
	"testing"
)

func TestMedian(t *testing.T) {
	cases := []struct {
		sample []float64
		want   float64
	}{
		{[]float64{10, 20}, 15},
		{[]float64{10, 20, 30}, 20},
		{[]float64{7}, 7},
		{[]float64{1, 2, 3, 4}, 2.5},
	}

	for _, tc := range cases {
		if got := Median(tc.sample); got != tc.want {
			t.Fatalf("Median(%v) = %v, want %v", tc.sample, got, tc.want)
		}
	}
}

func TestMean(t *testing.T) {
	if got := Mean([]float64{10, 20, 30}); got != 20 {
		t.Fatalf("Mean = %v, want 20", got)
	}
	if got := Mean([]float64{1.5, 2.5}); got != 2 {
		t.Fatalf("Mean = %v, want 2", got)
	}
}

func TestTrim_ShortSampleUntouched(t *testing.T) {
	sample := []float64{1, 2, 3, 4, 5, 6, 7}
	got := Trim(sample, 0.15)
	if !reflect.DeepEqual(got, sample) {
		t.Fatalf("samples under 8 elements must not be trimmed, got %v", got)
	}
}

func TestTrim_EightElementsDropsOnePerEnd(t *testing.T) {
	sample := []float64{1, 2, 3, 4, 5, 6, 7, 100}
	got := Trim(sample, 0.15)
	want := []float64{2, 3, 4, 5, 6, 7}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Trim = %v, want %v", got, want)
	}
}

func TestTrim_PositionalNotValueBased(t *testing.T) {
	// Twenty elements: floor(20*0.15) = 3 cut from each end regardless of
	// how extreme the values actually are.
	sample := make([]float64, 20)
	for i := range sample {
		sample[i] = float64(i + 1)
	}
	got := Trim(sample, 0.15)
	if len(got) != 14 {
		t.Fatalf("expected 14 elements after trimming, got %d", len(got))
	}
	if got[0] != 4 || got[len(got)-1] != 17 {
		t.Fatalf("unexpected trim window: %v", got)
	}
}

func TestSummarize(t *testing.T) {
	got := Summarize([]float64{5, 10, 15, 30})
	want := Summary{Count: 4, Median: 12.5, Average: 15, Low: 5, High: 30}
	if got != want {
		t.Fatalf("Summarize = %+v, want %+v", got, want)
	}
}
