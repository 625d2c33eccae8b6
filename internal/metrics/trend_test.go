package metrics

import (
	"testing"

	"github.com/ayinesh/studycoach/internal/learning"
)

func TestAnalyzeTrend(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		want   learning.Trend
	}{
		{"empty", nil, learning.TrendStable},
		{"one score", []float64{0.9}, learning.TrendStable},
		{"two scores", []float64{0.2, 0.9}, learning.TrendStable},
		{"improving short history", []float64{0.4, 0.7, 0.8, 0.9}, learning.TrendImproving},
		{"declining short history", []float64{0.9, 0.5, 0.4, 0.3}, learning.TrendDeclining},
		{"improving full windows", []float64{0.5, 0.5, 0.5, 0.8, 0.8, 0.8}, learning.TrendImproving},
		{"declining full windows", []float64{0.8, 0.8, 0.8, 0.5, 0.5, 0.5}, learning.TrendDeclining},
		{"flat", []float64{0.7, 0.7, 0.7, 0.7, 0.7, 0.7}, learning.TrendStable},
		{"small movement stays stable", []float64{0.7, 0.7, 0.7, 0.75, 0.75, 0.75}, learning.TrendStable},
		{"only recent window counts", []float64{0.2, 0.2, 0.2, 0.2, 0.2, 0.9, 0.9, 0.9}, learning.TrendImproving},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AnalyzeTrend(tt.scores); got != tt.want {
				t.Errorf("AnalyzeTrend(%v) = %s, want %s", tt.scores, got, tt.want)
			}
		})
	}
}

func TestAnalyzeTrendShortHistoriesAlwaysStable(t *testing.T) {
	for _, scores := range [][]float64{{}, {1}, {0, 1}} {
		if got := AnalyzeTrend(scores); got != learning.TrendStable {
			t.Errorf("AnalyzeTrend(%v) = %s, want stable", scores, got)
		}
	}
}
