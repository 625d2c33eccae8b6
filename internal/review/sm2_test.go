package review

import (
	"math"
	"testing"
)

func TestNextEaseFloor(t *testing.T) {
	for quality := 0; quality <= 5; quality++ {
		for _, ease := range []float64{1.3, 1.5, 2.5, 3.0} {
			if got := NextEase(ease, quality); got < MinEase {
				t.Errorf("NextEase(%v, %d) = %v, below floor %v", ease, quality, got, MinEase)
			}
		}
	}
}

func TestNextEaseValues(t *testing.T) {
	tests := []struct {
		ease    float64
		quality int
		want    float64
	}{
		{2.5, 5, 2.6},
		{2.5, 4, 2.5},
		{2.5, 3, 2.36},
		{2.5, 0, 1.7},
		{1.3, 0, 1.3}, // floored
	}
	for _, tt := range tests {
		got := NextEase(tt.ease, tt.quality)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("NextEase(%v, %d) = %v, want %v", tt.ease, tt.quality, got, tt.want)
		}
	}
}

func TestNextIntervalProgression(t *testing.T) {
	tests := []struct {
		name         string
		prevInterval int
		ease         float64
		reviewCount  int
		quality      int
		want         int
	}{
		{"first review", 0, 2.5, 0, 4, 1},
		{"second review", 1, 2.5, 1, 4, 6},
		{"third review grows", 6, 2.5, 2, 4, 15},
		{"rounds up", 6, 2.6, 2, 5, 16}, // 15.6 rounds to 16
		{"failure resets", 30, 2.5, 7, 2, 1},
		{"failure resets on first", 0, 2.5, 0, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextInterval(tt.prevInterval, tt.ease, tt.reviewCount, tt.quality)
			if got != tt.want {
				t.Errorf("NextInterval(%d, %v, %d, %d) = %d, want %d",
					tt.prevInterval, tt.ease, tt.reviewCount, tt.quality, got, tt.want)
			}
		})
	}
}
