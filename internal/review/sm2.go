// Package review schedules spaced-repetition reviews per (user, topic)
// using the SM-2 algorithm.
package review

import "math"

// DefaultEase is the ease factor assigned on a topic's first review.
const DefaultEase = 2.5

// MinEase is the hard floor on the ease factor.
const MinEase = 1.3

// NextEase applies the SM-2 ease update for a recall of the given quality
// (0-5). The result never drops below MinEase.
func NextEase(ease float64, quality int) float64 {
	q := float64(quality)
	next := ease + 0.1 - (5-q)*(0.08+(5-q)*0.02)
	return math.Max(MinEase, next)
}

// NextInterval computes the next review interval in days. A failed recall
// (quality < 3) restarts the forgetting curve at one day regardless of
// history; otherwise the interval grows 1 → 6 → round(previous × ease).
// reviewCount is the number of reviews completed before this one.
func NextInterval(prevInterval int, ease float64, reviewCount, quality int) int {
	if quality < 3 {
		return 1
	}
	switch reviewCount {
	case 0:
		return 1
	case 1:
		return 6
	}
	return int(math.Round(float64(prevInterval) * ease))
}
