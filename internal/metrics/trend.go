// Package metrics maintains per-user performance and engagement signals
// and derives trends and pattern reports from them.
package metrics

import "github.com/ayinesh/studycoach/internal/learning"

// trendWindow is the number of recent scores compared against the
// preceding window when classifying a trend.
const trendWindow = 3

// trendDelta is the minimum average difference that counts as movement.
const trendDelta = 0.10

// AnalyzeTrend classifies a score history (oldest first) as improving,
// declining, or stable. Fewer than three scores is always stable. With six
// or more scores the three most recent are compared against the three
// before them; with three to five, the recent window is compared against
// the first half of the history.
func AnalyzeTrend(scores []float64) learning.Trend {
	if len(scores) < trendWindow {
		return learning.TrendStable
	}

	recent := scores[len(scores)-trendWindow:]
	var previous []float64
	if len(scores) >= 2*trendWindow {
		previous = scores[len(scores)-2*trendWindow : len(scores)-trendWindow]
	} else {
		previous = scores[:len(scores)/2]
	}
	if len(previous) == 0 {
		return learning.TrendStable
	}

	diff := mean(recent) - mean(previous)
	switch {
	case diff > trendDelta:
		return learning.TrendImproving
	case diff < -trendDelta:
		return learning.TrendDeclining
	}
	return learning.TrendStable
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
