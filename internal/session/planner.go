package session

import (
	"github.com/google/uuid"

	"github.com/ayinesh/studycoach/internal/learning"
	"github.com/ayinesh/studycoach/internal/metrics"
	"github.com/ayinesh/studycoach/internal/store"
)

// Duration recommendation bounds in minutes.
const (
	minRecommendedMinutes = 15
	maxRecommendedMinutes = 120
)

// reflectionMinutes is the fixed closing-reflection slot.
const reflectionMinutes = 2

// consumptionRatio is the fraction of a regular session spent consuming
// content (reading) rather than producing (practice, assessment).
const consumptionRatio = 0.5

// DetermineKind picks the session flavor for a user's current state, in
// priority order: recovery after an absence, review when gaps pile up or
// performance declines, drill for high performers at a fast pace, and
// regular otherwise. A user with no history always gets regular.
func DetermineKind(m *store.LearnerMetrics) PlanKind {
	if m.ConsecutiveMissedDays >= 3 {
		return PlanRecovery
	}
	if len(m.Gaps) >= 3 || metrics.AnalyzeTrend(m.QuizScores) == learning.TrendDeclining {
		return PlanReview
	}
	if m.AvgQuizScore >= 0.85 && m.Pace == learning.PaceFast {
		return PlanDrill
	}
	return PlanRegular
}

// RecommendDuration suggests a session length from the user's average
// duration, adjusted by kind and by how reliably the user finishes
// sessions, clamped to [15, 120] minutes.
func RecommendDuration(m *store.LearnerMetrics, kind PlanKind) int {
	multiplier := 1.0
	switch kind {
	case PlanRecovery:
		multiplier = 0.7
	case PlanDrill:
		multiplier = 0.8
	case PlanReview:
		multiplier = 0.9
	}

	rate := m.CompletionRate()
	if rate < 0.7 {
		multiplier *= 0.8
	} else if rate >= 0.95 {
		multiplier *= 1.1
	}

	recommended := int(float64(m.AvgSessionMinutes) * multiplier)
	if recommended < minRecommendedMinutes {
		return minRecommendedMinutes
	}
	if recommended > maxRecommendedMinutes {
		return maxRecommendedMinutes
	}
	return recommended
}

// ReviewRatio computes the fraction of production time spent reviewing,
// from a per-kind base adjusted by the quiz trend and gap count, clamped
// to [0.1, 0.9].
func ReviewRatio(m *store.LearnerMetrics, kind PlanKind) float64 {
	ratio := 0.4
	switch kind {
	case PlanRecovery:
		ratio = 0.8
	case PlanReview:
		ratio = 0.7
	case PlanDrill:
		ratio = 0.3
	}

	switch metrics.AnalyzeTrend(m.QuizScores) {
	case learning.TrendDeclining:
		ratio += 0.15
	case learning.TrendImproving:
		ratio -= 0.10
	}

	gapAdjustment := float64(len(m.Gaps)) * 0.05
	if gapAdjustment > 0.20 {
		gapAdjustment = 0.20
	}
	ratio += gapAdjustment

	if ratio < 0.1 {
		return 0.1
	}
	if ratio > 0.9 {
		return 0.9
	}
	return ratio
}

// BuildPlan assembles the time-boxed activity list for a session. The sum
// of item durations never exceeds totalMinutes. Requested topics, when
// given, are spread across the plan's main blocks so the session leans
// toward what the user asked for.
func BuildPlan(sessionID uuid.UUID, kind PlanKind, totalMinutes int, m *store.LearnerMetrics, requestedTopics ...string) *Plan {
	plan := &Plan{
		SessionID:      sessionID,
		Kind:           kind,
		TotalMinutes:   totalMinutes,
		ReviewRatio:    ReviewRatio(m, kind),
		IncludesReview: len(m.Gaps) > 0 || m.CurrentStreak > 0,
	}

	switch kind {
	case PlanDrill:
		plan.Items = drillItems(totalMinutes, requestedTopics)
	case PlanRecovery:
		plan.Items = recoveryItems(totalMinutes, requestedTopics)
	default:
		consumption := int(float64(totalMinutes) * consumptionRatio)
		production := totalMinutes - consumption
		plan.ConsumptionMinutes = consumption
		plan.ProductionMinutes = production
		plan.Items = regularItems(consumption, production, m, requestedTopics)
	}

	seen := make(map[string]bool)
	for _, item := range plan.Items {
		if item.TopicID != "" && !seen[item.TopicID] {
			seen[item.TopicID] = true
			plan.TopicsCovered = append(plan.TopicsCovered, item.TopicID)
		}
	}
	return plan
}

// requestedTopic cycles through the requested topics so every main block
// gets one even when fewer topics than blocks were asked for. Empty when
// nothing was requested.
func requestedTopic(topics []string, i int) string {
	if len(topics) == 0 {
		return ""
	}
	return topics[i%len(topics)]
}

// regularItems builds the default session shape: optional warm-up review,
// a content block, an explanation dialogue, a quiz, and a closing
// reflection. The reflection slot is reserved up front so the items never
// overrun the budget.
func regularItems(consumption, production int, m *store.LearnerMetrics, topics []string) []PlanItem {
	var items []PlanItem
	order := 0

	production -= reflectionMinutes
	if production < 0 {
		production = 0
	}

	if m.CurrentStreak > 0 && len(m.Gaps) > 0 {
		warmup := production / 6
		if warmup > 5 {
			warmup = 5
		}
		if warmup > 0 {
			items = append(items, PlanItem{
				Order:           order,
				Activity:        learning.ActivityDrill,
				DurationMinutes: warmup,
				TopicID:         m.Gaps[0],
				Description:     "Warm up on a recent weak area",
			})
			order++
			production -= warmup
		}
	}

	if consumption > 0 {
		items = append(items, PlanItem{
			Order:           order,
			Activity:        learning.ActivityContentRead,
			DurationMinutes: consumption,
			TopicID:         requestedTopic(topics, 0),
			Description:     "Learn new material",
		})
		order++
	}

	dialogue := production / 2
	if dialogue >= 5 {
		items = append(items, PlanItem{
			Order:           order,
			Activity:        learning.ActivityDialogue,
			DurationMinutes: dialogue,
			TopicID:         requestedTopic(topics, 1),
			Description:     "Explain concepts in your own words",
		})
		order++
		production -= dialogue
	}

	if production >= 5 {
		items = append(items, PlanItem{
			Order:           order,
			Activity:        learning.ActivityQuiz,
			DurationMinutes: production,
			TopicID:         requestedTopic(topics, 2),
			Description:     "Test your understanding",
		})
		order++
	}

	if len(items) > 0 {
		items = append(items, PlanItem{
			Order:           order,
			Activity:        learning.ActivityReflection,
			DurationMinutes: reflectionMinutes,
			Description:     "Reflect on what you learned",
		})
	}
	return items
}

// drillItems builds the focused-practice shape: quick warm-up quiz, one
// long drill block, short reflection.
func drillItems(totalMinutes int, topics []string) []PlanItem {
	warmup := totalMinutes / 10
	if warmup > 5 {
		warmup = 5
	}
	drill := totalMinutes - warmup - reflectionMinutes
	if drill < 0 {
		drill = 0
	}
	topic := requestedTopic(topics, 0)
	return []PlanItem{
		{Order: 0, Activity: learning.ActivityQuiz, DurationMinutes: warmup, TopicID: topic, Description: "Quick warm-up quiz"},
		{Order: 1, Activity: learning.ActivityDrill, DurationMinutes: drill, TopicID: topic, Description: "Focused practice on weak areas"},
		{Order: 2, Activity: learning.ActivityReflection, DurationMinutes: reflectionMinutes, Description: "Quick reflection"},
	}
}

// recoveryItems builds the ease-back-in shape: heavy review, light new
// content, and a wrap-up taking whatever remains.
func recoveryItems(totalMinutes int, topics []string) []PlanItem {
	review := int(float64(totalMinutes) * 0.6)
	learn := int(float64(totalMinutes) * 0.3)

	items := []PlanItem{
		{Order: 0, Activity: learning.ActivityDrill, DurationMinutes: review, TopicID: requestedTopic(topics, 0), Description: "Review due items"},
	}
	order := 1
	if learn >= 5 {
		items = append(items, PlanItem{
			Order:           order,
			Activity:        learning.ActivityContentRead,
			DurationMinutes: learn,
			TopicID:         requestedTopic(topics, 1),
			Description:     "Light new material",
		})
		order++
	} else {
		learn = 0
	}
	items = append(items, PlanItem{
		Order:           order,
		Activity:        learning.ActivityReflection,
		DurationMinutes: totalMinutes - review - learn,
		Description:     "Session wrap-up",
	})
	return items
}
