// Package recovery builds come-back plans for users returning after an
// absence: what to review first, how much new material to allow, and how
// many catch-up sessions to schedule.
package recovery

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ayinesh/studycoach/internal/llm"
	"github.com/ayinesh/studycoach/internal/metrics"
	"github.com/ayinesh/studycoach/internal/store"
)

const (
	maxReviewTopics = 5
	maxPriorityGaps = 3
	maxSessionCount = 5

	// messageTimeout bounds the encouragement-message LLM call. The plan
	// never waits longer than this; on timeout the canned message is used.
	messageTimeout = 5 * time.Second
)

// Plan is a structured come-back plan for one user.
type Plan struct {
	UserID                uuid.UUID
	DaysMissed            int
	ReviewTopics          []string
	ReducedNewContent     bool
	SuggestedSessionCount int
	PriorityGaps          []string
	Message               string
}

// Generator assembles recovery plans. The LLM provider is optional: when
// nil (or failing), the encouragement message falls back to a canned one.
type Generator struct {
	metrics  *metrics.Service
	reviews  store.ReviewRepo
	provider llm.Provider
}

// NewGenerator creates a recovery plan generator.
func NewGenerator(m *metrics.Service, reviews store.ReviewRepo, provider llm.Provider) *Generator {
	return &Generator{metrics: m, reviews: reviews, provider: provider}
}

// Generate builds a recovery plan for the given absence length. Short
// absences (under 3 days) get a single normal-intensity session; longer
// ones reduce new content and spread the catch-up over several sessions,
// capped at 5.
func (g *Generator) Generate(ctx context.Context, userID uuid.UUID, daysMissed int) (*Plan, error) {
	if daysMissed < 0 {
		return nil, fmt.Errorf("negative days missed: %d", daysMissed)
	}

	m, err := g.metrics.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	plan := &Plan{
		UserID:     userID,
		DaysMissed: daysMissed,
	}

	switch {
	case daysMissed < 3:
		plan.ReducedNewContent = false
		plan.SuggestedSessionCount = 1
	case daysMissed <= 7:
		plan.ReducedNewContent = true
		plan.SuggestedSessionCount = 2
	default:
		plan.ReducedNewContent = true
		plan.SuggestedSessionCount = daysMissed / 3
		if plan.SuggestedSessionCount > maxSessionCount {
			plan.SuggestedSessionCount = maxSessionCount
		}
	}

	plan.ReviewTopics, err = g.reviewTopics(ctx, userID, m)
	if err != nil {
		return nil, err
	}

	plan.PriorityGaps = m.Gaps
	if len(plan.PriorityGaps) > maxPriorityGaps {
		plan.PriorityGaps = plan.PriorityGaps[:maxPriorityGaps]
	}

	plan.Message = g.encouragement(ctx, daysMissed, plan.ReviewTopics)
	return plan, nil
}

// InitiateRecovery lets the adaptation layer kick off a recovery plan when
// the missed-days trigger fires.
func (g *Generator) InitiateRecovery(ctx context.Context, userID uuid.UUID, daysMissed int) error {
	_, err := g.Generate(ctx, userID, daysMissed)
	return err
}

// reviewTopics picks the weakest topics to revisit: review items ordered
// by proficiency ascending, falling back to the raw gap list for users
// with no review history yet.
func (g *Generator) reviewTopics(ctx context.Context, userID uuid.UUID, m *store.LearnerMetrics) ([]string, error) {
	items, err := g.reviews.ByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(items) == 0 {
		topics := m.Gaps
		if len(topics) > maxReviewTopics {
			topics = topics[:maxReviewTopics]
		}
		return topics, nil
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Proficiency < items[j].Proficiency
	})

	var topics []string
	for _, item := range items {
		topics = append(topics, item.TopicID)
		if len(topics) == maxReviewTopics {
			break
		}
	}
	return topics, nil
}

// encouragement produces the welcome-back message, preferring a generated
// one but never failing the plan over it.
func (g *Generator) encouragement(ctx context.Context, daysMissed int, topics []string) string {
	fallback := cannedMessage(daysMissed)
	if g.provider == nil {
		return fallback
	}

	ctx, cancel := context.WithTimeout(llm.WithPurpose(ctx, "recovery-message"), messageTimeout)
	defer cancel()

	prompt := fmt.Sprintf(
		"A learner is returning after %d days away. Planned review topics: %s. "+
			"Write one or two warm, encouraging sentences welcoming them back. "+
			"No guilt, no lecture.",
		daysMissed, topicList(topics),
	)

	msg, err := llm.Complete(ctx, g.provider, "You are a supportive study coach.", prompt, 0.7, 200)
	if err != nil || msg == "" {
		return fallback
	}
	return msg
}

func cannedMessage(daysMissed int) string {
	switch {
	case daysMissed < 3:
		return "Welcome back! Let's do a quick review and continue learning."
	case daysMissed <= 7:
		return "Good to see you again! We'll focus on reviewing before adding new material."
	default:
		return "Welcome back! Don't worry about the break - we'll ease back in with review sessions."
	}
}

func topicList(topics []string) string {
	if len(topics) == 0 {
		return "none yet"
	}
	return strings.Join(topics, ", ")
}
