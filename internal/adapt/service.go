package adapt

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ayinesh/studycoach/internal/learning"
	"github.com/ayinesh/studycoach/internal/metrics"
	"github.com/ayinesh/studycoach/internal/store"
)

// RecoveryInitiator starts a recovery plan when a recovery trigger is
// applied. The applier records only that recovery was initiated; plan
// assembly belongs to the generator.
type RecoveryInitiator interface {
	InitiateRecovery(ctx context.Context, userID uuid.UUID, daysMissed int) error
}

// Service evaluates and applies adaptations.
type Service struct {
	metrics  *metrics.Service
	events   store.EventRepo
	recovery RecoveryInitiator
}

// NewService creates an adaptation service. recovery may be nil, in which
// case recovery triggers are recorded without plan generation.
func NewService(m *metrics.Service, events store.EventRepo, recovery RecoveryInitiator) *Service {
	return &Service{metrics: m, events: events, recovery: recovery}
}

// Result reports the outcome of applying or overriding an adaptation.
type Result struct {
	Success     bool
	Type        learning.AdaptationType
	Description string
	OldValue    map[string]any
	NewValue    map[string]any
}

// Apply mutates the user's settings according to the trigger and appends
// one AdaptationEvent. Recovery triggers delegate plan assembly to the
// RecoveryInitiator and record only that recovery started.
func (s *Service) Apply(ctx context.Context, userID uuid.UUID, trigger Trigger) (*Result, error) {
	var oldVal, newVal map[string]any
	var description string

	switch trigger.Type {
	case learning.AdaptPace:
		recommended := learning.Pace(stringValue(trigger.Data, "recommended_pace"))
		if !recommended.Valid() {
			return nil, fmt.Errorf("pace trigger without a valid recommended_pace")
		}
		prev, err := s.metrics.SetPace(ctx, userID, recommended)
		if err != nil {
			return nil, err
		}
		oldVal = map[string]any{"value": string(prev)}
		newVal = map[string]any{"value": string(recommended)}
		description = fmt.Sprintf("Adjusted learning pace from %s to %s", prev, recommended)

	case learning.AdaptDifficulty:
		recommended, ok := intValue(trigger.Data, "recommended_difficulty")
		if !ok {
			return nil, fmt.Errorf("difficulty trigger without a recommended_difficulty")
		}
		prev, err := s.metrics.SetDifficulty(ctx, userID, recommended)
		if err != nil {
			return nil, err
		}
		oldVal = map[string]any{"value": prev}
		newVal = map[string]any{"value": learning.ClampDifficulty(recommended)}
		description = fmt.Sprintf("Adjusted difficulty level from %d to %d", prev, learning.ClampDifficulty(recommended))

	case learning.AdaptRecovery:
		m, err := s.metrics.Get(ctx, userID)
		if err != nil {
			return nil, err
		}
		if s.recovery != nil {
			if err := s.recovery.InitiateRecovery(ctx, userID, m.ConsecutiveMissedDays); err != nil {
				return nil, fmt.Errorf("initiate recovery: %w", err)
			}
		}
		oldVal = map[string]any{"missed_days": m.ConsecutiveMissedDays}
		newVal = map[string]any{"recovery_initiated": true}
		description = fmt.Sprintf("Initiated recovery plan after %d missed days", m.ConsecutiveMissedDays)

	case learning.AdaptCurriculum:
		oldVal = map[string]any{"value": trigger.Data["old_curriculum"]}
		newVal = map[string]any{"value": trigger.Data["new_curriculum"]}
		description = "Curriculum adjusted based on goal changes"

	default:
		return nil, fmt.Errorf("unknown adaptation type %q", trigger.Type)
	}

	if err := s.appendEvent(ctx, userID, trigger.Type, trigger.Reason, oldVal, newVal); err != nil {
		return nil, err
	}

	return &Result{
		Success:     true,
		Type:        trigger.Type,
		Description: description,
		OldValue:    oldVal,
		NewValue:    newVal,
	}, nil
}

// Override sets pace or difficulty directly at the user's request. Types
// without a directly settable field cannot be overridden and report a
// failed result rather than an error.
func (s *Service) Override(ctx context.Context, userID uuid.UUID, adaptationType learning.AdaptationType, newValue any, reason string) (*Result, error) {
	if !adaptationType.Overridable() {
		return &Result{
			Success:     false,
			Type:        adaptationType,
			Description: fmt.Sprintf("%s adaptations cannot be overridden directly", adaptationType),
		}, nil
	}

	var oldVal, newVal map[string]any
	switch adaptationType {
	case learning.AdaptPace:
		pace, ok := newValue.(learning.Pace)
		if !ok {
			if str, isStr := newValue.(string); isStr {
				pace = learning.Pace(str)
				ok = true
			}
		}
		if !ok || !pace.Valid() {
			return nil, fmt.Errorf("invalid pace override value %v", newValue)
		}
		prev, err := s.metrics.SetPace(ctx, userID, pace)
		if err != nil {
			return nil, err
		}
		oldVal = map[string]any{"value": string(prev)}
		newVal = map[string]any{"value": string(pace)}

	case learning.AdaptDifficulty:
		level, ok := intValue(map[string]any{"v": newValue}, "v")
		if !ok {
			return nil, fmt.Errorf("invalid difficulty override value %v", newValue)
		}
		prev, err := s.metrics.SetDifficulty(ctx, userID, level)
		if err != nil {
			return nil, err
		}
		oldVal = map[string]any{"value": prev}
		newVal = map[string]any{"value": learning.ClampDifficulty(level)}
	}

	triggerReason := fmt.Sprintf("User override: %s", reason)
	if err := s.appendEvent(ctx, userID, adaptationType, triggerReason, oldVal, newVal); err != nil {
		return nil, err
	}

	return &Result{
		Success:     true,
		Type:        adaptationType,
		Description: fmt.Sprintf("User override applied: %v -> %v", oldVal["value"], newVal["value"]),
		OldValue:    oldVal,
		NewValue:    newVal,
	}, nil
}

// History returns the user's adaptation events, newest first.
func (s *Service) History(ctx context.Context, userID uuid.UUID, limit int) ([]*store.AdaptationEvent, error) {
	return s.events.AdaptationHistory(ctx, userID, limit)
}

func (s *Service) appendEvent(ctx context.Context, userID uuid.UUID, t learning.AdaptationType, reason string, oldVal, newVal map[string]any) error {
	ev := &store.AdaptationEvent{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      t,
		Reason:    reason,
		OldValue:  oldVal,
		NewValue:  newVal,
		Timestamp: time.Now(),
	}
	if err := s.events.AppendAdaptationEvent(ctx, ev); err != nil {
		return fmt.Errorf("append adaptation event: %w", err)
	}
	return nil
}

func stringValue(data map[string]any, key string) string {
	if v, ok := data[key].(string); ok {
		return v
	}
	return ""
}

func intValue(data map[string]any, key string) (int, bool) {
	switch v := data[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	}
	return 0, false
}
