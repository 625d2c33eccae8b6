package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/ayinesh/studycoach/ent"
	"github.com/ayinesh/studycoach/ent/llmrequestevent"
)

// LLMRequestEvent is one recorded LLM API call, read back for inspection.
type LLMRequestEvent struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMUsage aggregates calls by purpose or by model.
type LLMUsage struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// QueryLLMEvents returns the most recent LLM request events, newest first.
func (s *Store) QueryLLMEvents(ctx context.Context, limit int) ([]*LLMRequestEvent, error) {
	q := s.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query llm events: %w", err)
	}

	out := make([]*LLMRequestEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, llmEventFromRow(row))
	}
	return out, nil
}

// GetLLMEvent returns one event by its row id, or nil when absent.
func (s *Store) GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error) {
	row, err := s.client.LLMRequestEvent.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get llm event: %w", err)
	}
	return llmEventFromRow(row), nil
}

// LLMUsageByPurpose aggregates token usage per purpose label.
func (s *Store) LLMUsageByPurpose(ctx context.Context) ([]*LLMUsage, error) {
	return s.llmUsage(ctx, func(e *LLMRequestEvent) string { return e.Purpose }, true)
}

// LLMUsageByModel aggregates token usage per served model.
func (s *Store) LLMUsageByModel(ctx context.Context) ([]*LLMUsage, error) {
	return s.llmUsage(ctx, func(e *LLMRequestEvent) string { return e.Model }, false)
}

// llmUsage aggregates in Go rather than SQL: the audit log is small and
// this keeps the grouping independent of ent's aggregation API.
func (s *Store) llmUsage(ctx context.Context, key func(*LLMRequestEvent) string, byPurpose bool) ([]*LLMUsage, error) {
	events, err := s.QueryLLMEvents(ctx, 0)
	if err != nil {
		return nil, err
	}

	groups := make(map[string]*LLMUsage)
	latency := make(map[string]int64)
	for _, e := range events {
		k := key(e)
		u, ok := groups[k]
		if !ok {
			u = &LLMUsage{}
			if byPurpose {
				u.Purpose = k
			} else {
				u.Model = k
			}
			groups[k] = u
		}
		u.Calls++
		u.InputTokens += e.InputTokens
		u.OutputTokens += e.OutputTokens
		latency[k] += e.LatencyMs
	}

	out := make([]*LLMUsage, 0, len(groups))
	for k, u := range groups {
		u.AvgLatencyMs = latency[k] / int64(u.Calls)
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool {
		return key2(out[i], byPurpose) < key2(out[j], byPurpose)
	})
	return out, nil
}

func key2(u *LLMUsage, byPurpose bool) string {
	if byPurpose {
		return u.Purpose
	}
	return u.Model
}

func llmEventFromRow(row *ent.LLMRequestEvent) *LLMRequestEvent {
	return &LLMRequestEvent{
		ID:           row.ID,
		Sequence:     row.Sequence,
		Timestamp:    row.Timestamp,
		Provider:     row.Provider,
		Model:        row.Model,
		Purpose:      row.Purpose,
		InputTokens:  row.InputTokens,
		OutputTokens: row.OutputTokens,
		LatencyMs:    row.LatencyMs,
		Success:      row.Success,
		ErrorMessage: row.ErrorMessage,
	}
}
