package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ayinesh/studycoach/ent"
	"github.com/ayinesh/studycoach/ent/adaptationevent"
	"github.com/ayinesh/studycoach/internal/learning"
)

// entEventRepo implements EventRepo on the ent client, assigning every
// event a global sequence number from the shared counter.
type entEventRepo struct {
	s *Store
}

func (r *entEventRepo) AppendAdaptationEvent(ctx context.Context, ev *AdaptationEvent) error {
	seqNum, err := r.s.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	create := r.s.client.AdaptationEvent.Create().
		SetSequence(seqNum).
		SetEventID(ev.ID.String()).
		SetUserID(ev.UserID.String()).
		SetAdaptationType(string(ev.Type)).
		SetReason(ev.Reason).
		SetOldValue(ev.OldValue).
		SetNewValue(ev.NewValue)
	if !ev.Timestamp.IsZero() {
		create = create.SetTimestamp(ev.Timestamp)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("save adaptation event: %w", err)
	}
	return nil
}

func (r *entEventRepo) AdaptationHistory(ctx context.Context, userID uuid.UUID, limit int) ([]*AdaptationEvent, error) {
	q := r.s.client.AdaptationEvent.Query().
		Where(adaptationevent.UserID(userID.String())).
		Order(ent.Desc(adaptationevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query adaptation events: %w", err)
	}

	out := make([]*AdaptationEvent, 0, len(rows))
	for _, row := range rows {
		id, _ := uuid.Parse(row.EventID)
		out = append(out, &AdaptationEvent{
			ID:        id,
			Sequence:  row.Sequence,
			UserID:    userID,
			Type:      learning.AdaptationType(row.AdaptationType),
			Reason:    row.Reason,
			OldValue:  row.OldValue,
			NewValue:  row.NewValue,
			Timestamp: row.Timestamp,
		})
	}
	return out, nil
}

func (r *entEventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.s.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.s.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save llm request event: %w", err)
	}
	return nil
}
