package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ayinesh/studycoach/ent"
	entsession "github.com/ayinesh/studycoach/ent/session"
	"github.com/ayinesh/studycoach/ent/sessionactivity"
	"github.com/ayinesh/studycoach/internal/learning"
)

// entSessionRepo implements SessionRepo on the ent client.
type entSessionRepo struct {
	s *Store
}

func (r *entSessionRepo) CreateIfNoneActive(ctx context.Context, s *Session) error {
	// The existence check and the insert must not interleave with another
	// CreateIfNoneActive for the same user.
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	n, err := r.s.client.Session.Query().
		Where(
			entsession.UserID(s.UserID.String()),
			entsession.StatusEQ(string(learning.StatusInProgress)),
		).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("count active sessions: %w", err)
	}
	if n > 0 {
		return ErrActiveSession
	}

	create := r.s.client.Session.Create().
		SetSessionID(s.ID.String()).
		SetUserID(s.UserID.String()).
		SetSessionType(string(s.Type)).
		SetStatus(string(s.Status)).
		SetPlannedMinutes(s.PlannedMinutes).
		SetActualMinutes(s.ActualMinutes).
		SetStartedAt(s.StartedAt).
		SetAbandonReason(s.AbandonReason)
	if s.EndedAt != nil {
		create = create.SetEndedAt(*s.EndedAt)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

func (r *entSessionRepo) Get(ctx context.Context, id uuid.UUID) (*Session, error) {
	row, err := r.s.client.Session.Query().
		Where(entsession.SessionID(id.String())).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query session: %w", err)
	}
	return sessionFromRow(row), nil
}

func (r *entSessionRepo) Update(ctx context.Context, id uuid.UUID, mutate func(*Session) error) (*Session, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	row, err := r.s.client.Session.Query().
		Where(entsession.SessionID(id.String())).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query session: %w", err)
	}

	s := sessionFromRow(row)
	if err := mutate(s); err != nil {
		return nil, err
	}

	upd := row.Update().
		SetSessionType(string(s.Type)).
		SetStatus(string(s.Status)).
		SetPlannedMinutes(s.PlannedMinutes).
		SetActualMinutes(s.ActualMinutes).
		SetAbandonReason(s.AbandonReason)
	if s.EndedAt != nil {
		upd = upd.SetEndedAt(*s.EndedAt)
	}
	row, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}
	return sessionFromRow(row), nil
}

func (r *entSessionRepo) Active(ctx context.Context, userID uuid.UUID) (*Session, error) {
	row, err := r.s.client.Session.Query().
		Where(
			entsession.UserID(userID.String()),
			entsession.StatusEQ(string(learning.StatusInProgress)),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query active session: %w", err)
	}
	return sessionFromRow(row), nil
}

func (r *entSessionRepo) ByUser(ctx context.Context, userID uuid.UUID, limit int, includeAbandoned bool) ([]*Session, error) {
	q := r.s.client.Session.Query().
		Where(entsession.UserID(userID.String())).
		Order(ent.Desc(entsession.FieldStartedAt))
	if !includeAbandoned {
		q = q.Where(entsession.StatusNEQ(string(learning.StatusAbandoned)))
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	out := make([]*Session, 0, len(rows))
	for _, row := range rows {
		out = append(out, sessionFromRow(row))
	}
	return out, nil
}

func (r *entSessionRepo) CreateActivity(ctx context.Context, a *SessionActivity) error {
	create := r.s.client.SessionActivity.Create().
		SetActivityID(a.ID.String()).
		SetSessionID(a.SessionID.String()).
		SetActivityType(string(a.Type)).
		SetTopicID(a.TopicID).
		SetContentID(a.ContentID).
		SetStartedAt(a.StartedAt).
		SetPerformance(a.Performance)
	if a.EndedAt != nil {
		create = create.SetEndedAt(*a.EndedAt)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("create activity: %w", err)
	}
	return nil
}

func (r *entSessionRepo) GetActivity(ctx context.Context, id uuid.UUID) (*SessionActivity, error) {
	row, err := r.s.client.SessionActivity.Query().
		Where(sessionactivity.ActivityID(id.String())).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query activity: %w", err)
	}
	return activityFromRow(row), nil
}

func (r *entSessionRepo) UpdateActivity(ctx context.Context, id uuid.UUID, mutate func(*SessionActivity) error) (*SessionActivity, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	row, err := r.s.client.SessionActivity.Query().
		Where(sessionactivity.ActivityID(id.String())).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query activity: %w", err)
	}

	a := activityFromRow(row)
	if err := mutate(a); err != nil {
		return nil, err
	}

	upd := row.Update().
		SetActivityType(string(a.Type)).
		SetTopicID(a.TopicID).
		SetContentID(a.ContentID).
		SetPerformance(a.Performance)
	if a.EndedAt != nil {
		upd = upd.SetEndedAt(*a.EndedAt)
	}
	row, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update activity: %w", err)
	}
	return activityFromRow(row), nil
}

func (r *entSessionRepo) Activities(ctx context.Context, sessionID uuid.UUID) ([]*SessionActivity, error) {
	rows, err := r.s.client.SessionActivity.Query().
		Where(sessionactivity.SessionID(sessionID.String())).
		Order(ent.Asc(sessionactivity.FieldStartedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query activities: %w", err)
	}
	out := make([]*SessionActivity, 0, len(rows))
	for _, row := range rows {
		out = append(out, activityFromRow(row))
	}
	return out, nil
}

func sessionFromRow(row *ent.Session) *Session {
	id, _ := uuid.Parse(row.SessionID)
	userID, _ := uuid.Parse(row.UserID)
	s := &Session{
		ID:             id,
		UserID:         userID,
		Type:           learning.SessionType(row.SessionType),
		Status:         learning.SessionStatus(row.Status),
		PlannedMinutes: row.PlannedMinutes,
		ActualMinutes:  row.ActualMinutes,
		StartedAt:      row.StartedAt,
		AbandonReason:  row.AbandonReason,
	}
	if row.EndedAt != nil {
		t := *row.EndedAt
		s.EndedAt = &t
	}
	return s
}

func activityFromRow(row *ent.SessionActivity) *SessionActivity {
	id, _ := uuid.Parse(row.ActivityID)
	sessionID, _ := uuid.Parse(row.SessionID)
	a := &SessionActivity{
		ID:          id,
		SessionID:   sessionID,
		Type:        learning.ActivityType(row.ActivityType),
		TopicID:     row.TopicID,
		ContentID:   row.ContentID,
		StartedAt:   row.StartedAt,
		Performance: row.Performance,
	}
	if row.EndedAt != nil {
		t := *row.EndedAt
		a.EndedAt = &t
	}
	return a
}
