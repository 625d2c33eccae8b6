package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ayinesh/studycoach/internal/learning"
)

// memCore holds the shared in-memory state. One mutex serializes every
// operation, which is sufficient because each is a short read-modify-write.
// Used by tests and by ephemeral runs without a database file.
type memCore struct {
	mu sync.Mutex

	metrics    map[uuid.UUID]*LearnerMetrics
	reviews    map[uuid.UUID]map[string]*ReviewItem
	sessions   map[uuid.UUID]*Session
	byUser     map[uuid.UUID][]uuid.UUID
	active     map[uuid.UUID]uuid.UUID
	activities map[uuid.UUID]*SessionActivity
	bySession  map[uuid.UUID][]uuid.UUID
	adaptLog   map[uuid.UUID][]*AdaptationEvent
	seq        int64
}

// NewMemory returns repos backed by a fresh in-memory store.
func NewMemory() Repos {
	c := &memCore{
		metrics:    make(map[uuid.UUID]*LearnerMetrics),
		reviews:    make(map[uuid.UUID]map[string]*ReviewItem),
		sessions:   make(map[uuid.UUID]*Session),
		byUser:     make(map[uuid.UUID][]uuid.UUID),
		active:     make(map[uuid.UUID]uuid.UUID),
		activities: make(map[uuid.UUID]*SessionActivity),
		bySession:  make(map[uuid.UUID][]uuid.UUID),
		adaptLog:   make(map[uuid.UUID][]*AdaptationEvent),
	}
	return Repos{
		Metrics:  &memMetricsRepo{c},
		Reviews:  &memReviewRepo{c},
		Sessions: &memSessionRepo{c},
		Events:   &memEventRepo{c},
	}
}

type memMetricsRepo struct{ c *memCore }

func (r *memMetricsRepo) GetOrCreate(_ context.Context, userID uuid.UUID) (*LearnerMetrics, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	return r.c.metricsLocked(userID).Clone(), nil
}

func (r *memMetricsRepo) Update(_ context.Context, userID uuid.UUID, mutate func(*LearnerMetrics) error) (*LearnerMetrics, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	rec := r.c.metricsLocked(userID)
	if err := mutate(rec); err != nil {
		return nil, err
	}
	return rec.Clone(), nil
}

func (c *memCore) metricsLocked(userID uuid.UUID) *LearnerMetrics {
	rec, ok := c.metrics[userID]
	if !ok {
		rec = NewLearnerMetrics(userID)
		c.metrics[userID] = rec
	}
	return rec
}

type memReviewRepo struct{ c *memCore }

func (r *memReviewRepo) Get(_ context.Context, userID uuid.UUID, topicID string) (*ReviewItem, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	item, ok := r.c.reviews[userID][topicID]
	if !ok {
		return nil, ErrNotFound
	}
	return item.Clone(), nil
}

func (r *memReviewRepo) Upsert(_ context.Context, userID uuid.UUID, topicID string, mutate func(*ReviewItem) error) (*ReviewItem, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	byTopic, ok := r.c.reviews[userID]
	if !ok {
		byTopic = make(map[string]*ReviewItem)
		r.c.reviews[userID] = byTopic
	}
	item, ok := byTopic[topicID]
	if !ok {
		item = &ReviewItem{UserID: userID, TopicID: topicID}
	}
	if err := mutate(item); err != nil {
		return nil, err
	}
	byTopic[topicID] = item
	return item.Clone(), nil
}

func (r *memReviewRepo) ByUser(_ context.Context, userID uuid.UUID) ([]*ReviewItem, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	items := make([]*ReviewItem, 0, len(r.c.reviews[userID]))
	for _, item := range r.c.reviews[userID] {
		items = append(items, item.Clone())
	}
	sort.Slice(items, func(i, j int) bool { return items[i].TopicID < items[j].TopicID })
	return items, nil
}

type memSessionRepo struct{ c *memCore }

func (r *memSessionRepo) CreateIfNoneActive(_ context.Context, s *Session) error {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	if _, ok := r.c.active[s.UserID]; ok {
		return ErrActiveSession
	}
	cp := s.Clone()
	r.c.sessions[cp.ID] = cp
	r.c.byUser[cp.UserID] = append(r.c.byUser[cp.UserID], cp.ID)
	if cp.Status == learning.StatusInProgress {
		r.c.active[cp.UserID] = cp.ID
	}
	return nil
}

func (r *memSessionRepo) Get(_ context.Context, id uuid.UUID) (*Session, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	s, ok := r.c.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s.Clone(), nil
}

func (r *memSessionRepo) Update(_ context.Context, id uuid.UUID, mutate func(*Session) error) (*Session, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	s, ok := r.c.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	if err := mutate(s); err != nil {
		return nil, err
	}
	// Keep the active index in sync with the status.
	if s.Status.Terminal() && r.c.active[s.UserID] == s.ID {
		delete(r.c.active, s.UserID)
	}
	return s.Clone(), nil
}

func (r *memSessionRepo) Active(_ context.Context, userID uuid.UUID) (*Session, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	id, ok := r.c.active[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return r.c.sessions[id].Clone(), nil
}

func (r *memSessionRepo) ByUser(_ context.Context, userID uuid.UUID, limit int, includeAbandoned bool) ([]*Session, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	ids := r.c.byUser[userID]
	var out []*Session
	for i := len(ids) - 1; i >= 0; i-- {
		s := r.c.sessions[ids[i]]
		if !includeAbandoned && s.Status == learning.StatusAbandoned {
			continue
		}
		out = append(out, s.Clone())
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (r *memSessionRepo) CreateActivity(_ context.Context, a *SessionActivity) error {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	cp := a.Clone()
	r.c.activities[cp.ID] = cp
	r.c.bySession[cp.SessionID] = append(r.c.bySession[cp.SessionID], cp.ID)
	return nil
}

func (r *memSessionRepo) GetActivity(_ context.Context, id uuid.UUID) (*SessionActivity, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	a, ok := r.c.activities[id]
	if !ok {
		return nil, ErrNotFound
	}
	return a.Clone(), nil
}

func (r *memSessionRepo) UpdateActivity(_ context.Context, id uuid.UUID, mutate func(*SessionActivity) error) (*SessionActivity, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	a, ok := r.c.activities[id]
	if !ok {
		return nil, ErrNotFound
	}
	if err := mutate(a); err != nil {
		return nil, err
	}
	return a.Clone(), nil
}

func (r *memSessionRepo) Activities(_ context.Context, sessionID uuid.UUID) ([]*SessionActivity, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	ids := r.c.bySession[sessionID]
	out := make([]*SessionActivity, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.c.activities[id].Clone())
	}
	return out, nil
}

type memEventRepo struct{ c *memCore }

func (r *memEventRepo) AppendAdaptationEvent(_ context.Context, ev *AdaptationEvent) error {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	r.c.seq++
	cp := *ev
	cp.Sequence = r.c.seq
	if cp.Timestamp.IsZero() {
		cp.Timestamp = time.Now()
	}
	r.c.adaptLog[cp.UserID] = append(r.c.adaptLog[cp.UserID], &cp)
	return nil
}

func (r *memEventRepo) AdaptationHistory(_ context.Context, userID uuid.UUID, limit int) ([]*AdaptationEvent, error) {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()
	log := r.c.adaptLog[userID]
	var out []*AdaptationEvent
	for i := len(log) - 1; i >= 0; i-- {
		cp := *log[i]
		out = append(out, &cp)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (r *memEventRepo) AppendLLMRequest(_ context.Context, _ LLMRequestEventData) error {
	// The memory variant keeps no LLM audit log.
	return nil
}
