package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ayinesh/studycoach/ent"
	"github.com/ayinesh/studycoach/ent/reviewitem"
)

// entReviewRepo implements ReviewRepo on the ent client.
type entReviewRepo struct {
	s *Store
}

func (r *entReviewRepo) Get(ctx context.Context, userID uuid.UUID, topicID string) (*ReviewItem, error) {
	row, err := r.s.client.ReviewItem.Query().
		Where(reviewitem.UserID(userID.String()), reviewitem.TopicID(topicID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query review item: %w", err)
	}
	return reviewFromRow(row), nil
}

func (r *entReviewRepo) Upsert(ctx context.Context, userID uuid.UUID, topicID string, mutate func(*ReviewItem) error) (*ReviewItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	row, err := r.s.client.ReviewItem.Query().
		Where(reviewitem.UserID(userID.String()), reviewitem.TopicID(topicID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("query review item: %w", err)
	}

	item := &ReviewItem{UserID: userID, TopicID: topicID}
	if row != nil {
		item = reviewFromRow(row)
	}
	if err := mutate(item); err != nil {
		return nil, err
	}

	if row == nil {
		row, err = r.s.client.ReviewItem.Create().
			SetUserID(userID.String()).
			SetTopicID(topicID).
			SetLastReviewedAt(item.LastReviewedAt).
			SetNextReviewAt(item.NextReviewAt).
			SetIntervalDays(item.IntervalDays).
			SetEaseFactor(item.EaseFactor).
			SetReviewCount(item.ReviewCount).
			SetProficiency(item.Proficiency).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create review item: %w", err)
		}
		return reviewFromRow(row), nil
	}

	row, err = row.Update().
		SetLastReviewedAt(item.LastReviewedAt).
		SetNextReviewAt(item.NextReviewAt).
		SetIntervalDays(item.IntervalDays).
		SetEaseFactor(item.EaseFactor).
		SetReviewCount(item.ReviewCount).
		SetProficiency(item.Proficiency).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update review item: %w", err)
	}
	return reviewFromRow(row), nil
}

func (r *entReviewRepo) ByUser(ctx context.Context, userID uuid.UUID) ([]*ReviewItem, error) {
	rows, err := r.s.client.ReviewItem.Query().
		Where(reviewitem.UserID(userID.String())).
		Order(ent.Asc(reviewitem.FieldTopicID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query review items: %w", err)
	}
	items := make([]*ReviewItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, reviewFromRow(row))
	}
	return items, nil
}

func reviewFromRow(row *ent.ReviewItem) *ReviewItem {
	userID, _ := uuid.Parse(row.UserID)
	return &ReviewItem{
		UserID:         userID,
		TopicID:        row.TopicID,
		LastReviewedAt: row.LastReviewedAt,
		NextReviewAt:   row.NextReviewAt,
		IntervalDays:   row.IntervalDays,
		EaseFactor:     row.EaseFactor,
		ReviewCount:    row.ReviewCount,
		Proficiency:    row.Proficiency,
	}
}
