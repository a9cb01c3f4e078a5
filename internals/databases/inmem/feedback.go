package inmem

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"skillup_backend/internals/features/feedbacks/model"
	"skillup_backend/internals/features/feedbacks/repository"
)

type feedbackStore struct {
	db *DB
}

func NewFeedbackStore(db *DB) repository.FeedbackStore {
	return &feedbackStore{db: db}
}

func (s *feedbackStore) Create(_ context.Context, f *model.FeedbackModel) (primitive.ObjectID, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	f.ID = primitive.NewObjectID()
	s.db.Feedbacks = append(s.db.Feedbacks, *f)
	return f.ID, nil
}

func (s *feedbackStore) FindAll(_ context.Context) ([]model.FeedbackModel, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	return append([]model.FeedbackModel{}, s.db.Feedbacks...), nil
}

func (s *feedbackStore) FindByClassID(_ context.Context, classID string) ([]model.FeedbackModel, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	feedbacks := []model.FeedbackModel{}
	for _, f := range s.db.Feedbacks {
		if f.ClassID == classID {
			feedbacks = append(feedbacks, f)
		}
	}
	return feedbacks, nil
}
