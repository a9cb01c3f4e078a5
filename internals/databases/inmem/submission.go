package inmem

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"skillup_backend/internals/features/assignments/model"
	"skillup_backend/internals/features/assignments/repository"
)

type submissionStore struct {
	db *DB
}

func NewSubmissionStore(db *DB) repository.SubmissionStore {
	return &submissionStore{db: db}
}

func (s *submissionStore) Create(_ context.Context, sub *model.AssignmentSubmitModel) (primitive.ObjectID, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	sub.ID = primitive.NewObjectID()
	s.db.Submissions = append(s.db.Submissions, *sub)
	return sub.ID, nil
}

func (s *submissionStore) FindByEmailAndClass(_ context.Context, email, classID string) ([]model.AssignmentSubmitModel, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	submissions := []model.AssignmentSubmitModel{}
	for _, sub := range s.db.Submissions {
		if sub.Email == email && sub.ClassID == classID {
			submissions = append(submissions, sub)
		}
	}
	return submissions, nil
}

func (s *submissionStore) CountByClassAndDay(_ context.Context, classID, day string) (int64, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	var total int64
	for _, sub := range s.db.Submissions {
		if sub.ClassID == classID && strings.HasPrefix(sub.Date, day) {
			total++
		}
	}
	return total, nil
}
