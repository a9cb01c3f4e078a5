package inmem

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"skillup_backend/internals/constants"
	"skillup_backend/internals/features/teachers/model"
	"skillup_backend/internals/features/teachers/repository"
)

type teacherStore struct {
	db *DB
}

func NewTeacherStore(db *DB) repository.TeacherStore {
	return &teacherStore{db: db}
}

func (s *teacherStore) Create(_ context.Context, t *model.TeacherModel) (primitive.ObjectID, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if t.Status == "" {
		t.Status = constants.StatusPending
	}
	t.ID = primitive.NewObjectID()
	s.db.Teachers = append(s.db.Teachers, *t)
	return t.ID, nil
}

func (s *teacherStore) FindAll(_ context.Context) ([]model.TeacherModel, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	return append([]model.TeacherModel{}, s.db.Teachers...), nil
}

func (s *teacherStore) FindByEmailAndStatus(_ context.Context, email, status string) ([]model.TeacherModel, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	teachers := []model.TeacherModel{}
	for _, t := range s.db.Teachers {
		if t.Email == email && t.Status == status {
			teachers = append(teachers, t)
		}
	}
	return teachers, nil
}

func (s *teacherStore) ResetStatusByEmail(_ context.Context, email string) (int64, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for i := range s.db.Teachers {
		if s.db.Teachers[i].Email == email {
			if s.db.Teachers[i].Status == constants.StatusPending {
				return 0, nil // sama seperti mongo: nilai tidak berubah = modified 0
			}
			s.db.Teachers[i].Status = constants.StatusPending
			return 1, nil
		}
	}
	return 0, nil
}

func (s *teacherStore) Review(_ context.Context, id primitive.ObjectID, status string) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	idx := -1
	for i := range s.db.Teachers {
		if s.db.Teachers[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return mongo.ErrNoDocuments
	}

	s.db.Teachers[idx].Status = status

	role := constants.RoleStudent
	if status == constants.StatusApprove {
		role = constants.RoleTeacher
	}
	for i := range s.db.Users {
		if s.db.Users[i].Email == s.db.Teachers[idx].Email {
			s.db.Users[i].Role = role
		}
	}
	return nil
}
