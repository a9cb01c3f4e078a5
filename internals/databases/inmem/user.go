package inmem

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"skillup_backend/internals/constants"
	teachermodel "skillup_backend/internals/features/teachers/model"
	"skillup_backend/internals/features/users/users/model"
	"skillup_backend/internals/features/users/users/repository"
)

type userStore struct {
	db *DB
}

func NewUserStore(db *DB) repository.UserStore {
	return &userStore{db: db}
}

func (s *userStore) Create(_ context.Context, u *model.UserModel) (primitive.ObjectID, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	u.ID = primitive.NewObjectID()
	s.db.Users = append(s.db.Users, *u)
	return u.ID, nil
}

func (s *userStore) FindByEmail(_ context.Context, email string) (*model.UserModel, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for i := range s.db.Users {
		if s.db.Users[i].Email == email {
			u := s.db.Users[i]
			return &u, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (s *userStore) Search(_ context.Context, term string) ([]model.UserModel, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if term == "" {
		return append([]model.UserModel{}, s.db.Users...), nil
	}

	term = strings.ToLower(term)
	users := []model.UserModel{}
	for _, u := range s.db.Users {
		if strings.Contains(strings.ToLower(u.Username), term) ||
			strings.Contains(strings.ToLower(u.Email), term) {
			users = append(users, u)
		}
	}
	return users, nil
}

func (s *userStore) UpsertWithRoleCascade(_ context.Context, email string, upd repository.UserUpdate) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	idx := -1
	for i := range s.db.Users {
		if s.db.Users[i].Email == email {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.db.Users = append(s.db.Users, model.UserModel{ID: primitive.NewObjectID(), Email: email})
		idx = len(s.db.Users) - 1
	}

	u := &s.db.Users[idx]
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Username != nil {
		u.Username = *upd.Username
	}
	if upd.Image != nil {
		u.Image = *upd.Image
	}
	if upd.Role != nil {
		u.Role = *upd.Role

		status := ""
		switch *upd.Role {
		case constants.RoleTeacher:
			status = constants.StatusApprove
		case constants.RoleStudent:
			status = constants.StatusPending
		}
		if status != "" {
			found := false
			for i := range s.db.Teachers {
				if s.db.Teachers[i].Email == email {
					s.db.Teachers[i].Status = status
					found = true
				}
			}
			if !found {
				s.db.Teachers = append(s.db.Teachers, teachermodel.TeacherModel{
					ID:     primitive.NewObjectID(),
					Email:  email,
					Status: status,
				})
			}
		}
	}
	return nil
}
