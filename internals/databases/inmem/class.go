package inmem

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"skillup_backend/internals/constants"
	"skillup_backend/internals/features/classes/model"
	"skillup_backend/internals/features/classes/repository"
)

type classStore struct {
	db *DB
}

func NewClassStore(db *DB) repository.ClassStore {
	return &classStore{db: db}
}

func (s *classStore) Create(_ context.Context, cl *model.ClassModel) (primitive.ObjectID, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if cl.Status == "" {
		cl.Status = constants.StatusPending
	}
	cl.ID = primitive.NewObjectID()
	s.db.Classes = append(s.db.Classes, *cl)
	return cl.ID, nil
}

func (s *classStore) FindAll(_ context.Context, search string) ([]model.ClassModel, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if search == "" {
		return append([]model.ClassModel{}, s.db.Classes...), nil
	}

	search = strings.ToLower(search)
	classes := []model.ClassModel{}
	for _, cl := range s.db.Classes {
		if strings.Contains(strings.ToLower(cl.Title), search) {
			classes = append(classes, cl)
		}
	}
	return classes, nil
}

func (s *classStore) FindByOwner(_ context.Context, email string) ([]model.ClassModel, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	classes := []model.ClassModel{}
	for _, cl := range s.db.Classes {
		if cl.Email == email {
			classes = append(classes, cl)
		}
	}
	return classes, nil
}

func (s *classStore) FindByID(_ context.Context, id primitive.ObjectID) (*model.ClassModel, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for i := range s.db.Classes {
		if s.db.Classes[i].ID == id {
			cl := s.db.Classes[i]
			return &cl, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (s *classStore) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]model.ClassModel, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	want := map[primitive.ObjectID]struct{}{}
	for _, id := range ids {
		want[id] = struct{}{}
	}

	classes := []model.ClassModel{}
	for _, cl := range s.db.Classes {
		if _, ok := want[cl.ID]; ok {
			classes = append(classes, cl)
		}
	}
	return classes, nil
}

func (s *classStore) UpdateStatus(_ context.Context, id primitive.ObjectID, status string) (int64, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for i := range s.db.Classes {
		if s.db.Classes[i].ID == id {
			if s.db.Classes[i].Status == status {
				return 0, nil
			}
			s.db.Classes[i].Status = status
			return 1, nil
		}
	}
	return 0, nil
}

func (s *classStore) UpdateFields(_ context.Context, id primitive.ObjectID, upd repository.ClassUpdate) (int64, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for i := range s.db.Classes {
		if s.db.Classes[i].ID != id {
			continue
		}
		cl := &s.db.Classes[i]
		changed := false
		if upd.Title != nil && cl.Title != *upd.Title {
			cl.Title = *upd.Title
			changed = true
		}
		if upd.Description != nil && cl.Description != *upd.Description {
			cl.Description = *upd.Description
			changed = true
		}
		if upd.Image != nil && cl.Image != *upd.Image {
			cl.Image = *upd.Image
			changed = true
		}
		if upd.Price != nil && cl.Price != *upd.Price {
			cl.Price = *upd.Price
			changed = true
		}
		if changed {
			return 1, nil
		}
		return 0, nil
	}
	return 0, nil
}

func (s *classStore) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for i := range s.db.Classes {
		if s.db.Classes[i].ID == id {
			s.db.Classes = append(s.db.Classes[:i], s.db.Classes[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (s *classStore) AddAssignment(_ context.Context, id primitive.ObjectID, a model.AssignmentModel) (int64, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for i := range s.db.Classes {
		if s.db.Classes[i].ID == id {
			s.db.Classes[i].Assignments = append(s.db.Classes[i].Assignments, a)
			return 1, nil
		}
	}
	return 0, nil
}
