package inmem

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"skillup_backend/internals/features/payments/model"
	"skillup_backend/internals/features/payments/repository"
)

type paymentStore struct {
	db *DB
}

func NewPaymentStore(db *DB) repository.PaymentStore {
	return &paymentStore{db: db}
}

func (s *paymentStore) FindByStudentEmail(_ context.Context, email string) ([]model.PaymentModel, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	payments := []model.PaymentModel{}
	for _, p := range s.db.Payments {
		if p.Student.Email == email {
			payments = append(payments, p)
		}
	}
	return payments, nil
}

func (s *paymentStore) CompleteBooking(_ context.Context, classID primitive.ObjectID, p *model.PaymentModel) (primitive.ObjectID, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for i := range s.db.Classes {
		if s.db.Classes[i].ID == classID {
			s.db.Classes[i].Enroll++

			p.ID = primitive.NewObjectID()
			s.db.Payments = append(s.db.Payments, *p)
			return p.ID, nil
		}
	}
	// class tidak ketemu → increment kena 0 dokumen, payment tidak ditulis
	return primitive.NilObjectID, repository.ErrEnrollNotUpdated
}
