// file: internals/features/payments/repository/payment_repository.go
package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"skillup_backend/internals/constants"
	"skillup_backend/internals/features/payments/model"
)

// ErrEnrollNotUpdated: increment enroll tidak mengenai tepat satu dokumen —
// payment record TIDAK boleh ditulis.
var ErrEnrollNotUpdated = errors.New("enroll count not updated")

type PaymentStore interface {
	FindByStudentEmail(ctx context.Context, email string) ([]model.PaymentModel, error)
	// CompleteBooking: $inc enroll class lalu insert payment record,
	// keduanya dalam satu transaksi. ErrEnrollNotUpdated kalau modified != 1.
	CompleteBooking(ctx context.Context, classID primitive.ObjectID, p *model.PaymentModel) (primitive.ObjectID, error)
}

type paymentMongo struct {
	db *mongo.Database
}

func NewPaymentMongo(db *mongo.Database) PaymentStore {
	return &paymentMongo{db: db}
}

func (r *paymentMongo) col() *mongo.Collection {
	return r.db.Collection(constants.PaymentsCollection)
}

func (r *paymentMongo) FindByStudentEmail(ctx context.Context, email string) ([]model.PaymentModel, error) {
	cur, err := r.col().Find(ctx, bson.M{"student.email": email})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	payments := []model.PaymentModel{}
	if err := cur.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *paymentMongo) CompleteBooking(ctx context.Context, classID primitive.ObjectID, p *model.PaymentModel) (primitive.ObjectID, error) {
	sess, err := r.db.Client().StartSession()
	if err != nil {
		return primitive.NilObjectID, err
	}
	defer sess.EndSession(ctx)

	id, err := sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		classes := r.db.Collection(constants.ClassesCollection)
		upd, err := classes.UpdateOne(sc,
			bson.M{"_id": classID},
			bson.M{"$inc": bson.M{"enroll": 1}},
		)
		if err != nil {
			return nil, err
		}
		if upd.ModifiedCount != 1 {
			return nil, ErrEnrollNotUpdated
		}

		res, err := r.col().InsertOne(sc, p)
		if err != nil {
			return nil, err
		}
		return res.InsertedID.(primitive.ObjectID), nil
	})
	if err != nil {
		return primitive.NilObjectID, err
	}
	return id.(primitive.ObjectID), nil
}
