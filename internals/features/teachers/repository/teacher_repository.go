// file: internals/features/teachers/repository/teacher_repository.go
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"skillup_backend/internals/constants"
	"skillup_backend/internals/features/teachers/model"
)

type TeacherStore interface {
	Create(ctx context.Context, t *model.TeacherModel) (primitive.ObjectID, error)
	FindAll(ctx context.Context) ([]model.TeacherModel, error)
	FindByEmailAndStatus(ctx context.Context, email, status string) ([]model.TeacherModel, error)
	// ResetStatusByEmail: jalur re-apply, status balik ke pending.
	ResetStatusByEmail(ctx context.Context, email string) (int64, error)
	// Review: set status pengajuan + cascade role user terkait
	// (approve→teacher, pending/reject→student) dalam satu transaksi.
	// mongo.ErrNoDocuments kalau pengajuan tidak ada.
	Review(ctx context.Context, id primitive.ObjectID, status string) error
}

type teacherMongo struct {
	db *mongo.Database
}

func NewTeacherMongo(db *mongo.Database) TeacherStore {
	return &teacherMongo{db: db}
}

func (r *teacherMongo) col() *mongo.Collection {
	return r.db.Collection(constants.TeachersCollection)
}

func (r *teacherMongo) Create(ctx context.Context, t *model.TeacherModel) (primitive.ObjectID, error) {
	if t.Status == "" {
		t.Status = constants.StatusPending
	}
	res, err := r.col().InsertOne(ctx, t)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (r *teacherMongo) FindAll(ctx context.Context) ([]model.TeacherModel, error) {
	cur, err := r.col().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	teachers := []model.TeacherModel{}
	if err := cur.All(ctx, &teachers); err != nil {
		return nil, err
	}
	return teachers, nil
}

func (r *teacherMongo) FindByEmailAndStatus(ctx context.Context, email, status string) ([]model.TeacherModel, error) {
	cur, err := r.col().Find(ctx, bson.M{"email": email, "status": status})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	teachers := []model.TeacherModel{}
	if err := cur.All(ctx, &teachers); err != nil {
		return nil, err
	}
	return teachers, nil
}

func (r *teacherMongo) ResetStatusByEmail(ctx context.Context, email string) (int64, error) {
	res, err := r.col().UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"status": constants.StatusPending}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (r *teacherMongo) Review(ctx context.Context, id primitive.ObjectID, status string) error {
	sess, err := r.db.Client().StartSession()
	if err != nil {
		return err
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var teacher model.TeacherModel
		if err := r.col().FindOne(sc, bson.M{"_id": id}).Decode(&teacher); err != nil {
			return nil, err
		}

		if _, err := r.col().UpdateOne(sc,
			bson.M{"_id": id},
			bson.M{"$set": bson.M{"status": status}},
		); err != nil {
			return nil, err
		}

		// Cascade ke role user; re-approve idempotent (set role yang sama lagi).
		role := constants.RoleStudent
		if status == constants.StatusApprove {
			role = constants.RoleTeacher
		}
		users := r.db.Collection(constants.UsersCollection)
		if _, err := users.UpdateOne(sc,
			bson.M{"email": teacher.Email},
			bson.M{"$set": bson.M{"role": role}},
		); err != nil {
			return nil, err
		}
		return nil, nil
	})
	return err
}
