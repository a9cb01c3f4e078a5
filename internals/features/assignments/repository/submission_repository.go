package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"skillup_backend/internals/constants"
	"skillup_backend/internals/features/assignments/model"
)

type SubmissionStore interface {
	Create(ctx context.Context, s *model.AssignmentSubmitModel) (primitive.ObjectID, error)
	FindByEmailAndClass(ctx context.Context, email, classID string) ([]model.AssignmentSubmitModel, error)
	// CountByClassAndDay: hitung submission yang kolom date-nya diawali
	// day (format YYYY-MM-DD). Prefix match string, bukan range query.
	CountByClassAndDay(ctx context.Context, classID, day string) (int64, error)
}

type submissionMongo struct {
	db *mongo.Database
}

func NewSubmissionMongo(db *mongo.Database) SubmissionStore {
	return &submissionMongo{db: db}
}

func (r *submissionMongo) col() *mongo.Collection {
	return r.db.Collection(constants.AssignmentSubmitCollection)
}

func (r *submissionMongo) Create(ctx context.Context, s *model.AssignmentSubmitModel) (primitive.ObjectID, error) {
	res, err := r.col().InsertOne(ctx, s)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (r *submissionMongo) FindByEmailAndClass(ctx context.Context, email, classID string) ([]model.AssignmentSubmitModel, error) {
	cur, err := r.col().Find(ctx, bson.M{"email": email, "classId": classID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	submissions := []model.AssignmentSubmitModel{}
	if err := cur.All(ctx, &submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}

func (r *submissionMongo) CountByClassAndDay(ctx context.Context, classID, day string) (int64, error) {
	return r.col().CountDocuments(ctx, bson.M{
		"classId": classID,
		"date":    primitive.Regex{Pattern: "^" + day},
	})
}
