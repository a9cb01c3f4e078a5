package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"skillup_backend/internals/constants"
	"skillup_backend/internals/features/feedbacks/model"
)

type FeedbackStore interface {
	Create(ctx context.Context, f *model.FeedbackModel) (primitive.ObjectID, error)
	FindAll(ctx context.Context) ([]model.FeedbackModel, error)
	FindByClassID(ctx context.Context, classID string) ([]model.FeedbackModel, error)
}

type feedbackMongo struct {
	db *mongo.Database
}

func NewFeedbackMongo(db *mongo.Database) FeedbackStore {
	return &feedbackMongo{db: db}
}

func (r *feedbackMongo) col() *mongo.Collection {
	return r.db.Collection(constants.FeedbacksCollection)
}

func (r *feedbackMongo) Create(ctx context.Context, f *model.FeedbackModel) (primitive.ObjectID, error) {
	res, err := r.col().InsertOne(ctx, f)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (r *feedbackMongo) FindAll(ctx context.Context) ([]model.FeedbackModel, error) {
	return r.find(ctx, bson.M{})
}

func (r *feedbackMongo) FindByClassID(ctx context.Context, classID string) ([]model.FeedbackModel, error) {
	return r.find(ctx, bson.M{"classId": classID})
}

func (r *feedbackMongo) find(ctx context.Context, filter bson.M) ([]model.FeedbackModel, error) {
	cur, err := r.col().Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	feedbacks := []model.FeedbackModel{}
	if err := cur.All(ctx, &feedbacks); err != nil {
		return nil, err
	}
	return feedbacks, nil
}
