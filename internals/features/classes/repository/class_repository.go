// file: internals/features/classes/repository/class_repository.go
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"skillup_backend/internals/constants"
	"skillup_backend/internals/features/classes/model"
)

// ClassUpdate: field class yang boleh di-patch lewat PATCH /classes/update/:id
// (allow-list, menutup celah $set bebas dari caller).
type ClassUpdate struct {
	Title       *string
	Description *string
	Image       *string
	Price       *float64
}

type ClassStore interface {
	Create(ctx context.Context, cl *model.ClassModel) (primitive.ObjectID, error)
	// FindAll: search kosong = semua; selain itu regex case-insensitive atas title.
	FindAll(ctx context.Context, search string) ([]model.ClassModel, error)
	FindByOwner(ctx context.Context, email string) ([]model.ClassModel, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.ClassModel, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.ClassModel, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (int64, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, upd ClassUpdate) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	AddAssignment(ctx context.Context, id primitive.ObjectID, a model.AssignmentModel) (int64, error)
}

type classMongo struct {
	db *mongo.Database
}

func NewClassMongo(db *mongo.Database) ClassStore {
	return &classMongo{db: db}
}

func (r *classMongo) col() *mongo.Collection {
	return r.db.Collection(constants.ClassesCollection)
}

func (r *classMongo) Create(ctx context.Context, cl *model.ClassModel) (primitive.ObjectID, error) {
	if cl.Status == "" {
		cl.Status = constants.StatusPending
	}
	res, err := r.col().InsertOne(ctx, cl)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (r *classMongo) FindAll(ctx context.Context, search string) ([]model.ClassModel, error) {
	filter := bson.M{}
	if search != "" {
		filter["classTitle"] = primitive.Regex{Pattern: search, Options: "i"}
	}
	return r.find(ctx, filter)
}

func (r *classMongo) FindByOwner(ctx context.Context, email string) ([]model.ClassModel, error) {
	return r.find(ctx, bson.M{"email": email})
}

func (r *classMongo) find(ctx context.Context, filter bson.M) ([]model.ClassModel, error) {
	cur, err := r.col().Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	classes := []model.ClassModel{}
	if err := cur.All(ctx, &classes); err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *classMongo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.ClassModel, error) {
	var cl model.ClassModel
	if err := r.col().FindOne(ctx, bson.M{"_id": id}).Decode(&cl); err != nil {
		return nil, err
	}
	return &cl, nil
}

func (r *classMongo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.ClassModel, error) {
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *classMongo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (int64, error) {
	res, err := r.col().UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (r *classMongo) UpdateFields(ctx context.Context, id primitive.ObjectID, upd ClassUpdate) (int64, error) {
	set := bson.M{}
	if upd.Title != nil {
		set["classTitle"] = *upd.Title
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Image != nil {
		set["image"] = *upd.Image
	}
	if upd.Price != nil {
		set["price"] = *upd.Price
	}
	if len(set) == 0 {
		return 0, nil
	}

	res, err := r.col().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (r *classMongo) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.col().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *classMongo) AddAssignment(ctx context.Context, id primitive.ObjectID, a model.AssignmentModel) (int64, error) {
	res, err := r.col().UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$push": bson.M{"assignments": a}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
