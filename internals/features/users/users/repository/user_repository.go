// file: internals/features/users/users/repository/user_repository.go
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"skillup_backend/internals/constants"
	"skillup_backend/internals/features/users/users/model"
)

// UserUpdate: field yang boleh di-update lewat PUT /users/update/:email
// (allow-list, bukan $set bebas dari body).
type UserUpdate struct {
	Name     *string
	Username *string
	Image    *string
	Role     *string
}

type UserStore interface {
	Create(ctx context.Context, u *model.UserModel) (primitive.ObjectID, error)
	FindByEmail(ctx context.Context, email string) (*model.UserModel, error)
	// Search: term kosong = semua user; selain itu regex case-insensitive
	// atas username ATAU email.
	Search(ctx context.Context, term string) ([]model.UserModel, error)
	// UpsertWithRoleCascade: upsert field user + cascade role ke status
	// pengajuan teacher (teacher→approve, student→pending) dalam satu transaksi.
	UpsertWithRoleCascade(ctx context.Context, email string, upd UserUpdate) error
}

type userMongo struct {
	db *mongo.Database
}

func NewUserMongo(db *mongo.Database) UserStore {
	return &userMongo{db: db}
}

func (r *userMongo) col() *mongo.Collection {
	return r.db.Collection(constants.UsersCollection)
}

func (r *userMongo) Create(ctx context.Context, u *model.UserModel) (primitive.ObjectID, error) {
	res, err := r.col().InsertOne(ctx, u)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (r *userMongo) FindByEmail(ctx context.Context, email string) (*model.UserModel, error) {
	var u model.UserModel
	if err := r.col().FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userMongo) Search(ctx context.Context, term string) ([]model.UserModel, error) {
	filter := bson.M{}
	if term != "" {
		re := primitive.Regex{Pattern: term, Options: "i"}
		filter = bson.M{"$or": bson.A{
			bson.M{"username": re},
			bson.M{"email": re},
		}}
	}

	cur, err := r.col().Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	users := []model.UserModel{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userMongo) UpsertWithRoleCascade(ctx context.Context, email string, upd UserUpdate) error {
	set := bson.M{}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Username != nil {
		set["username"] = *upd.Username
	}
	if upd.Image != nil {
		set["image"] = *upd.Image
	}
	if upd.Role != nil {
		set["role"] = *upd.Role
	}

	sess, err := r.db.Client().StartSession()
	if err != nil {
		return err
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		opts := options.Update().SetUpsert(true)
		filter := bson.M{"email": email}

		// body kosong → $set kosong ditolak mongo, pakai $setOnInsert no-op
		update := bson.M{"$setOnInsert": bson.M{"email": email}}
		if len(set) > 0 {
			update = bson.M{"$set": set}
		}
		if _, err := r.col().UpdateOne(sc, filter, update, opts); err != nil {
			return nil, err
		}

		// Cascade role → status pengajuan teacher
		if upd.Role != nil {
			teachers := r.db.Collection(constants.TeachersCollection)
			switch *upd.Role {
			case constants.RoleTeacher:
				if _, err := teachers.UpdateOne(sc, filter,
					bson.M{"$set": bson.M{"status": constants.StatusApprove}}, opts); err != nil {
					return nil, err
				}
			case constants.RoleStudent:
				if _, err := teachers.UpdateOne(sc, filter,
					bson.M{"$set": bson.M{"status": constants.StatusPending}}, opts); err != nil {
					return nil, err
				}
			}
		}
		return nil, nil
	})
	return err
}
