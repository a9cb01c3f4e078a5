// file: internals/features/home/stats/repository/stats_repository.go
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"skillup_backend/internals/constants"
	classmodel "skillup_backend/internals/features/classes/model"
	"skillup_backend/internals/features/home/stats/dto"
)

// FeaturedLimit: cap featured-courses (4 course approve ter-enroll).
const FeaturedLimit = 4

type StatsStore interface {
	// TopTeachers: group class per email teacher, sum enroll, sort desc.
	// limit <= 0 = tanpa batas.
	TopTeachers(ctx context.Context, limit int64) ([]dto.TopTeacherDTO, error)
	FeaturedCourses(ctx context.Context) ([]classmodel.ClassModel, error)
	SiteStats(ctx context.Context) (*dto.SiteStatsDTO, error)
}

type statsMongo struct {
	db *mongo.Database
}

func NewStatsMongo(db *mongo.Database) StatsStore {
	return &statsMongo{db: db}
}

func (r *statsMongo) TopTeachers(ctx context.Context, limit int64) ([]dto.TopTeacherDTO, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{
			"_id":             "$email",
			"totalEnrollment": bson.M{"$sum": "$enroll"},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"totalEnrollment": -1}}},
	}
	if limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: limit}})
	}
	// join detail teacher (name + image) by email
	pipeline = append(pipeline,
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         constants.TeachersCollection,
			"localField":   "_id",
			"foreignField": "email",
			"as":           "teacher",
		}}},
	)

	cur, err := r.db.Collection(constants.ClassesCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []struct {
		Email           string `bson:"_id"`
		TotalEnrollment int64  `bson:"totalEnrollment"`
		Teacher         []struct {
			Name  string `bson:"name"`
			Image string `bson:"image"`
		} `bson:"teacher"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}

	result := []dto.TopTeacherDTO{}
	for _, row := range rows {
		t := dto.TopTeacherDTO{Email: row.Email, TotalEnrollment: row.TotalEnrollment}
		if len(row.Teacher) > 0 {
			t.Name = row.Teacher[0].Name
			t.Image = row.Teacher[0].Image
		}
		result = append(result, t)
	}
	return result, nil
}

func (r *statsMongo) FeaturedCourses(ctx context.Context) ([]classmodel.ClassModel, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "enroll", Value: -1}}).
		SetLimit(FeaturedLimit)

	cur, err := r.db.Collection(constants.ClassesCollection).
		Find(ctx, bson.M{"status": constants.StatusApprove}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	classes := []classmodel.ClassModel{}
	if err := cur.All(ctx, &classes); err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *statsMongo) SiteStats(ctx context.Context) (*dto.SiteStatsDTO, error) {
	users := r.db.Collection(constants.UsersCollection)
	classes := r.db.Collection(constants.ClassesCollection)

	totalUsers, err := users.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	totalClasses, err := classes.CountDocuments(ctx, bson.M{"status": constants.StatusApprove})
	if err != nil {
		return nil, err
	}

	cur, err := classes.Aggregate(ctx, mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{
			"_id":             nil,
			"totalEnrollment": bson.M{"$sum": "$enroll"},
		}}},
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var agg []struct {
		TotalEnrollment int64 `bson:"totalEnrollment"`
	}
	if err := cur.All(ctx, &agg); err != nil {
		return nil, err
	}

	stats := &dto.SiteStatsDTO{
		TotalUsers:   totalUsers,
		TotalClasses: totalClasses,
	}
	if len(agg) > 0 {
		stats.TotalEnrollment = agg[0].TotalEnrollment
	}
	return stats, nil
}
