package repository

import (
	"context"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CheckInsRepo struct {
	MongoCollection *mongo.Collection
}

func GetCheckInsRepo(db *mongo.Database) *CheckInsRepo {
	return &CheckInsRepo{MongoCollection: db.Collection("check_ins")}
}

// GetCheckIn returns nil without error when the user has never checked in.
func (r *CheckInsRepo) GetCheckIn(ctx context.Context, userID string) (*model.CheckIn, error) {
	timer := utils.TrackDBOperation("find_one", "check_ins")
	defer timer.ObserveDuration()

	var checkIn model.CheckIn
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": userID}).Decode(&checkIn)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "check_in_fetch_failed")
		return nil, err
	}
	return &checkIn, nil
}

// UpsertCheckIn writes the whole per-user document, creating it on first use.
func (r *CheckInsRepo) UpsertCheckIn(ctx context.Context, checkIn *model.CheckIn) error {
	timer := utils.TrackDBOperation("upsert", "check_ins")
	defer timer.ObserveDuration()

	opts := options.Replace().SetUpsert(true)
	_, err := r.MongoCollection.ReplaceOne(ctx, bson.M{"_id": checkIn.UserID}, checkIn, opts)
	if err != nil {
		utils.TrackError("database", "check_in_upsert_failed")
		return err
	}
	return nil
}
