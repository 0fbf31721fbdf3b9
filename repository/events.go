package repository

import (
	"context"

	"main/model"
	"main/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type EventsRepo struct {
	MongoCollection *mongo.Collection
}

func GetEventsRepo(db *mongo.Database) *EventsRepo {
	return &EventsRepo{MongoCollection: db.Collection("events")}
}

func (r *EventsRepo) CreateEvent(ctx context.Context, event *model.Event) error {
	timer := utils.TrackDBOperation("insert", "events")
	defer timer.ObserveDuration()

	if event.ID == "" {
		event.ID = uuid.New().String()
	}

	if _, err := r.MongoCollection.InsertOne(ctx, event); err != nil {
		utils.TrackError("database", "event_creation_failed")
		return err
	}
	return nil
}

func (r *EventsRepo) GetUserEvents(ctx context.Context, userID string) ([]*model.Event, error) {
	timer := utils.TrackDBOperation("find", "events")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "time", Value: 1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		utils.TrackError("database", "event_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []*model.Event
	if err = cursor.All(ctx, &events); err != nil {
		utils.TrackError("database", "event_decode_failed")
		return nil, err
	}
	return events, nil
}

func (r *EventsRepo) GetEventByID(ctx context.Context, eventID string) (*model.Event, error) {
	timer := utils.TrackDBOperation("find_one", "events")
	defer timer.ObserveDuration()

	var event model.Event
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": eventID}).Decode(&event)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrEventNotFound
		}
		utils.TrackError("database", "event_fetch_failed")
		return nil, err
	}
	return &event, nil
}

func (r *EventsRepo) DeleteEvent(ctx context.Context, eventID string) error {
	timer := utils.TrackDBOperation("delete", "events")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": eventID})
	if err != nil {
		utils.TrackError("database", "event_deletion_failed")
		return err
	}
	if result.DeletedCount == 0 {
		return ErrEventNotFound
	}
	return nil
}
