package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SetupIndexes creates the per-collection indexes backing the owner-scoped
// list queries. Safe to run on every startup; Mongo treats existing
// identical indexes as a no-op.
func SetupIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	goalsCollection := db.Collection("goals")
	messagesCollection := db.Collection("messages")
	eventsCollection := db.Collection("events")

	goalIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "timestamp", Value: 1},
			},
			Options: options.Index().
				SetName("user_goals_date").
				SetUnique(false),
		},
		{
			Keys: bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().
				SetName("user_id_index"),
		},
	}

	messageIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "timestamp", Value: 1},
			},
			Options: options.Index().
				SetName("user_messages_date").
				SetUnique(false),
		},
	}

	eventIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "time", Value: 1},
			},
			Options: options.Index().
				SetName("user_events_time").
				SetUnique(false),
		},
	}

	if _, err := goalsCollection.Indexes().CreateMany(ctx, goalIndexes); err != nil {
		return fmt.Errorf("failed to create goals indexes: %w", err)
	}
	if _, err := messagesCollection.Indexes().CreateMany(ctx, messageIndexes); err != nil {
		return fmt.Errorf("failed to create messages indexes: %w", err)
	}
	if _, err := eventsCollection.Indexes().CreateMany(ctx, eventIndexes); err != nil {
		return fmt.Errorf("failed to create events indexes: %w", err)
	}

	log.Println("Successfully created all indexes")
	return nil
}
