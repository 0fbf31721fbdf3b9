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

type MessagesRepo struct {
	MongoCollection *mongo.Collection
}

func GetMessagesRepo(db *mongo.Database) *MessagesRepo {
	return &MessagesRepo{MongoCollection: db.Collection("messages")}
}

func (r *MessagesRepo) CreateMessage(ctx context.Context, message *model.Message) error {
	timer := utils.TrackDBOperation("insert", "messages")
	defer timer.ObserveDuration()

	if message.ID == "" {
		message.ID = uuid.New().String()
	}

	if _, err := r.MongoCollection.InsertOne(ctx, message); err != nil {
		utils.TrackError("database", "message_creation_failed")
		return err
	}
	return nil
}

func (r *MessagesRepo) GetUserMessages(ctx context.Context, userID string) ([]*model.Message, error) {
	timer := utils.TrackDBOperation("find", "messages")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		utils.TrackError("database", "message_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var messages []*model.Message
	if err = cursor.All(ctx, &messages); err != nil {
		utils.TrackError("database", "message_decode_failed")
		return nil, err
	}
	return messages, nil
}

func (r *MessagesRepo) GetMessageByID(ctx context.Context, messageID string) (*model.Message, error) {
	timer := utils.TrackDBOperation("find_one", "messages")
	defer timer.ObserveDuration()

	var message model.Message
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": messageID}).Decode(&message)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrMessageNotFound
		}
		utils.TrackError("database", "message_fetch_failed")
		return nil, err
	}
	return &message, nil
}

func (r *MessagesRepo) UpdateMessageText(ctx context.Context, messageID string, text string) error {
	timer := utils.TrackDBOperation("update", "messages")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"_id": messageID},
		bson.M{"$set": bson.M{"message": text}})
	if err != nil {
		utils.TrackError("database", "message_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return ErrMessageNotFound
	}
	return nil
}

func (r *MessagesRepo) DeleteMessage(ctx context.Context, messageID string) error {
	timer := utils.TrackDBOperation("delete", "messages")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": messageID})
	if err != nil {
		utils.TrackError("database", "message_deletion_failed")
		return err
	}
	if result.DeletedCount == 0 {
		return ErrMessageNotFound
	}
	return nil
}
