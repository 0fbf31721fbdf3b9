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

type GoalsRepo struct {
	MongoCollection *mongo.Collection
}

func GetGoalsRepo(db *mongo.Database) *GoalsRepo {
	return &GoalsRepo{MongoCollection: db.Collection("goals")}
}

// CreateGoal inserts a new goal document and fills in its identifier.
func (r *GoalsRepo) CreateGoal(ctx context.Context, goal *model.Goal) error {
	timer := utils.TrackDBOperation("insert", "goals")
	defer timer.ObserveDuration()

	if goal.ID == "" {
		goal.ID = uuid.New().String()
	}

	if _, err := r.MongoCollection.InsertOne(ctx, goal); err != nil {
		utils.TrackError("database", "goal_creation_failed")
		return err
	}
	return nil
}

// GetUserGoals retrieves all goals owned by the user, oldest first.
func (r *GoalsRepo) GetUserGoals(ctx context.Context, userID string) ([]*model.Goal, error) {
	timer := utils.TrackDBOperation("find", "goals")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		utils.TrackError("database", "goal_fetch_failed")
		return nil, err
	}
	defer cursor.Close(ctx)

	var goals []*model.Goal
	if err = cursor.All(ctx, &goals); err != nil {
		utils.TrackError("database", "goal_decode_failed")
		return nil, err
	}
	return goals, nil
}

// GetGoalByID looks the goal up by identifier alone. The caller compares
// the owner field afterwards, so absence and ownership stay distinguishable.
func (r *GoalsRepo) GetGoalByID(ctx context.Context, goalID string) (*model.Goal, error) {
	timer := utils.TrackDBOperation("find_one", "goals")
	defer timer.ObserveDuration()

	var goal model.Goal
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": goalID}).Decode(&goal)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrGoalNotFound
		}
		utils.TrackError("database", "goal_fetch_failed")
		return nil, err
	}
	return &goal, nil
}

// UpdateGoalText writes only the goal text; completion flag and todos are
// left untouched.
func (r *GoalsRepo) UpdateGoalText(ctx context.Context, goalID string, text string) error {
	timer := utils.TrackDBOperation("update", "goals")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"_id": goalID},
		bson.M{"$set": bson.M{"goal": text}})
	if err != nil {
		utils.TrackError("database", "goal_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return ErrGoalNotFound
	}
	return nil
}

func (r *GoalsRepo) SetGoalCompletion(ctx context.Context, goalID string, completed bool) error {
	timer := utils.TrackDBOperation("update", "goals")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"_id": goalID},
		bson.M{"$set": bson.M{"completed": completed}})
	if err != nil {
		utils.TrackError("database", "goal_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return ErrGoalNotFound
	}
	return nil
}

// ReplaceTodos rewrites the embedded todos array in one field update. There
// is no version token: two concurrent rewrites of the same goal are
// last-write-wins, matching the documented behavior of the service.
func (r *GoalsRepo) ReplaceTodos(ctx context.Context, goalID string, todos []model.Todo) error {
	timer := utils.TrackDBOperation("update", "goals")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"_id": goalID},
		bson.M{"$set": bson.M{"todos": todos}})
	if err != nil {
		utils.TrackError("database", "todos_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return ErrGoalNotFound
	}
	return nil
}

// DeleteGoal removes the whole document; embedded todos go with it.
func (r *GoalsRepo) DeleteGoal(ctx context.Context, goalID string) error {
	timer := utils.TrackDBOperation("delete", "goals")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": goalID})
	if err != nil {
		utils.TrackError("database", "goal_deletion_failed")
		return err
	}
	if result.DeletedCount == 0 {
		return ErrGoalNotFound
	}
	return nil
}
