package model

import "time"

// Goal is a user-owned objective with an embedded to-do list. The to-do
// entries have no existence outside their parent document: every to-do
// mutation rewrites the whole todos array on the goal.
type Goal struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	Goal      string    `bson:"goal" json:"goal" binding:"required"`
	Completed bool      `bson:"completed" json:"completed"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
	Todos     []Todo    `bson:"todos" json:"todos"`
}

// Todo identifiers are unique within their parent goal only.
type Todo struct {
	ID        string `bson:"id" json:"id"`
	Text      string `bson:"text" json:"text" binding:"required"`
	Completed bool   `bson:"completed" json:"completed"`
}
