package model

import "time"

type Message struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	Message   string    `bson:"message" json:"message" binding:"required"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}
