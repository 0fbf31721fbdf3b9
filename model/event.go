package model

import "time"

// Event time is kept as the client-supplied datetime-local string; the
// backend never interprets it beyond ordering lexicographically.
type Event struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	UserID      string    `bson:"user_id" json:"user_id"`
	Title       string    `bson:"title" json:"title" binding:"required"`
	Time        string    `bson:"time" json:"time" binding:"required"`
	Location    string    `bson:"location,omitempty" json:"location,omitempty"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
