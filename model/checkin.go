package model

// CheckIn holds one document per user. LastCheckIn is a YYYY-MM-DD day
// string; a user can check in at most once per day.
type CheckIn struct {
	UserID       string `bson:"_id" json:"user_id"`
	CheckInCount int    `bson:"check_in_count" json:"checkInCount"`
	LastCheckIn  string `bson:"last_check_in" json:"lastCheckIn"`
}
