package model

type UserStats struct {
	GoalStats struct {
		Total     int `json:"total"`
		Completed int `json:"completed"`
		Pending   int `json:"pending"`
	} `json:"goals"`

	TodoStats struct {
		Total     int `json:"total"`
		Completed int `json:"completed"`
		Pending   int `json:"pending"`
	} `json:"todos"`

	MessageCount int `json:"messages"`
	EventCount   int `json:"events"`

	CheckInStats struct {
		Count       int    `json:"count"`
		LastCheckIn string `json:"last_check_in,omitempty"`
	} `json:"check_ins"`
}
