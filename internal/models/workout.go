package model

import (
	"time"
)

// Exercise is the projection of a wger catalog entry that the backend
// stores and returns. Category and equipment are the catalog's numeric
// identifiers, copied as-is.
type Exercise struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    int64   `json:"category"`
	Equipment   []int64 `json:"equipment"`
}

type WorkoutPlan struct {
	PlanID          string     `json:"plan_id"`
	UserID          string     `json:"user_id"`
	PlanDate        Date       `json:"plan_date"`
	Exercises       []Exercise `json:"exercises"`
	Recommendations string     `json:"recommendations"`
	CreatedAt       time.Time  `json:"created_at"`
}
