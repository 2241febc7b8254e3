package model

import (
	"time"
)

// DailyLog is one day of food and water intake. Meal maps are free-form:
// clients send whatever structure they like and it round-trips as JSONB.
type DailyLog struct {
	LogID       string                 `json:"log_id"`
	UserID      string                 `json:"user_id"`
	LogDate     Date                   `json:"log_date"`
	Breakfast   map[string]interface{} `json:"breakfast"`
	Lunch       map[string]interface{} `json:"lunch"`
	Dinner      map[string]interface{} `json:"dinner"`
	Snacks      map[string]interface{} `json:"snacks"`
	WaterIntake string                 `json:"water_intake"`
	CreatedAt   time.Time              `json:"created_at"`
}

// DailyLogCreate is the request body for POST /daily-logs. The date comes
// in as a string so a malformed date can be rejected with a 400.
type DailyLogCreate struct {
	UserID      string                 `json:"user_id"`
	LogDate     string                 `json:"log_date"`
	Breakfast   map[string]interface{} `json:"breakfast"`
	Lunch       map[string]interface{} `json:"lunch"`
	Dinner      map[string]interface{} `json:"dinner"`
	Snacks      map[string]interface{} `json:"snacks"`
	WaterIntake string                 `json:"water_intake"`
}
