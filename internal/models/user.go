package model

import (
	"time"
)

type User struct {
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Age       int       `json:"age"`
	Gender    string    `json:"gender"`
	Height    float64   `json:"height"` // cm
	Weight    *float64  `json:"weight,omitempty"` // kg
	CreatedAt time.Time `json:"created_at"`
}

// UserCreate is the request body for POST /users.
type UserCreate struct {
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Age    int      `json:"age"`
	Gender string   `json:"gender"`
	Height float64  `json:"height"`
	Weight *float64 `json:"weight,omitempty"`
}
