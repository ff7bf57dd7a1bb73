package domain

import (
	"strings"
	"time"
)

const (
	MinRating = 1
	MaxRating = 5
)

type Review struct {
	ID          int64     `json:"id"`
	CoachID     int64     `json:"coach_id"`
	UserID      int64     `json:"user_id"`
	Rating      int       `json:"rating"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	// User is the reviewer snapshot the API joins in.
	User *User `json:"user,omitempty"`
}

type ReviewInput struct {
	CoachID     int64  `json:"coach_id"`
	Rating      int    `json:"rating"`
	Description string `json:"description"`
}

func (in ReviewInput) Validate() error {
	verr := &ValidationError{}
	if in.CoachID <= 0 {
		verr.add("coach_id", "is required")
	}
	if in.Rating < MinRating || in.Rating > MaxRating {
		verr.add("rating", "must be between 1 and 5")
	}
	if strings.TrimSpace(in.Description) == "" {
		verr.add("description", "is required")
	}
	return verr.orNil()
}
