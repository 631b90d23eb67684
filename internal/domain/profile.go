package domain

import "time"

// UserProfile is the program and semester a user registered with
type UserProfile struct {
	UserID    int64
	Program   string
	Semester  string
	UpdatedAt time.Time
}
