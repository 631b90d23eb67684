package domain

import "time"

// SessionState represents where a user is in the conversation
type SessionState string

const (
	StateIdle             SessionState = "idle"
	StateAwaitingProgram  SessionState = "awaiting_program"
	StateAwaitingSemester SessionState = "awaiting_semester"
	StateAwaitingClass    SessionState = "awaiting_class"
)

// Draft holds transient data collected during a flow
type Draft struct {
	Program    string
	Question   string
	Attachment string
	// Classes is the class list shown to the user, in button order
	Classes []string
}

// Session is the in-memory conversation state of one user
type Session struct {
	State     SessionState
	Draft     Draft
	UpdatedAt time.Time
}

// PhotoVariant is one resolution of an attached image
type PhotoVariant struct {
	FileID string
	Width  int
	Height int
}

// LargestVariant returns the FileID of the variant with the largest area.
// On equal area the later variant wins. Returns "" for no variants.
func LargestVariant(variants []PhotoVariant) string {
	best := -1
	bestArea := -1
	for i, v := range variants {
		if v.FileID == "" {
			continue
		}
		area := v.Width * v.Height
		if area >= bestArea {
			best, bestArea = i, area
		}
	}
	if best < 0 {
		return ""
	}
	return variants[best].FileID
}
