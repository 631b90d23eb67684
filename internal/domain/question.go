package domain

import (
	"fmt"
	"strings"
)

const (
	// OffTopicLabel is the extra choice appended to every class list
	OffTopicLabel = "Off-topic"
	// OffTopicHashtag is used for off-topic questions, never for a class
	OffTopicHashtag = "off_topic"
)

// Question is a numbered, tagged submission ready for the channel
type Question struct {
	Number     int64
	Hashtag    string
	Text       string
	Attachment string
}

// Caption returns the text posted to the channel
func (q Question) Caption() string {
	return fmt.Sprintf("Q%d #%s\n\n%s", q.Number, q.Hashtag, q.Text)
}

// HasAttachment reports whether the question carries an image
func (q Question) HasAttachment() bool {
	return q.Attachment != ""
}

// ClassHashtag converts a class name into a hashtag body
func ClassHashtag(class string) string {
	return strings.ReplaceAll(class, " ", "_")
}
