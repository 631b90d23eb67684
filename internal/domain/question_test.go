package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassHashtag(t *testing.T) {
	assert.Equal(t, "Data_Structures", ClassHashtag("Data Structures"))
	assert.Equal(t, "OOP", ClassHashtag("OOP"))
	assert.Equal(t, "Probability_&_Statistics", ClassHashtag("Probability & Statistics"))
	assert.NotEqual(t, OffTopicHashtag, ClassHashtag(OffTopicLabel))
}

func TestQuestion_Caption(t *testing.T) {
	q := Question{Number: 42, Hashtag: "Data_Structures", Text: "What is recursion?"}

	assert.Equal(t, "Q42 #Data_Structures\n\nWhat is recursion?", q.Caption())
	assert.False(t, q.HasAttachment())

	q.Attachment = "file-id"
	assert.True(t, q.HasAttachment())
}
