package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskChannel(t *testing.T) {
	assert.Equal(t, "task:abc-123", TaskChannel("abc-123"))
}

func TestTaskIDFromChannel(t *testing.T) {
	assert.Equal(t, "abc-123", TaskIDFromChannel("task:abc-123"))
	assert.Equal(t, "", TaskIDFromChannel(GlobalTasksChannel))
	assert.Equal(t, "", TaskIDFromChannel("session:xyz"))
}
