package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQuizIsCurrentlyActive(t *testing.T) {
	now := time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC)

	base := Quiz{
		IsActive:  true,
		StartTime: now.Add(-time.Hour),
		EndTime:   now.Add(time.Hour),
	}

	t.Run("within the window", func(t *testing.T) {
		assert.True(t, base.IsCurrentlyActive(now))
	})

	t.Run("deactivated", func(t *testing.T) {
		quiz := base
		quiz.IsActive = false
		assert.False(t, quiz.IsCurrentlyActive(now))
	})

	t.Run("before the window", func(t *testing.T) {
		assert.False(t, base.IsCurrentlyActive(now.Add(-2*time.Hour)))
	})

	t.Run("after the window", func(t *testing.T) {
		assert.False(t, base.IsCurrentlyActive(now.Add(2*time.Hour)))
	})

	t.Run("window edges are inclusive", func(t *testing.T) {
		assert.True(t, base.IsCurrentlyActive(base.StartTime))
		assert.True(t, base.IsCurrentlyActive(base.EndTime))
	})
}

func TestQuizCheckAnswer(t *testing.T) {
	quiz := Quiz{CorrectAnswer: "A"}

	assert.True(t, quiz.CheckAnswer("A"))
	assert.True(t, quiz.CheckAnswer("a"))
	assert.False(t, quiz.CheckAnswer("B"))
	assert.False(t, quiz.CheckAnswer(""))
}

func TestQuizHasEnded(t *testing.T) {
	now := time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC)
	quiz := Quiz{EndTime: now}

	assert.False(t, quiz.HasEnded(now))
	assert.True(t, quiz.HasEnded(now.Add(time.Second)))
}
