package domain

import (
	"strings"
	"time"
)

type Quiz struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	Question      string    `json:"question"`
	OptionA       string    `json:"option_a"`
	OptionB       string    `json:"option_b"`
	OptionC       string    `json:"option_c"`
	OptionD       string    `json:"option_d"`
	CorrectAnswer string    `json:"-"`
	Password      string    `json:"-"`
	IsActive      bool      `json:"is_active"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	CreatedAt     time.Time `json:"created_at"`
}

// IsCurrentlyActive reports whether the quiz is open for submissions at the
// given instant.
func (q *Quiz) IsCurrentlyActive(now time.Time) bool {
	return q.IsActive && !now.Before(q.StartTime) && !now.After(q.EndTime)
}

func (q *Quiz) HasEnded(now time.Time) bool {
	return now.After(q.EndTime)
}

// CheckAnswer compares case-insensitively; answers are stored as the option
// letters A-D.
func (q *Quiz) CheckAnswer(selected string) bool {
	return strings.EqualFold(selected, q.CorrectAnswer)
}

// Participant identifies a quiz taker. There is no account system, so the
// name/phone/congregation triple is the natural key for the one-submission
// rule.
type Participant struct {
	Name         string `json:"name"`
	PhoneNumber  string `json:"phone_number"`
	Congregation string `json:"congregation"`
}

type QuizSubmission struct {
	ID             uint      `json:"id"`
	QuizID         uint      `json:"quiz_id"`
	Name           string    `json:"name"`
	PhoneNumber    string    `json:"phone_number"`
	Congregation   string    `json:"congregation"`
	SelectedAnswer string    `json:"selected_answer"`
	IsCorrect      bool      `json:"is_correct"`
	SubmittedAt    time.Time `json:"submitted_at"`
}

// QuizResult is the disclosed outcome of an ended quiz.
type QuizResult struct {
	Quiz             Quiz             `json:"quiz"`
	CorrectAnswer    string           `json:"correct_answer"`
	TotalSubmissions int              `json:"total_submissions"`
	TotalCorrect     int              `json:"total_correct"`
	Submissions      []QuizSubmission `json:"submissions"`
}
