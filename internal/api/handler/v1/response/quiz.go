package response

import "time"

type QuizAccessResponse struct {
	AccessToken string `json:"access_token"`
}

// SubmissionResponse acknowledges a stored submission. Correctness is
// withheld until the quiz has ended; results are disclosed through the
// results endpoint instead.
type SubmissionResponse struct {
	SubmissionID uint      `json:"submission_id"`
	QuizID       uint      `json:"quiz_id"`
	Name         string    `json:"name"`
	Congregation string    `json:"congregation"`
	SubmittedAt  time.Time `json:"submitted_at"`
	Message      string    `json:"message"`
}
