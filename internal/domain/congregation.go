package domain

// CongregationStat is a derived leaderboard row, recomputed from quiz
// submissions on every read and never persisted.
type CongregationStat struct {
	Name                string              `json:"name"`
	TotalParticipants   int                 `json:"total_participants"`
	TotalCorrectAnswers int                 `json:"total_correct_answers"`
	TotalQuizzes        int                 `json:"total_quizzes"`
	SuccessRate         float64             `json:"success_rate"`
	Rank                int                 `json:"rank"`
	QuizParticipation   []QuizParticipation `json:"quiz_participation"`
}

// QuizParticipation is a congregation's per-quiz breakdown.
type QuizParticipation struct {
	QuizID         uint   `json:"quiz_id"`
	QuizTitle      string `json:"quiz_title"`
	Participants   int    `json:"participants"`
	CorrectAnswers int    `json:"correct_answers"`
}
