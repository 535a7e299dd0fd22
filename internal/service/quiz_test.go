package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/presbyterian-ypg/ypg-api/internal/domain"
	"github.com/presbyterian-ypg/ypg-api/internal/pkg/jwthelper"
)

type fakeQuizRepo struct {
	quizzes     map[uint]domain.Quiz
	submissions []domain.QuizSubmission
	nextQuizID  uint
	nextSubID   uint
}

func newFakeQuizRepo() *fakeQuizRepo {
	return &fakeQuizRepo{
		quizzes:    make(map[uint]domain.Quiz),
		nextQuizID: 1,
		nextSubID:  1,
	}
}

func (f *fakeQuizRepo) Create(_ context.Context, quiz domain.Quiz) (domain.Quiz, error) {
	quiz.ID = f.nextQuizID
	f.nextQuizID++
	f.quizzes[quiz.ID] = quiz

	return quiz, nil
}

func (f *fakeQuizRepo) FindByID(_ context.Context, id uint) (domain.Quiz, error) {
	quiz, ok := f.quizzes[id]
	if !ok {
		return domain.Quiz{}, ErrQuizNotFound
	}

	return quiz, nil
}

func (f *fakeQuizRepo) FindActive(_ context.Context, now time.Time) (domain.Quiz, error) {
	for _, quiz := range f.quizzes {
		if quiz.IsActive && !now.Before(quiz.StartTime) && !now.After(quiz.EndTime) {
			return quiz, nil
		}
	}

	return domain.Quiz{}, ErrNoActiveQuiz
}

func (f *fakeQuizRepo) FindAll(_ context.Context) ([]domain.Quiz, error) {
	var quizzes []domain.Quiz
	for _, quiz := range f.quizzes {
		quizzes = append(quizzes, quiz)
	}

	return quizzes, nil
}

func (f *fakeQuizRepo) FindEnded(_ context.Context, now time.Time) ([]domain.Quiz, error) {
	var ended []domain.Quiz
	for _, quiz := range f.quizzes {
		if quiz.EndTime.Before(now) {
			ended = append(ended, quiz)
		}
	}

	return ended, nil
}

func (f *fakeQuizRepo) Update(_ context.Context, quiz domain.Quiz) (domain.Quiz, error) {
	if _, ok := f.quizzes[quiz.ID]; !ok {
		return domain.Quiz{}, ErrQuizNotFound
	}
	f.quizzes[quiz.ID] = quiz

	return quiz, nil
}

func (f *fakeQuizRepo) DeactivateAll(_ context.Context) error {
	for id, quiz := range f.quizzes {
		if quiz.IsActive {
			quiz.IsActive = false
			f.quizzes[id] = quiz
		}
	}

	return nil
}

func (f *fakeQuizRepo) Delete(_ context.Context, id uint) error {
	if _, ok := f.quizzes[id]; !ok {
		return ErrQuizNotFound
	}
	delete(f.quizzes, id)

	return nil
}

func (f *fakeQuizRepo) CreateSubmission(_ context.Context, submission domain.QuizSubmission) (domain.QuizSubmission, error) {
	for _, existing := range f.submissions {
		if existing.QuizID == submission.QuizID &&
			existing.Name == submission.Name &&
			existing.PhoneNumber == submission.PhoneNumber &&
			existing.Congregation == submission.Congregation {
			return domain.QuizSubmission{}, ErrDuplicateSubmission
		}
	}

	submission.ID = f.nextSubID
	f.nextSubID++
	f.submissions = append(f.submissions, submission)

	return submission, nil
}

func (f *fakeQuizRepo) FindSubmissionsByQuizID(_ context.Context, quizID uint) ([]domain.QuizSubmission, error) {
	var found []domain.QuizSubmission
	for _, submission := range f.submissions {
		if submission.QuizID == quizID {
			found = append(found, submission)
		}
	}

	return found, nil
}

func (f *fakeQuizRepo) FindAllSubmissions(_ context.Context) ([]domain.QuizSubmission, error) {
	return f.submissions, nil
}

var quizTestKey = []byte("quiz-test-signing-key")

func newQuizServiceAt(repo *fakeQuizRepo, now time.Time) *QuizService {
	svc := NewQuizService(repo, quizTestKey)
	svc.now = func() time.Time { return now }

	return svc
}

func seedQuiz(t *testing.T, repo *fakeQuizRepo, now time.Time, active bool) domain.Quiz {
	t.Helper()

	quiz, err := repo.Create(context.Background(), domain.Quiz{
		Title:         "Bible Knowledge Week 3",
		Question:      "Who led Israel out of Egypt?",
		OptionA:       "Moses",
		OptionB:       "Aaron",
		OptionC:       "Joshua",
		OptionD:       "David",
		CorrectAnswer: "A",
		Password:      "exodus14",
		IsActive:      active,
		StartTime:     now.Add(-time.Hour),
		EndTime:       now.Add(time.Hour),
	})
	require.NoError(t, err)

	return quiz
}

func TestQuizService_VerifyPassword(t *testing.T) {
	now := time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC)

	t.Run("correct password yields a token bound to the quiz", func(t *testing.T) {
		repo := newFakeQuizRepo()
		svc := newQuizServiceAt(repo, now)
		quiz := seedQuiz(t, repo, now, true)

		token, err := svc.VerifyPassword(context.Background(), quiz.ID, "exodus14")

		require.NoError(t, err)
		claims, err := jwthelper.ParseQuizToken(quizTestKey, token)
		require.NoError(t, err)
		assert.Equal(t, quiz.ID, claims.QuizID)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := newFakeQuizRepo()
		svc := newQuizServiceAt(repo, now)
		quiz := seedQuiz(t, repo, now, true)

		_, err := svc.VerifyPassword(context.Background(), quiz.ID, "wrong")
		require.ErrorIs(t, err, ErrWrongQuizPassword)
	})

	t.Run("inactive quiz refuses even the right password", func(t *testing.T) {
		repo := newFakeQuizRepo()
		svc := newQuizServiceAt(repo, now)
		quiz := seedQuiz(t, repo, now, false)

		_, err := svc.VerifyPassword(context.Background(), quiz.ID, "exodus14")
		require.ErrorIs(t, err, ErrQuizNotOpen)
	})

	t.Run("unknown quiz", func(t *testing.T) {
		repo := newFakeQuizRepo()
		svc := newQuizServiceAt(repo, now)

		_, err := svc.VerifyPassword(context.Background(), 42, "exodus14")
		require.ErrorIs(t, err, ErrQuizNotFound)
	})
}

func TestQuizService_Submit(t *testing.T) {
	now := time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC)

	participant := domain.Participant{
		Name:         "Kofi Boateng",
		PhoneNumber:  "0241234567",
		Congregation: "Grace Congregation",
	}

	unlock := func(t *testing.T, svc *QuizService, quizID uint) string {
		t.Helper()

		token, err := svc.VerifyPassword(context.Background(), quizID, "exodus14")
		require.NoError(t, err)

		return token
	}

	t.Run("records a normalized, graded submission", func(t *testing.T) {
		repo := newFakeQuizRepo()
		svc := newQuizServiceAt(repo, now)
		quiz := seedQuiz(t, repo, now, true)
		token := unlock(t, svc, quiz.ID)

		submission, err := svc.Submit(context.Background(), quiz.ID, token, participant, " a ")

		require.NoError(t, err)
		assert.Equal(t, "A", submission.SelectedAnswer)
		assert.True(t, submission.IsCorrect)
		assert.Equal(t, now, submission.SubmittedAt)
	})

	t.Run("a made-up token is refused", func(t *testing.T) {
		repo := newFakeQuizRepo()
		svc := newQuizServiceAt(repo, now)
		quiz := seedQuiz(t, repo, now, true)

		_, err := svc.Submit(context.Background(), quiz.ID, "not-a-token", participant, "A")
		require.ErrorIs(t, err, ErrInvalidAccessToken)
	})

	t.Run("a token for another quiz is refused", func(t *testing.T) {
		repo := newFakeQuizRepo()
		svc := newQuizServiceAt(repo, now)
		quiz := seedQuiz(t, repo, now, true)
		token := unlock(t, svc, quiz.ID)

		other, err := repo.Create(context.Background(), domain.Quiz{
			Title:         "Another quiz",
			CorrectAnswer: "B",
			Password:      "pw",
			IsActive:      true,
			StartTime:     now.Add(-time.Hour),
			EndTime:       now.Add(time.Hour),
		})
		require.NoError(t, err)

		_, err = svc.Submit(context.Background(), other.ID, token, participant, "A")
		require.ErrorIs(t, err, ErrInvalidAccessToken)
	})

	t.Run("one submission per participant per quiz", func(t *testing.T) {
		repo := newFakeQuizRepo()
		svc := newQuizServiceAt(repo, now)
		quiz := seedQuiz(t, repo, now, true)
		token := unlock(t, svc, quiz.ID)

		_, err := svc.Submit(context.Background(), quiz.ID, token, participant, "A")
		require.NoError(t, err)

		_, err = svc.Submit(context.Background(), quiz.ID, token, participant, "B")
		require.ErrorIs(t, err, ErrDuplicateSubmission)
	})

	t.Run("closed quiz refuses submissions even with a live token", func(t *testing.T) {
		repo := newFakeQuizRepo()
		svc := newQuizServiceAt(repo, now)
		quiz := seedQuiz(t, repo, now, true)
		token := unlock(t, svc, quiz.ID)

		_, err := svc.EndQuiz(context.Background(), quiz.ID)
		require.NoError(t, err)

		_, err = svc.Submit(context.Background(), quiz.ID, token, participant, "A")
		require.ErrorIs(t, err, ErrQuizNotOpen)
	})
}

func TestQuizService_CreateQuiz(t *testing.T) {
	now := time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC)
	repo := newFakeQuizRepo()
	svc := newQuizServiceAt(repo, now)

	first := seedQuiz(t, repo, now, true)

	created, err := svc.CreateQuiz(context.Background(), domain.Quiz{
		Title:         "Week 4",
		CorrectAnswer: "b",
		Password:      "pw",
		IsActive:      true,
		StartTime:     now.Add(-time.Minute),
		EndTime:       now.Add(time.Hour),
	})
	require.NoError(t, err)

	assert.Equal(t, "B", created.CorrectAnswer)

	// Creating an active quiz demotes the previously active one.
	previous, err := repo.FindByID(context.Background(), first.ID)
	require.NoError(t, err)
	assert.False(t, previous.IsActive)

	active, err := svc.GetActiveQuiz(context.Background())
	require.NoError(t, err)
	assert.Equal(t, created.ID, active.ID)
}

func TestQuizService_CreateQuizDemotesLapsedActive(t *testing.T) {
	now := time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC)
	repo := newFakeQuizRepo()
	svc := newQuizServiceAt(repo, now)

	// Still flagged active even though its window closed last week.
	stale, err := repo.Create(context.Background(), domain.Quiz{
		Title:         "Week 2",
		CorrectAnswer: "A",
		Password:      "pw",
		IsActive:      true,
		StartTime:     now.Add(-8 * 24 * time.Hour),
		EndTime:       now.Add(-7 * 24 * time.Hour),
	})
	require.NoError(t, err)

	created, err := svc.CreateQuiz(context.Background(), domain.Quiz{
		Title:         "Week 4",
		CorrectAnswer: "C",
		Password:      "pw",
		IsActive:      true,
		StartTime:     now.Add(-time.Minute),
		EndTime:       now.Add(time.Hour),
	})
	require.NoError(t, err)

	demoted, err := repo.FindByID(context.Background(), stale.ID)
	require.NoError(t, err)
	assert.False(t, demoted.IsActive)

	kept, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, kept.IsActive)
}

func TestQuizService_EndQuiz(t *testing.T) {
	now := time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC)
	repo := newFakeQuizRepo()
	svc := newQuizServiceAt(repo, now)
	quiz := seedQuiz(t, repo, now, true)

	ended, err := svc.EndQuiz(context.Background(), quiz.ID)

	require.NoError(t, err)
	assert.False(t, ended.IsActive)
	assert.Equal(t, now, ended.EndTime, "a future end time moves up to now")
}

func TestQuizService_QuizResults(t *testing.T) {
	now := time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC)
	repo := newFakeQuizRepo()
	svc := newQuizServiceAt(repo, now)

	openQuiz := seedQuiz(t, repo, now, true)
	token, err := svc.VerifyPassword(context.Background(), openQuiz.ID, "exodus14")
	require.NoError(t, err)

	submit := func(name, answer string) {
		t.Helper()

		_, err := svc.Submit(context.Background(), openQuiz.ID, token, domain.Participant{
			Name:         name,
			PhoneNumber:  "024000" + name,
			Congregation: "Grace Congregation",
		}, answer)
		require.NoError(t, err)
	}

	submit("one", "A")
	submit("two", "A")
	submit("three", "C")

	// Nothing is disclosed while the quiz is open.
	results, err := svc.QuizResults(context.Background())
	require.NoError(t, err)
	assert.Empty(t, results)

	_, err = svc.EndQuiz(context.Background(), openQuiz.ID)
	require.NoError(t, err)

	svc.now = func() time.Time { return now.Add(time.Minute) }

	results, err = svc.QuizResults(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "A", results[0].CorrectAnswer)
	assert.Equal(t, 3, results[0].TotalSubmissions)
	assert.Equal(t, 2, results[0].TotalCorrect)
}

func TestQuizService_CongregationStats(t *testing.T) {
	now := time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC)
	repo := newFakeQuizRepo()
	svc := newQuizServiceAt(repo, now)
	quiz := seedQuiz(t, repo, now, true)

	submit := func(name, phone, congregation, answer string) {
		t.Helper()

		_, err := repo.CreateSubmission(context.Background(), domain.QuizSubmission{
			QuizID:         quiz.ID,
			Name:           name,
			PhoneNumber:    phone,
			Congregation:   congregation,
			SelectedAnswer: answer,
			IsCorrect:      answer == quiz.CorrectAnswer,
			SubmittedAt:    now,
		})
		require.NoError(t, err)
	}

	// Grace: 3 participants, 2 correct. Bethel: 2 participants, 2 correct.
	// Zion: 2 participants, 2 correct.
	submit("p1", "0240000001", "Grace", "A")
	submit("p2", "0240000002", "Grace", "A")
	submit("p3", "0240000003", "Grace", "B")
	submit("p4", "0240000004", "Bethel", "A")
	submit("p5", "0240000005", "Bethel", "A")
	submit("p6", "0240000006", "Zion", "A")
	submit("p7", "0240000007", "Zion", "A")

	stats, err := svc.CongregationStats(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, 3)

	// Most participants first; equal participants and success rate fall
	// back to name order.
	assert.Equal(t, "Grace", stats[0].Name)
	assert.Equal(t, 1, stats[0].Rank)
	assert.Equal(t, 3, stats[0].TotalParticipants)
	assert.Equal(t, 2, stats[0].TotalCorrectAnswers)
	assert.InDelta(t, 66.7, stats[0].SuccessRate, 0.001)

	assert.Equal(t, "Bethel", stats[1].Name)
	assert.Equal(t, 2, stats[1].Rank)
	assert.InDelta(t, 100.0, stats[1].SuccessRate, 0.001)

	assert.Equal(t, "Zion", stats[2].Name)
	assert.Equal(t, 3, stats[2].Rank)

	require.Len(t, stats[0].QuizParticipation, 1)
	assert.Equal(t, quiz.ID, stats[0].QuizParticipation[0].QuizID)
	assert.Equal(t, quiz.Title, stats[0].QuizParticipation[0].QuizTitle)
	assert.Equal(t, 3, stats[0].QuizParticipation[0].Participants)
	assert.Equal(t, 2, stats[0].QuizParticipation[0].CorrectAnswers)
}

func TestQuizService_CongregationStats_TieBreakBySuccessRate(t *testing.T) {
	now := time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC)
	repo := newFakeQuizRepo()
	svc := newQuizServiceAt(repo, now)
	quiz := seedQuiz(t, repo, now, true)

	submit := func(name, phone, congregation, answer string) {
		t.Helper()

		_, err := repo.CreateSubmission(context.Background(), domain.QuizSubmission{
			QuizID:         quiz.ID,
			Name:           name,
			PhoneNumber:    phone,
			Congregation:   congregation,
			SelectedAnswer: answer,
			IsCorrect:      answer == quiz.CorrectAnswer,
			SubmittedAt:    now,
		})
		require.NoError(t, err)
	}

	// Same participant counts; Zion wins on success rate despite its name.
	submit("p1", "0240000001", "Ascension", "B")
	submit("p2", "0240000002", "Ascension", "B")
	submit("p3", "0240000003", "Zion", "A")
	submit("p4", "0240000004", "Zion", "B")

	stats, err := svc.CongregationStats(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, 2)

	assert.Equal(t, "Zion", stats[0].Name)
	assert.Equal(t, "Ascension", stats[1].Name)
}

func TestSuccessRate(t *testing.T) {
	tests := []struct {
		name         string
		correct      int
		participants int
		want         float64
	}{
		{"zero participants", 3, 0, 0},
		{"all correct", 5, 5, 100},
		{"two thirds rounds to one decimal", 2, 3, 66.7},
		{"one third rounds to one decimal", 1, 3, 33.3},
		{"none correct", 0, 4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, successRate(tt.correct, tt.participants), 0.0001)
		})
	}
}
