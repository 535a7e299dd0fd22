package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/presbyterian-ypg/ypg-api/internal/domain"
	"github.com/presbyterian-ypg/ypg-api/internal/pkg/jwthelper"
	"github.com/presbyterian-ypg/ypg-api/internal/repository"
)

var (
	ErrQuizNotFound        = repository.ErrQuizNotFound
	ErrNoActiveQuiz        = repository.ErrNoActiveQuiz
	ErrDuplicateSubmission = repository.ErrDuplicateSubmission
	ErrWrongQuizPassword   = errors.New("wrong quiz password")
	ErrQuizNotOpen         = errors.New("quiz is not open for submissions")
	ErrInvalidAccessToken  = errors.New("missing or invalid quiz access token")
)

// quizTokenTTL bounds how long an unlocked submission form stays usable.
const quizTokenTTL = 30 * time.Minute

type QuizRepository interface {
	Create(ctx context.Context, quiz domain.Quiz) (domain.Quiz, error)
	FindByID(ctx context.Context, id uint) (domain.Quiz, error)
	FindActive(ctx context.Context, now time.Time) (domain.Quiz, error)
	FindAll(ctx context.Context) ([]domain.Quiz, error)
	FindEnded(ctx context.Context, now time.Time) ([]domain.Quiz, error)
	Update(ctx context.Context, quiz domain.Quiz) (domain.Quiz, error)
	DeactivateAll(ctx context.Context) error
	Delete(ctx context.Context, id uint) error
	CreateSubmission(ctx context.Context, submission domain.QuizSubmission) (domain.QuizSubmission, error)
	FindSubmissionsByQuizID(ctx context.Context, quizID uint) ([]domain.QuizSubmission, error)
	FindAllSubmissions(ctx context.Context) ([]domain.QuizSubmission, error)
}

// QuizService is the participant-facing access gate plus the admin quiz
// management surface and the congregation leaderboard projection.
type QuizService struct {
	repo       QuizRepository
	signingKey []byte
	now        func() time.Time
}

func NewQuizService(repo QuizRepository, signingKey []byte) *QuizService {
	return &QuizService{
		repo:       repo,
		signingKey: signingKey,
		now:        time.Now,
	}
}

func (s *QuizService) GetActiveQuiz(ctx context.Context) (domain.Quiz, error) {
	quiz, err := s.repo.FindActive(ctx, s.now())
	if err != nil {
		return domain.Quiz{}, fmt.Errorf("s.repo.FindActive -> %w", err)
	}

	return quiz, nil
}

// VerifyPassword checks the candidate against the quiz's stored password
// and, on a match, issues a short-lived access token scoped to that quiz.
// The token, not the password check itself, is what authorizes a submit.
func (s *QuizService) VerifyPassword(ctx context.Context, quizID uint, password string) (string, error) {
	quiz, err := s.repo.FindByID(ctx, quizID)
	if err != nil {
		return "", fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if !quiz.IsCurrentlyActive(s.now()) {
		return "", ErrQuizNotOpen
	}

	if quiz.Password != password {
		return "", ErrWrongQuizPassword
	}

	token, err := jwthelper.GenerateQuizToken(s.signingKey, quiz.ID, quizTokenTTL)
	if err != nil {
		return "", fmt.Errorf("jwthelper.GenerateQuizToken -> %w", err)
	}

	return token, nil
}

// Submit records a participant's answer. The submission is immutable and a
// participant (name + phone + congregation) can submit at most once per
// quiz; the store's unique index is the final arbiter under concurrency.
func (s *QuizService) Submit(ctx context.Context, quizID uint, accessToken string, participant domain.Participant, selectedAnswer string) (domain.QuizSubmission, error) {
	claims, err := jwthelper.ParseQuizToken(s.signingKey, accessToken)
	if err != nil || claims.QuizID != quizID {
		return domain.QuizSubmission{}, ErrInvalidAccessToken
	}

	quiz, err := s.repo.FindByID(ctx, quizID)
	if err != nil {
		return domain.QuizSubmission{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if !quiz.IsCurrentlyActive(s.now()) {
		return domain.QuizSubmission{}, ErrQuizNotOpen
	}

	answer := strings.ToUpper(strings.TrimSpace(selectedAnswer))

	submission := domain.QuizSubmission{
		QuizID:         quiz.ID,
		Name:           strings.TrimSpace(participant.Name),
		PhoneNumber:    strings.TrimSpace(participant.PhoneNumber),
		Congregation:   strings.TrimSpace(participant.Congregation),
		SelectedAnswer: answer,
		IsCorrect:      quiz.CheckAnswer(answer),
		SubmittedAt:    s.now(),
	}

	created, err := s.repo.CreateSubmission(ctx, submission)
	if err != nil {
		if errors.Is(err, ErrDuplicateSubmission) {
			return domain.QuizSubmission{}, ErrDuplicateSubmission
		}

		return domain.QuizSubmission{}, fmt.Errorf("s.repo.CreateSubmission -> %w", err)
	}

	return created, nil
}

func (s *QuizService) CreateQuiz(ctx context.Context, quiz domain.Quiz) (domain.Quiz, error) {
	// Only one quiz may be active at a time.
	if quiz.IsActive {
		if err := s.deactivateActive(ctx); err != nil {
			return domain.Quiz{}, err
		}
	}

	quiz.CorrectAnswer = strings.ToUpper(quiz.CorrectAnswer)

	created, err := s.repo.Create(ctx, quiz)
	if err != nil {
		return domain.Quiz{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// deactivateActive retires every quiz still flagged active, whether or not
// its time window has lapsed, so the store never holds two active rows.
func (s *QuizService) deactivateActive(ctx context.Context) error {
	if err := s.repo.DeactivateAll(ctx); err != nil {
		return fmt.Errorf("s.repo.DeactivateAll -> %w", err)
	}

	return nil
}

// EndQuiz closes a quiz for submissions and moves its end time up so the
// results become disclosable immediately.
func (s *QuizService) EndQuiz(ctx context.Context, id uint) (domain.Quiz, error) {
	quiz, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Quiz{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	quiz.IsActive = false
	if now := s.now(); quiz.EndTime.After(now) {
		quiz.EndTime = now
	}

	updated, err := s.repo.Update(ctx, quiz)
	if err != nil {
		return domain.Quiz{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *QuizService) DeleteQuiz(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func (s *QuizService) ListQuizzes(ctx context.Context) ([]domain.Quiz, error) {
	quizzes, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return quizzes, nil
}

// QuizResults discloses outcomes for ended quizzes only; answers stay
// hidden while a quiz is open.
func (s *QuizService) QuizResults(ctx context.Context) ([]domain.QuizResult, error) {
	ended, err := s.repo.FindEnded(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindEnded -> %w", err)
	}

	results := make([]domain.QuizResult, 0, len(ended))
	for _, quiz := range ended {
		submissions, err := s.repo.FindSubmissionsByQuizID(ctx, quiz.ID)
		if err != nil {
			return nil, fmt.Errorf("s.repo.FindSubmissionsByQuizID -> %w", err)
		}

		correct := 0
		for _, sub := range submissions {
			if sub.IsCorrect {
				correct++
			}
		}

		results = append(results, domain.QuizResult{
			Quiz:             quiz,
			CorrectAnswer:    quiz.CorrectAnswer,
			TotalSubmissions: len(submissions),
			TotalCorrect:     correct,
			Submissions:      submissions,
		})
	}

	return results, nil
}

// CongregationStats recomputes the leaderboard from scratch on every call:
// per congregation, distinct participants, correct answers, distinct
// quizzes and a per-quiz breakdown. Rank orders by participants, ties by
// success rate.
func (s *QuizService) CongregationStats(ctx context.Context) ([]domain.CongregationStat, error) {
	quizzes, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	submissions, err := s.repo.FindAllSubmissions(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAllSubmissions -> %w", err)
	}

	quizTitles := make(map[uint]string, len(quizzes))
	for _, q := range quizzes {
		quizTitles[q.ID] = q.Title
	}

	type congregationAgg struct {
		participants map[string]struct{}
		correct      int
		perQuiz      map[uint]*domain.QuizParticipation
	}

	aggs := make(map[string]*congregationAgg)
	for _, sub := range submissions {
		agg, ok := aggs[sub.Congregation]
		if !ok {
			agg = &congregationAgg{
				participants: make(map[string]struct{}),
				perQuiz:      make(map[uint]*domain.QuizParticipation),
			}
			aggs[sub.Congregation] = agg
		}

		agg.participants[sub.Name+"|"+sub.PhoneNumber] = struct{}{}

		pq, ok := agg.perQuiz[sub.QuizID]
		if !ok {
			pq = &domain.QuizParticipation{
				QuizID:    sub.QuizID,
				QuizTitle: quizTitles[sub.QuizID],
			}
			agg.perQuiz[sub.QuizID] = pq
		}
		pq.Participants++

		if sub.IsCorrect {
			agg.correct++
			pq.CorrectAnswers++
		}
	}

	stats := make([]domain.CongregationStat, 0, len(aggs))
	for name, agg := range aggs {
		participation := make([]domain.QuizParticipation, 0, len(agg.perQuiz))
		for _, pq := range agg.perQuiz {
			participation = append(participation, *pq)
		}
		sort.Slice(participation, func(i, j int) bool {
			return participation[i].QuizID < participation[j].QuizID
		})

		stats = append(stats, domain.CongregationStat{
			Name:                name,
			TotalParticipants:   len(agg.participants),
			TotalCorrectAnswers: agg.correct,
			TotalQuizzes:        len(agg.perQuiz),
			SuccessRate:         successRate(agg.correct, len(agg.participants)),
			QuizParticipation:   participation,
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].TotalParticipants != stats[j].TotalParticipants {
			return stats[i].TotalParticipants > stats[j].TotalParticipants
		}
		if stats[i].SuccessRate != stats[j].SuccessRate {
			return stats[i].SuccessRate > stats[j].SuccessRate
		}

		return stats[i].Name < stats[j].Name
	})

	for i := range stats {
		stats[i].Rank = i + 1
	}

	return stats, nil
}

// successRate is the percentage of correct answers per distinct
// participant, rounded to one decimal. Zero participants means zero,
// never a division error.
func successRate(correct, participants int) float64 {
	if participants == 0 {
		return 0
	}

	return math.Round(float64(correct)/float64(participants)*1000) / 10
}
