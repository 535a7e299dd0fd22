package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/presbyterian-ypg/ypg-api/internal/domain"
	"github.com/presbyterian-ypg/ypg-api/internal/repository/dao"
)

var (
	ErrQuizNotFound        = dao.ErrQuizNotFound
	ErrNoActiveQuiz        = dao.ErrNoActiveQuiz
	ErrDuplicateSubmission = dao.ErrDuplicateSubmission
)

type QuizDAO interface {
	Insert(ctx context.Context, quiz dao.Quiz) (dao.Quiz, error)
	FindByID(ctx context.Context, id uint) (dao.Quiz, error)
	FindActive(ctx context.Context, now time.Time) (dao.Quiz, error)
	FindAll(ctx context.Context) ([]dao.Quiz, error)
	FindEnded(ctx context.Context, now time.Time) ([]dao.Quiz, error)
	Save(ctx context.Context, quiz dao.Quiz) (dao.Quiz, error)
	DeactivateAll(ctx context.Context) error
	Delete(ctx context.Context, id uint) error
	InsertSubmission(ctx context.Context, submission dao.QuizSubmission) (dao.QuizSubmission, error)
	FindSubmissionsByQuizID(ctx context.Context, quizID uint) ([]dao.QuizSubmission, error)
	FindAllSubmissions(ctx context.Context) ([]dao.QuizSubmission, error)
}

type QuizRepository struct {
	dao QuizDAO
}

func NewQuizRepository(dao QuizDAO) *QuizRepository {
	return &QuizRepository{
		dao: dao,
	}
}

func (r *QuizRepository) Create(ctx context.Context, quiz domain.Quiz) (domain.Quiz, error) {
	created, err := r.dao.Insert(ctx, quizDomainToDAO(quiz))
	if err != nil {
		return domain.Quiz{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return quizDAOToDomain(created), nil
}

func (r *QuizRepository) FindByID(ctx context.Context, id uint) (domain.Quiz, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Quiz{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return quizDAOToDomain(found), nil
}

func (r *QuizRepository) FindActive(ctx context.Context, now time.Time) (domain.Quiz, error) {
	found, err := r.dao.FindActive(ctx, now)
	if err != nil {
		return domain.Quiz{}, fmt.Errorf("r.dao.FindActive -> %w", err)
	}

	return quizDAOToDomain(found), nil
}

func (r *QuizRepository) FindAll(ctx context.Context) ([]domain.Quiz, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	quizzes := make([]domain.Quiz, 0, len(found))
	for _, q := range found {
		quizzes = append(quizzes, quizDAOToDomain(q))
	}

	return quizzes, nil
}

func (r *QuizRepository) FindEnded(ctx context.Context, now time.Time) ([]domain.Quiz, error) {
	found, err := r.dao.FindEnded(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindEnded -> %w", err)
	}

	quizzes := make([]domain.Quiz, 0, len(found))
	for _, q := range found {
		quizzes = append(quizzes, quizDAOToDomain(q))
	}

	return quizzes, nil
}

func (r *QuizRepository) Update(ctx context.Context, quiz domain.Quiz) (domain.Quiz, error) {
	updated, err := r.dao.Save(ctx, quizDomainToDAO(quiz))
	if err != nil {
		return domain.Quiz{}, fmt.Errorf("r.dao.Save -> %w", err)
	}

	return quizDAOToDomain(updated), nil
}

func (r *QuizRepository) DeactivateAll(ctx context.Context) error {
	if err := r.dao.DeactivateAll(ctx); err != nil {
		return fmt.Errorf("r.dao.DeactivateAll -> %w", err)
	}

	return nil
}

func (r *QuizRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

// CreateSubmission relies on the store's composite unique index for the
// one-submission rule; a duplicate surfaces as ErrDuplicateSubmission.
func (r *QuizRepository) CreateSubmission(ctx context.Context, submission domain.QuizSubmission) (domain.QuizSubmission, error) {
	created, err := r.dao.InsertSubmission(ctx, submissionDomainToDAO(submission))
	if err != nil {
		return domain.QuizSubmission{}, fmt.Errorf("r.dao.InsertSubmission -> %w", err)
	}

	return submissionDAOToDomain(created), nil
}

func (r *QuizRepository) FindSubmissionsByQuizID(ctx context.Context, quizID uint) ([]domain.QuizSubmission, error) {
	found, err := r.dao.FindSubmissionsByQuizID(ctx, quizID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindSubmissionsByQuizID -> %w", err)
	}

	submissions := make([]domain.QuizSubmission, 0, len(found))
	for _, s := range found {
		submissions = append(submissions, submissionDAOToDomain(s))
	}

	return submissions, nil
}

func (r *QuizRepository) FindAllSubmissions(ctx context.Context) ([]domain.QuizSubmission, error) {
	found, err := r.dao.FindAllSubmissions(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllSubmissions -> %w", err)
	}

	submissions := make([]domain.QuizSubmission, 0, len(found))
	for _, s := range found {
		submissions = append(submissions, submissionDAOToDomain(s))
	}

	return submissions, nil
}

func quizDomainToDAO(q domain.Quiz) dao.Quiz {
	return dao.Quiz{
		ID:            q.ID,
		Title:         q.Title,
		Description:   q.Description,
		Question:      q.Question,
		OptionA:       q.OptionA,
		OptionB:       q.OptionB,
		OptionC:       q.OptionC,
		OptionD:       q.OptionD,
		CorrectAnswer: q.CorrectAnswer,
		Password:      q.Password,
		IsActive:      q.IsActive,
		StartTime:     q.StartTime,
		EndTime:       q.EndTime,
	}
}

func quizDAOToDomain(q dao.Quiz) domain.Quiz {
	return domain.Quiz{
		ID:            q.ID,
		Title:         q.Title,
		Description:   q.Description,
		Question:      q.Question,
		OptionA:       q.OptionA,
		OptionB:       q.OptionB,
		OptionC:       q.OptionC,
		OptionD:       q.OptionD,
		CorrectAnswer: q.CorrectAnswer,
		Password:      q.Password,
		IsActive:      q.IsActive,
		StartTime:     q.StartTime,
		EndTime:       q.EndTime,
		CreatedAt:     q.CreatedAt,
	}
}

func submissionDomainToDAO(s domain.QuizSubmission) dao.QuizSubmission {
	return dao.QuizSubmission{
		ID:             s.ID,
		QuizID:         s.QuizID,
		Name:           s.Name,
		PhoneNumber:    s.PhoneNumber,
		Congregation:   s.Congregation,
		SelectedAnswer: s.SelectedAnswer,
		IsCorrect:      s.IsCorrect,
		SubmittedAt:    s.SubmittedAt,
	}
}

func submissionDAOToDomain(s dao.QuizSubmission) domain.QuizSubmission {
	return domain.QuizSubmission{
		ID:             s.ID,
		QuizID:         s.QuizID,
		Name:           s.Name,
		PhoneNumber:    s.PhoneNumber,
		Congregation:   s.Congregation,
		SelectedAnswer: s.SelectedAnswer,
		IsCorrect:      s.IsCorrect,
		SubmittedAt:    s.SubmittedAt,
	}
}
