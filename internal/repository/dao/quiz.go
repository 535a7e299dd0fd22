package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrQuizNotFound        = errors.New("quiz not found")
	ErrNoActiveQuiz        = errors.New("no active quiz")
	ErrDuplicateSubmission = errors.New("submission already exists for this participant")
)

type Quiz struct {
	ID            uint   `gorm:"primaryKey"`
	Title         string `gorm:"not null"`
	Description   string
	Question      string    `gorm:"not null"`
	OptionA       string    `gorm:"not null"`
	OptionB       string    `gorm:"not null"`
	OptionC       string    `gorm:"not null"`
	OptionD       string    `gorm:"not null"`
	CorrectAnswer string    `gorm:"not null"`
	Password      string    `gorm:"not null"`
	IsActive      bool      `gorm:"default:true;index"`
	StartTime     time.Time `gorm:"not null"`
	EndTime       time.Time `gorm:"not null"`
	CreatedAt     time.Time
}

// QuizSubmission carries a composite unique index over the quiz and the
// participant's natural key, so the one-submission-per-participant rule
// holds even under concurrent submits.
type QuizSubmission struct {
	ID             uint   `gorm:"primaryKey"`
	QuizID         uint   `gorm:"not null;uniqueIndex:idx_quiz_participant"`
	Name           string `gorm:"not null;uniqueIndex:idx_quiz_participant"`
	PhoneNumber    string `gorm:"not null;uniqueIndex:idx_quiz_participant"`
	Congregation   string `gorm:"not null;uniqueIndex:idx_quiz_participant;index"`
	SelectedAnswer string `gorm:"not null"`
	IsCorrect      bool   `gorm:"not null;default:false"`
	SubmittedAt    time.Time
}

type QuizDAO struct {
	db *gorm.DB
}

func NewQuizDAO(db *gorm.DB) *QuizDAO {
	return &QuizDAO{
		db: db,
	}
}

func (d *QuizDAO) Insert(ctx context.Context, quiz Quiz) (Quiz, error) {
	result := d.db.WithContext(ctx).Create(&quiz)
	if result.Error != nil {
		return Quiz{}, result.Error
	}

	return quiz, nil
}

func (d *QuizDAO) FindByID(ctx context.Context, id uint) (Quiz, error) {
	var quiz Quiz

	result := d.db.WithContext(ctx).First(&quiz, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Quiz{}, ErrQuizNotFound
		}

		return Quiz{}, result.Error
	}

	return quiz, nil
}

func (d *QuizDAO) FindActive(ctx context.Context, now time.Time) (Quiz, error) {
	var quiz Quiz

	result := d.db.WithContext(ctx).
		Where("is_active = ? AND start_time <= ? AND end_time >= ?", true, now, now).
		First(&quiz)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Quiz{}, ErrNoActiveQuiz
		}

		return Quiz{}, result.Error
	}

	return quiz, nil
}

func (d *QuizDAO) FindAll(ctx context.Context) ([]Quiz, error) {
	var quizzes []Quiz

	result := d.db.WithContext(ctx).Order("created_at DESC").Find(&quizzes)
	if result.Error != nil {
		return nil, result.Error
	}

	return quizzes, nil
}

func (d *QuizDAO) FindEnded(ctx context.Context, now time.Time) ([]Quiz, error) {
	var quizzes []Quiz

	result := d.db.WithContext(ctx).
		Where("end_time < ?", now).
		Order("end_time DESC").
		Find(&quizzes)
	if result.Error != nil {
		return nil, result.Error
	}

	return quizzes, nil
}

func (d *QuizDAO) Save(ctx context.Context, quiz Quiz) (Quiz, error) {
	result := d.db.WithContext(ctx).Save(&quiz)
	if result.Error != nil {
		return Quiz{}, result.Error
	}

	return quiz, nil
}

// DeactivateAll clears the active flag on every quiz, including rows whose
// activity window has already lapsed.
func (d *QuizDAO) DeactivateAll(ctx context.Context) error {
	result := d.db.WithContext(ctx).
		Model(&Quiz{}).
		Where("is_active = ?", true).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}

	return nil
}

func (d *QuizDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Quiz{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrQuizNotFound
	}

	return nil
}

func (d *QuizDAO) InsertSubmission(ctx context.Context, submission QuizSubmission) (QuizSubmission, error) {
	result := d.db.WithContext(ctx).Create(&submission)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) &&
			err.Code == pgerrcode.UniqueViolation &&
			strings.Contains(err.Message, "idx_quiz_participant") {
			return QuizSubmission{}, ErrDuplicateSubmission
		}

		return QuizSubmission{}, result.Error
	}

	return submission, nil
}

func (d *QuizDAO) FindSubmission(ctx context.Context, quizID uint, name, phoneNumber, congregation string) (QuizSubmission, error) {
	var submission QuizSubmission

	result := d.db.WithContext(ctx).
		Where("quiz_id = ? AND name = ? AND phone_number = ? AND congregation = ?",
			quizID, name, phoneNumber, congregation).
		First(&submission)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return QuizSubmission{}, gorm.ErrRecordNotFound
		}

		return QuizSubmission{}, result.Error
	}

	return submission, nil
}

func (d *QuizDAO) FindSubmissionsByQuizID(ctx context.Context, quizID uint) ([]QuizSubmission, error) {
	var submissions []QuizSubmission

	result := d.db.WithContext(ctx).
		Where("quiz_id = ?", quizID).
		Order("submitted_at ASC").
		Find(&submissions)
	if result.Error != nil {
		return nil, result.Error
	}

	return submissions, nil
}

func (d *QuizDAO) FindAllSubmissions(ctx context.Context) ([]QuizSubmission, error) {
	var submissions []QuizSubmission

	result := d.db.WithContext(ctx).Order("submitted_at ASC").Find(&submissions)
	if result.Error != nil {
		return nil, result.Error
	}

	return submissions, nil
}
