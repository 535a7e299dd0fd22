package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/presbyterian-ypg/ypg-api/internal/domain"
	"github.com/presbyterian-ypg/ypg-api/internal/service"
)

type stubQuizService struct {
	activeQuiz domain.Quiz
	activeErr  error

	verifyToken string
	verifyErr   error

	submission domain.QuizSubmission
	submitErr  error

	stats []domain.CongregationStat
}

func (s *stubQuizService) GetActiveQuiz(context.Context) (domain.Quiz, error) {
	return s.activeQuiz, s.activeErr
}

func (s *stubQuizService) VerifyPassword(context.Context, uint, string) (string, error) {
	return s.verifyToken, s.verifyErr
}

func (s *stubQuizService) Submit(context.Context, uint, string, domain.Participant, string) (domain.QuizSubmission, error) {
	return s.submission, s.submitErr
}

func (s *stubQuizService) CreateQuiz(_ context.Context, quiz domain.Quiz) (domain.Quiz, error) {
	return quiz, nil
}

func (s *stubQuizService) EndQuiz(context.Context, uint) (domain.Quiz, error) {
	return domain.Quiz{}, nil
}

func (s *stubQuizService) DeleteQuiz(context.Context, uint) error {
	return nil
}

func (s *stubQuizService) ListQuizzes(context.Context) ([]domain.Quiz, error) {
	return nil, nil
}

func (s *stubQuizService) QuizResults(context.Context) ([]domain.QuizResult, error) {
	return nil, nil
}

func (s *stubQuizService) CongregationStats(context.Context) ([]domain.CongregationStat, error) {
	return s.stats, nil
}

func newQuizRouter(stub *stubQuizService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewQuizHandler(stub)

	router := gin.New()
	router.GET("/quiz/active", handler.HandleGetActiveQuiz)
	router.GET("/quiz/congregation-stats", handler.HandleCongregationStats)
	router.POST("/quiz/:quizID/verify-password", handler.HandleVerifyQuizPassword)
	router.POST("/quiz/:quizID/submit", handler.HandleSubmitQuiz)

	return router
}

func TestHandleGetActiveQuiz(t *testing.T) {
	t.Run("active quiz never leaks the answer or password", func(t *testing.T) {
		router := newQuizRouter(&stubQuizService{
			activeQuiz: domain.Quiz{
				ID:            1,
				Title:         "Week 3",
				CorrectAnswer: "A",
				Password:      "exodus14",
			},
		})

		req := httptest.NewRequest(http.MethodGet, "/quiz/active", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "exodus14")
		assert.NotContains(t, rec.Body.String(), "correct_answer")
	})

	t.Run("no active quiz is a 404", func(t *testing.T) {
		router := newQuizRouter(&stubQuizService{activeErr: service.ErrNoActiveQuiz})

		req := httptest.NewRequest(http.MethodGet, "/quiz/active", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandleVerifyQuizPassword(t *testing.T) {
	body := `{"password":"exodus14"}`

	t.Run("issues an access token", func(t *testing.T) {
		router := newQuizRouter(&stubQuizService{verifyToken: "the-token"})

		req := httptest.NewRequest(http.MethodPost, "/quiz/1/verify-password", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "the-token", resp["access_token"])
	})

	t.Run("wrong password is a 401", func(t *testing.T) {
		router := newQuizRouter(&stubQuizService{verifyErr: service.ErrWrongQuizPassword})

		req := httptest.NewRequest(http.MethodPost, "/quiz/1/verify-password", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("closed quiz is a 400", func(t *testing.T) {
		router := newQuizRouter(&stubQuizService{verifyErr: service.ErrQuizNotOpen})

		req := httptest.NewRequest(http.MethodPost, "/quiz/1/verify-password", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleSubmitQuiz(t *testing.T) {
	body := `{
		"name": "Kofi Boateng",
		"phone_number": "0241234567",
		"congregation": "Grace",
		"selected_answer": "A",
		"access_token": "the-token"
	}`

	t.Run("stores the submission without disclosing correctness", func(t *testing.T) {
		submittedAt := time.Date(2025, 6, 1, 19, 5, 0, 0, time.UTC)
		router := newQuizRouter(&stubQuizService{
			submission: domain.QuizSubmission{
				ID:           10,
				QuizID:       1,
				Name:         "Kofi Boateng",
				Congregation: "Grace",
				IsCorrect:    true,
				SubmittedAt:  submittedAt,
			},
		})

		req := httptest.NewRequest(http.MethodPost, "/quiz/1/submit", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.NotContains(t, rec.Body.String(), "is_correct")
	})

	t.Run("duplicate participant is a 409", func(t *testing.T) {
		router := newQuizRouter(&stubQuizService{submitErr: service.ErrDuplicateSubmission})

		req := httptest.NewRequest(http.MethodPost, "/quiz/1/submit", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("bad access token is a 401", func(t *testing.T) {
		router := newQuizRouter(&stubQuizService{submitErr: service.ErrInvalidAccessToken})

		req := httptest.NewRequest(http.MethodPost, "/quiz/1/submit", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid participant details are a 422", func(t *testing.T) {
		router := newQuizRouter(&stubQuizService{})

		invalid := `{"name":"K","phone_number":"123","congregation":"","selected_answer":"E","access_token":""}`
		req := httptest.NewRequest(http.MethodPost, "/quiz/1/submit", strings.NewReader(invalid))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestHandleCongregationStats(t *testing.T) {
	router := newQuizRouter(&stubQuizService{
		stats: []domain.CongregationStat{
			{Name: "Grace", Rank: 1, TotalParticipants: 3, SuccessRate: 66.7},
			{Name: "Bethel", Rank: 2, TotalParticipants: 2, SuccessRate: 100},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/quiz/congregation-stats", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var stats []domain.CongregationStat
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	require.Len(t, stats, 2)
	assert.Equal(t, "Grace", stats[0].Name)
	assert.Equal(t, 1, stats[0].Rank)
}
