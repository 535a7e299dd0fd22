package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/presbyterian-ypg/ypg-api/internal/api/handler/v1/request"
	"github.com/presbyterian-ypg/ypg-api/internal/api/handler/v1/response"
	"github.com/presbyterian-ypg/ypg-api/internal/domain"
	"github.com/presbyterian-ypg/ypg-api/internal/service"
)

type QuizService interface {
	GetActiveQuiz(ctx context.Context) (domain.Quiz, error)
	VerifyPassword(ctx context.Context, quizID uint, password string) (string, error)
	Submit(ctx context.Context, quizID uint, accessToken string, participant domain.Participant, selectedAnswer string) (domain.QuizSubmission, error)
	CreateQuiz(ctx context.Context, quiz domain.Quiz) (domain.Quiz, error)
	EndQuiz(ctx context.Context, id uint) (domain.Quiz, error)
	DeleteQuiz(ctx context.Context, id uint) error
	ListQuizzes(ctx context.Context) ([]domain.Quiz, error)
	QuizResults(ctx context.Context) ([]domain.QuizResult, error)
	CongregationStats(ctx context.Context) ([]domain.CongregationStat, error)
}

type QuizHandler struct {
	svc QuizService
}

func NewQuizHandler(svc QuizService) *QuizHandler {
	return &QuizHandler{
		svc: svc,
	}
}

// HandleGetActiveQuiz godoc
// @Summary      Get the currently active quiz
// @Description  The correct answer and the password are never included
// @Tags         quiz
// @Produce      json
// @Success      200  {object}  domain.Quiz
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /quiz/active [get]
func (h *QuizHandler) HandleGetActiveQuiz(ctx *gin.Context) {
	quiz, err := h.svc.GetActiveQuiz(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrNoActiveQuiz) {
			response.RenderErr(ctx, response.ErrNotFound("active quiz", "now", time.Now().Format(time.RFC3339)))
			return
		}

		err = fmt.Errorf("v1.HandleGetActiveQuiz -> h.svc.GetActiveQuiz -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, quiz)
}

// HandleVerifyQuizPassword godoc
// @Summary      Unlock a quiz with its password
// @Description  A correct password yields a short-lived access token that must accompany the submission
// @Tags         quiz
// @Accept       json
// @Produce      json
// @Param        quizID  path      int                                true  "quiz ID"
// @Param        input   body      request.VerifyQuizPasswordRequest  true  "quiz password"
// @Success      200     {object}  response.QuizAccessResponse
// @Failure      400     {object}  response.Err
// @Failure      401     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /quiz/{quizID}/verify-password [post]
func (h *QuizHandler) HandleVerifyQuizPassword(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "quizID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var input request.VerifyQuizPasswordRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	token, err := h.svc.VerifyPassword(ctx.Request.Context(), id, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrQuizNotFound):
			response.RenderErr(ctx, response.ErrNotFound("quiz", "ID", id))
		case errors.Is(err, service.ErrWrongQuizPassword):
			response.RenderErr(ctx, response.ErrWrongCredentials(err))
		case errors.Is(err, service.ErrQuizNotOpen):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("v1.HandleVerifyQuizPassword -> h.svc.VerifyPassword -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, response.QuizAccessResponse{AccessToken: token})
}

// HandleSubmitQuiz godoc
// @Summary      Submit a quiz answer
// @Description  Requires the access token from verify-password; each participant may submit once per quiz
// @Tags         quiz
// @Accept       json
// @Produce      json
// @Param        quizID  path      int                        true  "quiz ID"
// @Param        input   body      request.SubmitQuizRequest  true  "participant details and answer"
// @Success      201     {object}  response.SubmissionResponse
// @Failure      400     {object}  response.Err
// @Failure      401     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      409     {object}  response.Err
// @Failure      422     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /quiz/{quizID}/submit [post]
func (h *QuizHandler) HandleSubmitQuiz(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "quizID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var input request.SubmitQuizRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrUnprocessableEntity(err))
		return
	}

	participant := domain.Participant{
		Name:         input.Name,
		PhoneNumber:  input.PhoneNumber,
		Congregation: input.Congregation,
	}

	submission, err := h.svc.Submit(ctx.Request.Context(), id, input.AccessToken, participant, input.SelectedAnswer)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrQuizNotFound):
			response.RenderErr(ctx, response.ErrNotFound("quiz", "ID", id))
		case errors.Is(err, service.ErrInvalidAccessToken):
			response.RenderErr(ctx, response.ErrUnauthorized(err))
		case errors.Is(err, service.ErrQuizNotOpen):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		case errors.Is(err, service.ErrDuplicateSubmission):
			response.RenderErr(ctx, response.ErrConflict(err))
		default:
			err = fmt.Errorf("v1.HandleSubmitQuiz -> h.svc.Submit -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, response.SubmissionResponse{
		SubmissionID: submission.ID,
		QuizID:       submission.QuizID,
		Name:         submission.Name,
		Congregation: submission.Congregation,
		SubmittedAt:  submission.SubmittedAt,
		Message:      "answer recorded; results are announced once the quiz ends",
	})
}

// HandleCongregationStats godoc
// @Summary      Congregation quiz leaderboard
// @Description  Congregations ranked by distinct participants, then success rate, then name
// @Tags         quiz
// @Produce      json
// @Success      200  {array}   domain.CongregationStat
// @Failure      500  {object}  response.Err
// @Router       /quiz/congregation-stats [get]
func (h *QuizHandler) HandleCongregationStats(ctx *gin.Context) {
	stats, err := h.svc.CongregationStats(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleCongregationStats -> h.svc.CongregationStats -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// HandleQuizResults godoc
// @Summary      Results of ended quizzes
// @Tags         quiz
// @Produce      json
// @Success      200  {array}   domain.QuizResult
// @Failure      500  {object}  response.Err
// @Router       /quiz/results [get]
func (h *QuizHandler) HandleQuizResults(ctx *gin.Context) {
	results, err := h.svc.QuizResults(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleQuizResults -> h.svc.QuizResults -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, results)
}

// HandleListQuizzes godoc
// @Summary      List all quizzes
// @Tags         quiz
// @Produce      json
// @Success      200  {array}   domain.Quiz
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /quiz [get]
// @Security BearerAuth
func (h *QuizHandler) HandleListQuizzes(ctx *gin.Context) {
	quizzes, err := h.svc.ListQuizzes(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListQuizzes -> h.svc.ListQuizzes -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, quizzes)
}

// HandleCreateQuiz godoc
// @Summary      Create a quiz
// @Description  Creating an active quiz deactivates any other active quiz first
// @Tags         quiz
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateQuizRequest  true  "quiz details"
// @Success      201    {object}  domain.Quiz
// @Failure      400    {object}  response.Err
// @Failure      401    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /quiz [post]
// @Security BearerAuth
func (h *QuizHandler) HandleCreateQuiz(ctx *gin.Context) {
	var input request.CreateQuizRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	startTime, err := time.Parse(time.RFC3339, input.StartTime)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid start_time: %v", err)))
		return
	}

	endTime, err := time.Parse(time.RFC3339, input.EndTime)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid end_time: %v", err)))
		return
	}

	if !endTime.After(startTime) {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("end_time must be after start_time")))
		return
	}

	quiz := domain.Quiz{
		Title:         input.Title,
		Description:   input.Description,
		Question:      input.Question,
		OptionA:       input.OptionA,
		OptionB:       input.OptionB,
		OptionC:       input.OptionC,
		OptionD:       input.OptionD,
		CorrectAnswer: input.CorrectAnswer,
		Password:      input.Password,
		IsActive:      input.IsActive,
		StartTime:     startTime,
		EndTime:       endTime,
	}

	created, err := h.svc.CreateQuiz(ctx.Request.Context(), quiz)
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateQuiz -> h.svc.CreateQuiz -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleEndQuiz godoc
// @Summary      End a quiz
// @Tags         quiz
// @Produce      json
// @Param        quizID  path      int  true  "quiz ID"
// @Success      200     {object}  domain.Quiz
// @Failure      400     {object}  response.Err
// @Failure      401     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /quiz/{quizID}/end [post]
// @Security BearerAuth
func (h *QuizHandler) HandleEndQuiz(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "quizID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	quiz, err := h.svc.EndQuiz(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrQuizNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("quiz", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleEndQuiz -> h.svc.EndQuiz -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, quiz)
}

// HandleDeleteQuiz godoc
// @Summary      Delete a quiz and its submissions
// @Tags         quiz
// @Produce      json
// @Param        quizID  path      int  true  "quiz ID"
// @Success      200     {object}  map[string]string
// @Failure      400     {object}  response.Err
// @Failure      401     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /quiz/{quizID} [delete]
// @Security BearerAuth
func (h *QuizHandler) HandleDeleteQuiz(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "quizID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.DeleteQuiz(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrQuizNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("quiz", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteQuiz -> h.svc.DeleteQuiz -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "quiz deleted"})
}
