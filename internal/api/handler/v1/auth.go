package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/presbyterian-ypg/ypg-api/internal/api/handler/v1/request"
	"github.com/presbyterian-ypg/ypg-api/internal/api/handler/v1/response"
	"github.com/presbyterian-ypg/ypg-api/internal/api/middleware"
	"github.com/presbyterian-ypg/ypg-api/internal/domain"
	"github.com/presbyterian-ypg/ypg-api/internal/pkg/jwthelper"
	"github.com/presbyterian-ypg/ypg-api/internal/service"
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (domain.Supervisor, error)
	GetSupervisor(ctx context.Context, id uint) (domain.Supervisor, error)
	ChangeCredentials(ctx context.Context, id uint, currentPassword, newUsername, newPassword string) (domain.Supervisor, error)
}

type AuthHandler struct {
	svc        AuthService
	signingKey []byte
}

func NewAuthHandler(svc AuthService, signingKey []byte) *AuthHandler {
	return &AuthHandler{
		svc:        svc,
		signingKey: signingKey,
	}
}

// HandleLogin godoc
// @Summary      Supervisor login
// @Description  Issues a JWT bound to the requesting user agent
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input  body      request.LoginRequest  true  "credentials"
// @Success      200    {object}  response.LoginResponse
// @Failure      400    {object}  response.Err
// @Failure      401    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /auth/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	var input request.LoginRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	supervisor, err := h.svc.Login(ctx.Request.Context(), input.Username, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrSupervisorNotFound) || errors.Is(err, service.ErrWrongPassword) {
			response.RenderErr(ctx, response.ErrWrongCredentials(errors.New("wrong username or password")))
			return
		}

		err = fmt.Errorf("v1.HandleLogin -> h.svc.Login -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	token, err := jwthelper.GenerateToken(h.signingKey, supervisor.ID, ctx.Request.UserAgent())
	if err != nil {
		err = fmt.Errorf("v1.HandleLogin -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.LoginResponse{
		Token:      token,
		Supervisor: supervisor,
	})
}

// HandleGetCurrentSupervisor godoc
// @Summary      Get the authenticated supervisor
// @Tags         auth
// @Produce      json
// @Success      200  {object}  domain.Supervisor
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /auth/me [get]
// @Security BearerAuth
func (h *AuthHandler) HandleGetCurrentSupervisor(ctx *gin.Context) {
	id, ok := ctx.Value(middleware.ContextKeySupervisorID).(uint)
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthorized(errors.New("missing authenticated supervisor")))
		return
	}

	supervisor, err := h.svc.GetSupervisor(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSupervisorNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("supervisor", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleGetCurrentSupervisor -> h.svc.GetSupervisor -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, supervisor)
}

// HandleChangeCredentials godoc
// @Summary      Change the supervisor's username or password
// @Description  Requires the current password; previously issued tokens stay valid until expiry
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input  body      request.ChangeCredentialsRequest  true  "credential changes"
// @Success      200    {object}  domain.Supervisor
// @Failure      400    {object}  response.Err
// @Failure      401    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /auth/credentials [put]
// @Security BearerAuth
func (h *AuthHandler) HandleChangeCredentials(ctx *gin.Context) {
	id, ok := ctx.Value(middleware.ContextKeySupervisorID).(uint)
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthorized(errors.New("missing authenticated supervisor")))
		return
	}

	var input request.ChangeCredentialsRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	supervisor, err := h.svc.ChangeCredentials(ctx.Request.Context(), id, input.CurrentPassword, input.NewUsername, input.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWrongPassword):
			response.RenderErr(ctx, response.ErrWrongCredentials(err))
		case errors.Is(err, service.ErrSupervisorNotFound):
			response.RenderErr(ctx, response.ErrNotFound("supervisor", "ID", id))
		default:
			err = fmt.Errorf("v1.HandleChangeCredentials -> h.svc.ChangeCredentials -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, supervisor)
}
