package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/presbyterian-ypg/ypg-api/internal/api/handler/v1/request"
	"github.com/presbyterian-ypg/ypg-api/internal/api/handler/v1/response"
	"github.com/presbyterian-ypg/ypg-api/internal/domain"
	"github.com/presbyterian-ypg/ypg-api/internal/service"
)

// HandleListMinistryRegistrations godoc
// @Summary      List ministry registrations
// @Tags         ministry
// @Produce      json
// @Param        scope  query     string  false  "listing scope"
// @Success      200    {array}   domain.MinistryRegistration
// @Failure      400    {object}  response.Err
// @Failure      401    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /ministry-registrations [get]
// @Security BearerAuth
func (h *ContentHandler) HandleListMinistryRegistrations(ctx *gin.Context) {
	scope, respErr := parseListScope(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	registrations, err := h.svc.ListMinistryRegistrations(ctx.Request.Context(), scope)
	if err != nil {
		err = fmt.Errorf("v1.HandleListMinistryRegistrations -> h.svc.ListMinistryRegistrations -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, registrations)
}

// HandleCreateMinistryRegistration godoc
// @Summary      Sign up for a ministry
// @Description  Public endpoint; registrations start unapproved
// @Tags         ministry
// @Accept       json
// @Produce      json
// @Param        input  body      request.MinistryRegistrationRequest  true  "registration details"
// @Success      201    {object}  domain.MinistryRegistration
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /ministry-registrations [post]
func (h *ContentHandler) HandleCreateMinistryRegistration(ctx *gin.Context) {
	var input request.MinistryRegistrationRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	registration := domain.MinistryRegistration{
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		Ministry:     input.Ministry,
		Congregation: input.Congregation,
	}

	created, err := h.svc.CreateMinistryRegistration(ctx.Request.Context(), registration)
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateMinistryRegistration -> h.svc.CreateMinistryRegistration -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleApproveMinistryRegistration godoc
// @Summary      Approve a ministry registration
// @Tags         ministry
// @Produce      json
// @Param        registrationID  path      int  true  "registration ID"
// @Success      200             {object}  domain.MinistryRegistration
// @Failure      400             {object}  response.Err
// @Failure      401             {object}  response.Err
// @Failure      404             {object}  response.Err
// @Failure      500             {object}  response.Err
// @Router       /ministry-registrations/{registrationID}/approve [post]
// @Security BearerAuth
func (h *ContentHandler) HandleApproveMinistryRegistration(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "registrationID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	approved, err := h.svc.ApproveMinistryRegistration(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrContentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("ministry registration", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleApproveMinistryRegistration -> h.svc.ApproveMinistryRegistration -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, approved)
}

// HandleDeleteMinistryRegistration godoc
// @Summary      Delete a ministry registration
// @Tags         ministry
// @Produce      json
// @Param        registrationID  path      int     true  "registration ID"
// @Param        type            query     string  true  "delete scope: dashboard or both"
// @Success      200             {object}  map[string]string
// @Failure      400             {object}  response.Err
// @Failure      401             {object}  response.Err
// @Failure      404             {object}  response.Err
// @Failure      500             {object}  response.Err
// @Router       /ministry-registrations/{registrationID} [delete]
// @Security BearerAuth
func (h *ContentHandler) HandleDeleteMinistryRegistration(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "registrationID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	scope, respErr := parseDeleteScope(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.DeleteMinistryRegistration(ctx.Request.Context(), id, scope); err != nil {
		if errors.Is(err, service.ErrContentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("ministry registration", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteMinistryRegistration -> h.svc.DeleteMinistryRegistration -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, deletionMessage(scope))
}

// HandleRestoreMinistryRegistration godoc
// @Summary      Restore a dashboard-hidden ministry registration
// @Tags         ministry
// @Produce      json
// @Param        registrationID  path      int  true  "registration ID"
// @Success      200             {object}  domain.MinistryRegistration
// @Failure      400             {object}  response.Err
// @Failure      401             {object}  response.Err
// @Failure      404             {object}  response.Err
// @Failure      500             {object}  response.Err
// @Router       /ministry-registrations/{registrationID}/restore [post]
// @Security BearerAuth
func (h *ContentHandler) HandleRestoreMinistryRegistration(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "registrationID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	restored, err := h.svc.RestoreMinistryRegistration(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrContentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("ministry registration", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleRestoreMinistryRegistration -> h.svc.RestoreMinistryRegistration -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, restored)
}
