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

// HandleListTeamMembers godoc
// @Summary      List team members
// @Tags         team
// @Produce      json
// @Param        scope  query     string  false  "listing scope"
// @Success      200    {array}   domain.TeamMember
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /team [get]
func (h *ContentHandler) HandleListTeamMembers(ctx *gin.Context) {
	scope, respErr := parseListScope(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	members, err := h.svc.ListTeamMembers(ctx.Request.Context(), scope)
	if err != nil {
		err = fmt.Errorf("v1.HandleListTeamMembers -> h.svc.ListTeamMembers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, members)
}

// HandleCreateTeamMember godoc
// @Summary      Create a team member
// @Tags         team
// @Accept       json
// @Produce      json
// @Param        input  body      request.TeamMemberRequest  true  "team member details"
// @Success      201    {object}  domain.TeamMember
// @Failure      400    {object}  response.Err
// @Failure      401    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /team [post]
// @Security BearerAuth
func (h *ContentHandler) HandleCreateTeamMember(ctx *gin.Context) {
	var input request.TeamMemberRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateTeamMember(ctx.Request.Context(), teamMemberFromRequest(input))
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateTeamMember -> h.svc.CreateTeamMember -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateTeamMember godoc
// @Summary      Update a team member
// @Tags         team
// @Accept       json
// @Produce      json
// @Param        memberID  path      int                        true  "team member ID"
// @Param        input     body      request.TeamMemberRequest  true  "team member details"
// @Success      200       {object}  domain.TeamMember
// @Failure      400       {object}  response.Err
// @Failure      401       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /team/{memberID} [put]
// @Security BearerAuth
func (h *ContentHandler) HandleUpdateTeamMember(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "memberID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var input request.TeamMemberRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	member := teamMemberFromRequest(input)
	member.ID = id

	updated, err := h.svc.UpdateTeamMember(ctx.Request.Context(), member)
	if err != nil {
		if errors.Is(err, service.ErrContentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("team member", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateTeamMember -> h.svc.UpdateTeamMember -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteTeamMember godoc
// @Summary      Delete a team member
// @Tags         team
// @Produce      json
// @Param        memberID  path      int     true  "team member ID"
// @Param        type      query     string  true  "delete scope: dashboard or both"
// @Success      200       {object}  map[string]string
// @Failure      400       {object}  response.Err
// @Failure      401       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /team/{memberID} [delete]
// @Security BearerAuth
func (h *ContentHandler) HandleDeleteTeamMember(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "memberID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	scope, respErr := parseDeleteScope(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.DeleteTeamMember(ctx.Request.Context(), id, scope); err != nil {
		if errors.Is(err, service.ErrContentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("team member", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteTeamMember -> h.svc.DeleteTeamMember -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, deletionMessage(scope))
}

// HandleRestoreTeamMember godoc
// @Summary      Restore a dashboard-hidden team member
// @Tags         team
// @Produce      json
// @Param        memberID  path      int  true  "team member ID"
// @Success      200       {object}  domain.TeamMember
// @Failure      400       {object}  response.Err
// @Failure      401       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /team/{memberID}/restore [post]
// @Security BearerAuth
func (h *ContentHandler) HandleRestoreTeamMember(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "memberID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	restored, err := h.svc.RestoreTeamMember(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrContentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("team member", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleRestoreTeamMember -> h.svc.RestoreTeamMember -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, restored)
}

func teamMemberFromRequest(input request.TeamMemberRequest) domain.TeamMember {
	return domain.TeamMember{
		Name:          input.Name,
		Position:      input.Position,
		Congregation:  input.Congregation,
		Quote:         input.Quote,
		ImageURL:      input.ImageURL,
		IsCouncil:     input.IsCouncil,
		PositionOrder: input.PositionOrder,
	}
}
