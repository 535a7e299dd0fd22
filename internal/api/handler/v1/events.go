package v1

import (
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

// HandleListEvents godoc
// @Summary      List events
// @Description  Lists events for the requested scope: "public" (default), "dashboard" or "deleted"
// @Tags         events
// @Produce      json
// @Param        scope  query     string  false  "listing scope"
// @Success      200    {array}   domain.Event
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /events [get]
func (h *ContentHandler) HandleListEvents(ctx *gin.Context) {
	scope, respErr := parseListScope(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	events, err := h.svc.ListEvents(ctx.Request.Context(), scope)
	if err != nil {
		err = fmt.Errorf("v1.HandleListEvents -> h.svc.ListEvents -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, events)
}

// HandleGetEvent godoc
// @Summary      Get a single event
// @Tags         events
// @Produce      json
// @Param        eventID  path      int  true  "event ID"
// @Success      200      {object}  domain.Event
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID} [get]
func (h *ContentHandler) HandleGetEvent(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	event, err := h.svc.GetEvent(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrContentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleGetEvent -> h.svc.GetEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, event)
}

// HandleCreateEvent godoc
// @Summary      Create an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        input  body      request.EventRequest  true  "event details"
// @Success      201    {object}  domain.Event
// @Failure      400    {object}  response.Err
// @Failure      401    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /events [post]
// @Security BearerAuth
func (h *ContentHandler) HandleCreateEvent(ctx *gin.Context) {
	var input request.EventRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	event, respErr := eventFromRequest(input)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	created, err := h.svc.CreateEvent(ctx.Request.Context(), event)
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateEvent -> h.svc.CreateEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateEvent godoc
// @Summary      Update an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        eventID  path      int                   true  "event ID"
// @Param        input    body      request.EventRequest  true  "event details"
// @Success      200      {object}  domain.Event
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID} [put]
// @Security BearerAuth
func (h *ContentHandler) HandleUpdateEvent(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var input request.EventRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	event, respErr := eventFromRequest(input)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}
	event.ID = id

	updated, err := h.svc.UpdateEvent(ctx.Request.Context(), event)
	if err != nil {
		if errors.Is(err, service.ErrContentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateEvent -> h.svc.UpdateEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteEvent godoc
// @Summary      Delete an event
// @Description  Requires an explicit type: "dashboard" hides the event from the admin dashboard only, "both" removes it everywhere
// @Tags         events
// @Produce      json
// @Param        eventID  path      int     true  "event ID"
// @Param        type     query     string  true  "delete scope: dashboard or both"
// @Success      200      {object}  map[string]string
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID} [delete]
// @Security BearerAuth
func (h *ContentHandler) HandleDeleteEvent(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	scope, respErr := parseDeleteScope(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.DeleteEvent(ctx.Request.Context(), id, scope); err != nil {
		if errors.Is(err, service.ErrContentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteEvent -> h.svc.DeleteEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, deletionMessage(scope))
}

// HandleRestoreEvent godoc
// @Summary      Restore a dashboard-hidden event
// @Tags         events
// @Produce      json
// @Param        eventID  path      int  true  "event ID"
// @Success      200      {object}  domain.Event
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/restore [post]
// @Security BearerAuth
func (h *ContentHandler) HandleRestoreEvent(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	restored, err := h.svc.RestoreEvent(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrContentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleRestoreEvent -> h.svc.RestoreEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, restored)
}

func eventFromRequest(input request.EventRequest) (domain.Event, *response.Err) {
	startDate, err := time.Parse(time.RFC3339, input.StartDate)
	if err != nil {
		return domain.Event{}, response.ErrBadRequest(fmt.Errorf("invalid start_date: %v", err))
	}

	endDate, err := time.Parse(time.RFC3339, input.EndDate)
	if err != nil {
		return domain.Event{}, response.ErrBadRequest(fmt.Errorf("invalid end_date: %v", err))
	}

	return domain.Event{
		Title:                input.Title,
		Description:          input.Description,
		EventType:            input.EventType,
		StartDate:            startDate,
		EndDate:              endDate,
		Location:             input.Location,
		ImageURL:             input.ImageURL,
		Participants:         input.Participants,
		IsFeatured:           input.IsFeatured,
		RegistrationRequired: input.RegistrationRequired,
	}, nil
}

func deletionMessage(scope domain.DeleteScope) gin.H {
	if scope == domain.DeleteBoth {
		return gin.H{"message": "permanently deleted from both the dashboard and the public site"}
	}

	return gin.H{"message": "hidden from the dashboard; still visible on the public site"}
}
