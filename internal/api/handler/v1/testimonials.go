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

// HandleListTestimonials godoc
// @Summary      List testimonials
// @Tags         testimonials
// @Produce      json
// @Param        scope  query     string  false  "listing scope"
// @Success      200    {array}   domain.Testimonial
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /testimonials [get]
func (h *ContentHandler) HandleListTestimonials(ctx *gin.Context) {
	scope, respErr := parseListScope(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	testimonials, err := h.svc.ListTestimonials(ctx.Request.Context(), scope)
	if err != nil {
		err = fmt.Errorf("v1.HandleListTestimonials -> h.svc.ListTestimonials -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, testimonials)
}

// HandleCreateTestimonial godoc
// @Summary      Create a testimonial
// @Tags         testimonials
// @Accept       json
// @Produce      json
// @Param        input  body      request.TestimonialRequest  true  "testimonial details"
// @Success      201    {object}  domain.Testimonial
// @Failure      400    {object}  response.Err
// @Failure      401    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /testimonials [post]
// @Security BearerAuth
func (h *ContentHandler) HandleCreateTestimonial(ctx *gin.Context) {
	var input request.TestimonialRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateTestimonial(ctx.Request.Context(), testimonialFromRequest(input))
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateTestimonial -> h.svc.CreateTestimonial -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateTestimonial godoc
// @Summary      Update a testimonial
// @Tags         testimonials
// @Accept       json
// @Produce      json
// @Param        testimonialID  path      int                         true  "testimonial ID"
// @Param        input          body      request.TestimonialRequest  true  "testimonial details"
// @Success      200            {object}  domain.Testimonial
// @Failure      400            {object}  response.Err
// @Failure      401            {object}  response.Err
// @Failure      404            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /testimonials/{testimonialID} [put]
// @Security BearerAuth
func (h *ContentHandler) HandleUpdateTestimonial(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "testimonialID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var input request.TestimonialRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	testimonial := testimonialFromRequest(input)
	testimonial.ID = id

	updated, err := h.svc.UpdateTestimonial(ctx.Request.Context(), testimonial)
	if err != nil {
		if errors.Is(err, service.ErrContentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("testimonial", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateTestimonial -> h.svc.UpdateTestimonial -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteTestimonial godoc
// @Summary      Delete a testimonial
// @Tags         testimonials
// @Produce      json
// @Param        testimonialID  path      int     true  "testimonial ID"
// @Param        type           query     string  true  "delete scope: dashboard or both"
// @Success      200            {object}  map[string]string
// @Failure      400            {object}  response.Err
// @Failure      401            {object}  response.Err
// @Failure      404            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /testimonials/{testimonialID} [delete]
// @Security BearerAuth
func (h *ContentHandler) HandleDeleteTestimonial(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "testimonialID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	scope, respErr := parseDeleteScope(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.DeleteTestimonial(ctx.Request.Context(), id, scope); err != nil {
		if errors.Is(err, service.ErrContentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("testimonial", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteTestimonial -> h.svc.DeleteTestimonial -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, deletionMessage(scope))
}

// HandleRestoreTestimonial godoc
// @Summary      Restore a dashboard-hidden testimonial
// @Tags         testimonials
// @Produce      json
// @Param        testimonialID  path      int  true  "testimonial ID"
// @Success      200            {object}  domain.Testimonial
// @Failure      400            {object}  response.Err
// @Failure      401            {object}  response.Err
// @Failure      404            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /testimonials/{testimonialID}/restore [post]
// @Security BearerAuth
func (h *ContentHandler) HandleRestoreTestimonial(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "testimonialID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	restored, err := h.svc.RestoreTestimonial(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrContentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("testimonial", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleRestoreTestimonial -> h.svc.RestoreTestimonial -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, restored)
}

func testimonialFromRequest(input request.TestimonialRequest) domain.Testimonial {
	return domain.Testimonial{
		Name:       input.Name,
		Position:   input.Position,
		Content:    input.Content,
		Rating:     input.Rating,
		IsFeatured: input.IsFeatured,
	}
}
