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
	"github.com/presbyterian-ypg/ypg-api/internal/api/middleware"
	"github.com/presbyterian-ypg/ypg-api/internal/domain"
	"github.com/presbyterian-ypg/ypg-api/internal/repository"
	"github.com/presbyterian-ypg/ypg-api/internal/service"
)

type DonationService interface {
	Create(ctx context.Context, donation domain.Donation) (domain.Donation, error)
	GetDonation(ctx context.Context, id uint) (domain.Donation, error)
	ListDonations(ctx context.Context, filter repository.DonationFilter) ([]domain.Donation, error)
	Verify(ctx context.Context, id uint, adminName string) (domain.Donation, error)
	Reject(ctx context.Context, id uint, adminName string) (domain.Donation, error)
	Update(ctx context.Context, donation domain.Donation) (domain.Donation, error)
	Delete(ctx context.Context, id uint) error
	Summary(ctx context.Context) (domain.DonationSummary, error)
}

// SupervisorProvider resolves the acting admin so verifications carry a
// human-readable name, not just a token subject.
type SupervisorProvider interface {
	GetSupervisor(ctx context.Context, id uint) (domain.Supervisor, error)
}

type DonationHandler struct {
	svc         DonationService
	supervisors SupervisorProvider
}

func NewDonationHandler(svc DonationService, supervisors SupervisorProvider) *DonationHandler {
	return &DonationHandler{
		svc:         svc,
		supervisors: supervisors,
	}
}

// HandleListDonations godoc
// @Summary      List donations
// @Description  Optionally filtered by verification_status, payment_method and purpose
// @Tags         donations
// @Produce      json
// @Param        verification_status  query     string  false  "pending, verified or rejected"
// @Param        payment_method       query     string  false  "momo, cash or bank"
// @Param        purpose              query     string  false  "donation purpose"
// @Success      200                  {array}   domain.Donation
// @Failure      401                  {object}  response.Err
// @Failure      500                  {object}  response.Err
// @Router       /donations [get]
// @Security BearerAuth
func (h *DonationHandler) HandleListDonations(ctx *gin.Context) {
	filter := repository.DonationFilter{
		VerificationStatus: domain.VerificationStatus(ctx.Query("verification_status")),
		PaymentMethod:      domain.PaymentMethod(ctx.Query("payment_method")),
		Purpose:            ctx.Query("purpose"),
	}

	donations, err := h.svc.ListDonations(ctx.Request.Context(), filter)
	if err != nil {
		err = fmt.Errorf("v1.HandleListDonations -> h.svc.ListDonations -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, donations)
}

// HandleGetDonation godoc
// @Summary      Get a donation
// @Tags         donations
// @Produce      json
// @Param        donationID  path      int  true  "donation ID"
// @Success      200         {object}  domain.Donation
// @Failure      400         {object}  response.Err
// @Failure      401         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /donations/{donationID} [get]
// @Security BearerAuth
func (h *DonationHandler) HandleGetDonation(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "donationID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	donation, err := h.svc.GetDonation(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrDonationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("donation", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleGetDonation -> h.svc.GetDonation -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, donation)
}

// HandleCreateDonation godoc
// @Summary      Record a donation
// @Description  Public endpoint; donations always start pending verification
// @Tags         donations
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateDonationRequest  true  "donation details"
// @Success      201    {object}  domain.Donation
// @Failure      400    {object}  response.Err
// @Failure      422    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /donations [post]
func (h *DonationHandler) HandleCreateDonation(ctx *gin.Context) {
	var input request.CreateDonationRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	donation := domain.Donation{
		DonorName:     input.DonorName,
		Email:         input.Email,
		Phone:         input.Phone,
		Amount:        input.Amount,
		Purpose:       input.Purpose,
		Message:       input.Message,
		PaymentMethod: domain.PaymentMethod(input.PaymentMethod),
	}
	if input.Date != "" {
		date, err := time.Parse("2006-01-02", input.Date)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid date: %v", err)))
			return
		}
		donation.Date = date
	}

	created, err := h.svc.Create(ctx.Request.Context(), donation)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAmount) {
			response.RenderErr(ctx, response.ErrUnprocessableEntity(err))
			return
		}

		err = fmt.Errorf("v1.HandleCreateDonation -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateDonation godoc
// @Summary      Edit a donation's details
// @Description  Changing status or verification_status here is rejected; use the verify and reject endpoints
// @Tags         donations
// @Accept       json
// @Produce      json
// @Param        donationID  path      int                            true  "donation ID"
// @Param        input       body      request.UpdateDonationRequest  true  "donation details"
// @Success      200         {object}  domain.Donation
// @Failure      400         {object}  response.Err
// @Failure      401         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Failure      422         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /donations/{donationID} [put]
// @Security BearerAuth
func (h *DonationHandler) HandleUpdateDonation(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "donationID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var input request.UpdateDonationRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	donation := domain.Donation{
		ID:                 id,
		DonorName:          input.DonorName,
		Email:              input.Email,
		Phone:              input.Phone,
		Amount:             input.Amount,
		Purpose:            input.Purpose,
		Message:            input.Message,
		PaymentMethod:      domain.PaymentMethod(input.PaymentMethod),
		Status:             domain.DonationStatus(input.Status),
		VerificationStatus: domain.VerificationStatus(input.VerificationStatus),
	}
	if input.Date != "" {
		date, err := time.Parse("2006-01-02", input.Date)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid date: %v", err)))
			return
		}
		donation.Date = date
	}

	updated, err := h.svc.Update(ctx.Request.Context(), donation)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDonationNotFound):
			response.RenderErr(ctx, response.ErrNotFound("donation", "ID", id))
		case errors.Is(err, service.ErrVerificationLocked), errors.Is(err, service.ErrInvalidAmount):
			response.RenderErr(ctx, response.ErrUnprocessableEntity(err))
		default:
			err = fmt.Errorf("v1.HandleUpdateDonation -> h.svc.Update -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleVerifyDonation godoc
// @Summary      Verify a pending donation
// @Description  Idempotent for already-verified donations; fails with 409 once rejected
// @Tags         donations
// @Produce      json
// @Param        donationID  path      int  true  "donation ID"
// @Success      200         {object}  domain.Donation
// @Failure      400         {object}  response.Err
// @Failure      401         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Failure      409         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /donations/{donationID}/verify [post]
// @Security BearerAuth
func (h *DonationHandler) HandleVerifyDonation(ctx *gin.Context) {
	h.resolveDonation(ctx, h.svc.Verify, "Verify")
}

// HandleRejectDonation godoc
// @Summary      Reject a pending donation
// @Description  Idempotent for already-rejected donations; fails with 409 once verified
// @Tags         donations
// @Produce      json
// @Param        donationID  path      int  true  "donation ID"
// @Success      200         {object}  domain.Donation
// @Failure      400         {object}  response.Err
// @Failure      401         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Failure      409         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /donations/{donationID}/reject [post]
// @Security BearerAuth
func (h *DonationHandler) HandleRejectDonation(ctx *gin.Context) {
	h.resolveDonation(ctx, h.svc.Reject, "Reject")
}

func (h *DonationHandler) resolveDonation(
	ctx *gin.Context,
	resolve func(ctx context.Context, id uint, adminName string) (domain.Donation, error),
	op string,
) {
	id, respErr := parseIDParam(ctx, "donationID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	adminName, respErr := h.actingAdminName(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	donation, err := resolve(ctx.Request.Context(), id, adminName)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDonationNotFound):
			response.RenderErr(ctx, response.ErrNotFound("donation", "ID", id))
		case errors.Is(err, service.ErrDonationResolved):
			response.RenderErr(ctx, response.ErrConflict(err))
		default:
			err = fmt.Errorf("v1.Handle%vDonation -> h.svc.%v -> %w", op, op, err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, donation)
}

// HandleDeleteDonation godoc
// @Summary      Delete a donation record
// @Tags         donations
// @Produce      json
// @Param        donationID  path      int  true  "donation ID"
// @Success      200         {object}  map[string]string
// @Failure      400         {object}  response.Err
// @Failure      401         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /donations/{donationID} [delete]
// @Security BearerAuth
func (h *DonationHandler) HandleDeleteDonation(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "donationID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrDonationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("donation", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteDonation -> h.svc.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "donation deleted"})
}

// HandleDonationSummary godoc
// @Summary      Donation totals
// @Description  Totals cover verified donations only; pending and rejected amounts never count
// @Tags         donations
// @Produce      json
// @Success      200  {object}  domain.DonationSummary
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /donations/summary [get]
// @Security BearerAuth
func (h *DonationHandler) HandleDonationSummary(ctx *gin.Context) {
	summary, err := h.svc.Summary(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleDonationSummary -> h.svc.Summary -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, summary)
}

func (h *DonationHandler) actingAdminName(ctx *gin.Context) (string, *response.Err) {
	id, ok := ctx.Value(middleware.ContextKeySupervisorID).(uint)
	if !ok {
		return "", response.ErrUnauthorized(errors.New("missing authenticated supervisor"))
	}

	supervisor, err := h.supervisors.GetSupervisor(ctx.Request.Context(), id)
	if err != nil {
		err = fmt.Errorf("v1.actingAdminName -> h.supervisors.GetSupervisor -> %w", err)
		return "", response.ErrInternalServerError(err)
	}

	return supervisor.Username, nil
}
