package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type CreateDonationRequest struct {
	DonorName     string  `json:"donor_name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Amount        float64 `json:"amount"`
	Purpose       string  `json:"purpose,omitempty"`
	Message       string  `json:"message,omitempty"`
	Date          string  `json:"date,omitempty"`
	PaymentMethod string  `json:"payment_method"`
}

func (req *CreateDonationRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.DonorName, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Phone, validation.Required, validation.Match(phoneExp)),
		validation.Field(&req.Amount, validation.Min(0.0)),
		validation.Field(&req.Date, validation.Date("2006-01-02")),
		validation.Field(&req.PaymentMethod, validation.Required, validation.In("momo", "cash", "bank")),
	)
}

// UpdateDonationRequest is the generic edit. Verification fields are
// accepted in the body so an attempted change can be rejected explicitly
// rather than silently dropped.
type UpdateDonationRequest struct {
	DonorName          string  `json:"donor_name"`
	Email              string  `json:"email"`
	Phone              string  `json:"phone"`
	Amount             float64 `json:"amount"`
	Purpose            string  `json:"purpose,omitempty"`
	Message            string  `json:"message,omitempty"`
	Date               string  `json:"date,omitempty"`
	PaymentMethod      string  `json:"payment_method"`
	Status             string  `json:"status,omitempty"`
	VerificationStatus string  `json:"verification_status,omitempty"`
}

func (req *UpdateDonationRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.DonorName, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Phone, validation.Required, validation.Match(phoneExp)),
		validation.Field(&req.Amount, validation.Min(0.0)),
		validation.Field(&req.Date, validation.Date("2006-01-02")),
		validation.Field(&req.PaymentMethod, validation.Required, validation.In("momo", "cash", "bank")),
		validation.Field(&req.Status, validation.In("pending", "confirmed", "failed")),
		validation.Field(&req.VerificationStatus, validation.In("pending", "verified", "rejected")),
	)
}
