package domain

import (
	"errors"
	"time"
)

type PaymentMethod string

const (
	PaymentMomo PaymentMethod = "momo"
	PaymentCash PaymentMethod = "cash"
	PaymentBank PaymentMethod = "bank"
)

func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{PaymentMomo, PaymentCash, PaymentBank}
}

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

// DonationStatus mirrors the verification status for the donor-facing view:
// confirmed once verified, failed once rejected.
type DonationStatus string

const (
	DonationPending   DonationStatus = "pending"
	DonationConfirmed DonationStatus = "confirmed"
	DonationFailed    DonationStatus = "failed"
)

var ErrDonationResolved = errors.New("donation has already been resolved")

type Donation struct {
	ID                 uint               `json:"id"`
	DonorName          string             `json:"donor_name"`
	Email              string             `json:"email"`
	Phone              string             `json:"phone"`
	Amount             float64            `json:"amount"`
	Purpose            string             `json:"purpose,omitempty"`
	Message            string             `json:"message,omitempty"`
	Date               time.Time          `json:"date"`
	PaymentMethod      PaymentMethod      `json:"payment_method"`
	Status             DonationStatus     `json:"status"`
	VerificationStatus VerificationStatus `json:"verification_status"`
	ReceiptCode        string             `json:"receipt_code,omitempty"`
	VerifiedBy         string             `json:"admin_verified_by,omitempty"`
	VerifiedAt         *time.Time         `json:"admin_verified_at,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// Verify moves a pending donation to verified and mirrors the donor-facing
// status. Verifying an already-verified donation is a no-op; a rejected one
// cannot be re-resolved.
func (d *Donation) Verify(admin string, at time.Time) error {
	switch d.VerificationStatus {
	case VerificationVerified:
		return nil
	case VerificationRejected:
		return ErrDonationResolved
	}

	d.VerificationStatus = VerificationVerified
	d.Status = DonationConfirmed
	d.VerifiedBy = admin
	d.VerifiedAt = &at

	return nil
}

// Reject is the mirror image of Verify.
func (d *Donation) Reject(admin string, at time.Time) error {
	switch d.VerificationStatus {
	case VerificationRejected:
		return nil
	case VerificationVerified:
		return ErrDonationResolved
	}

	d.VerificationStatus = VerificationRejected
	d.Status = DonationFailed
	d.VerifiedBy = admin
	d.VerifiedAt = &at

	return nil
}

func (d *Donation) IsVerified() bool {
	return d.VerificationStatus == VerificationVerified
}

// DonationSummary is the admin finance overview: per-method totals over
// verified donations only, plus record counts per verification status.
type DonationSummary struct {
	TotalVerified float64                    `json:"total_verified"`
	TotalByMethod map[PaymentMethod]float64  `json:"total_by_method"`
	CountByStatus map[VerificationStatus]int `json:"count_by_status"`
}
