package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/presbyterian-ypg/ypg-api/internal/domain"
	"github.com/presbyterian-ypg/ypg-api/internal/repository"
)

var (
	ErrDonationNotFound = repository.ErrDonationNotFound
	ErrDonationResolved = domain.ErrDonationResolved
	ErrInvalidAmount    = errors.New("donation amount must not be negative")
	// ErrVerificationLocked guards the verify/reject commands as the only
	// path that changes a donation's verification state; the generic edit
	// refuses to touch it.
	ErrVerificationLocked = errors.New("verification status can only change through verify or reject")
)

type DonationRepository interface {
	Create(ctx context.Context, donation domain.Donation) (domain.Donation, error)
	FindByID(ctx context.Context, id uint) (domain.Donation, error)
	FindAll(ctx context.Context, filter repository.DonationFilter) ([]domain.Donation, error)
	Update(ctx context.Context, donation domain.Donation) (domain.Donation, error)
	Delete(ctx context.Context, id uint) error
	SumAmountByMethod(ctx context.Context, method domain.PaymentMethod) (float64, error)
	CountByVerificationStatus(ctx context.Context, status domain.VerificationStatus) (int, error)
}

// DonationService owns the verification state machine and the financial
// aggregates derived from it.
type DonationService struct {
	repo DonationRepository
	now  func() time.Time
}

func NewDonationService(repo DonationRepository) *DonationService {
	return &DonationService{
		repo: repo,
		now:  time.Now,
	}
}

func (s *DonationService) Create(ctx context.Context, donation domain.Donation) (domain.Donation, error) {
	if donation.Amount < 0 {
		return domain.Donation{}, ErrInvalidAmount
	}

	donation.Status = domain.DonationPending
	donation.VerificationStatus = domain.VerificationPending
	donation.VerifiedBy = ""
	donation.VerifiedAt = nil
	if donation.Date.IsZero() {
		donation.Date = s.now()
	}
	if donation.ReceiptCode == "" {
		code, err := generateReceiptCode()
		if err != nil {
			return domain.Donation{}, fmt.Errorf("generateReceiptCode -> %w", err)
		}
		donation.ReceiptCode = code
	}

	created, err := s.repo.Create(ctx, donation)
	if err != nil {
		return domain.Donation{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *DonationService) GetDonation(ctx context.Context, id uint) (domain.Donation, error) {
	donation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Donation{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return donation, nil
}

func (s *DonationService) ListDonations(ctx context.Context, filter repository.DonationFilter) ([]domain.Donation, error) {
	donations, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return donations, nil
}

// Verify resolves a pending donation as trusted. Re-verifying is a no-op;
// verifying a rejected donation fails with ErrDonationResolved.
func (s *DonationService) Verify(ctx context.Context, id uint, adminName string) (domain.Donation, error) {
	donation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Donation{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err = donation.Verify(adminName, s.now()); err != nil {
		return domain.Donation{}, err
	}

	updated, err := s.repo.Update(ctx, donation)
	if err != nil {
		return domain.Donation{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *DonationService) Reject(ctx context.Context, id uint, adminName string) (domain.Donation, error) {
	donation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Donation{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err = donation.Reject(adminName, s.now()); err != nil {
		return domain.Donation{}, err
	}

	updated, err := s.repo.Update(ctx, donation)
	if err != nil {
		return domain.Donation{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// Update is the generic record edit. It refuses to change the verification
// state or its mirrored donor-facing status; those belong to Verify/Reject.
func (s *DonationService) Update(ctx context.Context, donation domain.Donation) (domain.Donation, error) {
	if donation.Amount < 0 {
		return domain.Donation{}, ErrInvalidAmount
	}

	existing, err := s.repo.FindByID(ctx, donation.ID)
	if err != nil {
		return domain.Donation{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if donation.VerificationStatus != "" && donation.VerificationStatus != existing.VerificationStatus {
		return domain.Donation{}, ErrVerificationLocked
	}
	if donation.Status != "" && donation.Status != existing.Status {
		return domain.Donation{}, ErrVerificationLocked
	}

	donation.Status = existing.Status
	donation.VerificationStatus = existing.VerificationStatus
	donation.VerifiedBy = existing.VerifiedBy
	donation.VerifiedAt = existing.VerifiedAt
	if donation.ReceiptCode == "" {
		donation.ReceiptCode = existing.ReceiptCode
	}
	if donation.Date.IsZero() {
		donation.Date = existing.Date
	}

	updated, err := s.repo.Update(ctx, donation)
	if err != nil {
		return domain.Donation{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *DonationService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func (s *DonationService) TotalByMethod(ctx context.Context, method domain.PaymentMethod) (float64, error) {
	total, err := s.repo.SumAmountByMethod(ctx, method)
	if err != nil {
		return 0, fmt.Errorf("s.repo.SumAmountByMethod -> %w", err)
	}

	return total, nil
}

// Summary recomputes the finance overview from the store on every call.
// Only verified donations carry money; pending and rejected records appear
// in the counts but contribute nothing to any total.
func (s *DonationService) Summary(ctx context.Context) (domain.DonationSummary, error) {
	summary := domain.DonationSummary{
		TotalByMethod: make(map[domain.PaymentMethod]float64),
		CountByStatus: make(map[domain.VerificationStatus]int),
	}

	for _, method := range domain.PaymentMethods() {
		total, err := s.repo.SumAmountByMethod(ctx, method)
		if err != nil {
			return domain.DonationSummary{}, fmt.Errorf("s.repo.SumAmountByMethod -> %w", err)
		}
		summary.TotalByMethod[method] = total
		summary.TotalVerified += total
	}

	for _, status := range []domain.VerificationStatus{
		domain.VerificationPending,
		domain.VerificationVerified,
		domain.VerificationRejected,
	} {
		count, err := s.repo.CountByVerificationStatus(ctx, status)
		if err != nil {
			return domain.DonationSummary{}, fmt.Errorf("s.repo.CountByVerificationStatus -> %w", err)
		}
		summary.CountByStatus[status] = count
	}

	return summary, nil
}

func generateReceiptCode() (string, error) {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	return "RC-" + strings.ToUpper(hex.EncodeToString(buf)), nil
}
