package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/presbyterian-ypg/ypg-api/internal/domain"
	"github.com/presbyterian-ypg/ypg-api/internal/repository"
)

type fakeDonationRepo struct {
	donations map[uint]domain.Donation
	nextID    uint
}

func newFakeDonationRepo() *fakeDonationRepo {
	return &fakeDonationRepo{
		donations: make(map[uint]domain.Donation),
		nextID:    1,
	}
}

func (f *fakeDonationRepo) Create(_ context.Context, donation domain.Donation) (domain.Donation, error) {
	donation.ID = f.nextID
	f.nextID++
	f.donations[donation.ID] = donation

	return donation, nil
}

func (f *fakeDonationRepo) FindByID(_ context.Context, id uint) (domain.Donation, error) {
	donation, ok := f.donations[id]
	if !ok {
		return domain.Donation{}, ErrDonationNotFound
	}

	return donation, nil
}

func (f *fakeDonationRepo) FindAll(_ context.Context, filter repository.DonationFilter) ([]domain.Donation, error) {
	var found []domain.Donation
	for _, donation := range f.donations {
		if filter.VerificationStatus != "" && donation.VerificationStatus != filter.VerificationStatus {
			continue
		}
		if filter.PaymentMethod != "" && donation.PaymentMethod != filter.PaymentMethod {
			continue
		}
		found = append(found, donation)
	}

	return found, nil
}

func (f *fakeDonationRepo) Update(_ context.Context, donation domain.Donation) (domain.Donation, error) {
	if _, ok := f.donations[donation.ID]; !ok {
		return domain.Donation{}, ErrDonationNotFound
	}
	f.donations[donation.ID] = donation

	return donation, nil
}

func (f *fakeDonationRepo) Delete(_ context.Context, id uint) error {
	if _, ok := f.donations[id]; !ok {
		return ErrDonationNotFound
	}
	delete(f.donations, id)

	return nil
}

func (f *fakeDonationRepo) SumAmountByMethod(_ context.Context, method domain.PaymentMethod) (float64, error) {
	var total float64
	for _, donation := range f.donations {
		if donation.VerificationStatus == domain.VerificationVerified && donation.PaymentMethod == method {
			total += donation.Amount
		}
	}

	return total, nil
}

func (f *fakeDonationRepo) CountByVerificationStatus(_ context.Context, status domain.VerificationStatus) (int, error) {
	count := 0
	for _, donation := range f.donations {
		if donation.VerificationStatus == status {
			count++
		}
	}

	return count, nil
}

func newDonationServiceAt(repo *fakeDonationRepo, now time.Time) *DonationService {
	svc := NewDonationService(repo)
	svc.now = func() time.Time { return now }

	return svc
}

func TestDonationService_Create(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := newDonationServiceAt(newFakeDonationRepo(), now)

	t.Run("new donations always start pending", func(t *testing.T) {
		created, err := svc.Create(context.Background(), domain.Donation{
			DonorName:          "Ama Mensah",
			Email:              "ama@example.com",
			Phone:              "0241234567",
			Amount:             150,
			PaymentMethod:      domain.PaymentMomo,
			Status:             domain.DonationConfirmed,           // ignored
			VerificationStatus: domain.VerificationVerified,        // ignored
			VerifiedBy:         "attacker",                         // ignored
		})

		require.NoError(t, err)
		assert.Equal(t, domain.DonationPending, created.Status)
		assert.Equal(t, domain.VerificationPending, created.VerificationStatus)
		assert.Empty(t, created.VerifiedBy)
		assert.Nil(t, created.VerifiedAt)
		assert.True(t, strings.HasPrefix(created.ReceiptCode, "RC-"), "receipt code %q", created.ReceiptCode)
		assert.Equal(t, now, created.Date)
	})

	t.Run("negative amount is rejected", func(t *testing.T) {
		_, err := svc.Create(context.Background(), domain.Donation{
			DonorName:     "Kojo",
			Amount:        -5,
			PaymentMethod: domain.PaymentCash,
		})

		require.ErrorIs(t, err, ErrInvalidAmount)
	})
}

func TestDonationService_VerifyAndReject(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	seed := func(t *testing.T) (*DonationService, domain.Donation) {
		t.Helper()

		repo := newFakeDonationRepo()
		svc := newDonationServiceAt(repo, now)
		created, err := svc.Create(context.Background(), domain.Donation{
			DonorName:     "Ama Mensah",
			Amount:        100,
			PaymentMethod: domain.PaymentMomo,
		})
		require.NoError(t, err)

		return svc, created
	}

	t.Run("verify resolves a pending donation", func(t *testing.T) {
		svc, donation := seed(t)

		verified, err := svc.Verify(context.Background(), donation.ID, "admin")

		require.NoError(t, err)
		assert.Equal(t, domain.VerificationVerified, verified.VerificationStatus)
		assert.Equal(t, domain.DonationConfirmed, verified.Status)
		assert.Equal(t, "admin", verified.VerifiedBy)
		require.NotNil(t, verified.VerifiedAt)
		assert.Equal(t, now, *verified.VerifiedAt)
	})

	t.Run("re-verifying is a no-op", func(t *testing.T) {
		svc, donation := seed(t)

		first, err := svc.Verify(context.Background(), donation.ID, "admin")
		require.NoError(t, err)

		second, err := svc.Verify(context.Background(), donation.ID, "someone-else")
		require.NoError(t, err)
		assert.Equal(t, first.VerifiedBy, second.VerifiedBy)
	})

	t.Run("verifying a rejected donation fails", func(t *testing.T) {
		svc, donation := seed(t)

		_, err := svc.Reject(context.Background(), donation.ID, "admin")
		require.NoError(t, err)

		_, err = svc.Verify(context.Background(), donation.ID, "admin")
		require.ErrorIs(t, err, ErrDonationResolved)
	})

	t.Run("rejecting a verified donation fails", func(t *testing.T) {
		svc, donation := seed(t)

		_, err := svc.Verify(context.Background(), donation.ID, "admin")
		require.NoError(t, err)

		_, err = svc.Reject(context.Background(), donation.ID, "admin")
		require.ErrorIs(t, err, ErrDonationResolved)
	})

	t.Run("reject marks the donor-facing status failed", func(t *testing.T) {
		svc, donation := seed(t)

		rejected, err := svc.Reject(context.Background(), donation.ID, "admin")

		require.NoError(t, err)
		assert.Equal(t, domain.VerificationRejected, rejected.VerificationStatus)
		assert.Equal(t, domain.DonationFailed, rejected.Status)
	})

	t.Run("unknown donation", func(t *testing.T) {
		svc, _ := seed(t)

		_, err := svc.Verify(context.Background(), 999, "admin")
		require.ErrorIs(t, err, ErrDonationNotFound)
	})
}

func TestDonationService_Update(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := newFakeDonationRepo()
	svc := newDonationServiceAt(repo, now)

	created, err := svc.Create(context.Background(), domain.Donation{
		DonorName:     "Ama Mensah",
		Amount:        100,
		PaymentMethod: domain.PaymentMomo,
	})
	require.NoError(t, err)

	verified, err := svc.Verify(context.Background(), created.ID, "admin")
	require.NoError(t, err)

	t.Run("editing verification status is refused", func(t *testing.T) {
		edit := verified
		edit.VerificationStatus = domain.VerificationPending

		_, err := svc.Update(context.Background(), edit)
		require.ErrorIs(t, err, ErrVerificationLocked)
	})

	t.Run("editing donor-facing status is refused", func(t *testing.T) {
		edit := verified
		edit.Status = domain.DonationFailed

		_, err := svc.Update(context.Background(), edit)
		require.ErrorIs(t, err, ErrVerificationLocked)
	})

	t.Run("ordinary edits keep the verification record intact", func(t *testing.T) {
		edit := domain.Donation{
			ID:            verified.ID,
			DonorName:     "Ama A. Mensah",
			Amount:        250,
			PaymentMethod: domain.PaymentBank,
		}

		updated, err := svc.Update(context.Background(), edit)

		require.NoError(t, err)
		assert.Equal(t, "Ama A. Mensah", updated.DonorName)
		assert.Equal(t, 250.0, updated.Amount)
		assert.Equal(t, domain.VerificationVerified, updated.VerificationStatus)
		assert.Equal(t, domain.DonationConfirmed, updated.Status)
		assert.Equal(t, "admin", updated.VerifiedBy)
		assert.Equal(t, verified.ReceiptCode, updated.ReceiptCode)
	})

	t.Run("negative amount is rejected", func(t *testing.T) {
		edit := verified
		edit.Amount = -1

		_, err := svc.Update(context.Background(), edit)
		require.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("edit without a date keeps the stored date", func(t *testing.T) {
		edit := domain.Donation{
			ID:            verified.ID,
			DonorName:     "Ama A. Mensah",
			Amount:        250,
			PaymentMethod: domain.PaymentBank,
		}

		updated, err := svc.Update(context.Background(), edit)

		require.NoError(t, err)
		assert.False(t, updated.Date.IsZero())
		assert.Equal(t, verified.Date, updated.Date)
	})

	t.Run("an explicit date replaces the stored date", func(t *testing.T) {
		newDate := time.Date(2025, 5, 28, 0, 0, 0, 0, time.UTC)
		edit := domain.Donation{
			ID:            verified.ID,
			DonorName:     "Ama A. Mensah",
			Amount:        250,
			PaymentMethod: domain.PaymentBank,
			Date:          newDate,
		}

		updated, err := svc.Update(context.Background(), edit)

		require.NoError(t, err)
		assert.Equal(t, newDate, updated.Date)
	})
}

func TestDonationService_Summary(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := newFakeDonationRepo()
	svc := newDonationServiceAt(repo, now)

	mustCreate := func(amount float64, method domain.PaymentMethod) domain.Donation {
		t.Helper()

		created, err := svc.Create(context.Background(), domain.Donation{
			DonorName:     "Donor",
			Amount:        amount,
			PaymentMethod: method,
		})
		require.NoError(t, err)

		return created
	}

	momo := mustCreate(100, domain.PaymentMomo)
	bank := mustCreate(40, domain.PaymentBank)
	rejected := mustCreate(75, domain.PaymentMomo)
	mustCreate(999, domain.PaymentCash) // stays pending

	_, err := svc.Verify(context.Background(), momo.ID, "admin")
	require.NoError(t, err)
	_, err = svc.Verify(context.Background(), bank.ID, "admin")
	require.NoError(t, err)
	_, err = svc.Reject(context.Background(), rejected.ID, "admin")
	require.NoError(t, err)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	// Only verified money counts; the rejected 75 and pending 999 never do.
	assert.Equal(t, 140.0, summary.TotalVerified)
	assert.Equal(t, 100.0, summary.TotalByMethod[domain.PaymentMomo])
	assert.Equal(t, 40.0, summary.TotalByMethod[domain.PaymentBank])
	assert.Equal(t, 0.0, summary.TotalByMethod[domain.PaymentCash])
	assert.Equal(t, 1, summary.CountByStatus[domain.VerificationPending])
	assert.Equal(t, 2, summary.CountByStatus[domain.VerificationVerified])
	assert.Equal(t, 1, summary.CountByStatus[domain.VerificationRejected])
}
