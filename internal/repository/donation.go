package repository

import (
	"context"
	"fmt"

	"github.com/presbyterian-ypg/ypg-api/internal/domain"
	"github.com/presbyterian-ypg/ypg-api/internal/repository/dao"
)

var ErrDonationNotFound = dao.ErrDonationNotFound

type DonationDAO interface {
	Insert(ctx context.Context, donation dao.Donation) (dao.Donation, error)
	FindByID(ctx context.Context, id uint) (dao.Donation, error)
	FindAll(ctx context.Context, filter dao.DonationFilter) ([]dao.Donation, error)
	Save(ctx context.Context, donation dao.Donation) (dao.Donation, error)
	Delete(ctx context.Context, id uint) error
	SumAmountByMethod(ctx context.Context, method string) (float64, error)
	CountByVerificationStatus(ctx context.Context, status string) (int64, error)
}

// DonationFilter narrows donation listings. Zero-valued fields are ignored.
type DonationFilter struct {
	VerificationStatus domain.VerificationStatus
	PaymentMethod      domain.PaymentMethod
	Purpose            string
}

type DonationRepository struct {
	dao DonationDAO
}

func NewDonationRepository(dao DonationDAO) *DonationRepository {
	return &DonationRepository{
		dao: dao,
	}
}

func (r *DonationRepository) Create(ctx context.Context, donation domain.Donation) (domain.Donation, error) {
	created, err := r.dao.Insert(ctx, donationDomainToDAO(donation))
	if err != nil {
		return domain.Donation{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return donationDAOToDomain(created), nil
}

func (r *DonationRepository) FindByID(ctx context.Context, id uint) (domain.Donation, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Donation{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return donationDAOToDomain(found), nil
}

func (r *DonationRepository) FindAll(ctx context.Context, filter DonationFilter) ([]domain.Donation, error) {
	found, err := r.dao.FindAll(ctx, dao.DonationFilter{
		VerificationStatus: string(filter.VerificationStatus),
		PaymentMethod:      string(filter.PaymentMethod),
		Purpose:            filter.Purpose,
	})
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	donations := make([]domain.Donation, 0, len(found))
	for _, d := range found {
		donations = append(donations, donationDAOToDomain(d))
	}

	return donations, nil
}

func (r *DonationRepository) Update(ctx context.Context, donation domain.Donation) (domain.Donation, error) {
	updated, err := r.dao.Save(ctx, donationDomainToDAO(donation))
	if err != nil {
		return domain.Donation{}, fmt.Errorf("r.dao.Save -> %w", err)
	}

	return donationDAOToDomain(updated), nil
}

func (r *DonationRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *DonationRepository) SumAmountByMethod(ctx context.Context, method domain.PaymentMethod) (float64, error) {
	total, err := r.dao.SumAmountByMethod(ctx, string(method))
	if err != nil {
		return 0, fmt.Errorf("r.dao.SumAmountByMethod -> %w", err)
	}

	return total, nil
}

func (r *DonationRepository) CountByVerificationStatus(ctx context.Context, status domain.VerificationStatus) (int, error) {
	count, err := r.dao.CountByVerificationStatus(ctx, string(status))
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountByVerificationStatus -> %w", err)
	}

	return int(count), nil
}

func donationDomainToDAO(d domain.Donation) dao.Donation {
	return dao.Donation{
		ID:                 d.ID,
		DonorName:          d.DonorName,
		Email:              d.Email,
		Phone:              d.Phone,
		Amount:             d.Amount,
		Purpose:            d.Purpose,
		Message:            d.Message,
		Date:               d.Date,
		PaymentMethod:      string(d.PaymentMethod),
		Status:             string(d.Status),
		VerificationStatus: string(d.VerificationStatus),
		ReceiptCode:        d.ReceiptCode,
		VerifiedBy:         d.VerifiedBy,
		VerifiedAt:         d.VerifiedAt,
	}
}

func donationDAOToDomain(d dao.Donation) domain.Donation {
	return domain.Donation{
		ID:                 d.ID,
		DonorName:          d.DonorName,
		Email:              d.Email,
		Phone:              d.Phone,
		Amount:             d.Amount,
		Purpose:            d.Purpose,
		Message:            d.Message,
		Date:               d.Date,
		PaymentMethod:      domain.PaymentMethod(d.PaymentMethod),
		Status:             domain.DonationStatus(d.Status),
		VerificationStatus: domain.VerificationStatus(d.VerificationStatus),
		ReceiptCode:        d.ReceiptCode,
		VerifiedBy:         d.VerifiedBy,
		VerifiedAt:         d.VerifiedAt,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}
