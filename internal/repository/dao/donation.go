package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrDonationNotFound = errors.New("donation not found")

type Donation struct {
	ID                 uint    `gorm:"primaryKey"`
	DonorName          string  `gorm:"not null"`
	Email              string  `gorm:"not null"`
	Phone              string  `gorm:"not null"`
	Amount             float64 `gorm:"not null"`
	Purpose            string
	Message            string
	Date               time.Time `gorm:"not null"`
	PaymentMethod      string    `gorm:"not null;index"`
	Status             string    `gorm:"not null;default:pending"`
	VerificationStatus string    `gorm:"not null;default:pending;index"`
	ReceiptCode        string    `gorm:"uniqueIndex"`
	VerifiedBy         string
	VerifiedAt         *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type DonationFilter struct {
	VerificationStatus string
	PaymentMethod      string
	Purpose            string
}

type DonationDAO struct {
	db *gorm.DB
}

func NewDonationDAO(db *gorm.DB) *DonationDAO {
	return &DonationDAO{
		db: db,
	}
}

func (d *DonationDAO) Insert(ctx context.Context, donation Donation) (Donation, error) {
	result := d.db.WithContext(ctx).Create(&donation)
	if result.Error != nil {
		return Donation{}, result.Error
	}

	return donation, nil
}

func (d *DonationDAO) FindByID(ctx context.Context, id uint) (Donation, error) {
	var donation Donation

	result := d.db.WithContext(ctx).First(&donation, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Donation{}, ErrDonationNotFound
		}

		return Donation{}, result.Error
	}

	return donation, nil
}

func (d *DonationDAO) FindAll(ctx context.Context, filter DonationFilter) ([]Donation, error) {
	var donations []Donation

	query := d.db.WithContext(ctx).Order("created_at DESC")
	if filter.VerificationStatus != "" {
		query = query.Where("verification_status = ?", filter.VerificationStatus)
	}
	if filter.PaymentMethod != "" {
		query = query.Where("payment_method = ?", filter.PaymentMethod)
	}
	if filter.Purpose != "" {
		query = query.Where("purpose = ?", filter.Purpose)
	}

	result := query.Find(&donations)
	if result.Error != nil {
		return nil, result.Error
	}

	return donations, nil
}

func (d *DonationDAO) Save(ctx context.Context, donation Donation) (Donation, error) {
	result := d.db.WithContext(ctx).Save(&donation)
	if result.Error != nil {
		return Donation{}, result.Error
	}

	return donation, nil
}

func (d *DonationDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Donation{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDonationNotFound
	}

	return nil
}

// SumAmountByMethod totals verified donations for one payment method. The
// sum runs in the database so every read reflects the store as-is.
func (d *DonationDAO) SumAmountByMethod(ctx context.Context, method string) (float64, error) {
	var total float64

	result := d.db.WithContext(ctx).
		Model(&Donation{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("payment_method = ? AND verification_status = ?", method, "verified").
		Scan(&total)
	if result.Error != nil {
		return 0, result.Error
	}

	return total, nil
}

func (d *DonationDAO) CountByVerificationStatus(ctx context.Context, status string) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&Donation{}).
		Where("verification_status = ?", status).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}
