package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrSupervisorNotFound = errors.New("supervisor not found")

type Supervisor struct {
	ID        uint   `gorm:"primaryKey"`
	Username  string `gorm:"unique;not null"`
	Password  string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type SupervisorDAO struct {
	db *gorm.DB
}

func NewSupervisorDAO(db *gorm.DB) *SupervisorDAO {
	return &SupervisorDAO{
		db: db,
	}
}

func (d *SupervisorDAO) FindByUsername(ctx context.Context, username string) (Supervisor, error) {
	var supervisor Supervisor

	result := d.db.WithContext(ctx).First(&supervisor, "username = ?", username)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Supervisor{}, ErrSupervisorNotFound
		}

		return Supervisor{}, result.Error
	}

	return supervisor, nil
}

func (d *SupervisorDAO) FindByID(ctx context.Context, id uint) (Supervisor, error) {
	var supervisor Supervisor

	result := d.db.WithContext(ctx).First(&supervisor, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Supervisor{}, ErrSupervisorNotFound
		}

		return Supervisor{}, result.Error
	}

	return supervisor, nil
}

func (d *SupervisorDAO) Save(ctx context.Context, supervisor Supervisor) (Supervisor, error) {
	result := d.db.WithContext(ctx).Save(&supervisor)
	if result.Error != nil {
		return Supervisor{}, result.Error
	}

	return supervisor, nil
}
