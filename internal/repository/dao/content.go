package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrContentNotFound = errors.New("content not found")

// The four dual-deletable content kinds share the same visibility column and
// the same lifecycle queries, so the per-kind DAO methods delegate to the
// generic helpers below.

type Event struct {
	ID                   uint      `gorm:"primaryKey"`
	Title                string    `gorm:"not null"`
	Description          string    `gorm:"not null"`
	EventType            string    `gorm:"not null"`
	StartDate            time.Time `gorm:"not null"`
	EndDate              time.Time `gorm:"not null"`
	Location             string    `gorm:"not null"`
	ImageURL             string
	Participants         int    `gorm:"default:0"`
	IsFeatured           bool   `gorm:"default:false"`
	RegistrationRequired bool   `gorm:"default:false"`
	Visibility           string `gorm:"not null;default:visible;index"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type TeamMember struct {
	ID            uint   `gorm:"primaryKey"`
	Name          string `gorm:"not null"`
	Position      string `gorm:"not null"`
	Congregation  string
	Quote         string
	ImageURL      string
	IsCouncil     bool   `gorm:"default:false"`
	PositionOrder int    `gorm:"default:999"`
	Visibility    string `gorm:"not null;default:visible;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Testimonial struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `gorm:"not null"`
	Position   string
	Content    string `gorm:"not null"`
	Rating     int    `gorm:"default:5"`
	IsFeatured bool   `gorm:"default:false"`
	Visibility string `gorm:"not null;default:visible;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type MinistryRegistration struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"not null"`
	Email        string
	Phone        string
	Ministry     string `gorm:"not null"`
	Congregation string `gorm:"not null"`
	IsApproved   bool   `gorm:"default:false"`
	Visibility   string `gorm:"not null;default:visible;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type ContentDAO struct {
	db *gorm.DB
}

func NewContentDAO(db *gorm.DB) *ContentDAO {
	return &ContentDAO{
		db: db,
	}
}

func insertContent[T any](ctx context.Context, db *gorm.DB, record T) (T, error) {
	result := db.WithContext(ctx).Create(&record)
	if result.Error != nil {
		var zero T
		return zero, result.Error
	}

	return record, nil
}

func findContentByID[T any](ctx context.Context, db *gorm.DB, id uint) (T, error) {
	var record T

	result := db.WithContext(ctx).First(&record, id)
	if result.Error != nil {
		var zero T
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return zero, ErrContentNotFound
		}

		return zero, result.Error
	}

	return record, nil
}

func findContentByVisibility[T any](ctx context.Context, db *gorm.DB, visibilities []string, orderBy string) ([]T, error) {
	var records []T

	result := db.WithContext(ctx).
		Where("visibility IN ?", visibilities).
		Order(orderBy).
		Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}

	return records, nil
}

func saveContent[T any](ctx context.Context, db *gorm.DB, record T) (T, error) {
	result := db.WithContext(ctx).Save(&record)
	if result.Error != nil {
		var zero T
		return zero, result.Error
	}

	return record, nil
}

// setContentVisibility writes the visibility column of a single record.
// Writing the current value again is a harmless no-op, which keeps the
// hide/restore commands idempotent.
func setContentVisibility[T any](ctx context.Context, db *gorm.DB, id uint, visibility string) error {
	var model T

	result := db.WithContext(ctx).Model(&model).Where("id = ?", id).Update("visibility", visibility)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrContentNotFound
	}

	return nil
}

func deleteContent[T any](ctx context.Context, db *gorm.DB, id uint) error {
	var model T

	result := db.WithContext(ctx).Delete(&model, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrContentNotFound
	}

	return nil
}

func (d *ContentDAO) InsertEvent(ctx context.Context, event Event) (Event, error) {
	return insertContent(ctx, d.db, event)
}

func (d *ContentDAO) FindEventByID(ctx context.Context, id uint) (Event, error) {
	return findContentByID[Event](ctx, d.db, id)
}

func (d *ContentDAO) FindEventsByVisibility(ctx context.Context, visibilities []string) ([]Event, error) {
	return findContentByVisibility[Event](ctx, d.db, visibilities, "start_date DESC")
}

func (d *ContentDAO) SaveEvent(ctx context.Context, event Event) (Event, error) {
	return saveContent(ctx, d.db, event)
}

func (d *ContentDAO) SetEventVisibility(ctx context.Context, id uint, visibility string) error {
	return setContentVisibility[Event](ctx, d.db, id, visibility)
}

func (d *ContentDAO) DeleteEvent(ctx context.Context, id uint) error {
	return deleteContent[Event](ctx, d.db, id)
}

func (d *ContentDAO) InsertTeamMember(ctx context.Context, member TeamMember) (TeamMember, error) {
	return insertContent(ctx, d.db, member)
}

func (d *ContentDAO) FindTeamMemberByID(ctx context.Context, id uint) (TeamMember, error) {
	return findContentByID[TeamMember](ctx, d.db, id)
}

func (d *ContentDAO) FindTeamMembersByVisibility(ctx context.Context, visibilities []string) ([]TeamMember, error) {
	return findContentByVisibility[TeamMember](ctx, d.db, visibilities, "position_order ASC, name ASC")
}

func (d *ContentDAO) SaveTeamMember(ctx context.Context, member TeamMember) (TeamMember, error) {
	return saveContent(ctx, d.db, member)
}

func (d *ContentDAO) SetTeamMemberVisibility(ctx context.Context, id uint, visibility string) error {
	return setContentVisibility[TeamMember](ctx, d.db, id, visibility)
}

func (d *ContentDAO) DeleteTeamMember(ctx context.Context, id uint) error {
	return deleteContent[TeamMember](ctx, d.db, id)
}

func (d *ContentDAO) InsertTestimonial(ctx context.Context, testimonial Testimonial) (Testimonial, error) {
	return insertContent(ctx, d.db, testimonial)
}

func (d *ContentDAO) FindTestimonialByID(ctx context.Context, id uint) (Testimonial, error) {
	return findContentByID[Testimonial](ctx, d.db, id)
}

func (d *ContentDAO) FindTestimonialsByVisibility(ctx context.Context, visibilities []string) ([]Testimonial, error) {
	return findContentByVisibility[Testimonial](ctx, d.db, visibilities, "created_at DESC")
}

func (d *ContentDAO) SaveTestimonial(ctx context.Context, testimonial Testimonial) (Testimonial, error) {
	return saveContent(ctx, d.db, testimonial)
}

func (d *ContentDAO) SetTestimonialVisibility(ctx context.Context, id uint, visibility string) error {
	return setContentVisibility[Testimonial](ctx, d.db, id, visibility)
}

func (d *ContentDAO) DeleteTestimonial(ctx context.Context, id uint) error {
	return deleteContent[Testimonial](ctx, d.db, id)
}

func (d *ContentDAO) InsertMinistryRegistration(ctx context.Context, registration MinistryRegistration) (MinistryRegistration, error) {
	return insertContent(ctx, d.db, registration)
}

func (d *ContentDAO) FindMinistryRegistrationByID(ctx context.Context, id uint) (MinistryRegistration, error) {
	return findContentByID[MinistryRegistration](ctx, d.db, id)
}

func (d *ContentDAO) FindMinistryRegistrationsByVisibility(ctx context.Context, visibilities []string) ([]MinistryRegistration, error) {
	return findContentByVisibility[MinistryRegistration](ctx, d.db, visibilities, "created_at DESC")
}

func (d *ContentDAO) SaveMinistryRegistration(ctx context.Context, registration MinistryRegistration) (MinistryRegistration, error) {
	return saveContent(ctx, d.db, registration)
}

func (d *ContentDAO) SetMinistryRegistrationVisibility(ctx context.Context, id uint, visibility string) error {
	return setContentVisibility[MinistryRegistration](ctx, d.db, id, visibility)
}

func (d *ContentDAO) DeleteMinistryRegistration(ctx context.Context, id uint) error {
	return deleteContent[MinistryRegistration](ctx, d.db, id)
}
