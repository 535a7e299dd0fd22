package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Supervisor{},
		&Event{},
		&TeamMember{},
		&Testimonial{},
		&MinistryRegistration{},
		&Donation{},
		&Quiz{},
		&QuizSubmission{},
	)
}
