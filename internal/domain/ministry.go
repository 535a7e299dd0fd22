package domain

import "time"

// MinistryRegistration is a public sign-up for one of the YPG ministries.
type MinistryRegistration struct {
	ID           uint       `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email,omitempty"`
	Phone        string     `json:"phone,omitempty"`
	Ministry     string     `json:"ministry"`
	Congregation string     `json:"congregation"`
	IsApproved   bool       `json:"is_approved"`
	Visibility   Visibility `json:"visibility"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
