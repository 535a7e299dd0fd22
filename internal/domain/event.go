package domain

import "time"

type Event struct {
	ID                   uint       `json:"id"`
	Title                string     `json:"title"`
	Description          string     `json:"description"`
	EventType            string     `json:"event_type"`
	StartDate            time.Time  `json:"start_date"`
	EndDate              time.Time  `json:"end_date"`
	Location             string     `json:"location"`
	ImageURL             string     `json:"image_url,omitempty"`
	Participants         int        `json:"participants"`
	IsFeatured           bool       `json:"is_featured"`
	RegistrationRequired bool       `json:"registration_required"`
	Visibility           Visibility `json:"visibility"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}
