package domain

import "time"

type Testimonial struct {
	ID         uint       `json:"id"`
	Name       string     `json:"name"`
	Position   string     `json:"position,omitempty"`
	Content    string     `json:"content"`
	Rating     int        `json:"rating"`
	IsFeatured bool       `json:"is_featured"`
	Visibility Visibility `json:"visibility"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
