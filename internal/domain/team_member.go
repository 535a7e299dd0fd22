package domain

import "time"

type TeamMember struct {
	ID            uint       `json:"id"`
	Name          string     `json:"name"`
	Position      string     `json:"position"`
	Congregation  string     `json:"congregation,omitempty"`
	Quote         string     `json:"quote,omitempty"`
	ImageURL      string     `json:"image_url,omitempty"`
	IsCouncil     bool       `json:"is_council"`
	PositionOrder int        `json:"position_order"`
	Visibility    Visibility `json:"visibility"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
