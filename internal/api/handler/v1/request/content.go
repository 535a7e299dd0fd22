package request

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// Ghanaian mobile numbers: either 0XXXXXXXXX or +233XXXXXXXXX.
var phoneExp = regexp.MustCompile(`^(0\d{9}|\+233\d{9})$`)

type EventRequest struct {
	Title                string `json:"title"`
	Description          string `json:"description"`
	EventType            string `json:"event_type"`
	StartDate            string `json:"start_date"`
	EndDate              string `json:"end_date"`
	Location             string `json:"location"`
	ImageURL             string `json:"image_url,omitempty"`
	Participants         int    `json:"participants"`
	IsFeatured           bool   `json:"is_featured"`
	RegistrationRequired bool   `json:"registration_required"`
}

func (req *EventRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(2, 200)),
		validation.Field(&req.Description, validation.Required),
		validation.Field(&req.EventType, validation.Required, validation.Length(2, 50)),
		validation.Field(&req.StartDate, validation.Required, validation.Date("2006-01-02T15:04:05Z07:00")),
		validation.Field(&req.EndDate, validation.Required, validation.Date("2006-01-02T15:04:05Z07:00")),
		validation.Field(&req.Location, validation.Required, validation.Length(2, 200)),
		validation.Field(&req.Participants, validation.Min(0)),
	)
}

type TeamMemberRequest struct {
	Name          string `json:"name"`
	Position      string `json:"position"`
	Congregation  string `json:"congregation,omitempty"`
	Quote         string `json:"quote,omitempty"`
	ImageURL      string `json:"image_url,omitempty"`
	IsCouncil     bool   `json:"is_council"`
	PositionOrder int    `json:"position_order"`
}

func (req *TeamMemberRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Position, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Congregation, validation.Length(0, 200)),
		validation.Field(&req.PositionOrder, validation.Min(0)),
	)
}

type TestimonialRequest struct {
	Name       string `json:"name"`
	Position   string `json:"position,omitempty"`
	Content    string `json:"content"`
	Rating     int    `json:"rating"`
	IsFeatured bool   `json:"is_featured"`
}

func (req *TestimonialRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Content, validation.Required),
		validation.Field(&req.Rating, validation.Required, validation.Min(1), validation.Max(5)),
	)
}

type MinistryRegistrationRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Ministry     string `json:"ministry"`
	Congregation string `json:"congregation"`
}

func (req *MinistryRegistrationRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Email, is.Email),
		validation.Field(&req.Phone, validation.Match(phoneExp)),
		validation.Field(&req.Ministry, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Congregation, validation.Required, validation.Length(2, 100)),
	)
}
