package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateQuizRequest struct {
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	Question      string `json:"question"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	CorrectAnswer string `json:"correct_answer"`
	Password      string `json:"password"`
	IsActive      bool   `json:"is_active"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
}

func (req *CreateQuizRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(2, 200)),
		validation.Field(&req.Question, validation.Required),
		validation.Field(&req.OptionA, validation.Required),
		validation.Field(&req.OptionB, validation.Required),
		validation.Field(&req.OptionC, validation.Required),
		validation.Field(&req.OptionD, validation.Required),
		validation.Field(&req.CorrectAnswer, validation.Required, validation.In("A", "B", "C", "D", "a", "b", "c", "d")),
		validation.Field(&req.Password, validation.Required, validation.Length(4, 50)),
		validation.Field(&req.StartTime, validation.Required, validation.Date("2006-01-02T15:04:05Z07:00")),
		validation.Field(&req.EndTime, validation.Required, validation.Date("2006-01-02T15:04:05Z07:00")),
	)
}

type VerifyQuizPasswordRequest struct {
	Password string `json:"password"`
}

func (req *VerifyQuizPasswordRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Password, validation.Required),
	)
}

type SubmitQuizRequest struct {
	Name           string `json:"name"`
	PhoneNumber    string `json:"phone_number"`
	Congregation   string `json:"congregation"`
	SelectedAnswer string `json:"selected_answer"`
	AccessToken    string `json:"access_token"`
}

func (req *SubmitQuizRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.PhoneNumber, validation.Required, validation.Match(phoneExp)),
		validation.Field(&req.Congregation, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.SelectedAnswer, validation.Required, validation.In("A", "B", "C", "D", "a", "b", "c", "d")),
		validation.Field(&req.AccessToken, validation.Required),
	)
}
