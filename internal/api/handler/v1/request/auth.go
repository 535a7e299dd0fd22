package request

import (
	"errors"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
)

const (
	// At least 8 characters with 1 letter and 1 digit; lookaheads need
	// regexp2 since the stdlib engine doesn't support them.
	passwordRegexPattern = `^(?=.*[A-Za-z])(?=.*\d).{8,}$`
)

var (
	errInvalidPassword = errors.New("the password must be at least 8 characters and contain 1 letter and 1 number")

	passwordExp = regexp2.MustCompile(passwordRegexPattern, regexp2.None)
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (req *LoginRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Username, validation.Required),
		validation.Field(&req.Password, validation.Required),
	)
}

type ChangeCredentialsRequest struct {
	CurrentPassword string `json:"current_password"`
	NewUsername     string `json:"new_username,omitempty"`
	NewPassword     string `json:"new_password,omitempty"`
}

func (req *ChangeCredentialsRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.CurrentPassword, validation.Required),
		validation.Field(&req.NewUsername, validation.Length(3, 50)),
	)
	if err != nil {
		return err
	}

	if req.NewUsername == "" && req.NewPassword == "" {
		return errors.New("nothing to change")
	}

	if req.NewPassword != "" {
		ok, err := passwordExp.MatchString(req.NewPassword)
		if err != nil || !ok {
			return errInvalidPassword
		}
	}

	return nil
}
