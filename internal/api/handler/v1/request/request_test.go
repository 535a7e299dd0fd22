package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEvent() EventRequest {
	return EventRequest{
		Title:       "Easter Convention",
		Description: "Annual gathering",
		EventType:   "convention",
		StartDate:   "2025-04-18T09:00:00Z",
		EndDate:     "2025-04-20T18:00:00Z",
		Location:    "Abetifi",
	}
}

func TestEventRequestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := validEvent()
		require.NoError(t, req.Validate())
	})

	t.Run("missing title", func(t *testing.T) {
		req := validEvent()
		req.Title = ""
		require.Error(t, req.Validate())
	})

	t.Run("bad start date", func(t *testing.T) {
		req := validEvent()
		req.StartDate = "18/04/2025"
		require.Error(t, req.Validate())
	})

	t.Run("negative participants", func(t *testing.T) {
		req := validEvent()
		req.Participants = -1
		require.Error(t, req.Validate())
	})
}

func TestTestimonialRequestValidate(t *testing.T) {
	req := TestimonialRequest{
		Name:    "Abena",
		Content: "The retreat changed my life.",
		Rating:  5,
	}
	require.NoError(t, req.Validate())

	req.Rating = 6
	require.Error(t, req.Validate())

	req.Rating = 0
	require.Error(t, req.Validate())
}

func TestMinistryRegistrationRequestValidate(t *testing.T) {
	valid := MinistryRegistrationRequest{
		Name:         "Akosua Sarpong",
		Email:        "akosua@example.com",
		Phone:        "0241234567",
		Ministry:     "Choir",
		Congregation: "Grace",
	}
	require.NoError(t, valid.Validate())

	t.Run("international phone format", func(t *testing.T) {
		req := valid
		req.Phone = "+233241234567"
		require.NoError(t, req.Validate())
	})

	t.Run("bad phone", func(t *testing.T) {
		req := valid
		req.Phone = "12345"
		require.Error(t, req.Validate())
	})

	t.Run("bad email", func(t *testing.T) {
		req := valid
		req.Email = "not-an-email"
		require.Error(t, req.Validate())
	})

	t.Run("email and phone are optional", func(t *testing.T) {
		req := valid
		req.Email = ""
		req.Phone = ""
		require.NoError(t, req.Validate())
	})
}

func TestCreateDonationRequestValidate(t *testing.T) {
	valid := CreateDonationRequest{
		DonorName:     "Ama Mensah",
		Email:         "ama@example.com",
		Phone:         "0241234567",
		Amount:        150,
		PaymentMethod: "momo",
	}
	require.NoError(t, valid.Validate())

	t.Run("unknown payment method", func(t *testing.T) {
		req := valid
		req.PaymentMethod = "paypal"
		require.Error(t, req.Validate())
	})

	t.Run("bad date", func(t *testing.T) {
		req := valid
		req.Date = "01-06-2025"
		require.Error(t, req.Validate())
	})
}

func TestSubmitQuizRequestValidate(t *testing.T) {
	valid := SubmitQuizRequest{
		Name:           "Kofi Boateng",
		PhoneNumber:    "0241234567",
		Congregation:   "Grace",
		SelectedAnswer: "a",
		AccessToken:    "token",
	}
	require.NoError(t, valid.Validate())

	t.Run("answer must be one of the four options", func(t *testing.T) {
		req := valid
		req.SelectedAnswer = "E"
		require.Error(t, req.Validate())
	})

	t.Run("access token is mandatory", func(t *testing.T) {
		req := valid
		req.AccessToken = ""
		require.Error(t, req.Validate())
	})
}

func TestCreateQuizRequestValidate(t *testing.T) {
	valid := CreateQuizRequest{
		Title:         "Bible Knowledge Week 3",
		Question:      "Who led Israel out of Egypt?",
		OptionA:       "Moses",
		OptionB:       "Aaron",
		OptionC:       "Joshua",
		OptionD:       "David",
		CorrectAnswer: "A",
		Password:      "exodus14",
		StartTime:     "2025-06-01T18:00:00Z",
		EndTime:       "2025-06-01T20:00:00Z",
	}
	require.NoError(t, valid.Validate())

	t.Run("short password", func(t *testing.T) {
		req := valid
		req.Password = "abc"
		require.Error(t, req.Validate())
	})

	t.Run("correct answer outside options", func(t *testing.T) {
		req := valid
		req.CorrectAnswer = "Moses"
		require.Error(t, req.Validate())
	})
}

func TestChangeCredentialsRequestValidate(t *testing.T) {
	t.Run("new password needs a letter and a digit", func(t *testing.T) {
		req := ChangeCredentialsRequest{
			CurrentPassword: "old",
			NewPassword:     "onlyletters",
		}
		assert.ErrorIs(t, req.Validate(), errInvalidPassword)

		req.NewPassword = "12345678"
		assert.ErrorIs(t, req.Validate(), errInvalidPassword)

		req.NewPassword = "short1a"
		assert.ErrorIs(t, req.Validate(), errInvalidPassword)

		req.NewPassword = "longenough1"
		assert.NoError(t, req.Validate())
	})

	t.Run("must change something", func(t *testing.T) {
		req := ChangeCredentialsRequest{CurrentPassword: "old"}
		require.Error(t, req.Validate())
	})

	t.Run("username change alone is fine", func(t *testing.T) {
		req := ChangeCredentialsRequest{
			CurrentPassword: "old",
			NewUsername:     "newname",
		}
		require.NoError(t, req.Validate())
	})
}
