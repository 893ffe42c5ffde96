package booking

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/interviewbook/interviewbook-server/cmd/models"
)

var validate = validator.New()

type createBookingRequest struct {
	CandidateName  string `json:"candidate_name" validate:"required,max=100"`
	CandidateEmail string `json:"candidate_email" validate:"required,email,max=255"`
	CandidatePhone string `json:"candidate_phone" validate:"omitempty,max=20"`
	RoleApplied    string `json:"role_applied" validate:"required,max=100"`
	Notes          string `json:"notes" validate:"omitempty,max=1000"`
	BookingDate    string `json:"booking_date" validate:"required"`
	BookingTime    string `json:"booking_time" validate:"required"`
}

func validateBookingRequest(req *createBookingRequest) error {
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fieldError(verrs[0])
		}
		return err
	}

	if _, err := time.Parse("2006-01-02", req.BookingDate); err != nil {
		return errors.New("booking_date must use YYYY-MM-DD")
	}
	if _, err := time.Parse("15:04", req.BookingTime); err != nil {
		return errors.New("booking_time must use HH:MM")
	}

	return nil
}

func fieldError(fe validator.FieldError) error {
	switch fe.Tag() {
	case "required":
		return errors.New(fe.Field() + " is required")
	case "email":
		return errors.New("candidate_email must be a valid email address")
	case "max":
		return errors.New(fe.Field() + " is too long")
	default:
		return errors.New(fe.Field() + " is invalid")
	}
}

var allowedStatusTargets = map[string]bool{
	models.BookingCompleted: true,
	models.BookingCancelled: true,
	models.BookingNoShow:    true,
}

// validStatusTarget reports whether status is one of the terminal states an
// admin may move a scheduled booking into.
func validStatusTarget(status string) bool {
	return allowedStatusTargets[status]
}
