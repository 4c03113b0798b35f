package domain

import (
	"strings"

	"github.com/mateoroldos/personal-blog/shared/validation"
)

// ContactSubmission is a validated contact form. Build it with NewContactSubmission.
type ContactSubmission struct {
	Email   Email   `form:"email" validate:"required,email"`
	Message MsgText `form:"message" validate:"min=5,max=500"`
}

// Subscription is a validated newsletter sign-up. Build it with NewSubscription.
type Subscription struct {
	Email Email `form:"email" validate:"required,email"`
}

// NewContactSubmission validates the raw form values.
// Errors wrap errors.ErrInvalidInput.
func NewContactSubmission(email, message string) (ContactSubmission, error) {
	s := ContactSubmission{Email: strings.TrimSpace(email), Message: message}
	if err := validation.Struct(s); err != nil {
		return ContactSubmission{}, err
	}
	return s, nil
}

func NewSubscription(email string) (Subscription, error) {
	s := Subscription{Email: strings.TrimSpace(email)}
	if err := validation.Struct(s); err != nil {
		return Subscription{}, err
	}
	return s, nil
}
