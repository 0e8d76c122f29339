package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/aaywp/portal/internal/client/models"
	"github.com/aaywp/portal/internal/client/validation"
)

const (
	MsgContactSent   = "Thank you for your message! We will get back to you soon."
	MsgContactFailed = "Failed to send message. Please try again."
)

// ContactAPI is the part of the API client used by the contact form.
type ContactAPI interface {
	SubmitContactForm(ctx context.Context, p models.ContactRequest) (models.Envelope[models.Created], error)
}

type ContactService struct {
	api       ContactAPI
	validator *validation.Validator
}

func NewContactService(api ContactAPI, v *validation.Validator) *ContactService {
	return &ContactService{api: api, validator: v}
}

// Submit validates req and posts it. Validation failures are returned as
// validation.Errors without contacting the backend.
func (s *ContactService) Submit(ctx context.Context, req models.ContactRequest) error {
	req = models.ContactRequest{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   strings.TrimSpace(req.Phone),
		Subject: strings.TrimSpace(req.Subject),
		Message: strings.TrimSpace(req.Message),
	}
	if errs := s.validator.Contact(req); len(errs) > 0 {
		return errs
	}
	if _, err := s.api.SubmitContactForm(ctx, req); err != nil {
		return fmt.Errorf("contact form: %w", err)
	}
	return nil
}
