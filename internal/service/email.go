package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/liaa-aa/Project-API/internal/domain"
)

type emailService struct {
	apiKey   string
	from     string
	fromName string
}

func NewEmailService(apiKey, from, fromName string) EmailService {
	return &emailService{
		apiKey:   apiKey,
		from:     from,
		fromName: fromName,
	}
}

func (s *emailService) send(to, toName, subject, body string) error {
	if s.apiKey == "" {
		// Email is optional in development; treat missing credentials
		// as a no-op rather than a hard failure.
		return nil
	}

	from := mail.NewEmail(s.fromName, s.from)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *emailService) SendRegistrationDecision(ctx context.Context, email, name, eventTitle string, status domain.RegistrationStatus) error {
	var subject, body string
	switch status {
	case domain.RegistrationStatusApproved:
		subject = fmt.Sprintf("You're in: %s", eventTitle)
		body = fmt.Sprintf("Hello %s,\n\nYour volunteer registration for \"%s\" has been approved. Thank you for helping out.", name, eventTitle)
	case domain.RegistrationStatusRejected:
		subject = fmt.Sprintf("Registration update: %s", eventTitle)
		body = fmt.Sprintf("Hello %s,\n\nUnfortunately your volunteer registration for \"%s\" was not accepted this time.", name, eventTitle)
	default:
		return nil
	}
	return s.send(email, name, subject, body)
}

func (s *emailService) SendEventReminder(ctx context.Context, email, name, eventTitle, location, date string) error {
	subject := fmt.Sprintf("Reminder: %s", eventTitle)
	body := fmt.Sprintf("Hello %s,\n\nThis is a reminder that \"%s\" takes place on %s at %s. See you there.", name, eventTitle, date, location)
	return s.send(email, name, subject, body)
}
