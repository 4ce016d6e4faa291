package service

import (
	"context"
	"fmt"

	"hostelhub-backend/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) send(to, toName, subject, plainText string) error {
	// No API key configured means email is disabled (dev environments).
	if s.apiKey == "" {
		logger.Debug("Email disabled, skipping send", "to", to, "subject", subject)
		return nil
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	logger.ExternalServiceCall("sendgrid", "send", "to", to, "subject", subject)
	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	logger.ExternalServiceResult("sendgrid", "send", err, "to", to)

	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *emailService) SendLevyApprovalNotification(ctx context.Context, email, name string, roomCount int, amountCents int32) error {
	subject := "Levy Payment Approved"
	body := fmt.Sprintf(
		"Hello %s,\n\nYour levy payment of UGX %s covering %d room(s) has been approved. Your rooms are eligible for student bookings for 1 YEAR.\n\nBest regards,\nThe HostelHub Team",
		name, formatCents(amountCents), roomCount)
	return s.send(email, name, subject, body)
}

func (s *emailService) SendLevyRejectionNotification(ctx context.Context, email, name, reason string) error {
	subject := "Levy Payment Rejected"
	body := fmt.Sprintf(
		"Hello %s,\n\nYour levy payment was rejected. Reason: %s.\n\nPlease review the payment details and submit again.\n\nBest regards,\nThe HostelHub Team",
		name, reason)
	return s.send(email, name, subject, body)
}

func (s *emailService) SendLevyExpiryReminder(ctx context.Context, email, name, propertyName, roomNumber, expiryDate string) error {
	subject := fmt.Sprintf("Levy Expiring Soon - %s Room %s", propertyName, roomNumber)
	body := fmt.Sprintf(
		"Hello %s,\n\nThe levy for room %s at %s expires on %s. Renew before then to keep the room eligible for student bookings.\n\nBest regards,\nThe HostelHub Team",
		name, roomNumber, propertyName, expiryDate)
	return s.send(email, name, subject, body)
}
