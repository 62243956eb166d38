package services

import (
	"fmt"
	"net/smtp"

	"go.uber.org/zap"

	"translation-office/pkg/config"
)

// AdminAlert is the summary sent to staff when a new request lands.
type AdminAlert struct {
	RequestID      string
	CustomerName   string
	CustomerEmail  string
	SourceLanguage string
	TargetLanguage string
	DocumentType   string
	Urgency        string
	NumberOfPages  string
	EstimatedPrice float64
	FileName       string
}

// NotificationServiceInterface sends the intake side-effect emails. Both are
// best-effort: a failure is logged by the caller and never fails the intake.
type NotificationServiceInterface interface {
	SendRequestConfirmation(to, requestID string) error
	SendAdminNotification(alert AdminAlert) error
}

type smtpNotificationService struct {
	cfg    config.SMTPConfig
	logger *zap.Logger
}

func NewSMTPNotificationService(cfg config.SMTPConfig, logger *zap.Logger) NotificationServiceInterface {
	return &smtpNotificationService{cfg: cfg, logger: logger}
}

func (s *smtpNotificationService) send(to, subject, body string) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s",
		s.cfg.User, to, subject, body)

	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Password, s.cfg.Host)
	return smtp.SendMail(addr, auth, s.cfg.User, []string{to}, []byte(msg))
}

func (s *smtpNotificationService) SendRequestConfirmation(to, requestID string) error {
	body := fmt.Sprintf(`<h2>Translation request received</h2>
<p>Your request has been submitted successfully.</p>
<p>Request ID: <strong>%s</strong></p>
<p>Keep this ID for your records. We will review your document and send a quote shortly.</p>`, requestID)
	return s.send(to, "Translation Request Confirmation", body)
}

func (s *smtpNotificationService) SendAdminNotification(alert AdminAlert) error {
	body := fmt.Sprintf(`<h2>New translation request</h2>
<ul>
<li>Request ID: %s</li>
<li>Customer: %s (%s)</li>
<li>Languages: %s → %s</li>
<li>Document type: %s</li>
<li>Urgency: %s</li>
<li>Pages: %s</li>
<li>Estimated price: %.2f</li>
<li>File: %s</li>
</ul>`,
		alert.RequestID, alert.CustomerName, alert.CustomerEmail,
		alert.SourceLanguage, alert.TargetLanguage,
		alert.DocumentType, alert.Urgency, alert.NumberOfPages,
		alert.EstimatedPrice, alert.FileName)
	return s.send(s.cfg.AdminEmail, "New Translation Request", body)
}

// mockNotificationService logs instead of sending, for development and
// tests.
type mockNotificationService struct {
	logger *zap.Logger
}

func NewMockNotificationService(logger *zap.Logger) NotificationServiceInterface {
	return &mockNotificationService{logger: logger}
}

func (s *mockNotificationService) SendRequestConfirmation(to, requestID string) error {
	s.logger.Info("mock email: request confirmation",
		zap.String("to", to),
		zap.String("requestId", requestID),
	)
	return nil
}

func (s *mockNotificationService) SendAdminNotification(alert AdminAlert) error {
	s.logger.Info("mock email: admin notification",
		zap.String("requestId", alert.RequestID),
		zap.String("customer", alert.CustomerName),
	)
	return nil
}
