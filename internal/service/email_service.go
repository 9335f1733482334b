package service

import (
	"fmt"

	"go.uber.org/zap"
	mail "gopkg.in/mail.v2"

	"ecommerce-backend/config"
)

// EmailService sends transactional mail over SMTP.
type EmailService struct {
	smtpHost    string
	smtpPort    int
	username    string
	password    string
	from        string
	frontendURL string
}

// NewEmailService creates an EmailService from the SMTP configuration.
func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		smtpHost:    cfg.SMTPHost,
		smtpPort:    cfg.SMTPPort,
		username:    cfg.SMTPUsername,
		password:    cfg.SMTPPassword,
		from:        cfg.EmailFrom,
		frontendURL: cfg.FrontendURL,
	}
}

// SendPasswordResetEmail mails a reset link carrying the reset token. The
// token expires after the configured reset window.
func (s *EmailService) SendPasswordResetEmail(to, name, resetToken string) error {
	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.frontendURL, resetToken)

	m := mail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Reset your password")
	m.SetBody("text/html", fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>We received a request to reset the password on your account.</p>
		<p><a href="%s">Reset password</a></p>
		<p>The link expires in 10 minutes. If you did not request this, you can ignore this email.</p>
	`, name, resetURL))

	d := mail.NewDialer(s.smtpHost, s.smtpPort, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		zap.L().Error("failed to send password reset email", zap.Error(err))
		return err
	}

	zap.L().Info("password reset email sent")
	return nil
}

var _ EmailSender = (*EmailService)(nil)
