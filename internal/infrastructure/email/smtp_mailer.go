package email

import (
	"context"
	"fmt"
	"mime"
	"net/smtp"

	"artist-hub.backend/internal/config"
)

// SMTPMailer delivers one-time passcodes over SMTP
type SMTPMailer struct {
	cfg config.SMTPConfig
}

var sendMail = smtp.SendMail

// NewSMTPMailer creates a new SMTP mailer
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// SendOTP sends the passcode to the given address. Any SMTP failure is
// returned to the caller as-is; there are no retries.
func (m *SMTPMailer) SendOTP(ctx context.Context, email, code string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	subject := mime.QEncoding.Encode("utf-8", "[Artist Hub] 이메일 인증 코드")
	msg := []byte("From: " + m.cfg.Sender + "\r\n" +
		"To: " + email + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		"인증번호: " + code + "\r\n" +
		"5분 안에 입력해 주세요.\r\n")

	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	if err := sendMail(m.cfg.Addr(), auth, m.cfg.Sender, []string{email}, msg); err != nil {
		return fmt.Errorf("failed to send otp mail: %w", err)
	}
	return nil
}
