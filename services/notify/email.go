package notify

import (
	"crypto/tls"
	"fmt"
	"mime"
	"net/smtp"
	"strings"

	"aide/config"
	"aide/utils"

	"go.uber.org/zap"
)

type EmailService interface {
	// Send delivers a plain-text email from the configured sender address.
	Send(to, subject, body string) error
}

// SMTPEmailService sends mail over SMTP with implicit TLS (port 465 style).
type SMTPEmailService struct{}

func (s *SMTPEmailService) Send(to, subject, body string) error {
	cfg := config.AppConfig
	if cfg.SMTPSender == "" || cfg.SMTPPass == "" {
		return fmt.Errorf("smtp sender not configured")
	}
	addr := fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort)

	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: cfg.SMTPHost})
	if err != nil {
		return fmt.Errorf("dial smtp server: %w", err)
	}
	client, err := smtp.NewClient(conn, cfg.SMTPHost)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer client.Close()

	auth := smtp.PlainAuth("", cfg.SMTPSender, cfg.SMTPPass, cfg.SMTPHost)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}
	if err := client.Mail(cfg.SMTPSender); err != nil {
		return fmt.Errorf("smtp MAIL FROM: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("smtp RCPT TO: %w", err)
	}
	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp DATA: %w", err)
	}
	if _, err := w.Write([]byte(buildMessage(cfg.SMTPSender, to, subject, body))); err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finish message: %w", err)
	}
	if err := client.Quit(); err != nil {
		return fmt.Errorf("smtp quit: %w", err)
	}

	utils.GetLogger().Info("Sent email", zap.String("to", to), zap.String("subject", subject))
	return nil
}

func buildMessage(from, to, subject, body string) string {
	headers := []string{
		"From: " + from,
		"To: " + to,
		"Subject: " + mime.QEncoding.Encode("utf-8", subject),
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"utf-8\"",
	}
	return strings.Join(headers, "\r\n") + "\r\n\r\n" + body + "\r\n"
}
