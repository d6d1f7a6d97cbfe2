package notification

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/marketlink/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

const deliveryTimeout = 30 * time.Second

// SMTPSender delivers messages through a plain SMTP relay
type SMTPSender struct {
	addr string
	auth smtp.Auth
	from string
}

// NewSMTPSender creates a sender from notification config
func NewSMTPSender(cfg config.NotificationConfig) *SMTPSender {
	var auth smtp.Auth
	if cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPHost)
	}
	return &SMTPSender{
		addr: fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
		auth: auth,
		from: cfg.From,
	}
}

// Send implements Sender
func (s *SMTPSender) Send(_ context.Context, recipient, subject, message string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", s.from)
	fmt.Fprintf(&b, "To: %s\r\n", recipient)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	b.WriteString(message)

	return smtp.SendMail(s.addr, s.auth, s.from, []string{recipient}, []byte(b.String()))
}

// LogSender writes messages to the log instead of delivering them.
// Used in development and when notifications are disabled.
type LogSender struct {
	logger *zap.Logger
}

// NewLogSender creates a log-only sender
func NewLogSender(logger *zap.Logger) *LogSender {
	return &LogSender{logger: logger.Named("mail")}
}

// Send implements Sender
func (s *LogSender) Send(_ context.Context, recipient, subject, message string) error {
	s.logger.Info("outbound mail",
		zap.String("to", recipient),
		zap.String("subject", subject),
		zap.String("body", message),
	)
	return nil
}

var (
	_ Sender = (*SMTPSender)(nil)
	_ Sender = (*LogSender)(nil)
)
