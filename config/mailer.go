package config

import (
	"crypto/tls"
	"fmt"
	"os"
	"strconv"

	mail "github.com/go-mail/mail/v2"
)

// Mailer wraps the SMTP transport. It is constructed once at startup from the
// environment and injected wherever mail is sent.
type Mailer struct {
	Host          string
	Port          int
	Username      string
	Password      string
	From          string // e.g. "SRIF 2026 <no-reply@your.org>"
	FromName      string
	SkipTLSVerify bool
}

// NewMailerFromEnv builds a Mailer from SMTP_* environment variables.
// A Mailer with missing credentials is still usable; Configured reports false
// and callers skip sending.
func NewMailerFromEnv() *Mailer {
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if port == 0 {
		port = 587
	}

	fromName := os.Getenv("SMTP_FROM_NAME")
	if fromName == "" {
		fromName = "SRIF 2026"
	}

	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = os.Getenv("SMTP_USER")
	}

	return &Mailer{
		Host:          os.Getenv("SMTP_HOST"),
		Port:          port,
		Username:      os.Getenv("SMTP_USER"),
		Password:      os.Getenv("SMTP_PASS"),
		From:          from,
		FromName:      fromName,
		SkipTLSVerify: os.Getenv("SMTP_SKIP_TLS_VERIFY") == "1",
	}
}

// Configured reports whether the transport has credentials to attempt delivery.
func (m *Mailer) Configured() bool {
	return m != nil && m.Host != "" && m.Username != "" && m.Password != ""
}

// Send delivers an HTML message to the given recipients.
func (m *Mailer) Send(to []string, subject, html string) error {
	if len(to) == 0 {
		return nil
	}
	if !m.Configured() {
		return fmt.Errorf("smtp not configured (SMTP_HOST/SMTP_USER/SMTP_PASS)")
	}

	msg := mail.NewMessage()
	msg.SetAddressHeader("From", m.From, m.FromName)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", html)

	d := mail.NewDialer(m.Host, m.Port, m.Username, m.Password)

	// Force STARTTLS on port 587 (Mailjet/Gmail/Office365).
	d.StartTLSPolicy = mail.MandatoryStartTLS

	// ServerName must match the SMTP hostname; InsecureSkipVerify is for dev only.
	d.TLSConfig = &tls.Config{
		ServerName:         m.Host,
		InsecureSkipVerify: m.SkipTLSVerify,
	}

	return d.DialAndSend(msg)
}
