package mailer

import (
	"context"
	"fmt"
	"log"

	"gopkg.in/gomail.v2"
)

// Mailer sends transactional mail. Implementations must be safe for
// concurrent use from request handlers.
type Mailer interface {
	SendVerificationCode(ctx context.Context, email, code string) error
	SendPasswordReset(ctx context.Context, email, token string) error
	SendWelcome(ctx context.Context, email, name string) error
}

// SMTPMailer delivers mail over SMTP.
type SMTPMailer struct {
	dialer  *gomail.Dialer
	from    string
	appName string
	baseURL string
}

func NewSMTP(host string, port int, username, password, from, appName, baseURL string) *SMTPMailer {
	return &SMTPMailer{
		dialer:  gomail.NewDialer(host, port, username, password),
		from:    from,
		appName: appName,
		baseURL: baseURL,
	}
}

func (m *SMTPMailer) send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)
	return m.dialer.DialAndSend(msg)
}

func (m *SMTPMailer) SendVerificationCode(_ context.Context, email, code string) error {
	body := fmt.Sprintf(
		"<p>Your %s verification code is:</p><h2>%s</h2><p>The code expires shortly. If you did not request it, ignore this message.</p>",
		m.appName, code,
	)
	return m.send(email, m.appName+" — verify your email", body)
}

func (m *SMTPMailer) SendPasswordReset(_ context.Context, email, token string) error {
	link := fmt.Sprintf("%s/reset-password?token=%s", m.baseURL, token)
	body := fmt.Sprintf(
		"<p>We received a request to reset your %s password.</p><p><a href=%q>Reset password</a></p><p>If you did not request this, ignore this message.</p>",
		m.appName, link,
	)
	return m.send(email, m.appName+" — password reset", body)
}

func (m *SMTPMailer) SendWelcome(_ context.Context, email, name string) error {
	body := fmt.Sprintf("<p>Hi %s,</p><p>Welcome to %s! Your account is ready.</p>", name, m.appName)
	return m.send(email, "Welcome to "+m.appName, body)
}

// DevConsoleMailer logs mail to stdout instead of sending it. Used when SMTP
// is not configured (local development, tests).
type DevConsoleMailer struct {
	enabled bool
}

func NewDevConsole(enabled bool) *DevConsoleMailer {
	return &DevConsoleMailer{enabled: enabled}
}

func (m *DevConsoleMailer) SendVerificationCode(_ context.Context, email, code string) error {
	if m.enabled {
		log.Printf("mailer type=verification email=%s code=%s", email, code)
	}
	return nil
}

func (m *DevConsoleMailer) SendPasswordReset(_ context.Context, email, token string) error {
	if m.enabled {
		log.Printf("mailer type=password_reset email=%s token=%s", email, token)
	}
	return nil
}

func (m *DevConsoleMailer) SendWelcome(_ context.Context, email, name string) error {
	if m.enabled {
		log.Printf("mailer type=welcome email=%s name=%s", email, name)
	}
	return nil
}
