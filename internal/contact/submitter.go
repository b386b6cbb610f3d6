package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/smtp"
	"strings"
	"time"
)

var ErrSimulatedFailure = errors.New("simulated delivery failure")

// Submitter delivers a validated submission
type Submitter interface {
	Submit(ctx context.Context, f FormData) error
}

// SimulatedSubmitter stands in for a real delivery channel: it waits a fixed
// delay and then succeeds with probability SuccessRate.
type SimulatedSubmitter struct {
	Delay       time.Duration
	SuccessRate float64

	roll func() float64
}

func NewSimulatedSubmitter(delay time.Duration, successRate float64) *SimulatedSubmitter {
	return &SimulatedSubmitter{
		Delay:       delay,
		SuccessRate: successRate,
		roll:        rand.Float64,
	}
}

func (s *SimulatedSubmitter) Submit(ctx context.Context, f FormData) error {
	if s.Delay > 0 {
		timer := time.NewTimer(s.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	roll := s.roll
	if roll == nil {
		roll = rand.Float64
	}
	if roll() >= s.SuccessRate {
		return ErrSimulatedFailure
	}
	return nil
}

// SMTPSubmitter mails the submission to the site owner
type SMTPSubmitter struct {
	Host string
	Port string
	User string
	Pass string
	To   string

	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPSubmitter(host, port, user, pass, to string) *SMTPSubmitter {
	return &SMTPSubmitter{
		Host: host,
		Port: port,
		User: user,
		Pass: pass,
		To:   to,
		send: smtp.SendMail,
	}
}

func (s *SMTPSubmitter) Submit(ctx context.Context, f FormData) error {
	if s.User == "" || s.Pass == "" {
		return fmt.Errorf("SMTP credentials not configured")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	auth := smtp.PlainAuth("", s.User, s.Pass, s.Host)
	if err := s.send(s.Host+":"+s.Port, auth, s.User, []string{s.To}, s.compose(f)); err != nil {
		slog.Error("failed to send contact email", "error", err, "subject", f.Subject)
		return fmt.Errorf("send contact email: %w", err)
	}

	slog.Info("contact email sent", "subject", f.Subject)
	return nil
}

func (s *SMTPSubmitter) compose(f FormData) []byte {
	subject := headerSafe(fmt.Sprintf("Portfolio Contact: %s (%s)", f.FullName(), SubjectLabel(f.Subject)))
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Subject: %s
Message:
%s

---
Sent from your portfolio contact form
`, f.FullName(), f.Email, SubjectLabel(f.Subject), f.Message)

	return []byte("To: " + s.To + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + s.User + "\r\n" +
		"Reply-To: " + headerSafe(f.Email) + "\r\n" +
		"\r\n" +
		body + "\r\n")
}

var headerReplacer = strings.NewReplacer("\r", " ", "\n", " ")

// headerSafe keeps user input from starting new mail headers
func headerSafe(s string) string {
	return headerReplacer.Replace(s)
}
