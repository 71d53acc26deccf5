// Package mailer delivers the rendered report over SMTP submission with STARTTLS.
package mailer

import (
	"context"
	"crypto/tls"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/cbb-daily-report/internal/logging"
)

const (
	defaultDialTimeout = 30 * time.Second
	base64LineLength   = 76
)

// ErrNoRecipients is returned when a message has nobody to go to.
var ErrNoRecipients = errors.New("mailer: no recipients specified")

// Config holds SMTP submission settings.
type Config struct {
	Host     string
	Port     int
	From     string
	Password string
	To       []string
}

type smtpClient interface {
	Extension(ext string) (bool, string)
	StartTLS(config *tls.Config) error
	Auth(a smtp.Auth) error
	Mail(from string) error
	Rcpt(to string) error
	Data() (io.WriteCloser, error)
	Quit() error
	Close() error
}

type dialFunc func(ctx context.Context, addr, host string) (smtpClient, error)

// SMTPSender submits plain-text mail through an authenticated, encrypted session.
type SMTPSender struct {
	cfg    Config
	logger *slog.Logger
	dial   dialFunc
	now    func() time.Time
}

// NewSMTPSender constructs a sender for cfg.
func NewSMTPSender(cfg Config, logger *slog.Logger) *SMTPSender {
	return &SMTPSender{
		cfg:    cfg,
		logger: logger,
		dial:   dialSMTP,
		now:    time.Now,
	}
}

// Send delivers a single plain-text message with subject and body to every configured recipient.
func (s *SMTPSender) Send(ctx context.Context, subject, body string) error {
	if len(s.cfg.To) == 0 {
		return ErrNoRecipients
	}

	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
	client, err := s.dial(ctx, addr, s.cfg.Host)
	if err != nil {
		return fmt.Errorf("mailer: connect %s: %w", addr, err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); !ok {
		return fmt.Errorf("mailer: %s does not offer STARTTLS", addr)
	}
	if err := client.StartTLS(&tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}); err != nil {
		return fmt.Errorf("mailer: start tls: %w", err)
	}

	if s.cfg.Password != "" {
		auth := smtp.PlainAuth("", s.cfg.From, s.cfg.Password, s.cfg.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("mailer: authenticate: %w", err)
		}
	}

	if err := client.Mail(s.cfg.From); err != nil {
		return fmt.Errorf("mailer: set sender: %w", err)
	}
	for _, rcpt := range s.cfg.To {
		if err := client.Rcpt(rcpt); err != nil {
			return fmt.Errorf("mailer: set recipient %s: %w", rcpt, err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("mailer: open data: %w", err)
	}
	if _, err := w.Write(s.buildMessage(subject, body)); err != nil {
		return fmt.Errorf("mailer: write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("mailer: close data: %w", err)
	}

	logging.Info(logging.FromContext(ctx, s.logger), "report mailed",
		slog.String("from", s.cfg.From),
		slog.Int(logging.FieldCount, len(s.cfg.To)),
	)
	return client.Quit()
}

func (s *SMTPSender) buildMessage(subject, body string) []byte {
	headers := [][2]string{
		{"From", s.cfg.From},
		{"To", strings.Join(s.cfg.To, ", ")},
		{"Subject", mime.QEncoding.Encode("UTF-8", subject)},
		{"Date", s.now().Format(time.RFC1123Z)},
		{"MIME-Version", "1.0"},
		{"Content-Type", "text/plain; charset=UTF-8"},
		{"Content-Transfer-Encoding", "base64"},
	}

	var b strings.Builder
	for _, h := range headers {
		b.WriteString(h[0] + ": " + h[1] + "\r\n")
	}
	b.WriteString("\r\n")

	encoded := base64.StdEncoding.EncodeToString([]byte(body))
	for len(encoded) > base64LineLength {
		b.WriteString(encoded[:base64LineLength] + "\r\n")
		encoded = encoded[base64LineLength:]
	}
	if encoded != "" {
		b.WriteString(encoded + "\r\n")
	}
	return []byte(b.String())
}

func dialSMTP(ctx context.Context, addr, host string) (smtpClient, error) {
	dialer := &net.Dialer{Timeout: defaultDialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}
	client, err := smtp.NewClient(conn, host)
	if err != nil {
		conn.Close()
		return nil, err
	}
	return client, nil
}
