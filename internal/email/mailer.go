package email

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/smtp"
)

// Email represents one outgoing message.
type Email struct {
	To      string
	Subject string
	Body    string
	IsHTML  bool
}

// Dispatcher hands a message off for asynchronous delivery. Enqueue returns
// as soon as the message is accepted; delivery failures are not surfaced to
// the caller.
type Dispatcher interface {
	Enqueue(e *Email) error
}

// SMTPConfig carries the SMTP relay settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Login    string
	Password string
	From     string
}

// Mailer queues messages on a buffered channel and delivers them from a
// single background worker over SMTP.
type Mailer struct {
	cfg   SMTPConfig
	queue chan *Email
	done  chan bool
}

func NewMailer(cfg SMTPConfig) *Mailer {
	return &Mailer{
		cfg:   cfg,
		queue: make(chan *Email, 256),
		done:  make(chan bool),
	}
}

// Start begins the delivery worker.
func (m *Mailer) Start() {
	slog.Info("starting mail dispatcher", "host", m.cfg.Host, "from", m.cfg.From)
	go func() {
		for {
			select {
			case e := <-m.queue:
				if err := m.send(e); err != nil {
					slog.Error("failed to deliver email", "error", err, "to", e.To, "subject", e.Subject)
				}
			case <-m.done:
				slog.Info("mail dispatcher stopped")
				return
			}
		}
	}()
}

// Stop stops the delivery worker. Queued but undelivered messages are dropped.
func (m *Mailer) Stop() {
	close(m.done)
}

// Enqueue accepts a message for delivery without blocking. A full queue is
// reported to the caller but the message is not retried.
func (m *Mailer) Enqueue(e *Email) error {
	select {
	case m.queue <- e:
		return nil
	default:
		return fmt.Errorf("mail queue is full, dropping message to %s", e.To)
	}
}

// buildMessage assembles the raw RFC 5322 message for one email.
func buildMessage(from string, e *Email) []byte {
	var msg bytes.Buffer
	msg.WriteString(fmt.Sprintf("From: %s\r\n", from))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", e.To))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", e.Subject))

	if e.IsHTML {
		msg.WriteString("MIME-Version: 1.0\r\n")
		msg.WriteString("Content-Type: text/html; charset=\"utf-8\"\r\n")
	}

	msg.WriteString("\r\n")
	msg.WriteString(e.Body)
	return msg.Bytes()
}

func (m *Mailer) send(e *Email) error {
	if m.cfg.Host == "" || m.cfg.Password == "" || m.cfg.From == "" {
		return fmt.Errorf("mailer not configured: missing SMTP_HOST, SMTP_KEY, or EMAIL_FROM")
	}

	auth := smtp.PlainAuth("", m.cfg.Login, m.cfg.Password, m.cfg.Host)
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{e.To}, buildMessage(m.cfg.From, e)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	slog.Info("email sent", "to", e.To, "subject", e.Subject)
	return nil
}
