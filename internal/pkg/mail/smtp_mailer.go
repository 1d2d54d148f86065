package mail

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ManuelReschke/Folio/internal/pkg/env"
)

// Message is a single outgoing email
type Message struct {
	To          string
	ReplyTo     string
	Subject     string
	Body        string
	ContentType string
}

// sendMail is replaced in tests
var sendMail = smtp.SendMail

// Sender returns the configured From address
func Sender() string {
	sender := env.GetEnv("SMTP_SENDER", "")
	if sender == "" {
		sender = "no-reply@localhost"
	}
	return sender
}

// Build renders the message with headers. Header values are stripped of line
// breaks so user input cannot inject headers.
func Build(from string, msg Message) []byte {
	contentType := msg.ContentType
	if contentType == "" {
		contentType = "text/plain; charset=UTF-8"
	}
	domain := "localhost"
	if i := strings.LastIndex(from, "@"); i >= 0 && i < len(from)-1 {
		domain = from[i+1:]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", headerValue(from))
	fmt.Fprintf(&b, "To: %s\r\n", headerValue(msg.To))
	if msg.ReplyTo != "" {
		fmt.Fprintf(&b, "Reply-To: %s\r\n", headerValue(msg.ReplyTo))
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", headerValue(msg.Subject))
	fmt.Fprintf(&b, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	fmt.Fprintf(&b, "Message-ID: <%s@%s>\r\n", uuid.NewString(), domain)
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: %s\r\n\r\n", contentType)
	b.WriteString(msg.Body)
	return []byte(b.String())
}

// Send delivers msg through the configured SMTP server
func Send(msg Message) error {
	host := env.GetEnv("SMTP_HOST", "")
	port := env.GetEnv("SMTP_PORT", "587")
	username := env.GetEnv("SMTP_USERNAME", "")
	password := env.GetEnv("SMTP_PASSWORD", "")
	sender := Sender()

	if host == "" {
		return fmt.Errorf("SMTP_HOST is not set")
	}

	var auth smtp.Auth
	if username != "" && password != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}

	addr := fmt.Sprintf("%s:%s", host, port)
	err := sendMail(addr, auth, sender, []string{msg.To}, Build(sender, msg))
	if err != nil {
		log.Printf("SMTP send error: %v", err)
	} else {
		log.Printf("Email sent to %s via %s", msg.To, addr)
	}
	return err
}

// SendMail sends an HTML email
func SendMail(to string, subject string, body string) error {
	return Send(Message{To: to, Subject: subject, Body: body, ContentType: "text/html; charset=UTF-8"})
}

func headerValue(v string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(v)
}
