package utils

import (
	"blog/config"
	"errors"
	"log"
	"strings"

	"gopkg.in/gomail.v2"
)

// ErrBadHeader is returned when a header value carries a newline, i.e. a
// header injection attempt.
var ErrBadHeader = errors.New("invalid mail header")

// SendFunc dispatches a composed message. Swapped out in tests.
var SendFunc = func(m *gomail.Message) error {
	if config.SMTP_HOST == "" {
		log.Printf("SMTP not configured, mail to %v dropped", m.GetHeader("To"))
		return nil
	}
	d := gomail.NewDialer(config.SMTP_HOST, config.SMTP_PORT, config.SMTP_USER, config.SMTP_PASSWORD)
	return d.DialAndSend(m)
}

// SendMail sends a plain-text message. Header fields supplied by a user must
// be refused when they contain CR/LF, otherwise the submitter controls the
// whole envelope.
func SendMail(subject, body, from string, to ...string) error {
	for _, header := range append([]string{subject, from}, to...) {
		if strings.ContainsAny(header, "\r\n") {
			return ErrBadHeader
		}
	}
	m := gomail.NewMessage()
	if from != "" {
		m.SetHeader("From", from)
	}
	m.SetHeader("To", to...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	return SendFunc(m)
}
