package mailer

import (
	"fmt"
	"os"
	"strconv"

	"healthassist/internal/constants"

	gomail "gopkg.in/gomail.v2"
)

type Mailer interface {
	SendOTP(to, code string) error
}

type smtpMailer struct {
	host     string
	port     int
	user     string
	password string
	from     string
}

// New builds an SMTP mailer from environment configuration. It returns
// nil when SMTP_HOST is unset; callers treat a nil mailer as demo mode
// and skip delivery.
func New() Mailer {
	host := os.Getenv(constants.SMTPHost)
	if host == "" {
		return nil
	}

	port, err := strconv.Atoi(os.Getenv(constants.SMTPPort))
	if err != nil {
		port = 587
	}

	return &smtpMailer{
		host:     host,
		port:     port,
		user:     os.Getenv(constants.SMTPUser),
		password: os.Getenv(constants.SMTPPassword),
		from:     os.Getenv(constants.SMTPFrom),
	}
}

func (m *smtpMailer) SendOTP(to, code string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Your verification code")
	msg.SetBody("text/plain", fmt.Sprintf("Your one-time verification code is %s. It expires in 5 minutes.", code))

	dialer := gomail.NewDialer(m.host, m.port, m.user, m.password)
	return dialer.DialAndSend(msg)
}
