package notifications

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"

	"github.com/SanaAbdulRahman/E-Learning-TutionApp-Server/domain"
)

//go:embed templates/activation_mail.html
var templates embed.FS

const activationSubject = "Activate your account"

// MailServiceImpl implements domain.MailService over SMTP.
type MailServiceImpl struct {
	dialer *gomail.Dialer
	from   string
	tmpl   *template.Template
}

// NewMailService creates a new SMTP mail service.
func NewMailService(host string, port int, username, password, from string) (domain.MailService, error) {
	tmpl, err := template.ParseFS(templates, "templates/activation_mail.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse activation mail template: %w", err)
	}

	return &MailServiceImpl{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
		tmpl:   tmpl,
	}, nil
}

// SendActivationMail implements domain.MailService
func (m *MailServiceImpl) SendActivationMail(ctx context.Context, to, name, code string) error {
	var body bytes.Buffer
	data := struct {
		Name string
		Code string
	}{Name: name, Code: code}

	if err := m.tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render activation mail: %w", err)
	}

	// If SMTP is not configured, log instead of sending
	if m.dialer.Host == "" {
		fmt.Printf("[MOCK MAIL] To: %s, Subject: %s, Code: %s\n", to, activationSubject, code)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", activationSubject)
	msg.SetBody("text/html", body.String())

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send activation mail: %w", err)
	}
	return nil
}
