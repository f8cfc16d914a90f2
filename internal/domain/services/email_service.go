package services

import (
	"bytes"
	"html/template"

	gomail "gopkg.in/gomail.v2"

	"github.com/Sain-orshikh/MAIS-burtgel/internal/infrastructure/config"
	"github.com/Sain-orshikh/MAIS-burtgel/pkg/logger"
)

const (
	approvalSubject  = "Registration Approved - MAIS Registration"
	rejectionSubject = "Registration Status Update - MAIS Registration"
)

var approvalTemplate = template.Must(template.New("approval").Parse(`
<h1>Registration Approved</h1>
<p>Dear {{.Name}},</p>
<p>We are pleased to inform you that your registration has been approved.</p>
<p>You can now proceed with the next steps in the registration process.</p>
<br/>
<p>Best regards,</p>
<p>MAIS Registration Team</p>
`))

var rejectionTemplate = template.Must(template.New("rejection").Parse(`
<h1>Registration Status Update</h1>
<p>Dear {{.Name}},</p>
<p>We regret to inform you that your registration could not be approved at this time.</p>
{{if .Reason}}<p>Reason: {{.Reason}}</p>
{{end}}<p>If you have any questions, please contact our support team.</p>
<br/>
<p>Best regards,</p>
<p>MAIS Registration Team</p>
`))

type emailContext struct {
	Name   string
	Reason string
}

// InterfaceEmailService sends applicant notification emails
type InterfaceEmailService interface {
	SendApprovalEmail(to, name string) error
	SendRejectionEmail(to, name, reason string) error
}

// SMTPEmailService delivers mail through the configured SMTP server.
// Sends are synchronous and carry no timeout of their own.
type SMTPEmailService struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPEmailService creates an email service backed by the SMTP config
func NewSMTPEmailService(cfg *config.Config) *SMTPEmailService {
	return &SMTPEmailService{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.SMTPUser,
	}
}

// SendApprovalEmail sends the fixed approval notice to the applicant
func (s *SMTPEmailService) SendApprovalEmail(to, name string) error {
	body, err := renderEmail(approvalTemplate, emailContext{Name: name})
	if err != nil {
		return err
	}
	return s.send(to, approvalSubject, body)
}

// SendRejectionEmail sends the rejection notice, including the optional
// free-text reason
func (s *SMTPEmailService) SendRejectionEmail(to, name, reason string) error {
	body, err := renderEmail(rejectionTemplate, emailContext{Name: name, Reason: reason})
	if err != nil {
		return err
	}
	return s.send(to, rejectionSubject, body)
}

func (s *SMTPEmailService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)
	return s.dialer.DialAndSend(m)
}

// ConsoleEmailService logs mail instead of sending it. Used when no SMTP
// host is configured.
type ConsoleEmailService struct{}

// NewConsoleEmailService creates a console email service
func NewConsoleEmailService() *ConsoleEmailService {
	return &ConsoleEmailService{}
}

// SendApprovalEmail logs the approval notice
func (s *ConsoleEmailService) SendApprovalEmail(to, name string) error {
	body, err := renderEmail(approvalTemplate, emailContext{Name: name})
	if err != nil {
		return err
	}
	logger.Info("email (console) to=%s subject=%q\n%s", to, approvalSubject, body)
	return nil
}

// SendRejectionEmail logs the rejection notice
func (s *ConsoleEmailService) SendRejectionEmail(to, name, reason string) error {
	body, err := renderEmail(rejectionTemplate, emailContext{Name: name, Reason: reason})
	if err != nil {
		return err
	}
	logger.Info("email (console) to=%s subject=%q\n%s", to, rejectionSubject, body)
	return nil
}

func renderEmail(tmpl *template.Template, ctx emailContext) (string, error) {
	var buff bytes.Buffer
	if err := tmpl.Execute(&buff, ctx); err != nil {
		return "", err
	}
	return buff.String(), nil
}
