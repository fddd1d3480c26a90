package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"time"

	"careertrack-backend/config"
)

// EmailService handles sending emails via SMTP
type EmailService struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
}

// SessionConfirmationData holds the data for session confirmation emails
type SessionConfirmationData struct {
	ClientName  string
	SessionType string
	StartTime   time.Time
	EndTime     time.Time
	Notes       string
}

// NewEmailService creates a new email service with Brevo SMTP configuration
func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.SMTPFromEmail,
	}
}

// sessionEmailTemplate is the HTML template for session confirmation emails
const sessionEmailTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Coaching Session Confirmed</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #0066cc; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .field { margin-bottom: 15px; }
        .label { font-weight: bold; color: #555; }
        .value { margin-top: 5px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Your Coaching Session is Confirmed</h1>
        </div>
        <div class="content">
            <div class="field">
                <div class="label">Hi {{.ClientName}},</div>
            </div>
            <div class="field">
                <div class="label">Session:</div>
                <div class="value">{{.SessionType}}</div>
            </div>
            <div class="field">
                <div class="label">When:</div>
                <div class="value">{{.StartTime.Format "Monday, 2 January 2006 15:04"}} – {{.EndTime.Format "15:04 MST"}}</div>
            </div>
            {{if .Notes}}
            <div class="field">
                <div class="label">Your notes:</div>
                <div class="value">{{.Notes}}</div>
            </div>
            {{end}}
        </div>
        <div class="footer">
            <p>Your coach will share the meeting link before the session starts.</p>
        </div>
    </div>
</body>
</html>`

// SendSessionConfirmation sends a booking confirmation to the client
func (s *EmailService) SendSessionConfirmation(toEmail string, data SessionConfirmationData) error {
	tmpl, err := template.New("session").Parse(sessionEmailTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse email template: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	subject := fmt.Sprintf("Coaching session confirmed: %s", data.SessionType)

	msg := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		s.fromEmail,
		toEmail,
		subject,
		body.String(),
	))

	auth := smtp.PlainAuth("", s.username, s.password, s.host)

	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := smtp.SendMail(addr, auth, s.fromEmail, []string{toEmail}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// IsConfigured checks if the email service has valid SMTP configuration
func (s *EmailService) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}
