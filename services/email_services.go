package services

import (
	"fmt"
	"net/smtp"
	"strings"

	"symposium-api/config"
	"symposium-api/metrics"
)

type EmailService struct {
	host     string
	port     string
	username string
	password string
	send     func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewEmailService() *EmailService {
	return &EmailService{
		host:     config.MailHost,
		port:     config.MailPort,
		username: config.MailUsername,
		password: config.MailPassword,
		send:     smtp.SendMail,
	}
}

// sendHTML dispatches a single HTML email to one recipient. Recipients
// are always addressed individually so nobody sees anyone else's
// address in the To header.
func (s *EmailService) sendHTML(kind, to, subject, html string) error {
	auth := smtp.PlainAuth("", s.username, s.password, s.host)

	msg := []byte(strings.TrimSpace(fmt.Sprintf(`
To: %s
MIME-version: 1.0
Content-Type: text/html; charset="UTF-8"
Subject: %s

%s`, to, subject, html)))

	err := s.send(s.host+":"+s.port, auth, s.username, []string{to}, msg)
	if err != nil {
		metrics.EmailsSent.WithLabelValues(kind, "error").Inc()
		return err
	}
	metrics.EmailsSent.WithLabelValues(kind, "ok").Inc()
	return nil
}

// SendOTPEmail sends a password reset one-time code
func (s *EmailService) SendOTPEmail(to, otp string) error {
	html := fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; line-height: 1.5; color: #333;">
    <h2 style="color: #2c3e50;">Your OTP Code</h2>
    <p><strong>Your OTP is:</strong> <span style="font-size: 18px; color: #e74c3c;">%s</span></p>
    <p>This OTP is valid for <strong>10 minutes</strong>.</p>
    <p>If you did not request this, please ignore this email and your password will remain unchanged.</p>
    <br/>
    <p style="margin-top: 20px;">Regards,<br/><strong>Symposium Team</strong></p>
</div>`, otp)

	return s.sendHTML("otp", to, "Your OTP for Password Reset", html)
}

// SendRoundResultEmail notifies one registrant of their round outcome
func (s *EmailService) SendRoundResultEmail(to, eventName string, roundNumber int, eligible bool, message string) error {
	subject := fmt.Sprintf("Update for %s - Round %d", eventName, roundNumber)

	var html string
	if eligible {
		html = fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; line-height: 1.5; color: #333;">
    <h2 style="color: #2c3e50;">Congratulations!</h2>
    <p>You are <strong>eligible</strong> for <b>%s</b> - Round %d.</p>
    <p style="color: green; font-size: 16px;">%s</p>
    <br/>
    <p style="margin-top: 20px;">Regards,<br/><strong>Symposium Team</strong></p>
</div>`, eventName, roundNumber, message)
	} else {
		html = fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; line-height: 1.5; color: #333;">
    <h2 style="color: #e74c3c;">Update</h2>
    <p>Unfortunately, you are <strong>not eligible</strong> for <b>%s</b> - Round %d.</p>
    <p style="color: #e74c3c; font-size: 16px;">%s</p>
    <br/>
    <p style="margin-top: 20px;">Regards,<br/><strong>Symposium Team</strong></p>
</div>`, eventName, roundNumber, message)
	}

	return s.sendHTML("round_result", to, subject, html)
}
