// internal/service/email/service.go
package email

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"
)

// Sender handles outgoing emails via SMTP.
type Sender struct {
	smtpHost string
	smtpPort string
	username string
	password string
	fromName string
	secure   bool
}

// NewSender creates a new SMTP email sender.
func NewSender(host, port, user, pass, fromName string, secure bool) *Sender {
	return &Sender{
		smtpHost: host,
		smtpPort: port,
		username: user,
		password: pass,
		fromName: fromName,
		secure:   secure,
	}
}

// Send sends an email with a subject and body (HTML supported).
func (s *Sender) Send(to, subject, bodyHTML string) error {
	from := fmt.Sprintf("%s <%s>", s.fromName, s.username)
	msg := []byte(
		fmt.Sprintf("From: %s\r\n", from) +
			fmt.Sprintf("To: %s\r\n", to) +
			fmt.Sprintf("Subject: %s\r\n", subject) +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/html; charset=\"utf-8\"\r\n" +
			"\r\n" +
			wrapLayout(bodyHTML),
	)

	serverAddr := s.smtpHost + ":" + s.smtpPort

	tlsConfig := &tls.Config{
		InsecureSkipVerify: false,
		ServerName:         s.smtpHost,
	}

	if s.secure {
		// Port 465 - implicit TLS
		conn, err := tls.Dial("tcp", serverAddr, tlsConfig)
		if err != nil {
			return fmt.Errorf("tls dial failed: %w", err)
		}
		defer conn.Close()

		client, err := smtp.NewClient(conn, s.smtpHost)
		if err != nil {
			return fmt.Errorf("smtp client failed: %w", err)
		}
		defer client.Quit()

		auth := smtp.PlainAuth("", s.username, s.password, s.smtpHost)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("auth failed: %w", err)
		}

		return s.sendMail(client, to, msg)
	}

	// Port 587 - STARTTLS
	auth := smtp.PlainAuth("", s.username, s.password, s.smtpHost)
	if err := smtp.SendMail(serverAddr, auth, s.username, []string{to}, msg); err != nil {
		return fmt.Errorf("send mail failed: %w", err)
	}

	return nil
}

func (s *Sender) sendMail(client *smtp.Client, to string, msg []byte) error {
	if err := client.Mail(s.username); err != nil {
		return fmt.Errorf("MAIL FROM failed: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("RCPT TO failed: %w", err)
	}
	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("DATA failed: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		return fmt.Errorf("write failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close failed: %w", err)
	}
	return nil
}

// wrapLayout wraps a given body into the branded TradeYard email layout.
func wrapLayout(content string) string {
	header := `
	<!DOCTYPE html>
	<html>
	<head>
		<meta charset="utf-8" />
		<title>TradeYard</title>
		<style>
			body { font-family: Arial, sans-serif; background-color: #f6f8fa; padding: 30px; }
			.container { max-width: 600px; margin: auto; background: #fff; border-radius: 10px; overflow: hidden; box-shadow: 0 2px 5px rgba(0,0,0,0.1); }
			.header { background: #16a34a; color: white; text-align: center; padding: 20px; font-size: 22px; font-weight: bold; }
			.footer { background: #f1f1f1; color: #555; text-align: center; padding: 15px; font-size: 13px; }
			.body { padding: 25px; color: #333; line-height: 1.6; }
			a.button { display: inline-block; background: #16a34a; color: white; padding: 10px 20px; border-radius: 5px; text-decoration: none; }
		</style>
	</head>
	<body>
	<div class="container">
		<div class="header">TradeYard</div>
		<div class="body">
	`

	footer := `
		</div>
		<div class="footer">
			<p>© 2026 TradeYard. All rights reserved.</p>
		</div>
	</div>
	</body>
	</html>
	`

	return header + strings.TrimSpace(content) + footer
}
