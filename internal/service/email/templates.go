// internal/service/email/templates.go
package email

import "fmt"

// Template is a rendered email ready for sending.
type Template struct {
	Subject string
	Body    string
}

// WelcomeTemplate greets a newly registered user.
func WelcomeTemplate(name string) Template {
	return Template{
		Subject: "Welcome to TradeYard!",
		Body: fmt.Sprintf(`
			<p>Hi %s,</p>
			<p>Welcome to TradeYard, Nigeria's marketplace for buying and selling anything.</p>
			<p>You can now post your first ad, browse thousands of listings, and chat with sellers near you.</p>
			<p>Happy trading!</p>
		`, name),
	}
}

// PasswordResetTemplate carries the reset link for a user.
func PasswordResetTemplate(name, resetURL string) Template {
	return Template{
		Subject: "Reset your TradeYard password",
		Body: fmt.Sprintf(`
			<p>Hi %s,</p>
			<p>We received a request to reset your TradeYard password. Click the button below to choose a new one:</p>
			<p><a class="button" href="%s">Reset Password</a></p>
			<p>This link expires in 1 hour. If you didn't request a reset, you can safely ignore this email.</p>
		`, name, resetURL),
	}
}

// NewMessageTemplate notifies a seller about a buyer message on their ad.
func NewMessageTemplate(sellerName, buyerName, adTitle, adURL string) Template {
	return Template{
		Subject: fmt.Sprintf("New message about \"%s\"", adTitle),
		Body: fmt.Sprintf(`
			<p>Hi %s,</p>
			<p><strong>%s</strong> sent you a message about your ad <strong>%s</strong>.</p>
			<p><a class="button" href="%s">View Message</a></p>
			<p>Reply quickly to close the deal.</p>
		`, sellerName, buyerName, adTitle, adURL),
	}
}
