package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWelcomeTemplate(t *testing.T) {
	tpl := WelcomeTemplate("Chidi")
	assert.Equal(t, "Welcome to TradeYard!", tpl.Subject)
	assert.Contains(t, tpl.Body, "Hi Chidi,")
}

func TestPasswordResetTemplate(t *testing.T) {
	tpl := PasswordResetTemplate("Amina", "https://tradeyard.ng/reset?token=abc")
	assert.Equal(t, "Reset your TradeYard password", tpl.Subject)
	assert.Contains(t, tpl.Body, `href="https://tradeyard.ng/reset?token=abc"`)
	assert.Contains(t, tpl.Body, "expires in 1 hour")
}

func TestNewMessageTemplate(t *testing.T) {
	tpl := NewMessageTemplate("Emeka", "Bola", "iPhone 13 Pro Max", "https://tradeyard.ng/messages")
	assert.Equal(t, `New message about "iPhone 13 Pro Max"`, tpl.Subject)
	assert.Contains(t, tpl.Body, "<strong>Bola</strong>")
	assert.Contains(t, tpl.Body, "<strong>iPhone 13 Pro Max</strong>")
}

func TestWrapLayoutBranding(t *testing.T) {
	out := wrapLayout("<p>hello</p>")
	assert.Contains(t, out, "TradeYard")
	assert.Contains(t, out, "<p>hello</p>")
}
