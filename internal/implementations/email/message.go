package email

import (
	"fmt"
	"html"
	"strings"

	"userapp/internal/core/domain/account"
)

// Message is a fully composed outgoing email.
type Message struct {
	To       string
	Subject  string
	BodyHTML string
}

func NewVerificationMessage(a account.Account, code string, frontBaseURL string) Message {
	link := html.EscapeString(joinPath(frontBaseURL, "/auth/verify_email/", code))
	body := fmt.Sprintf(
		`<h1>Hello %s %s</h1>
<p>Thanks for signing up.</p>
<b>Verify your email using the link:</b>
<p><a href="%s">%s</a></p>`,
		html.EscapeString(a.FirstName),
		html.EscapeString(a.LastName),
		link,
		link,
	)
	return Message{
		To:       string(a.Email),
		Subject:  "Verify your email address",
		BodyHTML: body,
	}
}

func NewPasswordResetMessage(a account.Account, code string, frontBaseURL string) Message {
	link := html.EscapeString(joinPath(frontBaseURL, "/auth/reset_password/", code))
	body := fmt.Sprintf(
		`<h1>Hello %s %s</h1>
<p>You can reset your password using the following link.</p>
<b>If you did not request the change, ignore this email.</b>
<p><a href="%s">%s</a></p>`,
		html.EscapeString(a.FirstName),
		html.EscapeString(a.LastName),
		link,
		link,
	)
	return Message{
		To:       string(a.Email),
		Subject:  "Reset your password",
		BodyHTML: body,
	}
}

func joinPath(base string, path string, code string) string {
	return strings.TrimSuffix(base, "/") + path + code
}
