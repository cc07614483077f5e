package email

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"userapp/internal/core/domain/account"
	"userapp/internal/core/domain/common"
)

func TestVerificationMessage(t *testing.T) {
	a := account.Account{
		Email:     common.NewEmail("test@test.test"),
		FirstName: "John",
		LastName:  "Doe",
	}

	m := NewVerificationMessage(a, "aaa111", "https://front.test/")

	assert.Equal(t, "test@test.test", m.To)
	assert.Contains(t, m.BodyHTML, "Hello John Doe")
	assert.Contains(t, m.BodyHTML, "https://front.test/auth/verify_email/aaa111")
}

func TestPasswordResetMessage(t *testing.T) {
	a := account.Account{
		Email:     common.NewEmail("test@test.test"),
		FirstName: "John",
		LastName:  "Doe",
	}

	m := NewPasswordResetMessage(a, "bbb222", "https://front.test")

	assert.Equal(t, "test@test.test", m.To)
	assert.Contains(t, m.BodyHTML, "https://front.test/auth/reset_password/bbb222")
}

func TestMessageEscapesNamesAndLink(t *testing.T) {
	a := account.Account{
		Email:     common.NewEmail("test@test.test"),
		FirstName: "<script>",
		LastName:  "Doe",
	}

	m := NewVerificationMessage(a, "aaa111", `https://front.test/"><script>`)

	assert.NotContains(t, m.BodyHTML, "<script>")
	assert.NotContains(t, m.BodyHTML, `/"><script>`)
	assert.Contains(t, m.BodyHTML, "&lt;script&gt;")
}
