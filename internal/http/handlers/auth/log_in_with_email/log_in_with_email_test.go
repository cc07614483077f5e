package loginwithemail

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userapp/internal/core/domain/account"
	c "userapp/internal/core/domain/common"
	ratelimiter "userapp/internal/core/domain/rate_limiter"
	service "userapp/internal/core/services/log_in_with_email"
)

const TOKEN = "test-session-token"

type stubService struct {
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	if s.err != nil {
		return result, s.err
	}
	s.input = &input
	result.Account = account.Account{
		ID:           account.ID(1),
		Email:        input.Email,
		PasswordHash: account.PasswordHash("test-password-hash"),
		CreatedAt:    time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC),
		VerifiedAt:   c.NewOptional(time.Date(2023, 6, 2, 12, 0, 0, 0, time.UTC), true),
	}
	result.Token = account.SessionToken(TOKEN)
	return result, nil
}

func TestLogInWithEmailHandler(t *testing.T) {
	cases := []struct {
		id             string
		body           string
		serviceError   error
		expectedStatus int
	}{
		{
			id:             "success",
			body:           `{"email": "test@test.test", "password": "test-password"}`,
			expectedStatus: http.StatusOK,
		},
		{
			id:             "invalid email",
			body:           `{"email": "aaa", "password": "test-password"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "missing password",
			body:           `{"email": "test@test.test"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "invalid credentials",
			body:           `{"email": "test@test.test", "password": "wrong-password"}`,
			serviceError:   account.ErrInvalidCredentials,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			id:             "account not verified",
			body:           `{"email": "test@test.test", "password": "test-password"}`,
			serviceError:   account.ErrAccountNotVerified,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			id:             "rate limit exceeded",
			body:           `{"email": "test@test.test", "password": "test-password"}`,
			serviceError:   ratelimiter.ErrRateLimitExceeded,
			expectedStatus: http.StatusTooManyRequests,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			req, err := http.NewRequest("POST", "/auth/login", strings.NewReader(testcase.body))
			require.Nil(t, err)

			rr := httptest.NewRecorder()
			handler := New(&stubService{err: testcase.serviceError})
			handler.ServeHTTP(rr, req)

			assert.Equal(t, testcase.expectedStatus, rr.Code)
		})
	}
}

func TestLogInWithEmailHandlerRendersTokenAndAccount(t *testing.T) {
	req, err := http.NewRequest(
		"POST",
		"/auth/login",
		strings.NewReader(`{"email": "test@test.test", "password": "test-password"}`),
	)
	require.Nil(t, err)

	rr := httptest.NewRecorder()
	New(&stubService{}).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, TOKEN)
	assert.Contains(t, body, "test@test.test")
	assert.NotContains(t, body, "test-password-hash")
}
