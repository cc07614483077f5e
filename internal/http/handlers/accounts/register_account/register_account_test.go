package registeraccount

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
	"userapp/internal/core/domain/code"
	c "userapp/internal/core/domain/common"
	service "userapp/internal/core/services/register_account"
)

const CODE = "aaaa1111bbbb2222cccc3333dddd4444eeee5555ffff6666aaaa7777bbbb8888"

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
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Country:      input.Country,
		Image:        input.Image,
		CreatedAt:    time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	result.Code = code.OneTimeCode{Code: CODE, AccountID: result.Account.ID}
	return result, nil
}

func TestRegisterAccountHandler(t *testing.T) {
	cases := []struct {
		id             string
		body           string
		expectedStatus int
		expectedInput  *service.Input
	}{
		{
			id: "success",
			body: `{"email": "TEST@test.test", "password": "test-password", "first_name": "John",
				"last_name": "Doe", "country": "Nowhere", "front_base_url": "https://front.test"}`,
			expectedStatus: http.StatusCreated,
			expectedInput: &service.Input{
				Email:        c.Email("test@test.test"),
				Password:     account.RawPassword("test-password"),
				FirstName:    "John",
				LastName:     "Doe",
				Country:      "Nowhere",
				FrontBaseURL: "https://front.test",
			},
		},
		{
			id:             "invalid email",
			body:           `{"email": "not-an-email", "password": "test-password", "front_base_url": "https://front.test"}`,
			expectedStatus: http.StatusBadRequest,
			expectedInput:  nil,
		},
		{
			id:             "password too short",
			body:           `{"email": "test@test.test", "password": "123", "front_base_url": "https://front.test"}`,
			expectedStatus: http.StatusBadRequest,
			expectedInput:  nil,
		},
		{
			id:             "missing front base url",
			body:           `{"email": "test@test.test", "password": "test-password"}`,
			expectedStatus: http.StatusBadRequest,
			expectedInput:  nil,
		},
		{
			id:             "not json",
			body:           `not json`,
			expectedStatus: http.StatusBadRequest,
			expectedInput:  nil,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			req, err := http.NewRequest("POST", "/accounts", strings.NewReader(testcase.body))
			require.Nil(t, err)

			service := &stubService{}
			rr := httptest.NewRecorder()
			handler := New(service, false)
			handler.ServeHTTP(rr, req)

			assert.Equal(t, testcase.expectedStatus, rr.Code)
			assert.Equal(t, testcase.expectedInput, service.input)
		})
	}
}

func TestRegisterAccountHandlerEmailAlreadyExists(t *testing.T) {
	req, err := http.NewRequest(
		"POST",
		"/accounts",
		strings.NewReader(`{"email": "test@test.test", "password": "test-password", "front_base_url": "https://front.test"}`),
	)
	require.Nil(t, err)

	rr := httptest.NewRecorder()
	handler := New(&stubService{err: account.ErrEmailAlreadyExists}, false)
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestRegisterAccountHandlerDoesNotLeakPasswordHash(t *testing.T) {
	req, err := http.NewRequest(
		"POST",
		"/accounts",
		strings.NewReader(`{"email": "test@test.test", "password": "test-password", "front_base_url": "https://front.test"}`),
	)
	require.Nil(t, err)

	rr := httptest.NewRecorder()
	handler := New(&stubService{}, false)
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.NotContains(t, rr.Body.String(), "test-password-hash")
	assert.NotContains(t, rr.Body.String(), "password")
}

func TestRegisterAccountHandlerTestMode(t *testing.T) {
	body := `{"email": "test@test.test", "password": "test-password", "front_base_url": "https://front.test"}`

	req, err := http.NewRequest("POST", "/accounts", strings.NewReader(body))
	require.Nil(t, err)
	rr := httptest.NewRecorder()
	New(&stubService{}, true).ServeHTTP(rr, req)
	assert.Equal(t, CODE, rr.Header().Get("x-test-code"))

	req, err = http.NewRequest("POST", "/accounts", strings.NewReader(body))
	require.Nil(t, err)
	rr = httptest.NewRecorder()
	New(&stubService{}, false).ServeHTTP(rr, req)
	assert.Equal(t, "", rr.Header().Get("x-test-code"))
}
