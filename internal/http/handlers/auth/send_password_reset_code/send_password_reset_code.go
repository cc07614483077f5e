package sendpasswordresetcode

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"userapp/internal/core/domain/account"
	c "userapp/internal/core/domain/common"
	e "userapp/internal/core/domain/errors"
	ratelimiter "userapp/internal/core/domain/rate_limiter"
	"userapp/internal/core/services"
	sendpasswordresetcode "userapp/internal/core/services/send_password_reset_code"
	"userapp/internal/http/handlers/response"
)

type Handler struct {
	service    services.Service[sendpasswordresetcode.Input, sendpasswordresetcode.Result]
	isTestMode bool
}

func New(
	service services.Service[sendpasswordresetcode.Input, sendpasswordresetcode.Result],
	isTestMode bool,
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service, isTestMode: isTestMode}
}

type Input struct {
	Email        string `json:"email"`
	FrontBaseURL string `json:"front_base_url"`
}

type Result struct {
	Account response.Account `json:"account"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 512)),
		validation.Field(&i.FrontBaseURL, validation.Required, is.URL, validation.Length(0, 1024)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		sendpasswordresetcode.Input{Email: c.NewEmail(input.Email), FrontBaseURL: input.FrontBaseURL},
	)
	if errors.Is(err, ratelimiter.ErrRateLimitExceeded) {
		response.RenderRateLimitExceeded(rw)
		return
	}
	if errors.Is(err, account.ErrAccountDoesNotExist) {
		response.RenderError(rw, "invalid user", http.StatusUnauthorized)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	if h.isTestMode {
		rw.Header().Set("x-test-code", string(result.Code.Code))
	}
	acc := response.Account{}
	acc.FromDomainAccount(result.Account)
	response.Render(rw, Result{Account: acc}, http.StatusCreated)
}
