package resetpassword

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation"

	"userapp/internal/core/domain/account"
	"userapp/internal/core/domain/code"
	e "userapp/internal/core/domain/errors"
	"userapp/internal/core/services"
	resetpassword "userapp/internal/core/services/reset_password"
	"userapp/internal/http/handlers/response"
)

const CODE_MAX_LEN = 128

type Handler struct {
	service services.Service[resetpassword.Input, resetpassword.Result]
}

func New(
	service services.Service[resetpassword.Input, resetpassword.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Password string `json:"password"`
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
		validation.Field(&i.Password, validation.Required, validation.Length(6, 256)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	rawCode := chi.URLParam(r, "code")
	if rawCode == "" || len(rawCode) > CODE_MAX_LEN {
		response.RenderError(rw, "invalid code", http.StatusUnauthorized)
		return
	}

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
		resetpassword.Input{
			Code:        code.Code(rawCode),
			NewPassword: account.RawPassword(input.Password),
		},
	)
	if errors.Is(err, code.ErrInvalidCode) {
		response.RenderError(rw, "invalid code", http.StatusUnauthorized)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	acc := response.Account{}
	acc.FromDomainAccount(result.Account)
	response.Render(rw, Result{Account: acc}, http.StatusOK)
}
