package verifyemail

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"userapp/internal/core/domain/code"
	e "userapp/internal/core/domain/errors"
	"userapp/internal/core/services"
	verifyemail "userapp/internal/core/services/verify_email"
	"userapp/internal/http/handlers/response"
)

const CODE_MAX_LEN = 128

type Handler struct {
	service services.Service[verifyemail.Input, verifyemail.Result]
}

func New(
	service services.Service[verifyemail.Input, verifyemail.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Result struct {
	Account response.Account `json:"account"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	rawCode := chi.URLParam(r, "code")
	if rawCode == "" || len(rawCode) > CODE_MAX_LEN {
		response.RenderError(rw, "invalid code", http.StatusUnauthorized)
		return
	}

	result, err := h.service.Run(r.Context(), verifyemail.Input{Code: code.Code(rawCode)})
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
