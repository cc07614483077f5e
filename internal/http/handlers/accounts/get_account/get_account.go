package getaccount

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"userapp/internal/core/domain/account"
	e "userapp/internal/core/domain/errors"
	"userapp/internal/core/services"
	getaccount "userapp/internal/core/services/get_account"
	"userapp/internal/http/handlers/response"
)

type Handler struct {
	service services.Service[getaccount.Input, getaccount.Result]
}

func New(
	service services.Service[getaccount.Input, getaccount.Result],
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
	rawAccountID := chi.URLParam(r, "accountID")
	accountID, err := strconv.ParseInt(rawAccountID, 10, 64)
	if err != nil {
		response.RenderError(rw, "account does not exist", http.StatusNotFound)
		return
	}

	result, err := h.service.Run(r.Context(), getaccount.Input{AccountID: account.ID(accountID)})
	if errors.Is(err, account.ErrAccountDoesNotExist) {
		response.RenderError(rw, "account does not exist", http.StatusNotFound)
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
