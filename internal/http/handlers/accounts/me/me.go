package me

import (
	"errors"
	"net/http"

	"userapp/internal/core/domain/account"
	e "userapp/internal/core/domain/errors"
	"userapp/internal/core/services"
	service "userapp/internal/core/services/get_logged_in_account"
	"userapp/internal/http/handlers/response"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
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
	result, err := h.service.Run(r.Context(), service.Input{})
	if errors.Is(err, account.ErrInvalidSessionToken) ||
		errors.Is(err, account.ErrSessionTokenExpired) ||
		errors.Is(err, account.ErrAccountDoesNotExist) {
		response.RenderUnauthorized(rw)
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
