package listaccounts

import (
	"net/http"

	e "userapp/internal/core/domain/errors"
	"userapp/internal/core/services"
	listaccounts "userapp/internal/core/services/list_accounts"
	"userapp/internal/http/handlers/response"
)

type Handler struct {
	service services.Service[listaccounts.Input, listaccounts.Result]
}

func New(
	service services.Service[listaccounts.Input, listaccounts.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Result struct {
	Accounts []response.Account `json:"accounts"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), listaccounts.Input{})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	accounts := make([]response.Account, len(result.Accounts))
	for ix, da := range result.Accounts {
		accounts[ix].FromDomainAccount(da)
	}
	response.Render(rw, Result{Accounts: accounts}, http.StatusOK)
}
