package removeaccount

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"userapp/internal/core/domain/account"
	e "userapp/internal/core/domain/errors"
	"userapp/internal/core/services"
	removeaccount "userapp/internal/core/services/remove_account"
	"userapp/internal/http/handlers/response"
)

type Handler struct {
	service services.Service[removeaccount.Input, removeaccount.Result]
}

func New(
	service services.Service[removeaccount.Input, removeaccount.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

// Removal is idempotent, deleting a missing account still renders 204.
func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	rawAccountID := chi.URLParam(r, "accountID")
	accountID, err := strconv.ParseInt(rawAccountID, 10, 64)
	if err != nil {
		rw.WriteHeader(http.StatusNoContent)
		return
	}

	_, err = h.service.Run(r.Context(), removeaccount.Input{AccountID: account.ID(accountID)})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	rw.WriteHeader(http.StatusNoContent)
}
