package updateaccount

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation"

	"userapp/internal/core/domain/account"
	c "userapp/internal/core/domain/common"
	e "userapp/internal/core/domain/errors"
	"userapp/internal/core/services"
	updateaccount "userapp/internal/core/services/update_account"
	"userapp/internal/http/handlers/response"
)

type Handler struct {
	service services.Service[updateaccount.Input, updateaccount.Result]
}

func New(
	service services.Service[updateaccount.Input, updateaccount.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

// Input fields are pointers so an absent field can be told apart from an
// empty one. Only the profile fields below are updatable, everything else
// in the request body is ignored.
type Input struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Country   *string `json:"country"`
	Image     *string `json:"image"`
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
		validation.Field(&i.FirstName, validation.Length(0, 256)),
		validation.Field(&i.LastName, validation.Length(0, 256)),
		validation.Field(&i.Country, validation.Length(0, 256)),
		validation.Field(&i.Image, validation.Length(0, 1024)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	rawAccountID := chi.URLParam(r, "accountID")
	accountID, err := strconv.ParseInt(rawAccountID, 10, 64)
	if err != nil {
		response.RenderError(rw, "account does not exist", http.StatusNotFound)
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

	update := account.UpdateAccountInput{ID: account.ID(accountID)}
	if input.FirstName != nil {
		update.DoFirstNameUpdate = true
		update.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		update.DoLastNameUpdate = true
		update.LastName = *input.LastName
	}
	if input.Country != nil {
		update.DoCountryUpdate = true
		update.Country = *input.Country
	}
	if input.Image != nil {
		update.DoImageUpdate = true
		update.Image = c.NewOptional(*input.Image, *input.Image != "")
	}

	result, err := h.service.Run(r.Context(), updateaccount.Input{Update: update})
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
