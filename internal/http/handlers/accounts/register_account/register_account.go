package registeraccount

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
	"userapp/internal/core/services"
	registeraccount "userapp/internal/core/services/register_account"
	"userapp/internal/http/handlers/response"
)

type Handler struct {
	service    services.Service[registeraccount.Input, registeraccount.Result]
	isTestMode bool
}

func New(
	service services.Service[registeraccount.Input, registeraccount.Result],
	isTestMode bool,
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service, isTestMode: isTestMode}
}

type Input struct {
	Email        string  `json:"email"`
	Password     string  `json:"password"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Country      string  `json:"country"`
	Image        *string `json:"image"`
	FrontBaseURL string  `json:"front_base_url"`
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
		validation.Field(&i.Password, validation.Required, validation.Length(6, 256)),
		validation.Field(&i.FirstName, validation.Length(0, 256)),
		validation.Field(&i.LastName, validation.Length(0, 256)),
		validation.Field(&i.Country, validation.Length(0, 256)),
		validation.Field(&i.Image, validation.Length(0, 1024)),
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

	image := c.Optional[string]{}
	if input.Image != nil {
		image = c.NewOptional(*input.Image, true)
	}
	result, err := h.service.Run(
		r.Context(),
		registeraccount.Input{
			Email:        c.NewEmail(input.Email),
			Password:     account.RawPassword(input.Password),
			FirstName:    input.FirstName,
			LastName:     input.LastName,
			Country:      input.Country,
			Image:        image,
			FrontBaseURL: input.FrontBaseURL,
		},
	)
	if errors.Is(err, account.ErrEmailAlreadyExists) {
		response.RenderError(rw, "email already exists", http.StatusUnprocessableEntity)
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
