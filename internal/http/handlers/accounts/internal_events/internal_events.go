package internalevents

import (
	"crypto/subtle"
	"net/http"

	"github.com/r3labs/sse/v2"

	e "userapp/internal/core/domain/errors"
	"userapp/internal/core/domain/logging"
	"userapp/internal/http/handlers/response"
	eventsimpl "userapp/internal/implementations/events"
)

// Handler exposes the account lifecycle event stream to internal
// consumers. Access is guarded by a shared token, the stream is not part of
// the public API.
type Handler struct {
	log           logging.Logger
	sseServer     *sse.Server
	internalToken string
}

func New(
	log logging.Logger,
	sseServer *sse.Server,
	internalToken string,
) *Handler {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sseServer == nil {
		panic(e.NewNilArgumentError("sseServer"))
	}
	if internalToken == "" {
		panic("internalToken must not be empty")
	}
	return &Handler{log: log, sseServer: sseServer, internalToken: internalToken}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if subtle.ConstantTimeCompare([]byte(token), []byte(h.internalToken)) != 1 {
		h.log.Info(r.Context(), "Invalid internal events token.")
		response.RenderError(rw, "invalid internal events token", http.StatusNotFound)
		return
	}

	query := r.URL.Query()
	query.Set("stream", eventsimpl.STREAM_ID)
	r.URL.RawQuery = query.Encode()

	h.log.Info(r.Context(), "Subscribed to account events.")
	h.sseServer.ServeHTTP(rw, r)
}
