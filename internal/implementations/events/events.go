package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/r3labs/sse/v2"

	e "userapp/internal/core/domain/errors"
	"userapp/internal/core/domain/events"
	"userapp/internal/core/domain/logging"
)

const STREAM_ID = "accounts"

type sseEvent struct {
	Type      string    `json:"type"`
	AccountID int64     `json:"account_id"`
	Email     string    `json:"email"`
	At        time.Time `json:"at"`
}

// SSEPublisher pushes account lifecycle events to the internal
// server-sent events stream.
type SSEPublisher struct {
	sseServer *sse.Server
	log       logging.Logger
}

func NewSSEPublisher(sseServer *sse.Server, log logging.Logger) *SSEPublisher {
	if sseServer == nil {
		panic(e.NewNilArgumentError("sseServer"))
	}
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	sseServer.CreateStream(STREAM_ID)
	return &SSEPublisher{sseServer: sseServer, log: log}
}

func (p *SSEPublisher) Publish(ctx context.Context, event events.Event) {
	data, err := json.Marshal(sseEvent{
		Type:      string(event.Type),
		AccountID: int64(event.AccountID),
		Email:     string(event.Email),
		At:        event.At,
	})
	if err != nil {
		logging.Error(ctx, p.log, err, logging.Entry("eventType", event.Type))
		return
	}
	p.sseServer.Publish(STREAM_ID, &sse.Event{
		Event: []byte(event.Type),
		Data:  data,
	})
	p.log.Info(
		ctx,
		"Account event published.",
		logging.Entry("eventType", event.Type),
		logging.Entry("accountID", event.AccountID),
	)
}
