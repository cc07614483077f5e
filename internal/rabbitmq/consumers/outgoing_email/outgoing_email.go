package outgoingemail

import (
	"context"

	"github.com/rabbitmq/amqp091-go"

	e "userapp/internal/core/domain/errors"
	"userapp/internal/core/domain/logging"
	"userapp/internal/implementations/email"
	"userapp/internal/rabbitmq"
	"userapp/internal/rabbitmq/schema"
)

type Sender interface {
	Send(ctx context.Context, m email.Message) error
}

// Consumer drains the outgoing email queue and delivers each message
// through the sender. Undeliverable messages are acked and dropped, the
// codes they carry can always be requested again.
type Consumer struct {
	log     logging.Logger
	channel *rabbitmq.Channel
	queue   string
	sender  Sender
}

func New(
	log logging.Logger,
	channel *rabbitmq.Channel,
	queue string,
	sender Sender,
) *Consumer {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	if queue == "" {
		panic("queue name must not be empty")
	}
	if sender == nil {
		panic(e.NewNilArgumentError("sender"))
	}

	return &Consumer{log: log, channel: channel, queue: queue, sender: sender}
}

func (c *Consumer) Consume() error {
	deliveries, err := c.channel.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		c.log.Error(context.Background(), "Could not start consuming.", logging.Entry("err", err))
		return err
	}

	go func() {
		for delivery := range deliveries {
			outgoing := &schema.OutgoingEmail{}
			if err := outgoing.Unmarshal(delivery.Body); err != nil {
				c.log.Error(
					context.Background(),
					"Could not unmarshal outgoing email.",
					logging.Entry("err", err),
					logging.Entry("delivery", delivery),
				)
				c.Ack(delivery)
				continue
			}

			c.log.Info(
				context.Background(),
				"Got outgoing email.",
				logging.Entry("to", outgoing.To),
				logging.Entry("subject", outgoing.Subject),
			)
			err := c.sender.Send(
				context.Background(),
				email.Message{To: outgoing.To, Subject: outgoing.Subject, BodyHTML: outgoing.BodyHTML},
			)
			if err != nil {
				c.log.Error(
					context.Background(),
					"Could not send email.",
					logging.Entry("to", outgoing.To),
					logging.Entry("err", err),
				)
			}
			c.Ack(delivery)
		}
	}()
	return nil
}

func (c *Consumer) Ack(delivery amqp091.Delivery) {
	if err := delivery.Ack(true); err != nil {
		c.log.Error(context.Background(), "Could not ACK AMQP message.", logging.Entry("err", err))
	}
}
