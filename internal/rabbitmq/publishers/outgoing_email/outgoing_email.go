package outgoingemail

import (
	"context"

	"github.com/rabbitmq/amqp091-go"

	"userapp/internal/core/domain/account"
	e "userapp/internal/core/domain/errors"
	"userapp/internal/core/domain/logging"
	"userapp/internal/implementations/email"
	"userapp/internal/rabbitmq"
	"userapp/internal/rabbitmq/schema"
)

// Publisher hands composed emails to the outgoing email queue instead of
// sending them inline, the mailer worker picks them up from there.
type Publisher struct {
	log        logging.Logger
	channel    *rabbitmq.Channel
	exchange   string
	routingKey string
}

func New(log logging.Logger, channel *rabbitmq.Channel, exchange string, routingKey string) *Publisher {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	return &Publisher{log: log, channel: channel, exchange: exchange, routingKey: routingKey}
}

func (p *Publisher) SendVerificationCode(
	ctx context.Context,
	a account.Account,
	code string,
	frontBaseURL string,
) error {
	return p.publish(ctx, email.NewVerificationMessage(a, code, frontBaseURL))
}

func (p *Publisher) SendPasswordResetCode(
	ctx context.Context,
	a account.Account,
	code string,
	frontBaseURL string,
) error {
	return p.publish(ctx, email.NewPasswordResetMessage(a, code, frontBaseURL))
}

func (p *Publisher) publish(ctx context.Context, m email.Message) error {
	outgoing := schema.OutgoingEmail{To: m.To, Subject: m.Subject, BodyHTML: m.BodyHTML}
	body, err := outgoing.Marshal()
	if err != nil {
		logging.Error(ctx, p.log, err)
		return err
	}
	err = p.channel.PublishWithContext(ctx, p.exchange, p.routingKey, false, false, amqp091.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		logging.Error(ctx, p.log, err)
		return err
	}
	p.log.Info(
		ctx,
		"Outgoing email has been queued.",
		logging.Entry("exchange", p.exchange),
		logging.Entry("RK", p.routingKey),
		logging.Entry("to", m.To),
	)
	return nil
}
