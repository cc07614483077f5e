package consumers

import (
	"context"

	"userapp/internal/app/deps"
	dl "userapp/internal/core/domain/logging"
	outgoingemail "userapp/internal/rabbitmq/consumers/outgoing_email"
)

func initOutgoingEmailConsumer(deps *deps.Deps) func() {
	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}

	queue := deps.Config.RabbitmqOutgoingEmailQueue
	if _, err := rabbitmqChannel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ queue.", dl.Entry("err", err))
		panic(err)
	}

	outgoingEmailConsumer := outgoingemail.New(
		deps.Logger,
		rabbitmqChannel,
		queue,
		deps.EmailSender,
	)
	if err := outgoingEmailConsumer.Consume(); err != nil {
		deps.Logger.Error(
			context.Background(),
			"Could not start RabbitMQ consuming.",
			dl.Entry("err", err),
			dl.Entry("queue", queue),
		)
		panic(err)
	}

	deps.Logger.Info(context.Background(), "Consumer has started.", dl.Entry("queue", queue))
	return func() { rabbitmqChannel.Close() }
}

func InitConsumers(deps *deps.Deps) func() {
	shutdownOutgoingEmailConsumer := initOutgoingEmailConsumer(deps)

	return func() {
		shutdownOutgoingEmailConsumer()
	}
}
