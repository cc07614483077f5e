package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"userapp/internal/app/consumers"
	"userapp/internal/app/deps"
)

func main() {
	deps, shutdownDeps := deps.InitDeps()
	log := deps.Logger
	defer shutdownDeps()

	shutdownConsumers := consumers.InitConsumers(deps)
	defer shutdownConsumers()

	stopCh, closeCh := createChannel()
	defer closeCh()

	log.Info(context.Background(), "Mailer worker has started.")
	<-stopCh
	log.Info(context.Background(), "Stopping mailer worker.")
}

func createChannel() (chan os.Signal, func()) {
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	return stopCh, func() {
		close(stopCh)
	}
}
