package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"text-blackboard/internal/bootstrap"

	"github.com/sirupsen/logrus"
)

func main() {
	app, err := bootstrap.NewApp()
	if err != nil {
		logrus.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.Shutdown()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.RunInteractive(ctx, os.Stdin, os.Stdout); err != nil && ctx.Err() == nil {
		app.Log.WithError(err).Error("Interactive session ended with error")
	}
}
