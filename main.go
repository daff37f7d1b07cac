package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/maxkimambo/amaze/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Execute(ctx); err != nil {
		// Execute prints the error, but we exit with non-zero status
		os.Exit(1)
	}
}
