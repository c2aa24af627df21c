package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/xkilldash9x/gestureview/cmd"
)

func main() {
	// Interrupts cancel the command context so a running replay shuts its
	// frame loop down cleanly.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd.ExecuteContext(ctx)
}
