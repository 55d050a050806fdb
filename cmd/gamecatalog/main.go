// Command gamecatalog runs the game catalog API and its maintenance tasks.
//
// Usage:
//
//	gamecatalog serve [--migrate]
//	gamecatalog migrate up|down|status
//	gamecatalog cleanup
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
