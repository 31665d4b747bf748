// SPDX-License-Identifier: MIT

// Command fuzzysent classifies positive/negative lexicon scores into a
// sentiment label with a Mamdani fuzzy engine.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
