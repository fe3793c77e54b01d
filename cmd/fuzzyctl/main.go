// SPDX-License-Identifier: MIT

// Command fuzzyctl validates fuzzy rule bases and runs inference over them
// from the command line.
//
//	fuzzyctl validate -c room.yaml
//	fuzzyctl infer -c room.yaml -i temperature=22 -i fan=60 [--detailed]
//	fuzzyctl batch -c room.yaml --input readings.csv [--workers 8] [--metrics-addr :9090]
//	fuzzyctl relate -c restaurant.yaml --a price=45 --b quality=7.5
//	fuzzyctl curves -c room.yaml --variable speed
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

const (
	version = "0.1.0"
	appName = "fuzzyctl"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
