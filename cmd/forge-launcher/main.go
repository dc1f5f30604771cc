// /cmd/forge-launcher/main.go
package main

import (
	"context"
	"os"
	"os/signal"

	"forge-launcher/cmd/forge-launcher/commands"
)

func main() {
	// Cancelled on interrupt; a launched game keeps running.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := commands.Execute(ctx); err != nil {
		os.Exit(1)
	}
}
