// cmd/kvsexamples/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/kvs-toolkit/kvstools/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.NewExamplesCommand(nil).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
