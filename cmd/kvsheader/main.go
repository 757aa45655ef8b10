// cmd/kvsheader/main.go
package main

import (
	"fmt"
	"os"

	"github.com/kvs-toolkit/kvstools/internal/cli"
)

func main() {
	if err := cli.NewHeaderCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
