package main

import (
	"fmt"
	"os"

	"github.com/redlinehq/redline/internal/cli"
)

func main() {
	if err := cli.New().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "redline:", err)
		os.Exit(1)
	}
}
