package main

import (
	"os"

	"github.com/g-m-twostay/go-bitree/internal/cli"
	"github.com/g-m-twostay/go-bitree/internal/logging"
)

// main is the entry point for the bitree CLI binary.
func main() {
	logger := logging.NewLogger(os.Stderr, logging.LevelInfo)
	if err := cli.Execute(os.Args[1:], logger); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(cli.ExitCode(err))
	}
}
