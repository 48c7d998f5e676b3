package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/g-m-twostay/go-bitree/Trees"
)

var (
	// ErrUsage marks bad flags, arguments or configuration.
	ErrUsage = errors.New("usage error")
	// ErrNotFound is returned by search when the payload is absent.
	ErrNotFound = errors.New("payload not found")
)

// Exit codes returned by ExitCode.
const (
	ExitOK = iota
	ExitFailure
	ExitUsage
	ExitMalformed
	ExitNotFound
	ExitBudget
)

func usageError(err error) error {
	if err == nil || errors.Is(err, ErrUsage) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrUsage, err)
}

// exactArgs is cobra.ExactArgs with usage classification.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		return usageError(cobra.ExactArgs(n)(cmd, args))
	}
}

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	case errors.Is(err, Trees.ErrDeserialization):
		return ExitMalformed
	case errors.Is(err, Trees.ErrAllocation):
		return ExitBudget
	case errors.Is(err, ErrUsage), errors.Is(err, Trees.ErrInvalidArgument), errors.Is(err, Trees.ErrUnsupportedStrategy):
		return ExitUsage
	}
	return ExitFailure
}
