package Trees

import (
	"errors"
	"fmt"
)

var (
	// ErrAllocation is returned when a tree's node budget is exhausted.
	ErrAllocation = errors.New("node allocation failed")
	// ErrInvalidArgument is returned for nil trees, read-only trees, and
	// payloads that cannot be represented.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnsupportedStrategy is returned for unknown search, traversal or
	// serialization names.
	ErrUnsupportedStrategy = errors.New("unsupported strategy")
	// ErrDeserialization is returned for malformed or truncated input.
	ErrDeserialization = errors.New("malformed serialized tree")
)

// AllocationError reports an insert refused because the tree already holds
// Limit nodes. The tree is unchanged when it is returned.
type AllocationError struct {
	Limit int
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("node budget of %d exhausted", e.Limit)
}

func (e *AllocationError) Unwrap() error {
	return ErrAllocation
}

// UnsupportedStrategyError reports an unknown name of the given kind.
type UnsupportedStrategyError struct {
	Kind, Name string
}

func (e *UnsupportedStrategyError) Error() string {
	return fmt.Sprintf("unsupported %s: %q", e.Kind, e.Name)
}

func (e *UnsupportedStrategyError) Unwrap() error {
	return ErrUnsupportedStrategy
}

// DeserializationError reports where decoding failed. Token is the 1-based
// position of the offending whitespace separated token; a token one past the
// end of input means the input was truncated.
type DeserializationError struct {
	Token int
	Msg   string
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("%s at token %d: %s", ErrDeserialization, e.Token, e.Msg)
}

func (e *DeserializationError) Unwrap() error {
	return ErrDeserialization
}

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
