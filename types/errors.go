package types

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedNetwork = errors.New("unsupported network")
	ErrInvalidConfig      = errors.New("invalid subgraph config")
)

// UnsupportedNetworkError is returned when a runtime network name matches no supported network.
type UnsupportedNetworkError struct {
	Name string
}

func (e *UnsupportedNetworkError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnsupportedNetwork, e.Name)
}

func (e *UnsupportedNetworkError) Is(target error) bool {
	return target == ErrUnsupportedNetwork
}

// InvalidConfigError reports a record that violates one of the registry invariants.
type InvalidConfigError struct {
	Network Network
	Field   string
	Reason  string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("%s (network: %s) (field: %s): %s", ErrInvalidConfig, e.Network, e.Field, e.Reason)
}

func (e *InvalidConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

func invalid(network Network, field, format string, args ...any) *InvalidConfigError {
	return &InvalidConfigError{
		Network: network,
		Field:   field,
		Reason:  fmt.Sprintf(format, args...),
	}
}
