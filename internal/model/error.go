package model

import (
	"errors"
	"fmt"
)

// Error kinds. Every failure returned by the command tree wraps one of them.
var (
	// ErrConfig is an invalid or missing argument or configuration value.
	ErrConfig = errors.New("configuration error")
	// ErrInput is malformed user input, such as an address that is not base58.
	ErrInput = errors.New("input error")
	// ErrIO is a file that cannot be read, decoded or written.
	ErrIO = errors.New("i/o error")
	// ErrRemote is a failed RPC call or an unexpected RPC response.
	ErrRemote = errors.New("remote error")
)

// AccountNotFoundError is returned when an account the query depends on does not exist.
// It is a remote error.
type AccountNotFoundError struct {
	Address string
}

func (e *AccountNotFoundError) Error() string {
	return fmt.Sprintf("account %s not found", e.Address)
}

func (e *AccountNotFoundError) Unwrap() error {
	return ErrRemote
}

// IsAccountNotFoundError checks if error is AccountNotFoundError
func IsAccountNotFoundError(err error) bool {
	var target *AccountNotFoundError
	return errors.As(err, &target)
}
