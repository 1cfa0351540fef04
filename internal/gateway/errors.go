package gateway

import (
	"errors"
	"fmt"
	"strings"

	"github.com/conn-castle/xig/internal/messages"
)

var (
	// ErrDirectoryNotFound indicates a configured or caller-supplied directory does not exist.
	ErrDirectoryNotFound = errors.New(messages.GatewayDirectoryNotFound)

	// ErrSourceNotAvailable indicates no gateway source is configured or detectable,
	// or a gateway is missing from the source it should be compared against.
	ErrSourceNotAvailable = errors.New(messages.GatewaySourceNotAvailable)

	// ErrInvalidTarget indicates install was requested for gateways that are not available.
	ErrInvalidTarget = errors.New(messages.GatewayInvalidTarget)

	// ErrNotInstalled indicates uninstall or diff was requested for gateways that are not installed.
	ErrNotInstalled = errors.New(messages.GatewayNotInstalled)

	// ErrCommandNotExist indicates an unknown command name.
	ErrCommandNotExist = errors.New(messages.GatewayCommandNotExist)

	// ErrTargetNotWritable indicates the target directory rejects writes.
	ErrTargetNotWritable = errors.New(messages.GatewayTargetNotWritable)

	// ErrSameFile indicates a copy whose destination resolves to its own source.
	ErrSameFile = errors.New(messages.GatewaySameFile)
)

// NamesError reports the requested gateway names rejected by validation.
// Kind is ErrInvalidTarget or ErrNotInstalled.
type NamesError struct {
	Kind  error
	Names []string
}

func (e *NamesError) Error() string {
	return fmt.Sprintf(messages.GatewayNamesFmt, e.Kind, strings.Join(e.Names, ", "))
}

// Unwrap returns the error kind so errors.Is matches the sentinel.
func (e *NamesError) Unwrap() error {
	return e.Kind
}

// BatchError reports a filesystem failure in the middle of a batch.
// Done lists the names completed before Name failed.
type BatchError struct {
	Op   string
	Done []string
	Name string
	Err  error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf(messages.GatewayBatchFmt, e.Op, e.Name, e.Err)
}

func (e *BatchError) Unwrap() error {
	return e.Err
}

// RejectedNames returns the names carried by a NamesError anywhere in err's chain.
func RejectedNames(err error) ([]string, bool) {
	var namesErr *NamesError
	if !errors.As(err, &namesErr) {
		return nil, false
	}
	return namesErr.Names, true
}

// IsBatchError reports whether err is a mid-batch failure and returns it.
func IsBatchError(err error) (*BatchError, bool) {
	var batchErr *BatchError
	if errors.As(err, &batchErr) {
		return batchErr, true
	}
	return nil, false
}
