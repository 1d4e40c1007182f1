package models

import "fmt"

// RemoteOp identifies which remote operation failed.
type RemoteOp string

const (
	OpCreate         RemoteOp = "create"
	OpRetrieve       RemoteOp = "retrieve"
	OpUpdate         RemoteOp = "update"
	OpDelete         RemoteOp = "delete"
	OpSearch         RemoteOp = "search"
	OpBatchCreate    RemoteOp = "batch_create"
	OpPropertyCreate RemoteOp = "property_create"
	OpPropertyGet    RemoteOp = "property_get"
)

// ValidationError reports client-supplied data that failed local rules.
// It is always raised before any remote call is made.
type ValidationError struct {
	Message string
	Details any
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a resource the remote side confirmed to be absent.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// RemoteOperationError wraps any non-404 failure from the HubSpot API:
// network faults, auth faults, and remote-side validation faults alike.
// Details holds the structured error payload HubSpot returned, if any.
type RemoteOperationError struct {
	Op      RemoteOp
	Message string
	Details *RemoteErrorPayload
}

func (e *RemoteOperationError) Error() string {
	return fmt.Sprintf("hubspot %s failed: %s", e.Op, e.Message)
}

// ConfigurationError reports invalid or missing startup settings. It is
// fatal: the process must not serve traffic with a broken configuration.
type ConfigurationError struct {
	Field   string
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration %s: %s", e.Field, e.Message)
}
