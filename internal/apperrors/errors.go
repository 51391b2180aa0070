package apperrors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a rule or request definition that violates an
// invariant. Raised at configuration time; never reaches the engine.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ConfigurationError represents invalid or missing roster/rule configuration.
// Fatal to the operation that triggered it, not to sibling operations.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// NoEligibleUsersError is returned when a rule matched a record but none of the
// rule's configured users are on duty. The record is skipped and logged; this
// is not an engine fault.
type NoEligibleUsersError struct {
	RuleID string
}

func (e *NoEligibleUsersError) Error() string {
	if e.RuleID != "" {
		return fmt.Sprintf("no eligible users on duty for rule %s", e.RuleID)
	}
	return "no eligible users on duty"
}

// UpstreamError wraps a failed CRM collaborator call. Record- or rule-scoped;
// recorded and skipped unless the collaborator itself retries.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("crm call %s failed: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrRuleNotFound        = &NotFoundError{Entity: "assignment rule"}
	ErrDutyDayNotFound     = &NotFoundError{Entity: "duty day"}
	ErrDefaultUserNotFound = &NotFoundError{Entity: "default user"}
	ErrCrmUserNotFound     = &NotFoundError{Entity: "crm user"}
	ErrHistoryNotFound     = &NotFoundError{Entity: "history entry"}
)

// Configuration Errors
var (
	ErrNoDefaultUsers   = &ConfigurationError{Message: "default user list is empty, cannot generate roster"}
	ErrNoDutyRoster     = &ConfigurationError{Message: "no duty roster for the target date"}
	ErrCrmNotConfigured = &ConfigurationError{Message: "CRM_WEBHOOK_URL is not configured"}
)

// Business Logic Errors
var (
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
	ErrRunCancelled            = errors.New("assignment run cancelled")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsNoEligibleUsers checks if an error is a NoEligibleUsersError
func IsNoEligibleUsers(err error) bool {
	var neuErr *NoEligibleUsersError
	return errors.As(err, &neuErr)
}

// IsUpstream checks if an error is an UpstreamError
func IsUpstream(err error) bool {
	var upErr *UpstreamError
	return errors.As(err, &upErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// NewUpstreamError wraps a CRM collaborator failure
func NewUpstreamError(op string, err error) error {
	return &UpstreamError{Op: op, Err: err}
}
