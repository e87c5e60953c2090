package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeNetwork represents network-related errors
	ErrorTypeNetwork ErrorType = "network"
	// ErrorTypeParsing represents HTML parsing errors
	ErrorTypeParsing ErrorType = "parsing"
	// ErrorTypeStore represents seen-store errors
	ErrorTypeStore ErrorType = "store"
	// ErrorTypeExport represents export file errors
	ErrorTypeExport ErrorType = "export"
	// ErrorTypeNotify represents notification errors
	ErrorTypeNotify ErrorType = "notify"
	// ErrorTypePublish represents stream publisher errors
	ErrorTypePublish ErrorType = "publish"
	// ErrorTypeConfiguration represents configuration errors
	ErrorTypeConfiguration ErrorType = "configuration"
)

// PipelineError represents a pipeline-stage error
type PipelineError struct {
	Type      ErrorType
	Component string
	Message   string
	Err       error
	Time      time.Time
}

// Error implements the error interface
func (e *PipelineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %s - %v", e.Type, e.Component, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Type, e.Component, e.Message)
}

// Unwrap returns the underlying error
func (e *PipelineError) Unwrap() error {
	return e.Err
}

// IsFatal reports whether the error must abort the run. Network, parsing,
// notification and publish problems degrade the run; store, export and
// configuration problems end it.
func (e *PipelineError) IsFatal() bool {
	switch e.Type {
	case ErrorTypeStore, ErrorTypeExport, ErrorTypeConfiguration:
		return true
	default:
		return false
	}
}

// IsFatal reports whether err is, or wraps, a fatal PipelineError. Errors
// outside the taxonomy are treated as fatal.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.IsFatal()
	}
	return true
}

// New creates a new PipelineError
func New(errType ErrorType, component, message string, err error) *PipelineError {
	return &PipelineError{
		Type:      errType,
		Component: component,
		Message:   message,
		Err:       err,
		Time:      time.Now(),
	}
}

// NewNetwork creates a new network error
func NewNetwork(component, message string, err error) *PipelineError {
	return New(ErrorTypeNetwork, component, message, err)
}

// NewParsing creates a new parsing error
func NewParsing(component, message string, err error) *PipelineError {
	return New(ErrorTypeParsing, component, message, err)
}

// NewStore creates a new store error
func NewStore(component, message string, err error) *PipelineError {
	return New(ErrorTypeStore, component, message, err)
}

// NewExport creates a new export error
func NewExport(component, message string, err error) *PipelineError {
	return New(ErrorTypeExport, component, message, err)
}

// NewNotify creates a new notification error
func NewNotify(component, message string, err error) *PipelineError {
	return New(ErrorTypeNotify, component, message, err)
}

// NewConfiguration creates a new configuration error
func NewConfiguration(component, message string, err error) *PipelineError {
	return New(ErrorTypeConfiguration, component, message, err)
}
