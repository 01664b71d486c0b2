package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure cases.
var (
	// ErrMissingConfig indicates a configuration error.
	ErrMissingConfig = errors.New("dashgen: missing configuration")
	// ErrGenerationFailed indicates an artifact could not be rendered or written.
	ErrGenerationFailed = errors.New("dashgen: generation failed")
	// ErrSentinelNotFound indicates a text patch found no insertion point.
	ErrSentinelNotFound = errors.New("dashgen: sentinel not found")
)

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("dashgen: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("dashgen: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrMissingConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// GenerationError represents an artifact generation error.
type GenerationError struct {
	Phase   string // "field", "dashboard", "controller", "write", etc.
	File    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	var b strings.Builder
	b.WriteString("dashgen: generation error")
	if e.Phase != "" {
		b.WriteString(" in phase ")
		b.WriteString(e.Phase)
	}
	if e.File != "" {
		b.WriteString(" (file: ")
		b.WriteString(e.File)
		b.WriteString(")")
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for GenerationError.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// NewGenerationError creates a new GenerationError.
func NewGenerationError(phase, file, message string, cause error) *GenerationError {
	return &GenerationError{
		Phase:   phase,
		File:    file,
		Message: message,
		Cause:   cause,
	}
}

// PatchError represents a failed text insertion into an existing file.
type PatchError struct {
	File    string
	Pattern string
	Cause   error
}

// Error implements the error interface.
func (e *PatchError) Error() string {
	var b strings.Builder
	b.WriteString("dashgen: patch error")
	if e.File != "" {
		b.WriteString(" on ")
		b.WriteString(e.File)
	}
	if e.Pattern != "" {
		fmt.Fprintf(&b, " (pattern %q)", e.Pattern)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *PatchError) Unwrap() error {
	return e.Cause
}

// NewPatchError creates a new PatchError.
func NewPatchError(file, pattern string, cause error) *PatchError {
	return &PatchError{
		File:    file,
		Pattern: pattern,
		Cause:   cause,
	}
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsGenerationError reports whether the error is a GenerationError.
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}

// IsPatchError reports whether the error is a PatchError.
func IsPatchError(err error) bool {
	var patchErr *PatchError
	return errors.As(err, &patchErr)
}
