package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Preflight errors, always fatal
	ErrRunningAsRoot    ErrorCode = "RUNNING_AS_ROOT"
	ErrShellMissing     ErrorCode = "SHELL_MISSING"
	ErrNoPackageManager ErrorCode = "NO_PACKAGE_MANAGER"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Pack errors
	ErrPackNotFound ErrorCode = "PACK_NOT_FOUND"
	ErrPackInvalid  ErrorCode = "PACK_INVALID"

	// Package manager errors
	ErrPackageInstall ErrorCode = "PACKAGE_INSTALL"

	// Plugin errors
	ErrPluginManifest ErrorCode = "PLUGIN_MANIFEST"
	ErrPluginClone    ErrorCode = "PLUGIN_CLONE"

	// Deploy errors
	ErrDeployPlan    ErrorCode = "DEPLOY_PLAN"
	ErrDeployExecute ErrorCode = "DEPLOY_EXECUTE"
	ErrBackupCreate  ErrorCode = "BACKUP_CREATE"

	// Shell rc errors
	ErrRcUserOwned ErrorCode = "RC_USER_OWNED"
	ErrRcGenerate  ErrorCode = "RC_GENERATE"

	// FileSystem errors
	ErrFileNotFound  ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess    ErrorCode = "FILE_ACCESS"
	ErrFileWrite     ErrorCode = "FILE_WRITE"
	ErrSymlinkCreate ErrorCode = "SYMLINK_CREATE"
	ErrDirCreate     ErrorCode = "DIR_CREATE"
)

// Severity classifies errors into the installer's two policies:
// fatal errors abort the run, best-effort errors are logged and the
// run continues.
type Severity int

const (
	// SeverityBestEffort errors warn and let the run proceed
	SeverityBestEffort Severity = iota
	// SeverityFatal errors abort the run with a non-zero exit
	SeverityFatal
)

// fatalCodes are the codes that always abort, regardless of how the
// error was constructed.
var fatalCodes = map[ErrorCode]bool{
	ErrRunningAsRoot:    true,
	ErrShellMissing:     true,
	ErrNoPackageManager: true,
	ErrConfigLoad:       true,
	ErrConfigParse:      true,
	ErrConfigValid:      true,
}

// SetupError represents a structured error with code and details
type SetupError struct {
	Code     ErrorCode
	Message  string
	Details  map[string]interface{}
	Wrapped  error
	severity Severity
}

// Error implements the error interface
func (e *SetupError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SetupError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface, comparing by code
func (e *SetupError) Is(target error) bool {
	var targetErr *SetupError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// Severity returns the error's policy class
func (e *SetupError) Severity() Severity {
	if fatalCodes[e.Code] {
		return SeverityFatal
	}
	return e.severity
}

// AsFatal marks the error fatal regardless of its code
func (e *SetupError) AsFatal() *SetupError {
	e.severity = SeverityFatal
	return e
}

// WithDetail adds a key/value detail to the error
func (e *SetupError) WithDetail(key string, value interface{}) *SetupError {
	e.Details[key] = value
	return e
}

// New creates a new SetupError with the given code and message
func New(code ErrorCode, message string) *SetupError {
	return &SetupError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SetupError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SetupError {
	return &SetupError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SetupError
func Wrap(err error, code ErrorCode, message string) *SetupError {
	if err == nil {
		return nil
	}
	return &SetupError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SetupError {
	if err == nil {
		return nil
	}
	return &SetupError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// IsFatal reports whether err (or any error in its chain) demands an
// abort. Plain non-SetupError errors are treated as fatal: only errors
// explicitly constructed in the best-effort paths may be survived.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	var se *SetupError
	if errors.As(err, &se) {
		return se.Severity() == SeverityFatal
	}
	return true
}

// CodeOf extracts the error code, or ErrUnknown for foreign errors
func CodeOf(err error) ErrorCode {
	var se *SetupError
	if errors.As(err, &se) {
		return se.Code
	}
	return ErrUnknown
}
