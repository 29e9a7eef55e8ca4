package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for type checking
var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrDuplicateName   = errors.New("duplicate name")
	ErrMaxColors       = errors.New("max colors reached")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrFileOperation   = errors.New("file operation failed")
)

// ValidationError indicates invalid user input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// DuplicateNameError indicates a case-insensitive name collision.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("a color named %q already exists", e.Name)
}

func (e *DuplicateNameError) Unwrap() error {
	return ErrDuplicateName
}

// MaxColorsReachedError indicates an add was attempted at capacity.
type MaxColorsReachedError struct {
	Limit int
}

func (e *MaxColorsReachedError) Error() string {
	return fmt.Sprintf("cannot add more colors (limit: %d)", e.Limit)
}

func (e *MaxColorsReachedError) Unwrap() error {
	return ErrMaxColors
}

// IndexOutOfRangeError indicates an edit/delete/move referenced a
// position that does not exist.
type IndexOutOfRangeError struct {
	Index  int
	Length int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range (collection has %d colors)", e.Index, e.Length)
}

func (e *IndexOutOfRangeError) Unwrap() error {
	return ErrIndexOutOfRange
}

// FileOperationError wraps an underlying I/O or parse failure with the
// operation and path it happened on.
type FileOperationError struct {
	Op   string // "read", "write", "parse", "restore"
	Path string
	Err  error
}

func (e *FileOperationError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileOperationError) Unwrap() error {
	return e.Err
}

func (e *FileOperationError) Is(target error) bool {
	return target == ErrFileOperation
}

// Helper constructors for common cases

func InvalidField(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func DuplicateName(name string) error {
	return &DuplicateNameError{Name: name}
}

func MaxColorsReached(limit int) error {
	return &MaxColorsReachedError{Limit: limit}
}

func IndexOutOfRange(index, length int) error {
	return &IndexOutOfRangeError{Index: index, Length: length}
}

func FileOperation(op, path string, err error) error {
	return &FileOperationError{Op: op, Path: path, Err: err}
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsDuplicateName checks if an error is a duplicate-name error.
func IsDuplicateName(err error) bool {
	return errors.Is(err, ErrDuplicateName)
}

// IsMaxColors checks if an error is a capacity error.
func IsMaxColors(err error) bool {
	return errors.Is(err, ErrMaxColors)
}

// IsIndexOutOfRange checks if an error is an out-of-range error.
func IsIndexOutOfRange(err error) bool {
	return errors.Is(err, ErrIndexOutOfRange)
}

// IsFileOperation checks if an error is a file-operation error.
func IsFileOperation(err error) bool {
	return errors.Is(err, ErrFileOperation)
}
