package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("resource not found")
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrInvalidInput  = errors.New("invalid input")
	ErrClosed        = errors.New("store closed")
	ErrUnknownFormat = errors.New("unknown definition format")
)

type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config field %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrInvalidConfig) match any field error.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

func NewConfigError(field string, err error) *ConfigError {
	return &ConfigError{
		Field: field,
		Err:   err,
	}
}

// DecodeError reports a definition or record document that could not be
// decoded. Source is usually a file path.
type DecodeError struct {
	Source string
	Format string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode[%s] %s: %v", e.Format, e.Source, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func NewDecodeError(source, format string, err error) *DecodeError {
	return &DecodeError{
		Source: source,
		Format: format,
		Err:    err,
	}
}

func IsDecodeError(err error) bool {
	var decodeErr *DecodeError
	return errors.As(err, &decodeErr)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsInvalidConfig(err error) bool {
	return errors.Is(err, ErrInvalidConfig)
}

func IsClosed(err error) bool {
	return errors.Is(err, ErrClosed)
}
