package adapter

import (
	"errors"
	"fmt"
)

// Kind classifies a translation failure.
type Kind int

const (
	KindUnexpected Kind = iota
	KindMissingField
	KindMalformedDate
)

func (k Kind) String() string {
	switch k {
	case KindMissingField:
		return "MissingField"
	case KindMalformedDate:
		return "MalformedDate"
	default:
		return "UnexpectedFailure"
	}
}

// Sentinels for errors.Is. Every *TranslationError matches exactly one of them.
var (
	ErrMissingField  = errors.New("missing field")
	ErrMalformedDate = errors.New("malformed date")
	ErrUnexpected    = errors.New("unexpected failure")
)

// TranslationError is the only error type returned by the adapter.
type TranslationError struct {
	Kind Kind
	// Field is the legacy key that was absent, for KindMissingField.
	Field string
	// Raw is the date value as received, for KindMalformedDate.
	Raw string
	Err error
}

func (e *TranslationError) Error() string {
	switch e.Kind {
	case KindMissingField:
		return fmt.Sprintf("missing field in legacy event: %s", e.Field)
	case KindMalformedDate:
		if e.Err != nil {
			return fmt.Sprintf("malformed date in legacy event: %q: %s", e.Raw, e.Err)
		}
		return fmt.Sprintf("malformed date in legacy event: %q", e.Raw)
	default:
		if e.Err != nil {
			return fmt.Sprintf("unexpected failure adapting legacy event: %s", e.Err)
		}
		return "unexpected failure adapting legacy event"
	}
}

func (e *TranslationError) Unwrap() error {
	return e.Err
}

func (e *TranslationError) Is(target error) bool {
	switch target {
	case ErrMissingField:
		return e.Kind == KindMissingField
	case ErrMalformedDate:
		return e.Kind == KindMalformedDate
	case ErrUnexpected:
		return e.Kind == KindUnexpected
	}
	return false
}

func missingField(field string) *TranslationError {
	return &TranslationError{Kind: KindMissingField, Field: field}
}

func malformedDate(raw string, cause error) *TranslationError {
	return &TranslationError{Kind: KindMalformedDate, Raw: raw, Err: cause}
}

func unexpected(cause error) *TranslationError {
	return &TranslationError{Kind: KindUnexpected, Err: cause}
}
