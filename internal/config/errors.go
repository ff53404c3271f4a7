// Package config loads and validates chain configuration files.
package config

import (
	"errors"
	"fmt"
)

// Kind classifies a configuration error.
type Kind string

const (
	KindMissingField    Kind = "missing_field"
	KindInvalidType     Kind = "invalid_type"
	KindOutOfRange      Kind = "out_of_range"
	KindUnknownScenario Kind = "unknown_scenario"
)

// Error is a typed configuration error carrying enough context for the
// caller to build a user-visible message. All config errors surface at load
// time, before any projection runs.
type Error struct {
	Kind  Kind
	Field string
	Value interface{}
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindMissingField:
		return fmt.Sprintf("config: missing required field %q", e.Field)
	case KindUnknownScenario:
		return fmt.Sprintf("config: unknown APY scenario %q", e.Value)
	default:
		return fmt.Sprintf("config: field %q has invalid value %v (%s)", e.Field, e.Value, e.Kind)
	}
}

// IsKind reports whether err is (or wraps) a config Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Kind == kind
}

func missingField(field string) *Error {
	return &Error{Kind: KindMissingField, Field: field}
}

func invalidType(field string, value interface{}) *Error {
	return &Error{Kind: KindInvalidType, Field: field, Value: value}
}

func outOfRange(field string, value interface{}) *Error {
	return &Error{Kind: KindOutOfRange, Field: field, Value: value}
}

// UnknownScenarioError is returned when a requested APY scenario is not
// present in the config.
func UnknownScenarioError(scenario string) *Error {
	return &Error{Kind: KindUnknownScenario, Field: "apy_scenarios", Value: scenario}
}
