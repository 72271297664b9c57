// Package errs provides standardized error types for the ranking engine.
//
// Every typed error follows the same pattern: a sentinel variable for
// classification with errors.Is (e.g. ErrValueIsRequired), a struct carrying
// the offending parameter and an optional cause, constructors with and
// without a cause, and an Unwrap method pointing at the sentinel.
//
// Callers classify coarsely at the edges (client error vs server error) via
// the sentinels and keep the detail in the formatted message.
package errs
