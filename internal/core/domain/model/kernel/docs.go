// Package kernel contains shared value objects used across the ranking
// engine's domain model.
//
// The kernel holds types with no dependency on any particular aggregate:
//
//   - UUID: immutable identifier wrapping github.com/google/uuid
//   - PostalArea: normalized postal code and its three-character area bucket
//
// Value objects here are immutable, compare by value, and are constructed
// exclusively through their factory functions.
package kernel
