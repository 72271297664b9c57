// Package services contains the pure algorithms of the ranking engine:
// feature flag resolution and the fallback heuristic scorer. Both are free of
// I/O so they can be unit tested independently of any data access.
package services
