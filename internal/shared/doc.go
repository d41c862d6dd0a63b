// Package shared provides common utilities and test helpers used across the
// grahabala codebase. It serves as a central location for functionality that
// doesn't belong to any specific domain or architectural layer.
//
// # Structure
//
// The package is organized into the following components:
//
// - testutil: synthetic chart builders and logging test helpers
//
// # Usage Guidelines
//
// This package should only contain:
//
// 1. Test utilities used by multiple packages
// 2. Generic helper functions with no domain-specific logic
//
// It should NOT contain:
//
// 1. Scoring logic or domain-specific code
// 2. Circular dependencies with other internal packages
//
// # Test Utilities
//
// The testutil subpackage provides:
//
//	- Deterministic chart fixtures with per-fact override options
//	- A seeded random chart generator for bounds properties
//	- A buffered slog handler with record assertions
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    facts := testutil.NewChart(
//	        testutil.WithAscendant(chart.SignAries, 15),
//	    )
//	    // Score facts and assert on the report
//	}
package shared
