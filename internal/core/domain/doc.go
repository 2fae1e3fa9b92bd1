// Package domain defines the core business entities for Sommelier.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Recommendation: A ranked book suggestion with a similarity score
//   - SearchState: The query and busy flag owned by a recommendation view
//   - Settings: User-tunable behaviour such as the analysis delay
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
