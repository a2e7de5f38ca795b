// Package domain defines the core business entities for oddart.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Record: One decoded row of the museum object export
//   - Painting: A Record projected to the retained fields of a curated painting
//   - ArtistURLIndex: Ordered mapping from artist name to object URLs
//   - AnswerSet, Round: Quiz draws built from an ArtistURLIndex
//   - AppSettings: Pipeline, path, quiz and museum API settings
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
