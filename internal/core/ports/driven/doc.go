// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - RecordSource: Supplies decoded museum object records (CSV export)
//   - IndexStore: Persists and loads the artist URL index (JSON/YAML files)
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - ScoreStore: Quiz answer history. Without it, scores are not kept.
//   - ArtworkFetcher: Museum API metadata. Without it, rounds show bare URLs.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
