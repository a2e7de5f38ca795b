// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The curation pipeline stages (classification, attribution filtering,
// distinct values, grouping, URL aggregation, answer sampling) are plain
// functions over in-memory collections. They never mutate their inputs,
// perform no I/O and take randomness only from an injected source.
package services
