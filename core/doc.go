// Package core provides the foundational domain types shared across the
// PeopleFinder backend. It defines the core abstractions for:
//
//   - Plans (the decomposition of a query into ordered sub-tasks)
//   - Agents (single planned sub-task descriptions, not long-lived processes)
//   - StreamEvents (immutable progress records emitted over a live connection)
//   - SearchResults (normalized web-search hits independent of the vendor)
//   - PersonaRecords (person profiles heuristically derived from search hits)
//   - The error taxonomy for upstream provider failures
//
// The package intentionally keeps implementation concerns (HTTP transport,
// provider clients, orchestration) out of scope, exposing small value types so
// every other package can interoperate without vendor-specific branching.
package core
