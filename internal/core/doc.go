// Package core contains app-wide contracts and state orchestration.
//
// Allowed here:
// - the root model: panel selection, message contracts, command and key registries
// - shared state machines used across screens (for example picker logic)
// - shell chrome (header, sidebar, status bar, footer) and the shared colour palette
//
// Not allowed here:
// - concrete panel or overlay screen implementations
// - low-level widget rendering primitives
package core
