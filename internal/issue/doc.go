// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// This package wraps the typed parse errors of pkg/nodeset (and config load
// failures) with the operation that was running, the offending token, and
// remediation suggestions, so the CLI can print something more helpful than
// a bare parser message.
package issue
