// SPDX-License-Identifier: MPL-2.0

// Package nodeset converts between explicit lists of cluster node names and
// the compact range notation used by job schedulers (e.g. "node[00-06],node08").
//
// The package is built around three primitives: the Node value type (a name
// decomposed into prefix, digit string, and digit width), a token grammar
// covering literal names and "prefix[start-end]" ranges, and a canonical
// total order over nodes (prefix, then width, then numeric value). On top of
// those it offers Expand, ExpandUnique, Condense, and Contains.
//
// Digit width is part of a node's identity: "node9" and "node09" are
// distinct names, and a condensed range never crosses a width boundary
// ("node99" is not followed by "node100").
//
// This package is a leaf dependency: it imports only the standard library
// and performs no I/O. Callers format errors and choose exit codes.
package nodeset
