// Package model builds a linked, queryable type model from a parsed
// interface description.
//
// Construction is two-phase: every declaration becomes a concrete Type
// (filtered by enabled tags), then a link pass resolves member, argument,
// return, and typedef references by name. Identifier derivation (C-side
// names, Swift-side names) happens up front so malformed description names
// fail at model construction, not mid-generation.
package model
