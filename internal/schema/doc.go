// Package schema loads the WebGPU interface description (the dawn.json
// shape) into typed declarations.
//
// The description is one top-level mapping of type name to declaration.
// Names are space-delimited phrases ("buffer map async status"); keys
// starting with "_" are file metadata and are skipped. YAML is a superset
// of JSON, so the upstream JSON description parses unchanged.
//
// Declaration order is preserved: generation output must be deterministic
// and follow the description, not map iteration order.
package schema
