// Package gen emits deterministic Swift source from a linked model.
//
// One file per declaration kind: enums, option sets, descriptor structs,
// object classes. Block bodies are composed with package emit; every
// identifier has already been derived (and keyword-escaped) by the model,
// so emission here is pure assembly.
package gen
