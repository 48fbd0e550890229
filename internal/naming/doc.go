// Package naming derives target-language identifiers from the
// space-delimited phrases an interface description uses as names
// (e.g. "buffer map async status"), and escapes identifiers that collide
// with reserved words of the target dialect.
package naming
