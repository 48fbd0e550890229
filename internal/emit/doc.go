// Package emit composes generated source text from plain string fragments.
//
// A fragment is one or more lines joined by "\n" with no trailing newline.
// Composition is purely structural: Builder sequences sibling fragments,
// Emitter wraps a body in a brace block and indents it one level. Nested
// blocks compound indentation because each level indents only its own
// direct body.
//
// No escaping, deduplication, or reordering happens here; callers decide
// content (including identifier casing, see package naming) before handing
// it over.
package emit
