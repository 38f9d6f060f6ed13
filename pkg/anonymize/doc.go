// Package anonymize replaces identifying tokens in table definitions with
// sequentially numbered generic placeholders.
//
// The engine is syntax-agnostic: it operates on plain text with a single
// regular-expression substitution pass and imposes no SQL (or any other)
// schema. Running it twice on its own output is not idempotent when the
// generated placeholders themselves match the pattern; that is expected
// behavior, not a defect.
package anonymize
