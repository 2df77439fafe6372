// Package extract locates C struct bodies in raw header text.
//
// It is not a C parser. A struct is found by a single textual anchor,
// "struct <name> {", and its body is bounded by counting braces.
//
// Key functions:
//   - FindClosingBrace: matches an already-opened brace by nesting depth
//   - Locate: finds the anchor and returns the body as a Span
//   - Struct: returns the body text between the braces
//
// Braces inside comments or string literals are counted like any other
// brace. Headers whose structs of interest contain such braces will produce
// a wrong span.
package extract
