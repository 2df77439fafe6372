// Package rewrite applies an ordered table of literal substring
// replacements to extracted struct bodies.
//
// Patterns are plain text, not regular expressions. Each rule runs on the
// output of the previous one, so a later rule can match text an earlier rule
// produced, and an earlier rule can consume text a later rule would have
// matched.
package rewrite
