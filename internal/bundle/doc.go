// Package bundle collects project files and generated headers into a
// library archive.
//
// The archive is written to a temporary file next to its destination and
// renamed into place once complete, so a failed run never leaves a partial
// archive behind.
package bundle
