// Package configgen generates headers of integer configuration constants.
//
// Values come from a Provider: interactive prompting, the environment or a
// dotenv file, fixed maps, or nothing at all (defaults). Generation itself
// never reads from a terminal; callers inject the provider.
package configgen
