package common

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// Duplicates returns the non-empty keys that occur more than once, in order
// of their second occurrence.
func Duplicates[S ~[]E, E any](s S, key func(E) string) []string {
	seen := make(map[string]int, len(s))

	var dups []string

	for _, e := range s {
		k := key(e)
		if k == "" {
			continue
		}

		seen[k]++

		if seen[k] == 2 {
			dups = append(dups, k)
		}
	}

	return dups
}
