package extract

// FindClosingBrace returns the offset of the brace that closes a block whose
// opening brace ends just before start. Nesting depth starts at 1 and the
// scan stops at the first '}' that brings it back to 0.
//
// If the text ends with the block still open, the error is an *Error of
// kind KindUnbalancedBraces. A start outside the text is reported the same
// way.
func FindClosingBrace(text string, start int) (int, error) {
	if start < 0 || start > len(text) {
		return -1, &Error{Kind: KindUnbalancedBraces}
	}

	depth := 1

	for i := start; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}

	return -1, &Error{Kind: KindUnbalancedBraces}
}
