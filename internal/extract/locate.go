package extract

import (
	"regexp"
)

// Span is a half-open byte range [Start, End) over a header's text.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Slice returns the covered substring of text.
func (s Span) Slice(text string) string {
	return text[s.Start:s.End]
}

// anchorPattern matches "struct", whitespace, the name, optional whitespace
// and an opening brace. The name is matched literally.
func anchorPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`struct\s+` + regexp.QuoteMeta(name) + `\s*\{`)
}

// Locate returns the span of the body of the first "struct <name> {" in text:
// from just after the opening brace to the matching closing brace.
func Locate(text, name string) (Span, error) {
	loc := anchorPattern(name).FindStringIndex(text)
	if loc == nil {
		return Span{}, &Error{Kind: KindStructNotFound, Struct: name}
	}

	// The match ends with the opening brace.
	start := loc[1]

	end, err := FindClosingBrace(text, start)
	if err != nil {
		return Span{}, &Error{Kind: KindUnbalancedBraces, Struct: name}
	}

	return Span{Start: start, End: end}, nil
}

// Struct returns the member-declaration body of struct name, without the
// surrounding braces.
func Struct(text, name string) (string, error) {
	span, err := Locate(text, name)
	if err != nil {
		return "", err
	}

	return span.Slice(text), nil
}
