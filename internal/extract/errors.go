package extract

import (
	"errors"
	"fmt"
)

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind classifies extraction failures.
type Kind int

const (
	_ Kind = iota // zero value is not a valid failure kind

	KindStructNotFound
	KindUnbalancedBraces
	KindSourceUnreadable
)

// Sentinels matched by errors.Is against an *Error of the same Kind.
var (
	ErrStructNotFound   = errors.New("struct not found")
	ErrUnbalancedBraces = errors.New("no closing brace found")
	ErrSourceUnreadable = errors.New("source header unreadable")
)

// Sentinel returns the sentinel error for the kind, or nil.
func (k Kind) Sentinel() error {
	switch k {
	case KindStructNotFound:
		return ErrStructNotFound
	case KindUnbalancedBraces:
		return ErrUnbalancedBraces
	case KindSourceUnreadable:
		return ErrSourceUnreadable
	default:
		return nil
	}
}

// Error is an extraction failure for one header/struct pair.
// Header and Struct are empty when the caller did not know them.
type Error struct {
	Kind   Kind
	Header string
	Struct string
	// Err is the underlying cause, e.g. an fs.PathError for unreadable sources.
	Err error
}

// Error implements error.
func (e *Error) Error() string {
	msg := "extraction failed"
	if s := e.Kind.Sentinel(); s != nil {
		msg = s.Error()
	}

	switch {
	case e.Header != "" && e.Struct != "":
		msg = fmt.Sprintf("%s in '%s' for struct '%s'", msg, e.Header, e.Struct)
	case e.Header != "":
		msg = fmt.Sprintf("%s: '%s'", msg, e.Header)
	case e.Struct != "":
		msg = fmt.Sprintf("%s for struct '%s'", msg, e.Struct)
	}

	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e.Kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.Sentinel()
	return s != nil && target == s
}

// WithHeader returns a copy of e annotated with the header path.
func (e *Error) WithHeader(header string) *Error {
	cp := *e
	cp.Header = header

	return &cp
}

// KindOf returns the Kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return 0
}
