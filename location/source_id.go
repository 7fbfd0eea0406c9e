package location

import "fmt"

// SourceID identifies a source uniquely within a build.
//
// A SourceID is always synthetic — an opaque identifier such as
// "inline:test", "test://unit/person", or "<stdin>". There is no
// file-backed mode: nothing in this repository resolves a SourceID
// back to a filesystem path, so the canonicalization machinery that
// would support that (symlink resolution, NFC/slash normalization,
// UNC rejection) has no caller and is not carried here.
//
// SourceID is a value type with an unexported field. The zero value
// is invalid; use IsZero() to check. SourceID is comparable and safe
// for use as a map key.
type SourceID struct {
	synthetic string
}

// NewSourceID creates a SourceID from identifier without validation.
//
// Prefer [MustNewSourceID] for new code: NewSourceID admits an empty
// string, which produces a zero-value (invalid) SourceID.
func NewSourceID(identifier string) SourceID {
	return SourceID{synthetic: identifier}
}

// MustNewSourceID creates a SourceID from identifier, panicking if it
// is empty or resembles an absolute file path (which this package has
// no way to distinguish from a genuinely file-backed source, so the
// two must not be allowed to collide under String()).
//
// Recommended identifier patterns: "test://unit/person", "inline:fixture",
// "embedded://app/builtin", "<stdin>".
func MustNewSourceID(identifier string) SourceID {
	if err := ValidateSyntheticSourceID(identifier); err != nil {
		panic("location.MustNewSourceID: " + err.Error())
	}
	return SourceID{synthetic: identifier}
}

// ValidateSyntheticSourceID validates that identifier is safe for use
// as a SourceID. Returns an error if identifier is empty
// ([ErrEmptySourceID]) or resembles an absolute file path
// ([ErrAbsolutePathSourceID]). Called automatically by MustNewSourceID.
func ValidateSyntheticSourceID(identifier string) error {
	if identifier == "" {
		return ErrEmptySourceID
	}
	if looksLikeAbsolutePath(identifier) {
		return fmt.Errorf("%w: %q; use a scheme prefix (e.g., test://, inline:) to avoid collision with file-backed sources", ErrAbsolutePathSourceID, identifier)
	}
	return nil
}

// String returns the source identifier.
func (s SourceID) String() string {
	return s.synthetic
}

// IsZero reports whether this is a zero-value SourceID.
// The zero value is invalid and should not be used.
func (s SourceID) IsZero() bool {
	return s.synthetic == ""
}

// looksLikeAbsolutePath checks if identifier looks like an absolute
// file path. Used by ValidateSyntheticSourceID to reject synthetic
// identifiers that could collide with a file-backed SourceID scheme.
func looksLikeAbsolutePath(identifier string) bool {
	if len(identifier) == 0 {
		return false
	}
	if identifier[0] == '/' {
		return true
	}
	if len(identifier) >= 3 && isLetter(identifier[0]) && identifier[1] == ':' {
		if identifier[2] == '/' || identifier[2] == '\\' {
			return true
		}
	}
	if len(identifier) >= 2 {
		if (identifier[0] == '\\' && identifier[1] == '\\') ||
			(identifier[0] == '/' && identifier[1] == '/') {
			return true
		}
	}
	return false
}

// isLetter reports whether c is an ASCII letter.
func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
