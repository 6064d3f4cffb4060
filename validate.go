package utf8scan

import "github.com/tidalgo/utf8scan/internal/validator"

// Validate returns the first ill-formed subsequence in buf, or nil if buf
// is entirely well-formed UTF-8.
func Validate(buf []byte) *CheckError {
	return validator.Validate(buf)
}

// ValidateAll returns every ill-formed subsequence in buf, in order,
// without re-reporting the well-formed stretches between them.
func ValidateAll(buf []byte) []CheckError {
	return validator.ValidateAll(buf)
}
