package scoring

import "errors"

// ErrInvalidScheme indicates a scheme that cannot drive a local alignment:
// Match must be positive, Mismatch and Gap must not be positive.
var ErrInvalidScheme = errors.New("scoring: invalid scheme")
