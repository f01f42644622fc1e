package wordlist

import "errors"

var (
	// ErrOpen indicates the input could not be opened for reading.
	ErrOpen = errors.New("wordlist: cannot open input")

	// ErrRead indicates a failure while reading an opened input.
	ErrRead = errors.New("wordlist: read failed")
)
