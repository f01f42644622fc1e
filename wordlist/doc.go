// Package wordlist reads newline-delimited word lists and enumerates the
// unordered pairs that get aligned.
//
// Line policy:
//   - one word per line; "\n" and a trailing "\r" are stripped;
//   - a last line without a newline is kept;
//   - a terminating newline does not create an extra empty word;
//   - interior blank lines are kept as empty words (WithSkipBlank drops them).
//
// Files ending in ".gz", or starting with the gzip magic bytes, are
// decompressed transparently.
package wordlist
