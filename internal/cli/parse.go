// Package cli parses the compound positional arguments of the mandel
// command line: "WIDTHxHEIGHT" pixel bounds and "RE,IM" complex points.
package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/mandel"
)

// ErrBadPair is returned when an argument is not two values joined by the
// expected separator.
var ErrBadPair = errors.New("cli: malformed pair")

// ParseBounds parses a "WIDTHxHEIGHT" string into pixel bounds.
// Both sides must be integers and both dimensions must be positive.
func ParseBounds(s string) (mandel.Bounds, error) {
	w, h, err := parsePair(s, 'x', strconv.Atoi)
	if err != nil {
		return mandel.Bounds{}, err
	}

	b := mandel.Bounds{Width: w, Height: h}
	if err := b.Validate(); err != nil {
		return mandel.Bounds{}, fmt.Errorf("%w: %q", err, s)
	}
	return b, nil
}

// ParseComplex parses a "RE,IM" string into a complex number.
func ParseComplex(s string) (complex128, error) {
	re, im, err := parsePair(s, ',', parseFloat)
	if err != nil {
		return 0, err
	}
	return complex(re, im), nil
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

// parsePair splits s at the first occurrence of sep and parses both sides
// with parse. The separator must be present and both substrings must parse
// fully; a missing separator, an empty side, or trailing garbage all fail.
func parsePair[T any](s string, sep byte, parse func(string) (T, error)) (left, right T, err error) {
	var zero T

	i := strings.IndexByte(s, sep)
	if i < 0 {
		return zero, zero, fmt.Errorf("%w: %q has no %q separator", ErrBadPair, s, string(sep))
	}

	left, err = parse(s[:i])
	if err != nil {
		return zero, zero, fmt.Errorf("%w: %q", ErrBadPair, s)
	}
	right, err = parse(s[i+1:])
	if err != nil {
		return zero, zero, fmt.Errorf("%w: %q", ErrBadPair, s)
	}

	return left, right, nil
}
