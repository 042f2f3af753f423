// ABOUTME: Positional argument parsing: image path plus optional target width and height
// ABOUTME: Dimensions are base-10 integers; exactly one of the pair is rejected

package pipeline

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInput marks errors caused by bad command-line input.
var ErrInput = errors.New("invalid input")

// ParseArgs builds a Request from the positional arguments
// <imagePath> [<targetWidth> <targetHeight>].
func ParseArgs(args []string) (Request, error) {
	if len(args) == 0 {
		return Request{}, fmt.Errorf("%w: no image provided", ErrInput)
	}
	if strings.TrimSpace(args[0]) == "" {
		return Request{}, fmt.Errorf("%w: empty image path", ErrInput)
	}

	switch len(args) {
	case 1:
		return Request{Path: args[0]}, nil
	case 2:
		return Request{}, fmt.Errorf("%w: a target width needs a target height", ErrInput)
	case 3:
	default:
		return Request{}, fmt.Errorf("%w: too many arguments (%d)", ErrInput, len(args))
	}

	w, err := ParseDimension(args[1])
	if err != nil {
		return Request{}, fmt.Errorf("target width: %w", err)
	}
	h, err := ParseDimension(args[2])
	if err != nil {
		return Request{}, fmt.Errorf("target height: %w", err)
	}
	return Request{Path: args[0], Width: w, Height: h}, nil
}

// ParseDimension converts s to a non-negative int32-range integer. The
// whole string must be a base-10 number.
func ParseDimension(s string) (int, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInput, s)
	}
	if n < 0 || n > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %d is out of range", ErrInput, n)
	}
	return int(n), nil
}
