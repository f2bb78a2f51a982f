package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnparsable = errors.New("unable to parse")
	ErrOutOfRange = errors.New("out of range")
)

// ArgumentError reports a NUMBER argument that could not be read.
type ArgumentError struct {
	Arg  string
	Base int
	Err  error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s in base %d: %v", e.Arg, e.Base, e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// Range is an inclusive run of radixes. It is empty when First > Last.
type Range struct {
	First, Last int64
}

// ParseRange reads "n" or "n..m" with digits in the given base.
func ParseRange(arg string, base int) (Range, error) {
	first, last, isRange := strings.Cut(arg, "..")
	lo, err := parseNumber(first, base)
	if err != nil {
		return Range{}, &ArgumentError{Arg: arg, Base: base, Err: err}
	}
	if !isRange {
		return Range{First: lo, Last: lo}, nil
	}
	hi, err := parseNumber(last, base)
	if err != nil {
		return Range{}, &ArgumentError{Arg: arg, Base: base, Err: err}
	}
	return Range{First: lo, Last: hi}, nil
}

func parseNumber(s string, base int) (int64, error) {
	n, err := strconv.ParseInt(s, base, 64)
	if err == nil {
		return n, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, ErrOutOfRange
	}
	return 0, ErrUnparsable
}

// valueFlags take their value from the next argument.
var valueFlags = map[string]bool{
	"--workers":   true,
	"--format":    true,
	"--store":     true,
	"--log-level": true,
}

// NormalizeArgs rewrites an argument list for cobra. Option bundles in the
// "+vapr" style become dash flags, and NUMBER arguments move behind "--" so
// that negative numbers are not taken for flags.
func NormalizeArgs(args []string) []string {
	flags := make([]string, 0, len(args))
	var numbers []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			numbers = append(numbers, args[i+1:]...)
			i = len(args)
		case len(arg) > 1 && arg[0] == '+':
			for _, c := range arg[1:] {
				flags = append(flags, "-"+string(c))
			}
		case isNumberArg(arg):
			numbers = append(numbers, arg)
		default:
			flags = append(flags, arg)
			if valueFlags[arg] && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		}
	}
	if len(numbers) == 0 {
		return flags
	}
	return append(append(flags, "--"), numbers...)
}

func isNumberArg(arg string) bool {
	if arg == "" || arg[0] != '-' {
		return true
	}
	return len(arg) > 1 && arg[1] >= '0' && arg[1] <= '9'
}
