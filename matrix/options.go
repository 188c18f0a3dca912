// SPDX-License-Identifier: MIT

// Package matrix: functional options for diagnostic rendering.
//
// Contract:
//   - Options are functional (type PrintOption func(*printOptions)).
//   - Option constructors validate and PANIC on meaningless inputs (programmer
//     error); rendering itself never panics.
//   - Defaults below are the single source of truth for the zero configuration.

package matrix

import "strings"

// Rendering defaults.
const (
	// DefaultPrecision is passed to strconv.FormatFloat; -1 means the shortest
	// representation that round-trips.
	DefaultPrecision = -1

	// DefaultFormat is the strconv.FormatFloat verb.
	DefaultFormat byte = 'g'

	// DefaultSeparator is written between cells of a row.
	DefaultSeparator = ", "
)

const (
	panicPrecisionInvalid = "matrix: WithPrecision: precision must be >= -1"
	panicFormatInvalid    = "matrix: WithFormat: verb must be one of 'g', 'f', 'e'"
	panicSeparatorInvalid = "matrix: WithSeparator: separator must not contain a newline"
)

// PrintOption customizes Fprint.
type PrintOption func(*printOptions)

type printOptions struct {
	precision int
	format    byte
	separator string
}

func defaultPrintOptions() printOptions {
	return printOptions{
		precision: DefaultPrecision,
		format:    DefaultFormat,
		separator: DefaultSeparator,
	}
}

func gatherPrintOptions(opts []PrintOption) printOptions {
	o := defaultPrintOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithPrecision sets the number of digits (see strconv.FormatFloat).
func WithPrecision(p int) PrintOption {
	if p < -1 {
		panic(panicPrecisionInvalid)
	}
	return func(o *printOptions) { o.precision = p }
}

// WithFormat selects the float verb: 'g', 'f' or 'e'.
func WithFormat(verb byte) PrintOption {
	switch verb {
	case 'g', 'f', 'e':
	default:
		panic(panicFormatInvalid)
	}
	return func(o *printOptions) { o.format = verb }
}

// WithSeparator sets the text written between adjacent cells.
func WithSeparator(sep string) PrintOption {
	if strings.ContainsAny(sep, "\r\n") {
		panic(panicSeparatorInvalid)
	}
	return func(o *printOptions) { o.separator = sep }
}
