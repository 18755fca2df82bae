// Package froidurepin: sentinel errors, the Word type, and tunable options
// for the enumeration engine.
package froidurepin

import (
	"errors"
	"fmt"
	"math"
)

// NoLimit makes Enumerate run until closure is reached.
const NoLimit = math.MaxInt

// Default option values used by DefaultOptions.
const (
	// defaultBatchSize bounds how many new positions a forcing query
	// enumerates between membership probes.
	defaultBatchSize = 8192

	// defaultReportEvery sets how many frontier expansions pass between
	// OnProgress observations during one Enumerate call.
	defaultReportEvery = 8192
)

// Sentinel errors for engine construction, enumeration, and queries.
var (
	// ErrEmptyGenerators is returned by New when the generator list is empty.
	ErrEmptyGenerators = errors.New("froidurepin: generator list is empty")

	// ErrNilGenerator is returned by New and Evaluate when a generator is nil.
	ErrNilGenerator = errors.New("froidurepin: nil generator")

	// ErrNilElement is returned by queries given a nil element.
	ErrNilElement = errors.New("froidurepin: nil element")

	// ErrInvalidLimit is returned by Enumerate when the limit is negative.
	ErrInvalidLimit = errors.New("froidurepin: limit must be non-negative")

	// ErrInvalidWord is returned by Evaluate for an empty word or a letter
	// outside the generator alphabet.
	ErrInvalidWord = errors.New("froidurepin: invalid word")

	// ErrIndexOutOfRange is returned by positional queries (At, WordAt,
	// SortedAt, Generator) once no such index can exist.
	ErrIndexOutOfRange = errors.New("froidurepin: position out of range")

	// ErrNotEnumerated is returned by CurrentPosition when the element has
	// not been discovered and the enumeration is still incomplete. It is a
	// transient "don't know", not a definitive absence.
	ErrNotEnumerated = errors.New("froidurepin: element not yet enumerated")

	// ErrNotAMember is returned once the element is proven absent: either
	// the closure is complete and does not contain it, or its kind or degree
	// can never match the semigroup's.
	ErrNotAMember = errors.New("froidurepin: element is not a member")

	// ErrOptionViolation is returned by New when an invalid Option is
	// supplied.
	ErrOptionViolation = errors.New("froidurepin: invalid option supplied")
)

// Word is a sequence of letters, each an index into the generator alphabet.
// Words multiply out left to right: Word{1, 0} denotes gens[1] then gens[0].
type Word []int

// Option configures engine behavior via functional arguments.
// If an Option is invalid (e.g. a non-positive batch size), it is recorded
// internally and surfaced as ErrOptionViolation when New is invoked.
type Option func(*Options)

// Options holds tunable parameters for a Semigroup engine.
type Options struct {
	// BatchSize bounds how many new positions a forcing query (Contains,
	// Factorise) enumerates between membership probes. Larger batches probe
	// less often; smaller batches stop sooner after the element appears.
	BatchSize int

	// ReportEvery sets how many frontier expansions pass between OnProgress
	// observations during one Enumerate call.
	ReportEvery int

	// Reporter receives progress observations. Observations are purely
	// informational and never affect computed results.
	Reporter Reporter

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns an Options with sane defaults:
//   - BatchSize 8192
//   - ReportEvery 8192
//   - NoopReporter (no observations emitted)
func DefaultOptions() Options {
	return Options{
		BatchSize:   defaultBatchSize,
		ReportEvery: defaultReportEvery,
		Reporter:    NoopReporter{},
		err:         nil,
	}
}

// WithBatchSize sets how many new positions forcing queries enumerate
// between membership probes. Non-positive values are invalid.
func WithBatchSize(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: BatchSize must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.BatchSize = n
	}
}

// WithReportEvery sets how many expansions pass between OnProgress
// observations. Non-positive values are invalid.
func WithReportEvery(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: ReportEvery must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.ReportEvery = n
	}
}

// WithReporter installs a custom progress Reporter. Passing nil has no
// effect (the no-op reporter is retained).
func WithReporter(r Reporter) Option {
	return func(o *Options) {
		if r != nil {
			o.Reporter = r
		}
	}
}
