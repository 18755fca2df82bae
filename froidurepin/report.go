package froidurepin

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
)

// Progress is an immutable snapshot of one running Enumerate call, handed to
// Reporter observations.
type Progress struct {
	// Size is the number of elements discovered so far.
	Size int

	// Expanded is the number of positions fully expanded so far.
	Expanded int

	// MaxWordLength is the longest minimal word among discovered positions.
	MaxWordLength int

	// Limit is the bound of the running Enumerate call (NoLimit when
	// unbounded).
	Limit int

	// Elapsed is the time since the running Enumerate call began.
	Elapsed time.Duration

	// Done reports whether closure has been reached.
	Done bool
}

// Reporter receives progress observations from Enumerate. Observations are
// purely informational: they never affect computed results, and a Reporter
// must not call back into the engine.
//
// Implementations should be fast; a slow reporter delays enumeration.
type Reporter interface {
	// OnStart is called once when an Enumerate call begins an actual pass
	// (calls that have nothing to do emit no observations).
	OnStart(p Progress)

	// OnProgress is called periodically during a pass, every ReportEvery
	// frontier expansions.
	OnProgress(p Progress)

	// OnFinish is called when a pass returns normally, whether it reached
	// its bound or closure. A cancelled pass emits no finish observation.
	OnFinish(p Progress)
}

// NoopReporter is a Reporter that does nothing. It is the default when no
// reporter is configured.
type NoopReporter struct{}

func (NoopReporter) OnStart(Progress)    {}
func (NoopReporter) OnProgress(Progress) {}
func (NoopReporter) OnFinish(Progress)   {}

// LogReporter writes structured progress logs using logrus.
type LogReporter struct {
	Logger *logrus.Logger
}

// NewLogReporter creates a Reporter that logs enumeration lifecycle events
// with the provided logger. If logger is nil, the logrus standard logger is
// used.
func NewLogReporter(logger *logrus.Logger) *LogReporter {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &LogReporter{Logger: logger}
}

func (r *LogReporter) OnStart(p Progress) {
	r.Logger.WithFields(r.fields(p)).Info("enumeration started")
}

func (r *LogReporter) OnProgress(p Progress) {
	r.Logger.WithFields(r.fields(p)).Info("enumerating")
}

func (r *LogReporter) OnFinish(p Progress) {
	r.Logger.WithFields(r.fields(p)).Info("enumeration finished")
}

func (r *LogReporter) fields(p Progress) logrus.Fields {
	limit := "unbounded"
	if p.Limit != NoLimit {
		limit = humanize.Comma(int64(p.Limit))
	}

	return logrus.Fields{
		"size":            humanize.Comma(int64(p.Size)),
		"expanded":        humanize.Comma(int64(p.Expanded)),
		"max_word_length": p.MaxWordLength,
		"limit":           limit,
		"elapsed":         p.Elapsed.Round(time.Millisecond).String(),
		"done":            p.Done,
	}
}

// SetReport toggles progress reporting on the standard logrus logger. It is
// a convenience wrapper: SetReport(true) installs NewLogReporter(nil),
// SetReport(false) restores the no-op reporter. WithReporter at construction
// gives full control instead.
func (s *Semigroup) SetReport(on bool) {
	if on {
		s.reporter = NewLogReporter(nil)
		return
	}
	s.reporter = NoopReporter{}
}
