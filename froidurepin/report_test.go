package froidurepin_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/semigroup/froidurepin"
)

// countingReporter tallies observations and remembers the last snapshot.
type countingReporter struct {
	starts, progresses, finishes int
	last                         froidurepin.Progress
}

func (c *countingReporter) OnStart(p froidurepin.Progress)    { c.starts++; c.last = p }
func (c *countingReporter) OnProgress(p froidurepin.Progress) { c.progresses++; c.last = p }
func (c *countingReporter) OnFinish(p froidurepin.Progress)   { c.finishes++; c.last = p }

func TestReporter_Observations(t *testing.T) {
	ctx := context.Background()
	rep := &countingReporter{}
	s, err := froidurepin.New(twoPointMonoid(t),
		froidurepin.WithReporter(rep),
		froidurepin.WithReportEvery(1),
	)
	assert.NoError(t, err)

	assert.NoError(t, s.Enumerate(ctx, froidurepin.NoLimit))
	assert.Equal(t, 1, rep.starts)
	assert.Equal(t, 4, rep.progresses, "one observation per expanded position")
	assert.Equal(t, 1, rep.finishes)
	assert.Equal(t, 4, rep.last.Size)
	assert.Equal(t, 4, rep.last.Expanded)
	assert.Equal(t, 2, rep.last.MaxWordLength)
	assert.Equal(t, froidurepin.NoLimit, rep.last.Limit)
	assert.True(t, rep.last.Done)

	// A pass with nothing to do emits no observations.
	assert.NoError(t, s.Enumerate(ctx, froidurepin.NoLimit))
	assert.Equal(t, 1, rep.starts)
	assert.Equal(t, 1, rep.finishes)
}

func TestReporter_CancelledPassHasNoFinish(t *testing.T) {
	rep := &countingReporter{}
	s, err := froidurepin.New(threePointGens(t), froidurepin.WithReporter(rep))
	assert.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = s.Enumerate(ctx, froidurepin.NoLimit)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 1, rep.starts, "the pass did begin")
	assert.Equal(t, 0, rep.finishes, "a cancelled pass must not report a finish")
}

func TestSetReport_Toggle(t *testing.T) {
	// Silence the standard logger while SetReport(true) is active.
	std := logrus.StandardLogger()
	oldOut := std.Out
	std.SetOutput(io.Discard)
	defer std.SetOutput(oldOut)

	ctx := context.Background()
	rep := &countingReporter{}
	s, err := froidurepin.New(threePointGens(t), froidurepin.WithReporter(rep))
	assert.NoError(t, err)

	// Turning reporting off replaces the custom reporter.
	s.SetReport(false)
	assert.NoError(t, s.Enumerate(ctx, 5))
	assert.Equal(t, 0, rep.starts, "silenced reporter must see nothing")

	// Turning it on logs via logrus without disturbing results.
	s.SetReport(true)
	size, err := s.Size(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 27, size)
}

func TestLogReporter_Fields(t *testing.T) {
	logger, hook := test.NewNullLogger()
	rep := froidurepin.NewLogReporter(logger)

	p := froidurepin.Progress{
		Size:          1234,
		Expanded:      1000,
		MaxWordLength: 7,
		Limit:         froidurepin.NoLimit,
		Done:          false,
	}
	rep.OnStart(p)
	rep.OnProgress(p)
	p.Done = true
	rep.OnFinish(p)

	entries := hook.AllEntries()
	assert.Len(t, entries, 3)
	assert.Equal(t, "enumeration started", entries[0].Message)
	assert.Equal(t, "enumerating", entries[1].Message)
	assert.Equal(t, "enumeration finished", entries[2].Message)

	// Counts are humanized and the unbounded limit is spelled out.
	assert.Equal(t, "1,234", entries[0].Data["size"])
	assert.Equal(t, "unbounded", entries[0].Data["limit"])
	assert.Equal(t, true, entries[2].Data["done"])
}

func TestLogReporter_EndToEnd(t *testing.T) {
	logger, hook := test.NewNullLogger()
	ctx := context.Background()
	s, err := froidurepin.New(twoPointMonoid(t),
		froidurepin.WithReporter(froidurepin.NewLogReporter(logger)),
	)
	assert.NoError(t, err)

	size, err := s.Size(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 4, size)

	last := hook.LastEntry()
	assert.NotNil(t, last)
	assert.Equal(t, "enumeration finished", last.Message)
	assert.Equal(t, "4", last.Data["size"])
	assert.Equal(t, true, last.Data["done"])
}
