// Package cli provides shared logging and solve-progress instrumentation
// for the cmd/csp subcommands. It mirrors the teacher's own
// ContextMonitor (pkg/minikanren/context_utils.go) — an optional,
// structured observer attached to a solve — but reports through
// github.com/sirupsen/logrus instead of the standard library's log.Logger,
// since the CLI now has real leveled/field-based output worth producing.
//
// Nothing in pkg/csp imports this package: the core stays silent, as the
// teacher's own solver.go and domain.go are.
package cli

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Monitor observes one solve invocation from a cmd/csp subcommand:
// problem size, solutions found, and elapsed time. A nil *Monitor is
// valid and simply discards every event, so callers need not guard every
// call site behind a verbosity check.
type Monitor struct {
	log       *logrus.Entry
	startTime time.Time
	solutions int
}

// NewMonitor returns a Monitor that logs through logger, tagged with the
// given command name. If logger is nil, a default logrus logger writing
// text output to stderr is used.
func NewMonitor(logger *logrus.Logger, command string) *Monitor {
	if logger == nil {
		logger = logrus.New()
	}
	return &Monitor{
		log:       logger.WithField("command", command),
		startTime: time.Now(),
	}
}

// ProblemBuilt logs the size of a freshly-built problem.
func (m *Monitor) ProblemBuilt(variables, constraints int) {
	if m == nil {
		return
	}
	m.log.WithFields(logrus.Fields{
		"variables":   variables,
		"constraints": constraints,
	}).Debug("problem built")
}

// Reduced logs the outcome of a top-level Reduce call.
func (m *Monitor) Reduced(result string) {
	if m == nil {
		return
	}
	m.log.WithField("result", result).Debug("initial reduce")
}

// Solution logs that one more solution was produced.
func (m *Monitor) Solution() {
	if m == nil {
		return
	}
	m.solutions++
	m.log.WithField("count", m.solutions).Trace("solution found")
}

// Done logs a summary of the whole solve: total solutions and elapsed
// wall-clock time.
func (m *Monitor) Done() {
	if m == nil {
		return
	}
	m.log.WithFields(logrus.Fields{
		"solutions": m.solutions,
		"elapsed":   time.Since(m.startTime),
	}).Info("solve complete")
}
