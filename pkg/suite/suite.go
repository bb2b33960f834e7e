// Package suite is a minimal sequential runner for named checks.
//
// Checks run in registration order; a failing or panicking check does not
// stop the rest. The outcome is aggregated into a Report.
package suite

import (
	"fmt"

	"go.llib.dev/frameless/pkg/errorkit"
)

// Suite collects named checks to be run together.
// The zero value is ready to use.
type Suite struct {
	checks []check
}

type check struct {
	name string
	fn   func() error
}

// Test registers a named check.
func (s *Suite) Test(name string, fn func() error) {
	s.checks = append(s.checks, check{name: name, fn: fn})
}

// Len returns the number of registered checks.
func (s *Suite) Len() int { return len(s.checks) }

// Run executes every registered check sequentially and reports the outcome.
func (s *Suite) Run() Report {
	var r Report
	for _, c := range s.checks {
		r.Total++
		if err := run(c.fn); err != nil {
			r.Failed++
			r.Failures = append(r.Failures, Failure{Name: c.name, Err: err})
		}
	}
	return r
}

func run(fn func() error) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic: %v", rec)
		}
	}()
	return fn()
}

// Report is the aggregated outcome of a Run.
type Report struct {
	Total    int
	Failed   int
	Failures []Failure
}

// Failure is one failed check of a Report.
type Failure struct {
	Name string
	Err  error
}

// OK tells whether every check passed.
func (r Report) OK() bool { return r.Failed == 0 }

// Err merges every failure into a single error value,
// or returns nil when the run passed.
func (r Report) Err() error {
	var errs []error
	for _, f := range r.Failures {
		errs = append(errs, fmt.Errorf("%s: %w", f.Name, f.Err))
	}
	return errorkit.Merge(errs...)
}
