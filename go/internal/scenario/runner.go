package scenario

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// Result is the outcome of one scenario.
type Result struct {
	Priority int
	Name     string
	Err      error
	Duration time.Duration
}

func (r Result) Passed() bool {
	return r.Err == nil
}

// Report collects results in execution order.
type Report struct {
	Results []Result
}

// Failed reports whether any scenario failed.
func (r *Report) Failed() bool {
	return r.FailedCount() > 0
}

func (r *Report) FailedCount() int {
	n := 0
	for _, res := range r.Results {
		if !res.Passed() {
			n++
		}
	}
	return n
}

func (r *Report) PassedCount() int {
	return len(r.Results) - r.FailedCount()
}

// Runner executes scenarios one at a time in priority order.
type Runner struct {
	env       *Env
	scenarios []Scenario
	clock     clockwork.Clock
}

func NewRunner(env *Env, scenarios []Scenario) *Runner {
	return &Runner{
		env:       env,
		scenarios: Sorted(scenarios),
		clock:     clockwork.NewRealClock(),
	}
}

// SetClock swaps the clock used to time scenarios.
func (r *Runner) SetClock(clock clockwork.Clock) {
	r.clock = clock
}

// Run executes every scenario and never stops early on failure. Once ctx is
// done the remaining scenarios are recorded with the context error.
func (r *Runner) Run(ctx context.Context) *Report {
	report := &Report{Results: make([]Result, 0, len(r.scenarios))}

	for _, s := range r.scenarios {
		if err := ctx.Err(); err != nil {
			report.Results = append(report.Results, Result{Priority: s.Priority, Name: s.Name, Err: err})
			continue
		}

		start := r.clock.Now()
		err := r.runOne(ctx, s)
		res := Result{
			Priority: s.Priority,
			Name:     s.Name,
			Err:      err,
			Duration: r.clock.Now().Sub(start),
		}
		report.Results = append(report.Results, res)

		if err != nil {
			log.Error().
				Err(err).
				Int("priority", s.Priority).
				Str("scenario", s.Name).
				Int64("duration_ms", res.Duration.Milliseconds()).
				Msg("scenario failed")
		} else {
			log.Info().
				Int("priority", s.Priority).
				Str("scenario", s.Name).
				Int64("duration_ms", res.Duration.Milliseconds()).
				Msg("scenario passed")
		}
	}

	log.Info().
		Int("passed", report.PassedCount()).
		Int("failed", report.FailedCount()).
		Msg("scenario run complete")

	return report
}

// runOne turns a panicking scenario into a failure of that scenario alone.
func (r *Runner) runOne(ctx context.Context, s Scenario) (err error) {
	defer func() {
		if p := recover(); p != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			log.Error().
				Str("scenario", s.Name).
				Interface("panic", p).
				Str("stack_trace", string(buf[:n])).
				Msg("scenario panicked")
			err = fmt.Errorf("scenario panicked: %v", p)
		}
	}()

	return s.Run(ctx, r.env)
}
