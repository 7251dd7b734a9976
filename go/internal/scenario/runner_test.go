package scenario

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/randomuser/go/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stub(priority int, name string, run func(context.Context, *Env) error) Scenario {
	return Scenario{Priority: priority, Name: name, Run: run}
}

func pass(context.Context, *Env) error { return nil }

func names(results []Result) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Name
	}
	return out
}

func TestRunner_RunsInPriorityOrder(t *testing.T) {
	var order []string
	record := func(name string) func(context.Context, *Env) error {
		return func(context.Context, *Env) error {
			order = append(order, name)
			return nil
		}
	}

	runner := NewRunner(&Env{}, []Scenario{
		stub(3, "c", record("c")),
		stub(1, "a", record("a")),
		stub(2, "b", record("b")),
		stub(2, "aa", record("aa")),
	})
	report := runner.Run(context.Background())

	assert.Equal(t, []string{"a", "aa", "b", "c"}, order)
	assert.Equal(t, order, names(report.Results))
	assert.False(t, report.Failed())
	assert.Equal(t, 4, report.PassedCount())
}

func TestRunner_FailureIsLocal(t *testing.T) {
	boom := &validation.AssertionError{Field: "gender", Message: "unexpected gender"}

	runner := NewRunner(&Env{}, []Scenario{
		stub(1, "first", pass),
		stub(2, "broken", func(context.Context, *Env) error { return boom }),
		stub(3, "last", pass),
	})
	report := runner.Run(context.Background())

	require.Len(t, report.Results, 3)
	assert.True(t, report.Failed())
	assert.Equal(t, 1, report.FailedCount())
	assert.Equal(t, 2, report.PassedCount())

	assert.True(t, report.Results[0].Passed())
	assert.ErrorIs(t, report.Results[1].Err, validation.ErrAssertion)
	assert.True(t, report.Results[2].Passed())
}

func TestRunner_RecoversPanics(t *testing.T) {
	runner := NewRunner(&Env{}, []Scenario{
		stub(1, "panics", func(context.Context, *Env) error {
			var users []int
			_ = users[3]
			return nil
		}),
		stub(2, "after", pass),
	})
	report := runner.Run(context.Background())

	require.Len(t, report.Results, 2)
	require.Error(t, report.Results[0].Err)
	assert.Contains(t, report.Results[0].Err.Error(), "scenario panicked")
	assert.True(t, report.Results[1].Passed())
}

func TestRunner_CancelledContextMarksRemaining(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ran := 0
	runner := NewRunner(&Env{}, []Scenario{
		stub(1, "cancels", func(context.Context, *Env) error {
			ran++
			cancel()
			return nil
		}),
		stub(2, "skipped", func(context.Context, *Env) error {
			ran++
			return nil
		}),
	})
	report := runner.Run(ctx)

	assert.Equal(t, 1, ran)
	require.Len(t, report.Results, 2)
	assert.True(t, report.Results[0].Passed())
	assert.ErrorIs(t, report.Results[1].Err, context.Canceled)
}

func TestRunner_TimesWithClock(t *testing.T) {
	clock := clockwork.NewFakeClock()

	runner := NewRunner(&Env{}, []Scenario{
		stub(1, "slow", func(context.Context, *Env) error {
			clock.Advance(1500 * time.Millisecond)
			return nil
		}),
		stub(2, "fast", pass),
	})
	runner.SetClock(clock)
	report := runner.Run(context.Background())

	assert.Equal(t, 1500*time.Millisecond, report.Results[0].Duration)
	assert.Zero(t, report.Results[1].Duration)
}

func TestRunner_EmptyCatalog(t *testing.T) {
	report := NewRunner(&Env{}, nil).Run(context.Background())
	assert.Empty(t, report.Results)
	assert.False(t, report.Failed())
}

func TestSorted_DoesNotMutateInput(t *testing.T) {
	in := []Scenario{stub(2, "b", pass), stub(1, "a", pass)}
	out := Sorted(in)

	assert.Equal(t, "b", in[0].Name)
	assert.Equal(t, "a", out[0].Name)
}

func TestFilter(t *testing.T) {
	all := Catalog()

	tests := []struct {
		pattern string
		want    []string
	}{
		{"", nil},
		{"^gender_filter$", []string{"gender_filter"}},
		{"gender", []string{"gender_filter", "mixed_gender"}},
		{"nothing_matches", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got, err := Filter(all, tt.pattern)
			require.NoError(t, err)
			if tt.want == nil {
				assert.Len(t, got, len(all))
				return
			}
			assert.ElementsMatch(t, tt.want, scenarioNames(got))
		})
	}
}

func TestFilter_InvalidPattern(t *testing.T) {
	_, err := Filter(Catalog(), "(")
	assert.Error(t, err)
}

func scenarioNames(scenarios []Scenario) []string {
	out := make([]string, len(scenarios))
	for i, s := range scenarios {
		out[i] = s.Name
	}
	return out
}

func TestErrorsFromScenariosKeepTheirType(t *testing.T) {
	transport := errors.New("dial tcp: connection refused")
	report := NewRunner(&Env{}, []Scenario{
		stub(1, "x", func(context.Context, *Env) error { return transport }),
	}).Run(context.Background())

	assert.ErrorIs(t, report.Results[0].Err, transport)
}
