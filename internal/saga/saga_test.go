package saga

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func step(name string, runErr error, trace *[]string) Step {
	return Step{
		Name: name,
		Run: func(ctx context.Context) error {
			*trace = append(*trace, "run:"+name)
			return runErr
		},
		Compensate: func(ctx context.Context) error {
			*trace = append(*trace, "comp:"+name)
			return nil
		},
	}
}

func TestRunner_RunsStepsInOrder(t *testing.T) {
	var trace []string
	r := New(zap.NewNop())

	err := r.Execute(context.Background(), "test", []Step{
		step("first", nil, &trace),
		step("second", nil, &trace),
		step("third", nil, &trace),
	})

	assert.NoError(t, err)
	assert.Equal(t, []string{"run:first", "run:second", "run:third"}, trace)
}

func TestRunner_CompensatesCompletedStepsInReverse(t *testing.T) {
	var trace []string
	boom := errors.New("third step failed")
	r := New(zap.NewNop())

	err := r.Execute(context.Background(), "test", []Step{
		step("first", nil, &trace),
		step("second", nil, &trace),
		step("third", boom, &trace),
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{
		"run:first", "run:second", "run:third",
		"comp:second", "comp:first",
	}, trace)
}

func TestRunner_FailedStepIsNotCompensated(t *testing.T) {
	var trace []string
	boom := errors.New("first step failed")
	r := New(zap.NewNop())

	err := r.Execute(context.Background(), "test", []Step{
		step("first", boom, &trace),
		step("second", nil, &trace),
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"run:first"}, trace)
}

func TestRunner_SkipsNilCompensate(t *testing.T) {
	var trace []string
	boom := errors.New("second step failed")
	r := New(zap.NewNop())

	irreversible := Step{
		Name: "irreversible",
		Run: func(ctx context.Context) error {
			trace = append(trace, "run:irreversible")
			return nil
		},
	}

	err := r.Execute(context.Background(), "test", []Step{
		irreversible,
		step("second", boom, &trace),
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"run:irreversible", "run:second"}, trace)
}

func TestRunner_CompensationErrorDoesNotReplacePrimary(t *testing.T) {
	primary := errors.New("primary failure")
	r := New(zap.NewNop())

	compensated := false
	steps := []Step{
		{
			Name: "first",
			Run:  func(ctx context.Context) error { return nil },
			Compensate: func(ctx context.Context) error {
				compensated = true
				return errors.New("compensation also failed")
			},
		},
		{
			Name: "second",
			Run:  func(ctx context.Context) error { return primary },
		},
	}

	err := r.Execute(context.Background(), "test", steps)

	assert.ErrorIs(t, err, primary)
	assert.True(t, compensated)
}
