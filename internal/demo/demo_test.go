package demo

import (
	"bytes"
	"context"
	stdErrors "errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gopatterns/errors"
	"gopatterns/logging"
	"gopatterns/patterns/factory"
	"gopatterns/patterns/state"
)

func lines(buf *bytes.Buffer) []string {
	return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Retry.InitialDelay = time.Millisecond
	cfg.Retry.MaxDelay = time.Millisecond
	return cfg
}

func TestRunCommand(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, RunCommand(&out, logging.NewNoopLogger()))

	assert.Equal(t, []string{
		"initial:    Robot{x=0 y=0 dx=0 dy=1}",
		"execute_all: Robot{x=0 y=1 dx=0 dy=1}",
		"undo:       Robot{x=0 y=0 dx=0 dy=1}",
		"undo:       Robot{x=0 y=0 dx=1 dy=0}",
	}, lines(&out))
}

func TestRunState_TwelveLines(t *testing.T) {
	var out bytes.Buffer
	err := RunState(context.Background(), &out, testConfig(), state.NewSeededSource(1), nil)
	require.NoError(t, err)

	got := lines(&out)
	require.Len(t, got, 12)
	for i, line := range got {
		switch i % 3 {
		case 0:
			assert.Equal(t, "Power on.", line)
		case 1:
			assert.Equal(t, "shaking dice.", line)
		case 2:
			assert.Regexp(t, `^Power off and output value is [1-6]\.$`, line)
		}
	}
}

func TestRunState_SameSeedSameOutput(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, RunState(context.Background(), &a, testConfig(), state.NewSeededSource(2024), nil))
	require.NoError(t, RunState(context.Background(), &b, testConfig(), state.NewSeededSource(2024), nil))
	assert.Equal(t, a.String(), b.String())
}

func TestRunState_MissingRandomSource(t *testing.T) {
	var out bytes.Buffer
	err := RunState(context.Background(), &out, testConfig(), nil, nil)

	require.Error(t, err)
	assert.True(t, errors.IsDependency(err))
	assert.Empty(t, out.String())
}

func TestRunState_RetriesFailingSource(t *testing.T) {
	calls := 0
	flaky := state.RandomSourceFunc(func(min, max int) (int, error) {
		calls++
		if calls%2 == 1 {
			return 0, stdErrors.New("transient")
		}
		return 3, nil
	})

	var out, logs bytes.Buffer
	logger := logging.NewStdLoggerTo(&logs, "", logging.DebugLevel)
	require.NoError(t, RunState(context.Background(), &out, testConfig(), flaky, logger))

	assert.Len(t, lines(&out), 12)
	assert.Equal(t, 8, calls)
	assert.Equal(t, 4, strings.Count(logs.String(), "random source failed"), "每次失败只记录一次")
	assert.Equal(t, 4, strings.Count(logs.String(), "retrying press"))
}

func TestRunState_RetryLogCarriesOutOfRangeFace(t *testing.T) {
	calls := 0
	rng := state.RandomSourceFunc(func(min, max int) (int, error) {
		calls++
		if calls == 1 {
			return 9, nil
		}
		return 1, nil
	})

	var logs bytes.Buffer
	cfg := testConfig()
	cfg.Presses = 3
	logger := logging.NewStdLoggerTo(&logs, "", logging.DebugLevel)
	require.NoError(t, RunState(context.Background(), &bytes.Buffer{}, cfg, rng, logger))

	assert.Contains(t, logs.String(), "retrying press")
	assert.Contains(t, logs.String(), "details=map[value:9]")
}

func TestRunState_GivesUpAfterMaxAttempts(t *testing.T) {
	broken := state.RandomSourceFunc(func(min, max int) (int, error) {
		return 0, stdErrors.New("no entropy")
	})

	original := logging.GetLogger()
	defer logging.SetLogger(original)
	var global bytes.Buffer
	logging.SetLogger(logging.NewStdLoggerTo(&global, "", logging.DebugLevel))

	var out bytes.Buffer
	err := RunState(context.Background(), &out, testConfig(), broken, logging.NewNoopLogger())

	require.Error(t, err)
	assert.Contains(t, global.String(), "error wrapped message=press 3 of 12")
	assert.True(t, errors.IsDependency(err))
	assert.Contains(t, err.Error(), "press 3 of 12")
	assert.Len(t, lines(&out), 2)
}

func TestRunState_InvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Presses = -1

	err := RunState(context.Background(), &bytes.Buffer{}, cfg, state.NewSeededSource(1), nil)
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
}

func TestRunFactory(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, RunFactory(&out))

	assert.Equal(t, []string{
		"FactoryB ProductX",
		"FactoryB ProductY",
		"FactoryB ProductX",
		"FactoryB ProductY",
	}, lines(&out))
}

func TestRunFactory_SelectedIDs(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, RunFactory(&out, factory.FactoryB))
	assert.Equal(t, []string{"FactoryB ProductX", "FactoryB ProductY"}, lines(&out))

	err := RunFactory(&bytes.Buffer{}, factory.FactoryID(5))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCodeInvalidInput))
}
