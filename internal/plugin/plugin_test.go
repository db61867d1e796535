package plugin

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"excopy/internal/domain"
)

func TestRunSetupInvokesPluginsInRegistrationOrder(t *testing.T) {
	reset()
	t.Cleanup(reset)

	var order []string
	Register(Plugin{Name: "first", Setup: func(Context) error {
		order = append(order, "first")
		return nil
	}})
	Register(Plugin{Name: "second", Setup: func(Context) error {
		order = append(order, "second")
		return nil
	}})

	RunSetup(Context{})
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestSetupErrorDoesNotStopOtherPlugins(t *testing.T) {
	reset()
	t.Cleanup(reset)

	ran := false
	Register(Plugin{Name: "broken", Setup: func(Context) error {
		return errors.New("boom")
	}})
	Register(Plugin{Name: "ok", Setup: func(Context) error {
		ran = true
		return nil
	}})

	RunSetup(Context{})
	assert.True(t, ran)
}

func TestSetupPanicIsContained(t *testing.T) {
	reset()
	t.Cleanup(reset)

	Register(Plugin{Name: "panicky", Setup: func(Context) error {
		panic("boom")
	}})

	assert.NotPanics(t, func() { RunSetup(Context{}) })
}

func TestNotifyAfterRunReceivesSettledReport(t *testing.T) {
	reset()
	t.Cleanup(reset)

	var got domain.CopyReport
	Register(Plugin{Name: "observer", AfterRun: func(_ Context, report domain.CopyReport) {
		got = report
	}})

	report := domain.CopyReport{TotalFiles: 3, Succeeded: 2, Failed: []domain.Failure{{SourcePath: "/a", Message: "x"}}}
	NotifyAfterRun(Context{}, report)
	assert.Equal(t, report, got)
}

func TestAfterRunPanicIsContained(t *testing.T) {
	reset()
	t.Cleanup(reset)

	Register(Plugin{Name: "panicky", AfterRun: func(Context, domain.CopyReport) {
		panic("boom")
	}})

	assert.NotPanics(t, func() { NotifyAfterRun(Context{}, domain.CopyReport{}) })
}
