// Package plugin holds the compile-time extension registry. Plugins register
// themselves (typically from an init function) and receive a read-only
// context bundle before copying starts; their failures are logged, never
// propagated. Post-run cleanup is an explicit AfterRun notification the host
// fires once the report is settled, so plugin ordering stays deterministic.
package plugin

import (
	"sync"

	"excopy/internal/config"
	"excopy/internal/domain"
	"excopy/internal/i18n"
	"excopy/internal/logging"
)

// Context is the read-only bundle handed to every hook.
type Context struct {
	Logger logging.Logger
	T      i18n.Func
	Config config.Config
}

type Plugin struct {
	Name string
	// Setup runs once before any copy is attempted.
	Setup func(Context) error
	// AfterRun runs once after the report has settled. Optional.
	AfterRun func(Context, domain.CopyReport)
}

var (
	mu       sync.Mutex
	registry []Plugin
)

func Register(p Plugin) {
	mu.Lock()
	defer mu.Unlock()
	registry = append(registry, p)
}

func registered() []Plugin {
	mu.Lock()
	defer mu.Unlock()
	return append([]Plugin(nil), registry...)
}

// RunSetup invokes every registered plugin's Setup in registration order.
// Errors and panics are caught and logged against the plugin's name.
func RunSetup(ctx Context) {
	for _, p := range registered() {
		runSetup(p, ctx)
	}
}

func runSetup(p Plugin, ctx Context) {
	if p.Setup == nil {
		return
	}
	logger := ctx.Logger.WithPrefix(p.Name)
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("plugin panicked: %v", r)
		}
	}()
	if err := p.Setup(ctx); err != nil {
		logger.Errorf("plugin failed: %v", err)
	}
}

// NotifyAfterRun invokes every registered plugin's AfterRun with the settled
// report, in registration order.
func NotifyAfterRun(ctx Context, report domain.CopyReport) {
	for _, p := range registered() {
		notifyAfterRun(p, ctx, report)
	}
}

func notifyAfterRun(p Plugin, ctx Context, report domain.CopyReport) {
	if p.AfterRun == nil {
		return
	}
	logger := ctx.Logger.WithPrefix(p.Name)
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("plugin panicked: %v", r)
		}
	}()
	p.AfterRun(ctx, report)
}

// reset clears the registry; tests only.
func reset() {
	mu.Lock()
	defer mu.Unlock()
	registry = nil
}
