package bootstrap

import (
	"fmt"
	"testing"

	"github.com/kbukum/dikit/config"
	"github.com/kbukum/dikit/di"
	"github.com/kbukum/dikit/logger"
)

// testConfig is a minimal config for testing that satisfies the Config interface.
type testConfig struct {
	config.Settings
}

func validConfig() *testConfig {
	cfg := &testConfig{}
	cfg.Name = "test-app"
	cfg.Version = "0.1.0"
	return cfg
}

func TestNewWiresConfigAndLogger(t *testing.T) {
	app, err := New(validConfig(), WithLogger(logger.NewDefault("test-app")))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if app.Name != "test-app" || app.Version != "0.1.0" {
		t.Errorf("unexpected app identity: %s/%s", app.Name, app.Version)
	}

	cfg := di.MustResolve[*testConfig](app.Container, KeyConfig)
	if cfg != app.Cfg {
		t.Error("expected the exact config instance from the container")
	}

	log := di.MustResolve[*logger.Logger](app.Container, KeyLogger)
	if log != app.Logger {
		t.Error("expected the exact logger instance from the container")
	}
}

func TestNewValidatesConfig(t *testing.T) {
	cfg := &testConfig{} // missing name
	_, err := New(cfg)
	if err == nil {
		t.Fatal("expected error for invalid config")
	}
}

func TestNewRunsProviderHooks(t *testing.T) {
	type repo struct{ ready bool }

	app, err := New(validConfig(),
		WithLogger(logger.NewDefault("test-app")),
		WithProviders(func(c di.Container) error {
			return c.RegisterCached("repo", func() *repo { return &repo{ready: true} })
		}),
	)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	r, err := di.ResolveAs[*repo](app.Container)
	if err != nil {
		t.Fatalf("ResolveAs failed: %v", err)
	}
	if !r.ready {
		t.Error("expected the hook-registered binding")
	}
}

func TestNewProviderHookFailure(t *testing.T) {
	_, err := New(validConfig(),
		WithLogger(logger.NewDefault("test-app")),
		WithProviders(func(c di.Container) error {
			return fmt.Errorf("wiring broke")
		}),
	)
	if err == nil {
		t.Fatal("expected error from a failing provider hook")
	}
}

func TestNewWithSetDefault(t *testing.T) {
	di.SetDefault(nil)
	t.Cleanup(func() { di.SetDefault(nil) })

	app, err := New(validConfig(),
		WithLogger(logger.NewDefault("test-app")),
		WithSetDefault(),
	)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	got, err := di.Default()
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}
	if got != app.Container {
		t.Error("expected the app's container as the process default")
	}
}

func TestNewWithCustomContainer(t *testing.T) {
	custom := di.NewContainer()
	app, err := New(validConfig(),
		WithLogger(logger.NewDefault("test-app")),
		WithContainer(custom),
	)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if app.Container != custom {
		t.Error("expected the provided container to be used")
	}
}
