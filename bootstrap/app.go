package bootstrap

import (
	"fmt"

	"github.com/kbukum/dikit/di"
	"github.com/kbukum/dikit/logger"
)

// Reserved container keys registered by New.
const (
	KeyConfig = "config"
	KeyLogger = "logger"
)

// App represents a wired application. The type parameter C is the config
// type, which must satisfy the Config interface; any struct embedding
// config.Settings automatically does.
type App[C Config] struct {
	Name      string
	Version   string
	Cfg       C
	Container di.Container
	Logger    *logger.Logger
}

// New creates a wired application from a typed config. It applies defaults,
// validates the config, initializes the logger, builds the container and
// registers the config and logger as cached providers before running the
// application's own provider hooks.
func New[C Config](cfg C, opts ...Option) (*App[C], error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	base := cfg.GetSettings()
	o := resolveOptions(opts)

	log := o.logger
	if log == nil {
		logger.Init(base.Logging)
		log = logger.GetGlobalLogger()
	}

	container := o.container
	if container == nil {
		container = di.NewContainer(di.WithLogger(log.WithComponent("di")))
	}

	if err := container.RegisterCached(KeyConfig, func() C { return cfg }); err != nil {
		return nil, fmt.Errorf("registering config: %w", err)
	}
	if err := container.RegisterCached(KeyLogger, func() *logger.Logger { return log }); err != nil {
		return nil, fmt.Errorf("registering logger: %w", err)
	}

	for _, provide := range o.providers {
		if err := provide(container); err != nil {
			return nil, fmt.Errorf("provider hook: %w", err)
		}
	}

	if o.setDefault {
		di.SetDefault(container)
	}

	app := &App[C]{
		Name:      base.Name,
		Version:   base.Version,
		Cfg:       cfg,
		Container: container,
		Logger:    log,
	}

	log.Info("application wired", logger.Fields(
		logger.FieldContainerID, container.ID(),
		"name", app.Name,
		"version", app.Version,
	))
	return app, nil
}
