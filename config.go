package ecs

import (
	jlconfig "github.com/JeremyLoy/config"
	"github.com/TheBitDrifter/mask"
	"github.com/TheBitDrifter/table"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

const defaultMaxComponents = 64

// Config holds global defaults picked up by new stores and entity managers.
var Config config = config{
	logger:        zerolog.Nop(),
	maxComponents: defaultMaxComponents,
}

type config struct {
	tableEvents   table.TableEvents
	logger        zerolog.Logger
	maxComponents int
}

// SetTableEvents configures the table event callbacks used by new stores
func (c *config) SetTableEvents(te table.TableEvents) {
	c.tableEvents = te
}

// SetLogger sets the logger inherited by new entity managers and stores
func (c *config) SetLogger(logger zerolog.Logger) {
	c.logger = logger
}

// SetMaxComponents bounds how many components one EntityManager can register.
// Registration slots are query mask bits, so n is capped at mask.MaxBits.
func (c *config) SetMaxComponents(n int) {
	if n > 0 {
		c.maxComponents = clampComponents(n)
	}
}

func clampComponents(n int) int {
	return min(n, mask.MaxBits)
}

func (c *config) Logger() zerolog.Logger {
	return c.logger
}

func (c *config) MaxComponents() int {
	return c.maxComponents
}

// EnvConfig is the environment-driven subset of Config.
type EnvConfig struct {
	LogLevel      string `config:"ECS_LOG_LEVEL"`
	MaxComponents int    `config:"ECS_MAX_COMPONENTS"`
}

// LoadConfig reads EnvConfig from the environment, keeping defaults for
// unset keys.
func LoadConfig() (EnvConfig, error) {
	cfg := EnvConfig{
		LogLevel:      zerolog.InfoLevel.String(),
		MaxComponents: defaultMaxComponents,
	}
	if err := jlconfig.FromEnv().To(&cfg); err != nil {
		return cfg, eris.Wrap(err, "failed to load config from env")
	}
	return cfg, nil
}

// Apply copies the loaded values into the global Config.
func (e EnvConfig) Apply() error {
	level, err := zerolog.ParseLevel(e.LogLevel)
	if err != nil {
		return eris.Wrapf(err, "invalid log level %q", e.LogLevel)
	}
	Config.SetLogger(Config.logger.Level(level))
	Config.SetMaxComponents(e.MaxComponents)
	return nil
}
