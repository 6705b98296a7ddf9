package ecs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/TheBitDrifter/mask"
	"github.com/rs/zerolog"
	"gotest.tools/v3/assert"
)

func TestLoadConfig(t *testing.T) {
	saved := Config
	t.Cleanup(func() { Config = saved })

	t.Run("Defaults", func(t *testing.T) {
		cfg, err := LoadConfig()
		assert.NilError(t, err)
		assert.Equal(t, cfg.LogLevel, "info")
		assert.Equal(t, cfg.MaxComponents, defaultMaxComponents)
	})

	t.Run("From env", func(t *testing.T) {
		t.Setenv("ECS_LOG_LEVEL", "debug")
		t.Setenv("ECS_MAX_COMPONENTS", "8")

		cfg, err := LoadConfig()
		assert.NilError(t, err)
		assert.Equal(t, cfg.LogLevel, "debug")
		assert.Equal(t, cfg.MaxComponents, 8)

		assert.NilError(t, cfg.Apply())
		assert.Equal(t, Config.MaxComponents(), 8)
		assert.Equal(t, Config.Logger().GetLevel(), zerolog.DebugLevel)

		em := Factory.NewEntityManager()
		assert.Equal(t, em.registry.slots.(*SimpleCache[registration]).maxCapacity, 8)
	})

	t.Run("Bad level", func(t *testing.T) {
		err := EnvConfig{LogLevel: "loud", MaxComponents: 4}.Apply()
		assert.ErrorContains(t, err, "invalid log level")
	})
}

func TestMaxComponentsCapped(t *testing.T) {
	saved := Config
	t.Cleanup(func() { Config = saved })

	Config.SetMaxComponents(mask.MaxBits + 10)
	assert.Equal(t, Config.MaxComponents(), mask.MaxBits)

	Config.SetMaxComponents(0)
	assert.Equal(t, Config.MaxComponents(), mask.MaxBits)

	em := Factory.NewEntityManager(WithMaxComponents(mask.MaxBits * 2))
	assert.Equal(t, em.registry.slots.(*SimpleCache[registration]).maxCapacity, mask.MaxBits)

	var journal []string
	for i := 0; i < mask.MaxBits; i++ {
		_, err := em.RegisterComponent(newRecordingStore(fmt.Sprintf("c%d", i), &journal))
		assert.NilError(t, err)
	}
	_, err := em.RegisterComponent(newRecordingStore("overflow", &journal))
	var full RegistryFullError
	assert.Assert(t, errors.As(err, &full))
	assert.Equal(t, full.Capacity, mask.MaxBits)
}
