package ecs

import (
	"github.com/rs/zerolog"
)

func loadComponentIntoArrayLogger(reg *registration, store ComponentStore, arrayLogger *zerolog.Array) *zerolog.Array {
	dictLogger := zerolog.Dict()
	dictLogger = dictLogger.Int("component_id", int(reg.id))
	dictLogger = dictLogger.Str("component_name", reg.name)
	if sized, ok := store.(interface{ Len() int }); ok {
		dictLogger = dictLogger.Int("rows", sized.Len())
	}
	return arrayLogger.Dict(dictLogger)
}

// LogComponents writes the registered components of em, in cleanup order.
func LogComponents(logger *zerolog.Logger, em *EntityManager, level zerolog.Level) {
	arrayLogger := zerolog.Arr()
	total := 0
	em.registry.each(func(reg *registration) {
		arrayLogger = loadComponentIntoArrayLogger(reg, reg.store, arrayLogger)
		total++
	})
	logger.WithLevel(level).
		Int("total_components", total).
		Array("components", arrayLogger).
		Send()
}

// LogEntity writes one entity and the components that currently hold it.
func LogEntity(logger *zerolog.Logger, em *EntityManager, id ID, level zerolog.Level) {
	arrayLogger := zerolog.Arr()
	em.registry.each(func(reg *registration) {
		if reg.store.Contains(id) {
			arrayLogger = loadComponentIntoArrayLogger(reg, reg.store, arrayLogger)
		}
	})
	logger.WithLevel(level).
		Uint64("entity_id", uint64(id)).
		Bool("alive", em.Alive(id)).
		Array("components", arrayLogger).
		Send()
}
