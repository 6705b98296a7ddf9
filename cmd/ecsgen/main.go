// Command ecsgen generates per-field component managers for structs marked
// //ecs:component.
//
//	//go:generate go run github.com/TheBitDrifter/ecs/cmd/ecsgen components.go
package main

import (
	"os"

	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if err := newRootCmd(logger).Execute(); err != nil {
		os.Exit(1)
	}
}
