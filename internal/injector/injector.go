//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/prefabric/prefabric/internal/core/config"
	"github.com/prefabric/prefabric/internal/core/observability/log"
	"github.com/prefabric/prefabric/internal/core/prefab"
	"github.com/prefabric/prefabric/internal/core/registry"
)

func provideLogger(cfg config.Config) log.Log {
	return log.New(log.ParseLevel(cfg.LogLevel))
}

func provideSource(cfg config.Config) prefab.Source {
	return prefab.NewDirSource(cfg.Root)
}

func ProvideLoader(cfg config.Config) *prefab.Loader {
	wire.Build(
		registry.New,
		provideLogger,
		provideSource,
		prefab.NewLoader,
	)
	return nil
}
