//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"github.com/civicteams/server/internal/infra/config"
)

// InitializeDependencies creates all dependencies using Wire.
func InitializeDependencies(cfg *config.Config) (*Dependencies, func(), error) {
	wire.Build(
		AppSet,
		wire.Struct(new(Dependencies), "*"),
	)
	return nil, nil, nil
}
