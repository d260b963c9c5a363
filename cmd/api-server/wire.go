//go:build wireinject
// +build wireinject

package main

import (
	"Plume/config"
	"Plume/dao"
	"Plume/dao/cache"
	"Plume/handler"
	"Plume/pkg/client"
	"Plume/pkg/database"
	"Plume/pkg/server"
	"Plume/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		server.NewGinEngine,
		cache.ProviderSet,
		wire.Struct(new(handler.Article), "*"),
		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Admin), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,

		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
