//go:build wireinject
// +build wireinject

package main

import (
	"Umami/config"
	"Umami/dao"
	"Umami/dao/cache"
	"Umami/handler"
	"Umami/pkg/client"
	"Umami/pkg/database"
	"Umami/pkg/server"
	"Umami/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		config.ProvideOssConfig,
		server.NewGinEngine,
		cache.ProviderSet,
		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Recipe), "*"),
		wire.Struct(new(handler.Ingredient), "*"),
		wire.Struct(new(handler.Tag), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,

		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
