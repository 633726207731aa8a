//go:build wireinject
// +build wireinject

package main

import (
	"Collabenote/config"
	"Collabenote/dao"
	"Collabenote/dao/cache"
	"Collabenote/handler"
	"Collabenote/pkg/client"
	"Collabenote/pkg/database"
	"Collabenote/pkg/oss"
	"Collabenote/pkg/server"
	"Collabenote/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		database.NewFirestore,
		config.ProvideOssConfig,
		oss.GetOssClient,
		server.NewGinEngine,

		dao.ProviderSet,
		cache.ProviderSet,
		service.ProviderSet,

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.Note), "*"),
		wire.Struct(new(handler.Cart), "*"),
		wire.Struct(new(handler.Payment), "*"),
		wire.Struct(new(handler.AccessRequest), "*"),
		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Admin), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),
	)
	return nil
}
