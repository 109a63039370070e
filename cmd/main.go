// Package main is the entry point for the translate-service application.
//
// @title           Translate Service API
// @version         1.0.0
// @description     Translation and speech synthesis backend with layered
//
//	caching and provider fallback.
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Translation
// @tag.description Text translation operations
//
// @tag.name        Speech
// @tag.description Speech synthesis operations
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"github.com/rs/zerolog/log"

	"github.com/glotta/translate-service/config"
	"github.com/glotta/translate-service/internal/app"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
