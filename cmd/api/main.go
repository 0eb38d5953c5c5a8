package main

import (
	"immo-media/internal/app"
	"immo-media/pkg/config"
)

// @title           Immo Media API
// @version         1.0
// @description     Photo and video ingestion for property listings, with Campay mobile money payments.

// @BasePath  /

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		panic(err)
	}

	if err := application.Run(); err != nil {
		panic(err)
	}

	application.Wait()

	if err := application.Shutdown(); err != nil {
		panic(err)
	}
}
