package main

import (
	"fmt"

	"github.com/MKhiriev/go-tunnel-keeper/internal/adapter"
	"github.com/MKhiriev/go-tunnel-keeper/internal/client"
	"github.com/MKhiriev/go-tunnel-keeper/internal/config"
	"github.com/MKhiriev/go-tunnel-keeper/internal/logger"
	"github.com/MKhiriev/go-tunnel-keeper/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("tunnel-keeper")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	stores, err := store.NewStores(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	control := adapter.NewHTTPControlPlaneAdapter(cfg.Adapter, log)
	daemon := adapter.NewHTTPDaemonAdapter(cfg.Adapter, log)

	app, err := client.NewApp(cfg, stores, control, daemon, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
