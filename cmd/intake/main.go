package main

import (
	"fmt"

	"github.com/MKhiriev/go-intake-form/internal/adapter"
	"github.com/MKhiriev/go-intake-form/internal/client"
	"github.com/MKhiriev/go-intake-form/internal/config"
	"github.com/MKhiriev/go-intake-form/internal/logger"
	"github.com/MKhiriev/go-intake-form/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("go-intake-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	submitter, err := adapter.NewHTTPSubmitter(cfg.Submission, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create submission adapter")
	}

	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	app, err := client.NewApp(submitter, info, log)
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
