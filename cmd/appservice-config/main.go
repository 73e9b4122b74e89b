package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/appservice-config/internal/cli"
	"github.com/MKhiriev/appservice-config/internal/logger"
	"github.com/MKhiriev/appservice-config/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	root := cli.NewRootCommand(
		cli.WithBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)),
	)

	err := root.ExecuteContext(ctx)
	stop()
	if err != nil {
		log := logger.NewLogger("appservice-config", os.Stderr, false)
		log.Fatal().Err(err).Msg("command failed")
	}
}
