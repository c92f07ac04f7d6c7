package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/mmerino90/wellness-tracker/internal/cli"
	"github.com/mmerino90/wellness-tracker/internal/config"
	"github.com/mmerino90/wellness-tracker/internal/logger"
	"github.com/mmerino90/wellness-tracker/internal/service"
	"github.com/mmerino90/wellness-tracker/internal/store"
	"github.com/mmerino90/wellness-tracker/internal/utils"
	"github.com/mmerino90/wellness-tracker/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	var grammar cli.CLI
	kctx := kong.Parse(&grammar,
		kong.Name("wellness"),
		kong.Description("Personal wellness tracker: habits, mood and challenges."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": buildInfo.String()},
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.GetStructuredConfig(grammar.ConfigOverrides())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	baseLog, err := logger.NewLogger("wellness", logger.Options{
		Level: cfg.Log.Level,
		File:  cfg.Log.File,
		Debug: cfg.Log.Debug,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer baseLog.Close()

	sessionID := utils.NewUUIDGenerator().Generate()
	log := baseLog.WithSession(sessionID)
	ctx = utils.WithSessionID(log.WithContext(ctx), sessionID)

	log.Debug().Str("command", kctx.Command()).Msg("starting")

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating storages")
		fmt.Fprintf(os.Stderr, "Error: %s\n", cli.Message(err))
		return 1
	}
	defer storages.Close()

	services, err := service.NewServices(storages, cfg.App, buildInfo, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating services")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	err = kctx.Run(&cli.Context{
		Ctx:      ctx,
		Services: services,
		Out:      os.Stdout,
		Username: grammar.Username,
		Password: grammar.Password,
	})
	if err != nil {
		log.Error().Err(err).Str("command", kctx.Command()).Msg("command failed")
		fmt.Fprintf(os.Stderr, "Error: %s\n", cli.Message(err))
		return 1
	}
	return 0
}
