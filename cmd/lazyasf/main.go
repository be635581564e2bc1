package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lazyasf/lazyasf/internal/adapters/predefinedaliases"
	"github.com/lazyasf/lazyasf/internal/config"
	"github.com/lazyasf/lazyasf/internal/core/services/aliasmanagement"
	"github.com/lazyasf/lazyasf/internal/handlers/cli"
	"github.com/lazyasf/lazyasf/internal/handlers/ui"
	"github.com/lazyasf/lazyasf/internal/repositories/shellconfig"
)

// Version is set at build time
var Version = "dev"

func main() {
	os.Exit(run())
}

// run is the only place that maps outcomes to exit codes: 0 on success,
// 1 on any returned error or panic.
func run() (code int) {
	logLevel := new(slog.LevelVar)
	logLevel.Set(slog.LevelWarn)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, ui.ErrorColor(fmt.Sprintf("Unexpected error: %v", r)))
			code = 1
		}
		logger.Debug("exiting", "code", code)
	}()

	configPath := os.Getenv("LAZYASF_CONFIG")
	if configPath == "" {
		configPath = config.Path()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		cli.PrintError(os.Stderr, err)
		return 1
	}

	validator, err := cfg.Validator()
	if err != nil {
		cli.PrintError(os.Stderr, err)
		return 1
	}

	store, err := shellconfig.NewFileAliasStore(cfg.RcPath, cfg.BackupPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing alias store: %v\n", err)
		return 1
	}

	aliasManagementSvc := aliasmanagement.NewService(store, validator, logger)
	rootCmd := cli.NewRootCommand(Version, aliasManagementSvc, cfg.Prompts, predefinedaliases.NewYAMLProvider, logLevel, logger)

	if err := rootCmd.Execute(); err != nil {
		cli.PrintError(os.Stderr, err)
		return 1
	}
	return 0
}
