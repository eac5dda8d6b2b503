package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/johnwards/sampledata/internal/config"
)

var CLI struct {
	Verbose bool   `short:"v" help:"Enable verbose logging"`
	EnvFile string `name:"env-file" help:"Load environment variables from this file" default:".env" type:"path"`

	Serve struct {
		Addr string `help:"Listen address, overrides SAMPLEDATA_ADDR"`
	} `cmd:"" default:"1" help:"Serve the sample data HTTP API and runner UI"`

	Apply struct {
		Type string `short:"t" help:"Sample data type to install" default:"bigdata"`
		From int    `help:"First step to apply" default:"1"`
		To   int    `help:"Last step to apply (0 runs every step)" default:"0"`
	} `cmd:"" help:"Apply sample data steps in-process"`

	Overview struct{} `cmd:"" help:"List the available sample data types"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("sampledata"),
		kong.Description("Stepwise demo-content generator for a CMS content model."),
	)

	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	if err := config.LoadDotEnv(CLI.EnvFile); err != nil {
		slog.Error("Failed to load env file", "error", err)
		os.Exit(1)
	}
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	switch ctx.Command() {
	case "serve":
		if CLI.Serve.Addr != "" {
			cfg.Addr = CLI.Serve.Addr
		}
		err = runServe(cfg)
	case "apply":
		err = runApply(cfg, CLI.Apply.Type, CLI.Apply.From, CLI.Apply.To)
	case "overview":
		err = runOverview(cfg, os.Stdout)
	}
	if err != nil {
		slog.Error("fatal error", "command", ctx.Command(), "error", err)
		os.Exit(1)
	}
}
