package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jman2424/tariq-hala-bot/pkg/app"

	"github.com/vmkteam/embedlog"
	"gopkg.in/yaml.v3"
)

const appName = "tariqbot"

var (
	flConfigPath = flag.String("config", "config.yaml", "path to config file")
	flLogFormat  = flag.String("log_format", "console", "log format: console or json")
	flDevel      = flag.Bool("devel", false, "enable development mode")
)

func main() {
	flag.Parse()

	sl := embedlog.NewLogger(*flLogFormat, *flDevel)
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := readConfig(*flConfigPath)
	if err != nil {
		exitOnError(ctx, sl, "failed to read config", err)
	}
	if *flDevel {
		cfg.Server.IsDevel = true
	}

	a, err := app.New(ctx, appName, sl, cfg)
	if err != nil {
		exitOnError(ctx, sl, "failed to create app", err)
	}

	go func() {
		if err := a.Run(ctx); err != nil {
			sl.Error(ctx, "http server stopped", "err", err)
			cancel()
		}
	}()

	<-ctx.Done()
	sl.Print(ctx, "shutting down", "app", appName)
	if err := a.Shutdown(5 * time.Second); err != nil {
		sl.Error(ctx, "failed to shutdown gracefully", "err", err)
	}
}

// readConfig loads the yaml config, expanding ${VAR} references so secrets
// like the Twilio token can come from the environment.
func readConfig(path string) (app.Config, error) {
	var cfg app.Config

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(raw))), &cfg); err != nil {
		return cfg, err
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}

	return cfg, nil
}

func exitOnError(ctx context.Context, sl embedlog.Logger, msg string, err error) {
	sl.Error(ctx, msg, "err", err)
	os.Exit(1)
}
