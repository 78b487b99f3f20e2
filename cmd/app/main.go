package main

import (
	"flag"
	"log"
	"os"

	"HousePrice/internal/di"
	"HousePrice/pkg/config"
	applogger "HousePrice/pkg/logger"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "config file path")
	flag.Parse()

	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	lg, err := di.ProvideLogger(cfg)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	lg = lg.Component("form")
	lg.Info("starting",
		applogger.String("env", cfg.Environment),
		applogger.String("predictor", cfg.BaseURL()),
	)

	app, err := di.InitializeApp(cfg)
	if err != nil {
		lg.Error("initialization failed", applogger.Error(err))
		os.Exit(1)
	}
	if err := app.Run(); err != nil {
		lg.Error("form server stopped", applogger.Error(err))
		os.Exit(1)
	}
}
