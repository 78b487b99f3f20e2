package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"HousePrice/internal/di"
	"HousePrice/internal/domain/models"
	"HousePrice/internal/tui"
	"HousePrice/pkg/config"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "config file path")
	var in models.FormInput
	flag.StringVar(&in.Bedrooms, "bedrooms", "", "number of bedrooms")
	flag.StringVar(&in.Bathrooms, "bathrooms", "", "number of bathrooms")
	flag.StringVar(&in.SqftLiving, "sqft_living", "", "living area in square feet")
	flag.StringVar(&in.Floors, "floors", "", "number of floors")
	flag.StringVar(&in.Age, "age", "", "age of the house in years")
	flag.Parse()

	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	// Prompts own stdout.
	cfg.Log.Output = "stderr"
	if os.Getenv("LOG_LEVEL") == "" {
		cfg.Log.Level = "warn"
	}

	est, err := di.InitializeEstimator(cfg)
	if err != nil {
		log.Fatalf("estimator initialization failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s := tui.NewSession(est, tui.NewSurveyDriver(), os.Stdout)
	if in != (models.FormInput{}) {
		if err := s.Once(ctx, in); err != nil {
			os.Exit(1)
		}
		return
	}
	if err := s.Run(ctx); err != nil && !errors.Is(err, tui.ErrAborted) {
		log.Printf("estimate error: %v", err)
		os.Exit(1)
	}
}
