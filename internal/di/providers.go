package di

import (
	"context"
	"fmt"
	"time"

	domsvc "HousePrice/internal/domain/service"
	"HousePrice/internal/form"
	"HousePrice/internal/handler/api"
	"HousePrice/internal/handler/web"
	"HousePrice/internal/repository"
	"HousePrice/internal/service/ratelimit"
	"HousePrice/internal/services/predictor"
	"HousePrice/internal/services/pricing"
	"HousePrice/internal/usecase"
	"HousePrice/pkg/config"
	applogger "HousePrice/pkg/logger"
	"HousePrice/pkg/metrics"
	"HousePrice/pkg/server"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() domsvc.Metrics {
	return metrics.New()
}

// ProvideValidator creates the attribute validator.
func ProvideValidator() *form.Validator {
	return form.NewValidator()
}

// ProvideRemotePredictor creates the prediction service client.
func ProvideRemotePredictor(cfg *config.Config) domsvc.RemotePredictor {
	return predictor.NewHTTPClient(cfg.BaseURL(), cfg.Client.Timeout)
}

// ProvideFallbackModel returns the formula used while the service is down.
func ProvideFallbackModel() domsvc.PriceModel {
	return pricing.Fallback()
}

// ProvideEstimator creates the form workflow.
func ProvideEstimator(
	remote domsvc.RemotePredictor,
	fallback domsvc.PriceModel,
	validator *form.Validator,
	m domsvc.Metrics,
	l *applogger.Logger,
) *usecase.Estimator {
	return usecase.NewEstimator(remote, fallback, validator, m, l)
}

// ProvideFormHandler creates the form page handler.
func ProvideFormHandler(l *applogger.Logger, est *usecase.Estimator) (*web.FormEchoHandler, error) {
	r, err := web.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("templates: %w", err)
	}
	return web.NewFormEchoHandler(l, est, r), nil
}

// ProvideApp creates the form UI server. The estimator checks the
// prediction service once, before the first request is served.
func ProvideApp(
	cfg *config.Config,
	l *applogger.Logger,
	est *usecase.Estimator,
	h *web.FormEchoHandler,
) *server.App {
	app := server.New(cfg, l, h)
	app.OnMount(est)
	return app
}

// ProvideModelStore loads the model artifact.
func ProvideModelStore(cfg *config.Config, l *applogger.Logger) (*repository.ModelStore, error) {
	store := repository.NewModelStore(cfg.Predictor.ModelPath, cfg.Predictor.Floor, l)
	if err := store.Load(); err != nil {
		return nil, fmt.Errorf("model store: %w", err)
	}
	return store, nil
}

// ProvideModelProvider exposes the store to the prediction usecase.
func ProvideModelProvider(store *repository.ModelStore) usecase.ModelProvider {
	return store
}

// ProvidePredictionService creates the prediction API usecase.
func ProvidePredictionService(
	provider usecase.ModelProvider,
	validator *form.Validator,
	m domsvc.Metrics,
	l *applogger.Logger,
) *usecase.PredictionService {
	return usecase.NewPredictionService(provider, validator, m, l)
}

// ProvideRedisClient connects to Redis when the redis rate limit backend is
// selected, and returns nil otherwise.
func ProvideRedisClient(cfg *config.Config) (*redis.Client, error) {
	if !cfg.RateLimit.Enabled || cfg.RateLimit.Backend != "redis" {
		return nil, nil
	}
	rc := cfg.RateLimit.Redis
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	client, err := ratelimit.NewRedisClient(ctx, rc.Addr, rc.Password, rc.DB)
	if err != nil {
		return nil, fmt.Errorf("rate limit redis: %w", err)
	}
	return client, nil
}

// ProvideLimiter returns the configured limiter, or nil when disabled.
func ProvideLimiter(cfg *config.Config, client *redis.Client) ratelimit.Limiter {
	rl := cfg.RateLimit
	if !rl.Enabled {
		return nil
	}
	if client != nil {
		return ratelimit.NewRedisWindow(client, rl.Redis.Prefix, int64(rl.Capacity), rl.Window)
	}
	return ratelimit.NewTokenBucket(rl.Capacity, rl.RefillPerSec)
}

// ProvidePredictHandler creates the prediction API handler.
func ProvidePredictHandler(
	l *applogger.Logger,
	svc *usecase.PredictionService,
	limiter ratelimit.Limiter,
) *api.PredictEchoHandler {
	var mw []echo.MiddlewareFunc
	if limiter != nil {
		mw = append(mw, ratelimit.Middleware(limiter, l))
	}
	return api.NewPredictEchoHandler(l, svc, mw...)
}

// ProvidePredictorApp creates the prediction service server.
func ProvidePredictorApp(
	cfg *config.Config,
	l *applogger.Logger,
	store *repository.ModelStore,
	client *redis.Client,
	h *api.PredictEchoHandler,
) *server.App {
	app := server.New(cfg, l, h)
	if cfg.Predictor.Watch {
		app.Go(store.Watch)
	}
	if client != nil {
		app.OnClose(client)
	}
	return app
}
