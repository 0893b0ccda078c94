package di

import (
	"fmt"

	"TradeGate/internal/domain/models"
	"TradeGate/internal/domain/repository"
	"TradeGate/internal/handler/api"
	internalrepo "TradeGate/internal/repository"
	"TradeGate/internal/service/calendar"
	"TradeGate/internal/usecase"
	"TradeGate/pkg/cache"
	"TradeGate/pkg/config"
	xhttp "TradeGate/pkg/http"
	applogger "TradeGate/pkg/logger"
	"TradeGate/pkg/metrics"
	"TradeGate/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	lc := &applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	}
	if lc.Level == "" {
		lc.Level = "info"
	}
	if lc.Format == "" {
		lc.Format = "console"
	}
	if lc.Output == "" {
		lc.Output = "stdout"
	}
	l, err := applogger.New(lc)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideKV creates the key-value backend: Redis when enabled, otherwise an
// in-process store (state then lives only for the process lifetime).
func ProvideKV(cfg *config.Config) (cache.Service, error) {
	if !cfg.Redis.Enabled {
		return cache.NewMemoryCache(), nil
	}
	kv, err := cache.NewRedisCache(
		cache.WithAddr(cfg.Redis.Host, cfg.Redis.Port),
		cache.WithCredentials(cfg.Redis.Password, cfg.Redis.DB),
	)
	if err != nil {
		return nil, fmt.Errorf("redis: %w", err)
	}
	return kv, nil
}

// ProvideStateStore creates the market-state repository.
func ProvideStateStore(kv cache.Service) repository.StateStore {
	return internalrepo.NewKVStateStore(kv)
}

// ProvideCalendarSource creates the weekly-feed calendar source.
func ProvideCalendarSource(cfg *config.Config, m repository.Metrics) repository.CalendarSource {
	return calendar.NewWeeklyClient(
		cfg.Calendar.FeedURL,
		cfg.Calendar.APIKey,
		cfg.Calendar.FetchTimeout,
		m,
	)
}

// ProvidePlanner creates the forecast planner use case.
func ProvidePlanner(source repository.CalendarSource, m repository.Metrics) *usecase.Planner {
	return usecase.NewPlanner(source, m)
}

// ProvideMarketStateService creates the market-state accessor use case.
func ProvideMarketStateService(store repository.StateStore, cfg *config.Config, m repository.Metrics) *usecase.MarketStateService {
	return usecase.NewMarketStateService(store, cfg.Webhook.Secret, m)
}

// ProvideHandler creates the HTTP handler.
func ProvideHandler(l *applogger.Logger, planner *usecase.Planner, state *usecase.MarketStateService, cfg *config.Config) xhttp.Handler {
	routine := models.RoutineWindow{
		StartGMT: cfg.Routine.StartGMT,
		EndGMT:   cfg.Routine.EndGMT,
	}
	return api.NewGateEchoHandler(l, planner, state, routine)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, l *applogger.Logger, handler xhttp.Handler, kv cache.Service) *server.App {
	return server.New(cfg, l, handler, kv)
}
