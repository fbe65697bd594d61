package cli

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/fadedpez/aetheria/internal/config"
	"github.com/fadedpez/aetheria/internal/logging"
	"github.com/fadedpez/aetheria/pkg/feedback"
	"github.com/fadedpez/aetheria/pkg/generator"
	"github.com/fadedpez/aetheria/pkg/generator/gemini"
	historyrepo "github.com/fadedpez/aetheria/pkg/repositories/history"
	"github.com/fadedpez/aetheria/pkg/services/history"
	"github.com/fadedpez/aetheria/pkg/services/oracle"
	"github.com/fadedpez/aetheria/pkg/services/store"
	"github.com/fadedpez/aetheria/pkg/services/wallet"
	"github.com/fadedpez/aetheria/pkg/storage"
	"github.com/fadedpez/aetheria/pkg/storage/file"
	"github.com/fadedpez/aetheria/pkg/storage/sqlite"
)

// App holds the wired services for one CLI invocation
type App struct {
	Config   *config.Config
	Logger   *logging.Logger
	Storage  storage.Store
	Wallet   *wallet.Service
	Recorder *history.Recorder
	Shop     *store.Service
	Player   *feedback.Gated

	now          func() time.Time
	newGenerator func(ctx context.Context) (generator.Generator, error)

	oracleOnce sync.Once
	oracle     *oracle.Orchestrator
	oracleErr  error
}

// NewApp opens persistence and the optional history mirror and wires every service.
// Bells for audible cues go to out.
func NewApp(ctx context.Context, cfg *config.Config, logger *logging.Logger, out io.Writer) *App {
	var mirror history.Mirror
	if cfg.ElasticsearchURL != "" {
		m, err := historyrepo.NewElasticsearchMirror(ctx, historyrepo.ElasticsearchConfig{
			URL:      cfg.ElasticsearchURL,
			Username: cfg.ElasticsearchUsername,
			Password: cfg.ElasticsearchPassword,
			Index:    cfg.ElasticsearchIndex,
		})
		if err != nil {
			logger.Warn("[APP] History mirror disabled: %v", err)
		} else {
			mirror = m
			logger.Info("[APP] Mirroring history to %s/%s", cfg.ElasticsearchURL, cfg.ElasticsearchIndex)
		}
	}

	app := newApp(ctx, cfg, logger, openStorage(cfg, logger), mirror, out)
	app.newGenerator = func(ctx context.Context) (generator.Generator, error) {
		if err := cfg.RequireGenerator(); err != nil {
			return nil, err
		}
		return gemini.New(ctx, gemini.Config{
			APIKey:     cfg.GeminiAPIKey,
			Model:      cfg.GeminiModel,
			ImageModel: cfg.GeminiImageModel,
		})
	}
	return app
}

func newApp(ctx context.Context, cfg *config.Config, logger *logging.Logger, st storage.Store, mirror history.Mirror, out io.Writer) *App {
	w := wallet.NewService(ctx, st, wallet.WithLogger(logger), wallet.WithDailyBonus(cfg.DailyBonus))
	player := feedback.NewGated(feedback.NewTerminal(out, logger), w)

	return &App{
		Config:   cfg,
		Logger:   logger,
		Storage:  st,
		Wallet:   w,
		Recorder: history.NewRecorder(w, mirror, logger),
		Shop:     store.NewService(w, player, logger),
		Player:   player,
		now:      time.Now,
	}
}

// openStorage picks the configured backend, falling back to memory when it cannot be opened
func openStorage(cfg *config.Config, logger *logging.Logger) storage.Store {
	switch cfg.StorageType {
	case config.StorageSQLite:
		logger.Debug("[APP] Opening SQLite wallet at %s", cfg.DatabasePath())
		st, err := sqlite.New(cfg.DatabasePath())
		if err == nil {
			return st
		}
		logger.Warn("[APP] Failed to open SQLite storage: %v", err)
	default:
		logger.Debug("[APP] Opening wallet file at %s", cfg.WalletPath())
		st, err := file.New(cfg.WalletPath())
		if err == nil {
			return st
		}
		logger.Warn("[APP] Failed to open file storage: %v", err)
	}

	logger.Warn("[APP] Falling back to in-memory wallet (changes will be lost on exit)")
	return storage.NewMemoryStore()
}

// Oracle builds the orchestrator on first use so offline commands never need an API key
func (a *App) Oracle(ctx context.Context) (*oracle.Orchestrator, error) {
	a.oracleOnce.Do(func() {
		gen, err := a.newGenerator(ctx)
		if err != nil {
			a.oracleErr = err
			return
		}
		a.oracle = oracle.NewOrchestrator(a.Wallet, gen, a.Recorder, a.Player, a.Logger)
	})
	return a.oracle, a.oracleErr
}

// Close releases persistence
func (a *App) Close() error {
	return a.Storage.Close()
}
