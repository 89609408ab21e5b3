package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/pymage/pymage-backend/internal/adapter/provider/libretranslate"
	"github.com/pymage/pymage-backend/internal/adapter/provider/tatoeba"
	"github.com/pymage/pymage-backend/internal/adapter/provider/wiktionary"
	"github.com/pymage/pymage-backend/internal/adapter/sqlite"
	"github.com/pymage/pymage-backend/internal/config"
	"github.com/pymage/pymage-backend/internal/service/lookup"
	"github.com/pymage/pymage-backend/internal/service/vocab"
	"github.com/pymage/pymage-backend/internal/speech"
	"github.com/pymage/pymage-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, opens the
// word store, wires providers and services, and serves HTTP until the
// context is canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	store, err := sqlite.Open(cfg.Store.Path, logger)
	if err != nil {
		return fmt.Errorf("app: open word store: %w", err)
	}
	defer store.Close()

	dictProvider := wiktionary.NewProvider(cfg.Wiktionary, logger)
	sentenceProvider := tatoeba.NewProvider(cfg.Tatoeba, logger)

	translateProvider := libretranslate.NewProvider(cfg.Translate, logger)

	dispatcher := lookup.NewDispatcher(64)
	lookupService := lookup.NewService(logger, dictProvider, sentenceProvider, translateProvider, dispatcher, cfg.Lookup)
	vocabService := vocab.NewService(logger, store)

	speaker := speech.NewChain(logger,
		speech.NewGTTS(cfg.Speech),
		speech.NewLocal(),
	)

	handler, stopLimiter := rest.NewRouter(rest.RouterDeps{
		Lookup:  lookupService,
		Vocab:   vocabService,
		Speaker: speaker,
		Store:   store,
		Version: BuildVersion(),
		Config:  *cfg,
		Logger:  logger,
	})
	defer stopLimiter()

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return dispatcher.Run(gCtx)
	})

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("app: http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		logger.Info("shutting down http server")
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	logger.Info("application stopped")
	return nil
}
