package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ftauth/authcatalog/internal/config"
	"github.com/ftauth/authcatalog/internal/logging"
	"go.uber.org/zap"
)

func runServe(conf *config.Config) error {
	log, err := logging.New(conf.Log.Level)
	if err != nil {
		return err
	}
	defer log.Sync()

	a, err := newApp(context.Background(), conf, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Error("error closing asset store", zap.Error(err))
		}
	}()

	addr := conf.Server.Addr()
	srv := http.Server{
		Addr:    addr,
		Handler: a.Router(conf.Server.AllowedOrigins),

		ReadHeaderTimeout: 30 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", addr), zap.String("url", conf.Server.URL()))
		errc <- srv.ListenAndServe()
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errc:
		if err != http.ErrServerClosed {
			return err
		}
		return nil
	case <-sig:
	}

	log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("error shutting down server", zap.Error(err))
	}
	return nil
}
