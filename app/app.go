package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"riichi/common/cache"
	"riichi/common/config"
	"riichi/common/log"
	"riichi/server"
)

// Run wires the analyzer together and blocks until the context is done or
// a termination signal arrives.
func Run(ctx context.Context) error {
	cfg := config.Get()

	analysisCache, err := cache.New(cfg.CacheConf.MaxCost, time.Duration(cfg.CacheConf.TTLSeconds)*time.Second)
	if err != nil {
		return err
	}
	defer analysisCache.Close()

	srv := server.New(cfg, analysisCache)
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := func() {
		log.Info("shutting down analysis server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn("shutdown: %v", err)
		}
		log.Info("analysis server stopped")
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGINT, syscall.SIGHUP)
	for {
		select {
		case <-ctx.Done():
			stop()
			return nil
		case err := <-errCh:
			if err != nil {
				return err
			}
			return nil
		case s := <-c:
			log.Info("received signal %v", s)
			stop()
			return nil
		}
	}
}
