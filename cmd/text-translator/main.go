// Command text-translator serves LLM text translation over HTTP.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	texttranslator "github.com/YourCarma/text-translator"
	"github.com/YourCarma/text-translator/cache"
	"github.com/YourCarma/text-translator/config"
	"github.com/YourCarma/text-translator/logging"
	"github.com/YourCarma/text-translator/provider"
	"github.com/YourCarma/text-translator/server"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet(texttranslator.Name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	showVersion := fs.Bool("version", false, "Show version")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintf(stdout, "%s %s\n", texttranslator.Name, texttranslator.FullVersion())
		if texttranslator.BuildDate != "unknown" && texttranslator.BuildDate != "" {
			fmt.Fprintf(stdout, "  built:   %s\n", texttranslator.BuildDate)
		}
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logger, err := logging.New(cfg.Logger)
	if err != nil {
		return err
	}
	defer logger.Sync()

	logger.Info("Starting text translator", zap.String("version", texttranslator.FullVersion()))

	handler, closeCache, err := newHandler(cfg, logger)
	if err != nil {
		return err
	}
	defer closeCache()

	ln, err := net.Listen("tcp", cfg.Server.Address)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", cfg.Server.Address, err)
	}

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return serve(ctx, srv, ln, cfg.Server.ShutdownTimeout, logger)
}

// newHandler wires provider, cache and translator into the HTTP router.
func newHandler(cfg *config.Config, logger *zap.Logger) (http.Handler, func() error, error) {
	mode, err := provider.ParseWorkingMode(cfg.Server.LLMMode)
	if err != nil {
		return nil, nil, err
	}

	p, err := mode.NewProvider(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	responseCache, closeCache, err := cache.New(cfg.Cache, logger)
	if err != nil {
		return nil, nil, err
	}

	opts := []texttranslator.TranslatorOption{
		texttranslator.WithModel(cfg.OpenAI.ModelName),
		texttranslator.WithTimeout(cfg.Server.RequestTimeout),
	}
	if responseCache != nil {
		opts = append(opts, texttranslator.WithCache(responseCache))
	}
	translator := texttranslator.NewTranslator(p, opts...)
	logger.Info("Translator ready",
		zap.String("model", translator.Model()),
		zap.Duration("request_timeout", translator.Timeout()),
		zap.Bool("cache", responseCache != nil),
	)

	gin.SetMode(gin.ReleaseMode)
	r := server.New(server.Options{
		Translator:        translator,
		Logger:            logger,
		StrictErrorStatus: cfg.Server.StrictErrorStatus,
	})
	return r, closeCache, nil
}

// serve runs srv on ln until ctx is done, then drains in-flight requests.
func serve(ctx context.Context, srv *http.Server, ln net.Listener, shutdownTimeout time.Duration, logger *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", ln.Addr().String()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Info("Server exited")
	return nil
}
