package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	tomb "gopkg.in/tomb.v2"

	"lobcore/internal/common"
	"lobcore/internal/config"
	"lobcore/internal/engine"
	"lobcore/internal/report"
	"lobcore/internal/worker"
)

// submission pairs a seed order with the book it goes to.
type submission struct {
	symbol string
	order  *common.Order
}

func main() {
	configPath := flag.String("config", "", "path to a TOML configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *configPath).Msg("unable to load config")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}
	level, _ := cfg.Level()
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
	)
	defer stop()

	// Setup the books and the reporter.
	eng := engine.New(cfg.Symbols...)
	eng.SetReporter(report.NewLogReporter(log.Logger))

	if err := seed(ctx, eng, cfg); err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("seeding stopped")
	}

	for _, symbol := range eng.Symbols() {
		book, _ := eng.Book(symbol)
		log.Info().
			Str("symbol", symbol).
			Int("orders", book.Len()).
			Msg("book depth")
		if err := report.RenderDepth(os.Stdout, book, cfg.DepthWidth); err != nil {
			log.Error().Err(err).Str("symbol", symbol).Msg("unable to render book")
		}
	}
}

// seed feeds the configured orders through the worker pool and waits for the
// pool to drain. Rejections are reported by the engine and do not stop the
// pool.
func seed(ctx context.Context, eng *engine.Engine, cfg *config.Config) error {
	t, _ := tomb.WithContext(ctx)
	pool := worker.NewWorkerPool(uint(cfg.Workers))
	pool.Setup(t, func(_ *tomb.Tomb, task any) error {
		s := task.(submission)
		_, _ = eng.Submit(s.symbol, s.order)
		return nil
	})

	log.Info().Int("orders", len(cfg.Orders)).Int("workers", cfg.Workers).Msg("seeding books")
	for i, oc := range cfg.Orders {
		order, err := oc.Order()
		if err != nil {
			log.Error().Err(err).Int("index", i).Msg("skipping seed order")
			continue
		}
		if err := pool.AddTask(submission{symbol: oc.Symbol, order: order}); err != nil {
			break
		}
	}
	pool.Close()

	return t.Wait()
}
