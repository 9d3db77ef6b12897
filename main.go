package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"tableside/config"
	"tableside/db"
	"tableside/events"
	"tableside/order"
	"tableside/web"
)

func main() {
	seed := flag.Int("seed", 0, "insert this many fake orders at startup")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		boot := zerolog.New(os.Stderr)
		boot.Fatal().Err(err).Msg("load config")
	}
	log := cfg.Logger(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, *seed, log); err != nil {
		log.Fatal().Err(err).Msg("tableside stopped")
	}
	log.Info().Msg("bye")
}

func run(ctx context.Context, cfg config.Config, seed int, log zerolog.Logger) error {
	gdb, err := db.Open(cfg.DBPath, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(gdb); err != nil {
			log.Error().Err(err).Msg("close database")
		}
	}()

	var pub interface {
		order.Publisher
		Close() error
	} = events.Nop{}
	if cfg.EventsEnabled() {
		pub = events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, log)
		log.Info().Strs("brokers", cfg.KafkaBrokers).Str("topic", cfg.KafkaTopic).Msg("order events enabled")
	}
	defer func() {
		if err := pub.Close(); err != nil {
			log.Error().Err(err).Msg("close event publisher")
		}
	}()

	store := order.NewStore(gdb, pub, log)
	if err := store.Migrate(ctx); err != nil {
		return err
	}
	if seed > 0 {
		if err := seedOrders(ctx, store, seed); err != nil {
			return err
		}
		log.Info().Int("count", seed).Msg("seeded fake orders")
	}

	e := web.New(store, log, web.Options{OrderRateLimit: cfg.OrderRateLimit})
	log.Info().Str("addr", cfg.HTTPAddr).Str("db", cfg.DBPath).Msg("http: listening")
	return web.Run(ctx, e, cfg.HTTPAddr, cfg.ShutdownTimeout)
}
