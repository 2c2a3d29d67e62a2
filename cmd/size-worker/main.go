package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"photoStore/internal/config"
	"photoStore/internal/kafka/consumer"
	"photoStore/internal/lib/logger/handlers/slogpretty"
	"photoStore/internal/lib/logger/sl"
	"photoStore/internal/processor"
	"photoStore/internal/storage/postgres"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("starting size worker", slog.String("env", cfg.Env))

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	kafkaConsumer, err := consumer.NewConsumer(&cfg.Kafka, log)
	if err != nil {
		log.Error("failed to create kafka consumer", sl.Err(err))
		os.Exit(1)
	}

	sizeProcessor := processor.NewSizeProcessor(log, storage)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		kafkaConsumer.ReadMessages(ctx, sizeProcessor.ProcessMessage)
		close(done)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	sign := <-stop

	log.Info("worker stopping", slog.String("signal", sign.String()))

	cancel()
	<-done

	if err = kafkaConsumer.Close(); err != nil {
		log.Error("failed to close kafka consumer", sl.Err(err))
	}

	log.Info("kafka connection closed")

	if err = storage.Close(); err != nil {
		log.Error("failed to close database", sl.Err(err))
	}

	log.Info("postgres connection closed")

	log.Info("worker stopped")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
