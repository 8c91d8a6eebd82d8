package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/StefanMagureanu25/AWBD/internal/app"
	"github.com/StefanMagureanu25/AWBD/internal/config"
	"github.com/StefanMagureanu25/AWBD/internal/handler"
	"github.com/StefanMagureanu25/AWBD/internal/ledger"
	"github.com/StefanMagureanu25/AWBD/internal/postgres"
	"github.com/StefanMagureanu25/AWBD/internal/repo"
	"github.com/StefanMagureanu25/AWBD/internal/service"
	"github.com/StefanMagureanu25/AWBD/pkg/cache"
	"github.com/StefanMagureanu25/AWBD/pkg/trm"

	"github.com/joho/godotenv"
)

func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	panicIfErr("failed to run migrations", postgres.Migrate(db))
	logger.Info("postgres connected")

	storeRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	orderCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
	stockLedger := ledger.New()

	orderService := service.NewOrderService(
		logger, txManager, storeRepo, storeRepo, stockLedger, orderCache, service.DefaultOrderNumber)
	productService := service.NewProductService(logger, storeRepo, stockLedger)

	httpHandler := handler.NewHTTPHandler(logger, orderService, productService)
	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, productService)

	application := app.New(logger, conf)
	application.SetHTTPHandlers(httpHandler)
	application.SetConsumers(kafkaHandler)
	application.SetStarters(
		starterFunc(orderService.SeedLedger),
		cacheWarmUpAdapter{svc: orderService, count: conf.Cache.Capacity},
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	orderCache.StartJanitor(ctx)

	panicIfErr("failed to start app", application.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", application.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type starterFunc func(ctx context.Context) error

func (f starterFunc) Start(ctx context.Context) error {
	return f(ctx)
}

type warmUpper interface {
	WarmUpCache(ctx context.Context, count int) error
}

type cacheWarmUpAdapter struct {
	svc   warmUpper
	count int
}

func (a cacheWarmUpAdapter) Start(ctx context.Context) error {
	return a.svc.WarmUpCache(ctx, a.count)
}
