package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/niksmo/kitchen-store/config"
	"github.com/niksmo/kitchen-store/internal/adapter"
	"github.com/niksmo/kitchen-store/internal/adapter/cartstore"
	"github.com/niksmo/kitchen-store/internal/adapter/httphandler"
	"github.com/niksmo/kitchen-store/internal/adapter/kafka"
	"github.com/niksmo/kitchen-store/internal/adapter/storage"
	"github.com/niksmo/kitchen-store/internal/core/port"
	"github.com/niksmo/kitchen-store/internal/core/service"
	"github.com/niksmo/kitchen-store/pkg/schema"
	"github.com/redis/go-redis/v9"
	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/twmb/franz-go/pkg/sr"
)

type storages struct {
	sqldb     storage.SQLDB
	products  storage.ProductsRepository
	orders    storage.OrdersRepository
	customers storage.CustomersRepository
	carts     port.CartStore
	redis     *cartstore.RedisStore
}

type producers struct {
	orders *kafka.OrdersProducer
}

type App struct {
	ctx        context.Context
	cfg        config.Config
	storages   storages
	producers  producers
	service    service.Service
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initStorages()
	app.initProducers()
	app.initCoreService()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initStorages() {
	const op = "App.initStorages"

	sqldb, err := storage.NewSQLDB(app.ctx, app.cfg.SQLDB)
	if err != nil {
		app.fallDown(op, err)
	}

	app.storages.sqldb = sqldb
	app.storages.products = storage.NewProductsRepository(sqldb)
	app.storages.orders = storage.NewOrdersRepository(sqldb)
	app.storages.customers = storage.NewCustomersRepository(sqldb)

	switch app.cfg.CartStore {
	case config.CartStoreRedis:
		rc := app.cfg.Redis
		rs, err := cartstore.NewRedisStore(app.ctx, &redis.Options{
			Addr:     rc.Addr,
			Password: rc.Password,
			DB:       rc.DB,
		}, rc.TTL)
		if err != nil {
			app.fallDown(op, err)
		}
		app.storages.redis = &rs
		app.storages.carts = rs
	default:
		app.storages.carts = cartstore.NewMemoryStore(app.cfg.Redis.TTL)
	}
}

func (app *App) initProducers() {
	const op = "App.initProducers"

	bc := app.cfg.Broker
	if !bc.Enabled() {
		slog.Warn("no seed brokers configured, order events are disabled")
		return
	}

	var (
		kgoOpts []kgo.Opt
		srOpts  []sr.ClientOpt
	)
	if bc.TLS.Enabled() {
		tlsCfg, err := adapter.MakeTLSConfig(
			bc.TLS.CAFile, bc.TLS.CertFile, bc.TLS.KeyFile,
		)
		if err != nil {
			app.fallDown(op, err)
		}
		kgoOpts = append(kgoOpts, kgo.DialTLSConfig(tlsCfg))
		srOpts = append(srOpts, sr.DialTLSConfig(tlsCfg))
	}

	registry, err := schema.NewRegistry(bc.SchemaRegistryURLs, srOpts...)
	if err != nil {
		app.fallDown(op, err)
	}

	topic := bc.Topics.OrdersPlaced
	orderSerde, err := schema.NewSerdeOrderPlacedV1(
		app.ctx,
		schema.SubjectOpt(schema.TopicSubject(topic)),
		schema.SchemaIdentifierOpt(registry),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	ordersProducer, err := kafka.NewOrdersProducer(
		kafka.ProducerClientOpt(app.ctx, bc.SeedBrokers, topic, kgoOpts...),
		kafka.ProducerEncoderOpt(orderSerde),
	)
	if err != nil {
		app.fallDown(op, err)
	}
	app.producers.orders = &ordersProducer
}

func (app *App) initCoreService() {
	var orderEvents port.OrderEventsProducer
	if app.producers.orders != nil {
		orderEvents = app.producers.orders
	}

	app.service = service.New(
		app.storages.products,
		app.storages.orders,
		app.storages.customers,
		app.storages.carts,
		orderEvents,
	)
}

func (app *App) initInboundAdapters() {
	mux := http.NewServeMux()
	httphandler.RegisterCatalog(mux, app.service)
	httphandler.RegisterCarts(mux, app.service)
	httphandler.RegisterOrders(mux, app.service)
	httphandler.RegisterAdmin(mux, app.service)
	httphandler.RegisterHealth(mux, app.storages.sqldb)

	handler := httphandler.AllowJSON(mux)
	app.httpServer = httphandler.NewHTTPServer(
		app.cfg.HTTPServerAddr, handler, app.cfg.HTTPRequestTimeout,
	)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	if app.producers.orders != nil {
		app.producers.orders.Close()
	}
	if app.storages.redis != nil {
		app.storages.redis.Close()
	}
	app.storages.sqldb.Close()

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
