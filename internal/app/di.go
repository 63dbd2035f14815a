package app

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/you-humble/kicad-dblib/internal/config"
	"github.com/you-humble/kicad-dblib/internal/converter"
	"github.com/you-humble/kicad-dblib/internal/metrics"
	repository "github.com/you-humble/kicad-dblib/internal/repository/catalog"
	service "github.com/you-humble/kicad-dblib/internal/service/catalog"
	catproducer "github.com/you-humble/kicad-dblib/internal/service/producer/catalog"
	thttp "github.com/you-humble/kicad-dblib/internal/transport/http/catalog/v1"
	"github.com/you-humble/kicad-dblib/internal/transport/ws"
	"github.com/you-humble/kicad-dblib/internal/workflow"
	"github.com/you-humble/kicad-dblib/platform/closer"
	"github.com/you-humble/kicad-dblib/platform/db/migrator"
	"github.com/you-humble/kicad-dblib/platform/kafka"
	"github.com/you-humble/kicad-dblib/platform/kafka/producer"
	"github.com/you-humble/kicad-dblib/platform/logger"
)

type CatalogController interface {
	thttp.CatalogController
	workflow.Refresher
}

type CatalogHandler interface {
	Register(r chi.Router)
}

type di struct {
	dbPool     *pgxpool.Pool
	migrator   *migrator.Migrator
	repository service.CatalogRepository

	hub        *ws.Hub
	controller CatalogController

	syncProducer           sarama.SyncProducer
	catalogChangedProducer kafka.Producer
	catalogProducer        service.ChangeProducer

	service thttp.CatalogService
	handler CatalogHandler

	router *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) DBPool(ctx context.Context) *pgxpool.Pool {
	if d.dbPool == nil {
		pool, err := pgxpool.New(ctx, config.C().Postgres.DSN())
		if err != nil {
			panic(fmt.Sprintf("failed to create pg pool: %v\n", err))
		}

		closer.AddNamed("PGX Pool",
			func(ctx context.Context) error {
				pool.Close()
				return nil
			})

		if err := pool.Ping(ctx); err != nil {
			panic(fmt.Sprintf("failed to ping db: %v\n", err))
		}

		d.dbPool = pool
	}

	return d.dbPool
}

func (d *di) Migrator(ctx context.Context) *migrator.Migrator {
	if d.migrator == nil {
		d.migrator = migrator.NewMigrator(
			stdlib.OpenDBFromPool(d.DBPool(ctx)),
			config.C().Postgres.MigrationDirectory(),
		)

		closer.AddNamed("Migrator",
			func(ctx context.Context) error {
				return d.migrator.Close()
			})
	}

	return d.migrator
}

func (d *di) CatalogRepository(ctx context.Context) service.CatalogRepository {
	if d.repository == nil {
		d.repository = repository.NewCatalogRepository(d.DBPool(ctx))
	}

	return d.repository
}

func (d *di) Hub(_ context.Context) *ws.Hub {
	if d.hub == nil {
		d.hub = ws.NewHub()

		closer.AddNamed("Websocket hub", d.hub.Close)
	}

	return d.hub
}

func (d *di) CatalogController(ctx context.Context) CatalogController {
	if d.controller == nil {
		d.controller = service.NewCatalogController(
			d.CatalogRepository(ctx),
			d.Hub(ctx),
			config.C().Server.DBReadTimeout(),
		)
	}

	return d.controller
}

func (d *di) SyncProducer(ctx context.Context) sarama.SyncProducer {
	if d.syncProducer == nil {
		cfg := config.C()

		p, err := sarama.NewSyncProducer(
			cfg.Kafka.Brokers(),
			cfg.Kafka.CatalogChangedProducerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create sync producer: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka sync producer", func(ctx context.Context) error {
			return p.Close()
		})

		d.syncProducer = p
	}

	return d.syncProducer
}

func (d *di) CatalogChangedProducer(ctx context.Context) kafka.Producer {
	if d.catalogChangedProducer == nil {
		d.catalogChangedProducer = producer.NewProducer(
			d.SyncProducer(ctx),
			config.C().Kafka.CatalogChangedTopic(),
			logger.L(),
		)
	}

	return d.catalogChangedProducer
}

// CatalogProducer publishes change events when kafka is enabled and drops
// them otherwise.
func (d *di) CatalogProducer(ctx context.Context) service.ChangeProducer {
	if d.catalogProducer == nil {
		if !config.C().Kafka.Enabled() {
			d.catalogProducer = catproducer.NewNopProducer()
			return d.catalogProducer
		}

		d.catalogProducer = catproducer.NewCatalogProducer(
			d.CatalogChangedProducer(ctx),
			converter.NewKafkaConverter(),
		)
	}

	return d.catalogProducer
}

func (d *di) CatalogService(ctx context.Context) thttp.CatalogService {
	if d.service == nil {
		d.service = service.NewCatalogService(
			d.CatalogRepository(ctx),
			d.CatalogProducer(ctx),
			d.CatalogController(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
			workflow.WithObserver(metrics.DialogObserver()),
		)
	}

	return d.service
}

func (d *di) CatalogHandler(ctx context.Context) CatalogHandler {
	if d.handler == nil {
		d.handler = thttp.NewCatalogHandler(
			d.CatalogService(ctx),
			d.CatalogController(ctx),
		)
	}

	return d.handler
}

func (d *di) Router(_ context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}
