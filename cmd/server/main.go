// Command server runs the found-pet workflow API: officer directory, scan
// submission against the ranking collaborator, threshold-gated contact
// disclosure, and outcome recording.
//
// main wires dependencies and keeps the server lifecycle small. Business
// logic lives in the internal services packages.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"pawtrol/internal/disclosure"
	encounterhandler "pawtrol/internal/encounter/handler"
	encountermetrics "pawtrol/internal/encounter/metrics"
	encounterservice "pawtrol/internal/encounter/service"
	encounterstore "pawtrol/internal/encounter/store"
	officerhandler "pawtrol/internal/officer/handler"
	officermetrics "pawtrol/internal/officer/metrics"
	officerservice "pawtrol/internal/officer/service"
	officerstore "pawtrol/internal/officer/store"
	"pawtrol/internal/platform/config"
	"pawtrol/internal/platform/database"
	"pawtrol/internal/platform/health"
	"pawtrol/internal/platform/httpserver"
	kafkaproducer "pawtrol/internal/platform/kafka/producer"
	"pawtrol/internal/platform/logger"
	platformredis "pawtrol/internal/platform/redis"
	"pawtrol/internal/ranking"
	"pawtrol/internal/registry"
	httptransport "pawtrol/internal/transport/http"
	"pawtrol/pkg/platform/audit"
	auditpublisher "pawtrol/pkg/platform/audit/publisher"
	auditmemory "pawtrol/pkg/platform/audit/store/memory"
	auditpostgres "pawtrol/pkg/platform/audit/store/postgres"
	"pawtrol/pkg/platform/middleware/auth"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.FromEnv()
	log := logger.New()
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Postgres is optional; without it everything runs on in-memory stores,
	// which is enough for local development against the mock ranker.
	dbCfg := database.DefaultConfig()
	dbCfg.URL = cfg.DatabaseURL
	pool, err := database.New(dbCfg)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if pool != nil {
		defer pool.Close()
	}

	redisClient, err := platformredis.New(cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	var producer auditpublisher.Producer = kafkaproducer.NewNoopProducer()
	var kafkaProd *kafkaproducer.Producer
	if cfg.KafkaBrokers != "" {
		kafkaProd, err = kafkaproducer.New(kafkaproducer.Config{Brokers: cfg.KafkaBrokers}, log)
		if err != nil {
			return fmt.Errorf("kafka producer: %w", err)
		}
		defer kafkaProd.Close()
		producer = kafkaProd
	}

	var auditStore audit.Store
	var officerStore officerservice.OfficerStore
	var encounterStore interface {
		encounterservice.EncounterStore
		officerservice.EncounterCounter
	}
	var contactStore registry.Store
	if pool != nil {
		auditStore = auditpostgres.New(pool.DB())
		officerStore = officerstore.NewPostgres(pool.DB())
		encounterStore = encounterstore.NewPostgres(pool.DB())
		contactStore = registry.NewPostgres(pool.DB())
	} else {
		auditStore = auditmemory.New()
		officerStore = officerstore.NewInMemory()
		encounterStore = encounterstore.NewInMemoryStore()
		contactStore = registry.NewInMemoryStore()
	}
	if redisClient != nil {
		contactStore = registry.NewCachedStore(contactStore, redisClient.Client, config.ContactCacheTTL, log)
	}

	if cfg.Environment == "development" {
		if err := seedDemoContacts(ctx, contactStore); err != nil {
			return fmt.Errorf("seed demo contacts: %w", err)
		}
	}

	auditPublisher := auditpublisher.New(auditStore, producer, log)

	officerSvc := officerservice.New(officerStore,
		officerservice.WithLogger(log),
		officerservice.WithAuditPublisher(auditPublisher),
		officerservice.WithMetrics(officermetrics.New()),
		officerservice.WithEncounterCounter(encounterStore),
	)
	encounterSvc := encounterservice.New(
		encounterStore,
		officerSvc,
		ranking.NewHTTPClient(cfg.RankingBaseURL, cfg.RankingTimeout),
		contactStore,
		encounterservice.WithLogger(log),
		encounterservice.WithAuditPublisher(auditPublisher),
		encounterservice.WithMetrics(encountermetrics.New()),
		encounterservice.WithDisclosurePolicy(disclosure.New(cfg.DisclosureThreshold)),
	)

	healthHandler := health.New(cfg.Environment)
	if pool != nil {
		healthHandler.RegisterCheck("database", func() error {
			checkCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return pool.Health(checkCtx)
		})
	}
	if redisClient != nil {
		healthHandler.RegisterCheck("redis", func() error {
			checkCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisClient.Health(checkCtx)
		})
	}
	if kafkaProd != nil {
		healthHandler.RegisterCheck("kafka", func() error {
			checkCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if !kafkaProd.Healthy(checkCtx) {
				return errors.New("kafka unreachable")
			}
			return nil
		})
	}

	router := httptransport.NewRouter(httptransport.Deps{
		Logger:       log,
		JWTValidator: auth.NewValidator(cfg.JWTSigningKey),
		AdminToken:   cfg.AdminToken,
		Officers:     officerhandler.New(officerSvc, log),
		Encounters:   encounterhandler.New(encounterSvc, log),
		Health:       healthHandler,
	})

	srv := httpserver.New(cfg.Addr, router)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting pawtrol server", "addr", cfg.Addr, "environment", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
