package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Lead-Coder/api-rate-limit/internal/broker"
	kafkabroker "github.com/Lead-Coder/api-rate-limit/internal/broker/kafka"
	"github.com/Lead-Coder/api-rate-limit/internal/config"
	grpccontroller "github.com/Lead-Coder/api-rate-limit/internal/controller/grpc"
	httpv1 "github.com/Lead-Coder/api-rate-limit/internal/controller/http/v1"
	"github.com/Lead-Coder/api-rate-limit/internal/events"
	"github.com/Lead-Coder/api-rate-limit/internal/gate"
	"github.com/Lead-Coder/api-rate-limit/internal/gateway"
	"github.com/Lead-Coder/api-rate-limit/internal/logquery"
	"github.com/Lead-Coder/api-rate-limit/internal/metrics"
	"github.com/Lead-Coder/api-rate-limit/internal/repo"
	"github.com/Lead-Coder/api-rate-limit/internal/repo/redisdb"
	"github.com/Lead-Coder/api-rate-limit/internal/router"
	"github.com/Lead-Coder/api-rate-limit/internal/service"
	"github.com/Lead-Coder/api-rate-limit/internal/session"
	errorsUtils "github.com/Lead-Coder/api-rate-limit/pkg/errors"
	"github.com/Lead-Coder/api-rate-limit/pkg/grpcserver"
	"github.com/Lead-Coder/api-rate-limit/pkg/httpserver"
	"github.com/Lead-Coder/api-rate-limit/pkg/logger"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"

	log "github.com/sirupsen/logrus"
)

func Run() {
	// Config

	cfg, err := config.New()
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	// Logger
	logger.SetupLogger(cfg.Log.Level)
	log.Info("Logger has been set up")

	ctx := context.Background()

	// Session storage
	log.WithField("driver", cfg.Session.Driver).Info("Opening session storage")
	repositories, err := repo.NewRepositories(ctx, repo.Config{
		Driver:   cfg.Session.Driver,
		FilePath: cfg.Session.FilePath,
		Redis: redisdb.Config{
			Addr:     cfg.Session.Redis.Addr,
			Username: cfg.Session.Redis.Username,
			Password: cfg.Session.Redis.Password,
			DB:       cfg.Session.Redis.DB,
			Key:      cfg.Session.Redis.Key,
		},
	})
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}
	store := session.NewStore(repositories.Session)
	defer store.Close()

	counters := metrics.New()
	bus := events.New()

	// Audit broker
	var producer broker.Producer = broker.NopProducer{}
	if len(cfg.Kafka.Brokers) > 0 {
		log.WithField("topic", cfg.Kafka.Topic).Info("Session audit goes to Kafka")
		producer = kafkabroker.NewProducer(kafkabroker.ProducerConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		})
	}
	auditor := broker.NewAuditor(producer)
	defer auditor.Close()

	// Backend gateway
	gw := gateway.New(gateway.Config{
		BaseURL:      cfg.Gateway.BaseURL,
		Timeout:      cfg.Gateway.Timeout,
		AuthHeader:   cfg.Gateway.AuthHeader,
		ValidatePath: cfg.Gateway.ValidatePath,
	}, store, bus, counters.GatewayRequests)

	engine, err := logquery.New(logquery.WithPageSize(cfg.Logs.PageSize))
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	// Services
	accessGate := gate.Default()
	services := service.NewServices(service.ServicesDependencies{
		Sessions:     store,
		Gate:         accessGate,
		Gateway:      gw,
		Auditor:      auditor,
		Counters:     counters,
		Engine:       engine,
		PollInterval: cfg.Usage.PollInterval,
	})

	nav := router.New(store, accessGate, services.Screens(), counters.GateDecisions)
	if err := nav.Subscribe(bus, services.Auth); err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	// gRPC Server
	log.Infof("Starting gRPC server...")
	log.Debugf("Server port: %s", cfg.GRPC.Port)
	health := grpccontroller.NewHealth()
	grpcServer, err := grpcserver.New(grpccontroller.RegisterServices(health), grpcserver.WithPort(cfg.GRPC.Port))
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	// Session restore; navigation waits on it
	go func() {
		if err := store.Restore(ctx); err != nil {
			log.Error(errorsUtils.WrapPathErr(err))
		}
		health.MarkServing()
		log.Info("Session restore finished")
	}()

	// Console API
	log.Infof("Starting console API...")
	log.Debugf("Server port: %s", cfg.HTTP.Port)
	apiHandler := echo.New()
	apiHandler.Use(echoprometheus.NewMiddleware("console"))
	httpv1.ConfigureRouter(apiHandler, httpv1.Dependencies{
		Navigator: nav,
		Auth:      services.Auth,
		Clients:   services.Clients,
		Logs:      services.Logs,
		Counters:  counters,
	})
	apiServer := httpserver.New(apiHandler,
		httpserver.Name("console"),
		httpserver.Port(cfg.HTTP.Port),
		httpserver.ReadTimeout(cfg.HTTP.ReadTimeout),
		httpserver.WriteTimeout(cfg.HTTP.WriteTimeout),
		httpserver.ShutdownTimeout(cfg.HTTP.ShutdownTimeout),
	)

	// Prometheus server
	log.Infof("Starting metrics server...")
	log.Debugf("Server port: %s", cfg.Prometheus.Port)
	metricsHandler := echo.New()
	metricsHandler.HideBanner = true
	metrics.ConfigureRouter(metricsHandler)
	metricsServer := httpserver.New(metricsHandler, httpserver.Name("metrics"), httpserver.Port(cfg.Prometheus.Port))

	// Waiting signal
	log.Info("Configuring graceful shutdown")
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("app - Run - signal: " + s.String())
	case err := <-apiServer.Notify():
		log.Info(errorsUtils.WrapPathErr(err))
	case err := <-metricsServer.Notify():
		log.Info(errorsUtils.WrapPathErr(err))
	case err := <-grpcServer.Notify():
		log.Info(errorsUtils.WrapPathErr(err))
	}

	// Graceful shutdown
	log.Info("Shutting down...")
	health.Shutdown()
	services.Stop()
	if err := apiServer.Shutdown(); err != nil {
		log.Error(errorsUtils.WrapPathErr(err))
	}
	if err := metricsServer.Shutdown(); err != nil {
		log.Error(errorsUtils.WrapPathErr(err))
	}
	grpcServer.Shutdown()
	bus.Wait()
}
