// Command server is the connector engine's process entrypoint: load
// configuration, wire every connector into the registry, build the shared
// executor and engine, and serve the gRPC RPC surface alongside a plain
// HTTP endpoint for Prometheus scraping and liveness checks — adapted from
// the teacher's cmd/main.go (zerolog setup, signal-driven graceful
// shutdown) but standing up a stateless gRPC+metrics server instead of a
// database-backed REST API.
package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"payment-connector-engine/internal/connector"
	"payment-connector-engine/internal/connector/adyen"
	"payment-connector-engine/internal/connector/authorizenet"
	"payment-connector-engine/internal/connector/elavon"
	"payment-connector-engine/internal/connector/executor"
	"payment-connector-engine/internal/connector/razorpay"
	"payment-connector-engine/internal/engine"
	"payment-connector-engine/internal/platform/config"
	"payment-connector-engine/internal/platform/logger"
	"payment-connector-engine/internal/transport/grpcserver"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	logger.Init(cfg.Log.Level, cfg.Log.ServiceName)

	log.Info().Str("env", cfg.Env).Msg("starting payment connector engine")

	registry := connector.New(map[connector.ID]connector.Connector{
		connector.Adyen:        adyen.New(adyen.Config{BaseURL: cfg.Connectors["adyen"].BaseURL, MerchantAccount: cfg.Connectors["adyen"].MerchantAccount}),
		connector.Razorpay:     razorpay.New(razorpay.Config{BaseURL: cfg.Connectors["razorpay"].BaseURL}),
		connector.Elavon:       elavon.New(elavon.Config{BaseURL: cfg.Connectors["elavon"].BaseURL}),
		connector.AuthorizeNet: authorizenet.New(authorizenet.Config{BaseURL: cfg.Connectors["authorizenet"].BaseURL}),
	})

	restyClient := resty.New().SetTimeout(executor.DefaultTimeout)
	ex := executor.NewWithClient(restyClient)
	eng := engine.New(registry, ex)

	grpcSrv := grpcserver.NewTransport(eng)
	lis, err := net.Listen("tcp", ":"+cfg.Server.Port)
	if err != nil {
		log.Fatal().Err(err).Str("port", cfg.Server.Port).Msg("failed to bind gRPC listener")
	}

	go func() {
		log.Info().Str("addr", lis.Addr().String()).Msg("gRPC server listening")
		if err := grpcSrv.Serve(lis); err != nil {
			log.Fatal().Err(err).Msg("gRPC server stopped unexpectedly")
		}
	}()

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	metricsServer := &http.Server{
		Addr:         ":" + cfg.Server.MetricsPort,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", metricsServer.Addr).Msg("metrics server listening")
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("metrics server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down payment connector engine")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownGrace)*time.Second)
	defer cancel()

	stopped := make(chan struct{})
	go func() {
		grpcSrv.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-ctx.Done():
		grpcSrv.Stop()
	}

	if err := metricsServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("metrics server forced to shutdown")
	}

	log.Info().Msg("payment connector engine stopped")
}
