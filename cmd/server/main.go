package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	automationservice "github.com/coverlane/brokerage-automation-service/internal/automation/service"
	"github.com/coverlane/brokerage-automation-service/internal/system/config"
	"github.com/coverlane/brokerage-automation-service/internal/system/constants"
	dbprovider "github.com/coverlane/brokerage-automation-service/internal/system/database/provider"
	"github.com/coverlane/brokerage-automation-service/internal/system/log"
	"github.com/coverlane/brokerage-automation-service/internal/system/managers"
	"github.com/coverlane/brokerage-automation-service/internal/system/schedulers"

	aiservice "github.com/coverlane/brokerage-automation-service/internal/ai/service"
)

const configFile = "config/deployment.yaml"

func main() {
	serviceHome := getServiceHome()

	_ = godotenv.Load("config/.env")

	cfg, err := config.LoadConfig(serviceHome, configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := config.InitializeRuntime(serviceHome, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize runtime configuration: %v\n", err)
		os.Exit(1)
	}

	if err := log.Init(cfg.Log.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logger := log.GetLogger()

	if err := dbprovider.Init(cfg.Mongo); err != nil {
		logger.Fatal("Failed to connect to the document store", log.Error(err))
	}

	queueSize := cfg.Automation.QueueSize
	if queueSize <= 0 {
		queueSize = constants.DefaultQueueSize
	}

	executor := automationservice.NewActionExecutor(automationservice.NewStoreSink(), aiservice.GetAssistantService())
	orchestrator := automationservice.NewDefaultOrchestrator(queueSize, executor)
	watcher := automationservice.NewChangeWatcher(orchestrator)
	sweeps := schedulers.NewDefaultSweepScheduler(orchestrator)

	orchestrator.Start()
	watcher.Start()
	sweeps.Start()

	serverAddr := fmt.Sprintf("%s:%d", cfg.Addr.Host, cfg.Addr.Port)
	handler := managers.WithCORS(initMultiplexer(orchestrator))
	server := &http.Server{Handler: handler}

	ln, err := net.Listen("tcp", serverAddr)
	if err != nil {
		logger.Fatal("Failed to start listener on "+serverAddr, log.Error(err))
	}
	logger.Info("Brokerage automation service started on: " + serverAddr)

	go func() {
		if err := server.Serve(ln); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to serve requests", log.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shut down the HTTP server cleanly", log.Error(err))
	}

	watcher.Stop()
	sweeps.Stop()
	orchestrator.Stop()

	if err := dbprovider.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to disconnect from the document store", log.Error(err))
	}
}

// initMultiplexer initializes the HTTP multiplexer and registers the services.
func initMultiplexer(ingestor automationservice.Ingestor) *http.ServeMux {

	mux := http.NewServeMux()
	serviceManager := managers.NewServiceManager(mux, ingestor)

	if err := serviceManager.RegisterServices(constants.ApiBasePath); err != nil {
		log.GetLogger().Fatal("Failed to register the services", log.Error(err))
	}

	return mux
}

func getServiceHome() string {

	serviceHomeFlag := flag.String("serviceHome", "", "Path to the service home directory")
	flag.Parse()

	if *serviceHomeFlag != "" {
		return *serviceHomeFlag
	}

	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to get current working directory: %v\n", err)
		os.Exit(1)
	}
	return dir
}
