package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	taxflowpb "github.com/taxflow-app/taxflow/gen/proto/taxflow/v1"
	"github.com/taxflow-app/taxflow/internal/checklist"
	"github.com/taxflow-app/taxflow/internal/common"
	"github.com/taxflow-app/taxflow/internal/export"
	"github.com/taxflow-app/taxflow/internal/extract"
	"github.com/taxflow-app/taxflow/internal/llm"
	"github.com/taxflow-app/taxflow/internal/llm/openai"
	"github.com/taxflow-app/taxflow/internal/pipeline"
	"github.com/taxflow-app/taxflow/internal/repository"
	"github.com/taxflow-app/taxflow/internal/server"
	"github.com/taxflow-app/taxflow/internal/storage"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := common.LoadConfig()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if cfg.OpenAI.APIKey == "" {
		logger.Error("OPENAI_API_KEY env var is required")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}

	store, err := storage.NewFSStore(cfg.Storage.Root, logger)
	if err != nil {
		logger.Error("failed to open document store", "root", cfg.Storage.Root, "error", err)
		os.Exit(1)
	}

	docRepo := repository.NewDocumentRepository(entc, logger)
	entityRepo := repository.NewEntityRepository(entc, logger)
	checklistRepo := repository.NewChecklistRepository(entc, logger)
	taxYearRepo := repository.NewTaxYearRepository(entc, logger)

	analyzer := openai.NewClient(openai.Config{
		APIKey:      cfg.OpenAI.APIKey,
		BaseURL:     cfg.OpenAI.BaseURL,
		Model:       cfg.OpenAI.Model,
		Temperature: cfg.OpenAI.Temperature,
		Timeout:     cfg.OpenAI.Timeout,
	}, logger)
	classifier := llm.NewClassifier(analyzer, logger)
	extractor := extract.NewExtractor(extract.Config{}, logger)

	parser := pipeline.NewParser(docRepo, store, extractor, classifier, logger)
	generator := checklist.NewGenerator(taxYearRepo, docRepo, entityRepo, checklistRepo, logger)
	exporter := export.NewService(taxYearRepo, checklistRepo, logger)

	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	svc := server.NewTaxFlowService(docRepo, entityRepo, checklistRepo, parser, generator, exporter, logger)
	taxflowpb.RegisterTaxFlowServiceServer(grpcServer, svc)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("grpc serving", "addr", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()
	logger.Info("stopped")
}
