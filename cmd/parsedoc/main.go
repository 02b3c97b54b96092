// parsedoc runs the parse pipeline for a single document, straight against
// the database and the model, without going through the daemon. Useful for
// reprocessing a stuck document or debugging extraction.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/google/uuid"

	"github.com/taxflow-app/taxflow/internal/common"
	"github.com/taxflow-app/taxflow/internal/extract"
	"github.com/taxflow-app/taxflow/internal/llm"
	"github.com/taxflow-app/taxflow/internal/llm/openai"
	"github.com/taxflow-app/taxflow/internal/pipeline"
	"github.com/taxflow-app/taxflow/internal/repository"
	"github.com/taxflow-app/taxflow/internal/storage"
)

func main() {
	docFlag := flag.String("doc", "", "document id (uuid) to parse")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	docID, err := uuid.Parse(*docFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "usage: parsedoc -doc <uuid>")
		os.Exit(2)
	}

	cfg, err := common.LoadConfig()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if cfg.OpenAI.APIKey == "" {
		logger.Error("OPENAI_API_KEY env var is required")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:         cfg.Database.DSN,
		MaxConns:    5,
		MinConns:    1,
		DialTimeout: cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	store, err := storage.NewFSStore(cfg.Storage.Root, logger)
	if err != nil {
		logger.Error("failed to open document store", "root", cfg.Storage.Root, "error", err)
		os.Exit(1)
	}

	docRepo := repository.NewDocumentRepository(entc, logger)
	analyzer := openai.NewClient(openai.Config{
		APIKey:      cfg.OpenAI.APIKey,
		BaseURL:     cfg.OpenAI.BaseURL,
		Model:       cfg.OpenAI.Model,
		Temperature: cfg.OpenAI.Temperature,
		Timeout:     cfg.OpenAI.Timeout,
	}, logger)
	parser := pipeline.NewParser(docRepo, store, extract.NewExtractor(extract.Config{}, logger), llm.NewClassifier(analyzer, logger), logger)

	res, err := parser.Parse(ctx, docID)
	if err != nil {
		logger.Error("parse failed", "document_id", docID, "error", err)
		os.Exit(1)
	}

	fmt.Printf("document: %s\n", res.DocumentID)
	fmt.Printf("type:     %s\n", res.EntityType)
	fmt.Printf("entities: %d\n", res.EntitiesCount)
	for _, e := range res.Entities {
		val := "<null>"
		if e.Value != nil {
			val = *e.Value
		}
		conf := 0.0
		if e.Confidence != nil {
			conf = *e.Confidence
		}
		fmt.Printf("  %-36s %-50s %5.1f\n", e.Key, val, conf)
	}
}
