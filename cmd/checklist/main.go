// checklist regenerates a tax year's checklist from the command line and
// prints the resulting items.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/google/uuid"

	"github.com/taxflow-app/taxflow/internal/checklist"
	"github.com/taxflow-app/taxflow/internal/common"
	"github.com/taxflow-app/taxflow/internal/repository"
)

func main() {
	tyFlag := flag.String("tax-year", "", "tax year id (uuid)")
	refYear := flag.Int("reference-year", 0, "year to personalize from (default: year before target)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	taxYearID, err := uuid.Parse(*tyFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "usage: checklist -tax-year <uuid> [-reference-year YYYY]")
		os.Exit(2)
	}

	cfg, err := common.LoadConfig()
	if err != nil {
		logger.Error("failed to load config", "error", err)
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

	taxYearRepo := repository.NewTaxYearRepository(entc, logger)
	docRepo := repository.NewDocumentRepository(entc, logger)
	entityRepo := repository.NewEntityRepository(entc, logger)
	checklistRepo := repository.NewChecklistRepository(entc, logger)

	gen := checklist.NewGenerator(taxYearRepo, docRepo, entityRepo, checklistRepo, logger)
	res, err := gen.Generate(ctx, taxYearID, *refYear)
	if err != nil {
		logger.Error("generate failed", "tax_year_id", taxYearID, "error", err)
		os.Exit(1)
	}

	fmt.Printf("%s (%d items)\n", res.Message, res.ItemsCreated)
	items, err := checklistRepo.List(ctx, taxYearID)
	if err != nil {
		logger.Error("list failed", "tax_year_id", taxYearID, "error", err)
		os.Exit(1)
	}
	for _, it := range items {
		req := " "
		if it.Required {
			req = "*"
		}
		fmt.Printf("  [%s] %-11s %-10s %s\n", req, it.Status, it.Category, it.Title)
	}
}
