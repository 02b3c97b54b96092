package server

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	taxflowpb "github.com/taxflow-app/taxflow/gen/proto/taxflow/v1"
)

func (s *TaxFlowService) ExportChecklist(ctx context.Context, req *taxflowpb.ExportChecklistRequest) (*taxflowpb.ExportChecklistResponse, error) {
	taxYearID, err := parseUUIDField(req.GetTaxYearId(), "tax_year_id")
	if err != nil {
		return nil, err
	}
	outPath := strings.TrimSpace(req.GetOutputPath())
	if outPath == "" {
		return nil, status.Error(codes.InvalidArgument, "output_path is required")
	}
	if filepath.Ext(outPath) != ".xlsx" {
		outPath += ".xlsx"
	}

	data, rows, err := s.exporter.ExportChecklistXLSX(ctx, taxYearID)
	if err != nil {
		s.logger.Error("failed to export checklist", "tax_year_id", taxYearID, "error", err)
		return nil, toStatus(err, "export checklist failed")
	}

	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		s.logger.Error("failed to write export file", "path", outPath, "error", err)
		return nil, status.Errorf(codes.Internal, "write export file: %v", err)
	}

	s.logger.Info("checklist exported", "tax_year_id", taxYearID, "path", outPath, "rows", rows)
	return &taxflowpb.ExportChecklistResponse{
		OutputPath: outPath,
		Rows:       int32(rows),
	}, nil
}
