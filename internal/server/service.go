package server

import (
	"errors"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	taxflowpb "github.com/taxflow-app/taxflow/gen/proto/taxflow/v1"
	"github.com/taxflow-app/taxflow/internal/checklist"
	"github.com/taxflow-app/taxflow/internal/common"
	"github.com/taxflow-app/taxflow/internal/export"
	"github.com/taxflow-app/taxflow/internal/pipeline"
	"github.com/taxflow-app/taxflow/internal/repository"
)

type TaxFlowService struct {
	taxflowpb.UnimplementedTaxFlowServiceServer
	docRepo       repository.DocumentRepository
	entityRepo    repository.EntityRepository
	checklistRepo repository.ChecklistRepository
	parser        *pipeline.Parser
	generator     *checklist.Generator
	exporter      *export.Service
	logger        *slog.Logger
}

func NewTaxFlowService(
	docRepo repository.DocumentRepository,
	entityRepo repository.EntityRepository,
	checklistRepo repository.ChecklistRepository,
	parser *pipeline.Parser,
	generator *checklist.Generator,
	exporter *export.Service,
	logger *slog.Logger,
) *TaxFlowService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TaxFlowService{
		docRepo:       docRepo,
		entityRepo:    entityRepo,
		checklistRepo: checklistRepo,
		parser:        parser,
		generator:     generator,
		exporter:      exporter,
		logger:        logger,
	}
}

// toStatus maps domain errors onto gRPC codes. Unknown errors surface as
// Internal with a generic message; details stay in the server log.
func toStatus(err error, fallback string) error {
	switch {
	case errors.Is(err, common.ErrNotFound), errors.Is(err, common.ErrTaxYearNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, common.ErrAlreadyParsed), errors.Is(err, common.ErrMissingStoragePath):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, common.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, fallback)
	}
}
