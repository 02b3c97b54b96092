package server

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	taxflowpb "github.com/taxflow-app/taxflow/gen/proto/taxflow/v1"
	"github.com/taxflow-app/taxflow/internal/utils"
)

func parseUUIDField(raw, name string) (uuid.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s is required", name)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s must be a UUID", name)
	}
	return id, nil
}

func (s *TaxFlowService) ParseDocument(ctx context.Context, req *taxflowpb.ParseDocumentRequest) (*taxflowpb.ParseDocumentResponse, error) {
	docID, err := parseUUIDField(req.GetDocumentId(), "document_id")
	if err != nil {
		return nil, err
	}

	s.logger.Info("parsing document", "document_id", docID)
	res, err := s.parser.Parse(ctx, docID)
	if err != nil {
		s.logger.Error("failed to parse document", "document_id", docID, "error", err)
		return nil, toStatus(err, "parse document failed")
	}

	out := make([]*taxflowpb.Entity, 0, len(res.Entities))
	for _, e := range res.Entities {
		out = append(out, utils.ToPBEntity(e))
	}
	return &taxflowpb.ParseDocumentResponse{
		DocumentId:    docID.String(),
		EntityType:    string(res.EntityType),
		EntitiesCount: int32(res.EntitiesCount),
		Entities:      out,
	}, nil
}

func (s *TaxFlowService) ListDocuments(ctx context.Context, req *taxflowpb.ListDocumentsRequest) (*taxflowpb.ListDocumentsResponse, error) {
	taxYearID, err := parseUUIDField(req.GetTaxYearId(), "tax_year_id")
	if err != nil {
		return nil, err
	}

	docs, err := s.docRepo.ListDocuments(ctx, taxYearID)
	if err != nil {
		s.logger.Error("failed to list documents", "tax_year_id", taxYearID, "error", err)
		return nil, toStatus(err, "list documents failed")
	}

	out := make([]*taxflowpb.Document, 0, len(docs))
	for _, d := range docs {
		out = append(out, utils.ToPBDocument(d))
	}
	return &taxflowpb.ListDocumentsResponse{Documents: out}, nil
}

func (s *TaxFlowService) DeleteDocument(ctx context.Context, req *taxflowpb.DeleteDocumentRequest) (*taxflowpb.DeleteDocumentResponse, error) {
	docID, err := parseUUIDField(req.GetDocumentId(), "document_id")
	if err != nil {
		return nil, err
	}

	if err := s.docRepo.DeleteDocument(ctx, docID); err != nil {
		s.logger.Error("failed to delete document", "document_id", docID, "error", err)
		return nil, toStatus(err, "delete document failed")
	}
	s.logger.Info("document deleted", "document_id", docID)
	return &taxflowpb.DeleteDocumentResponse{}, nil
}

func (s *TaxFlowService) ListDocumentEntities(ctx context.Context, req *taxflowpb.ListDocumentEntitiesRequest) (*taxflowpb.ListDocumentEntitiesResponse, error) {
	docID, err := parseUUIDField(req.GetDocumentId(), "document_id")
	if err != nil {
		return nil, err
	}

	entities, err := s.entityRepo.ListByDocument(ctx, docID)
	if err != nil {
		s.logger.Error("failed to list entities", "document_id", docID, "error", err)
		return nil, toStatus(err, "list entities failed")
	}

	out := make([]*taxflowpb.Entity, 0, len(entities))
	for _, e := range entities {
		out = append(out, utils.ToPBEntity(e))
	}
	return &taxflowpb.ListDocumentEntitiesResponse{Entities: out}, nil
}
