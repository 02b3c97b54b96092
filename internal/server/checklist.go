package server

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/taxflow-app/taxflow/constants"
	taxflowpb "github.com/taxflow-app/taxflow/gen/proto/taxflow/v1"
	"github.com/taxflow-app/taxflow/internal/utils"
)

func (s *TaxFlowService) GenerateChecklist(ctx context.Context, req *taxflowpb.GenerateChecklistRequest) (*taxflowpb.GenerateChecklistResponse, error) {
	taxYearID, err := parseUUIDField(req.GetTaxYearId(), "tax_year_id")
	if err != nil {
		return nil, err
	}

	res, err := s.generator.Generate(ctx, taxYearID, int(req.GetReferenceYear()))
	if err != nil {
		s.logger.Error("failed to generate checklist", "tax_year_id", taxYearID, "error", err)
		return nil, toStatus(err, "generate checklist failed")
	}

	return &taxflowpb.GenerateChecklistResponse{
		ItemsCreated: int32(res.ItemsCreated),
		Message:      res.Message,
		Personalized: res.Personalized,
	}, nil
}

func (s *TaxFlowService) ListChecklist(ctx context.Context, req *taxflowpb.ListChecklistRequest) (*taxflowpb.ListChecklistResponse, error) {
	taxYearID, err := parseUUIDField(req.GetTaxYearId(), "tax_year_id")
	if err != nil {
		return nil, err
	}

	items, err := s.checklistRepo.List(ctx, taxYearID)
	if err != nil {
		s.logger.Error("failed to list checklist", "tax_year_id", taxYearID, "error", err)
		return nil, toStatus(err, "list checklist failed")
	}

	out := make([]*taxflowpb.ChecklistItem, 0, len(items))
	for _, it := range items {
		out = append(out, utils.ToPBChecklistItem(it))
	}
	return &taxflowpb.ListChecklistResponse{Items: out}, nil
}

func (s *TaxFlowService) UpdateChecklistItemStatus(ctx context.Context, req *taxflowpb.UpdateChecklistItemStatusRequest) (*taxflowpb.UpdateChecklistItemStatusResponse, error) {
	itemID, err := parseUUIDField(req.GetItemId(), "item_id")
	if err != nil {
		return nil, err
	}
	if !constants.IsItemStatus(req.GetStatus()) {
		return nil, status.Errorf(codes.InvalidArgument, "status must be one of %v", constants.ItemStatuses)
	}

	item, err := s.checklistRepo.UpdateStatus(ctx, itemID, constants.ItemStatus(req.GetStatus()))
	if err != nil {
		s.logger.Error("failed to update checklist item", "item_id", itemID, "error", err)
		return nil, toStatus(err, "update checklist item failed")
	}
	return &taxflowpb.UpdateChecklistItemStatusResponse{Item: utils.ToPBChecklistItem(item)}, nil
}

func (s *TaxFlowService) DeleteChecklistItem(ctx context.Context, req *taxflowpb.DeleteChecklistItemRequest) (*taxflowpb.DeleteChecklistItemResponse, error) {
	itemID, err := parseUUIDField(req.GetItemId(), "item_id")
	if err != nil {
		return nil, err
	}

	if err := s.checklistRepo.Delete(ctx, itemID); err != nil {
		s.logger.Error("failed to delete checklist item", "item_id", itemID, "error", err)
		return nil, toStatus(err, "delete checklist item failed")
	}
	return &taxflowpb.DeleteChecklistItemResponse{}, nil
}
