package utils

import (
	"time"

	taxflowpb "github.com/taxflow-app/taxflow/gen/proto/taxflow/v1"
	"github.com/taxflow-app/taxflow/internal/entity"
)

func ToPBDocument(d *entity.Document) *taxflowpb.Document {
	out := &taxflowpb.Document{
		Id:          d.ID.String(),
		HouseholdId: d.HouseholdID.String(),
		TaxYearId:   d.TaxYearID.String(),
		Source:      string(d.Source),
		Filename:    d.Filename,
		MimeType:    d.MIMEType,
		Parsed:      d.Parsed,
		UploadedAt:  d.UploadedAt.Format(time.RFC3339Nano),
	}
	if d.StoragePath != nil {
		out.StoragePath = *d.StoragePath
	}
	if d.FileSize != nil {
		out.FileSize = int64(*d.FileSize)
	}
	if d.ParseError != nil {
		out.ParseError = *d.ParseError
	}
	return out
}

func ToPBEntity(e entity.Entity) *taxflowpb.Entity {
	out := &taxflowpb.Entity{
		Id:         e.ID.String(),
		DocumentId: e.DocumentID.String(),
		EntityType: string(e.EntityType),
		Key:        e.Key,
		CreatedAt:  e.CreatedAt.Format(time.RFC3339Nano),
	}
	if e.Value != nil {
		out.Value = *e.Value
		out.HasValue = true
	}
	if e.Confidence != nil {
		out.Confidence = *e.Confidence
	}
	return out
}

func ToPBChecklistItem(ci *entity.ChecklistItem) *taxflowpb.ChecklistItem {
	out := &taxflowpb.ChecklistItem{
		Id:        ci.ID.String(),
		TaxYearId: ci.TaxYearID.String(),
		Title:     ci.Title,
		Status:    string(ci.Status),
		Required:  ci.Required,
		Category:  string(ci.Category),
		CreatedAt: ci.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt: ci.UpdatedAt.Format(time.RFC3339Nano),
	}
	if ci.Description != nil {
		out.Description = *ci.Description
	}
	return out
}
