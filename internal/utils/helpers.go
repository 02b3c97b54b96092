package utils

import (
	"github.com/taxflow-app/taxflow/constants"
	"github.com/taxflow-app/taxflow/gen/ent"
	"github.com/taxflow-app/taxflow/internal/entity"
)

// Converters from generated ent rows to the plain DTOs the rest of the code
// passes around. Repositories return DTOs so nothing above them links against
// generated code.

func ToDocument(d *ent.Document) *entity.Document {
	if d == nil {
		return nil
	}
	return &entity.Document{
		ID:          d.ID,
		HouseholdID: d.HouseholdID,
		TaxYearID:   d.TaxYearID,
		Source:      constants.DocumentSource(d.Source),
		Filename:    d.Filename,
		MIMEType:    d.MimeType,
		StoragePath: d.StoragePath,
		FileSize:    d.FileSize,
		Parsed:      d.Parsed,
		ParseError:  d.ParseError,
		UploadedAt:  d.UploadedAt,
	}
}

func ToEntity(e *ent.Entity) entity.Entity {
	return entity.Entity{
		ID:         e.ID,
		DocumentID: e.DocumentID,
		EntityType: constants.EntityType(e.EntityType),
		Key:        e.Key,
		Value:      e.Value,
		Confidence: e.Confidence,
		CreatedAt:  e.CreatedAt,
	}
}

func ToChecklistItem(ci *ent.ChecklistItem) *entity.ChecklistItem {
	if ci == nil {
		return nil
	}
	return &entity.ChecklistItem{
		ID:          ci.ID,
		TaxYearID:   ci.TaxYearID,
		Title:       ci.Title,
		Description: ci.Description,
		Status:      constants.ItemStatus(ci.Status),
		Required:    ci.Required,
		Category:    constants.ItemCategory(ci.Category),
		CreatedAt:   ci.CreatedAt,
		UpdatedAt:   ci.UpdatedAt,
	}
}

func ToTaxYear(ty *ent.TaxYear) *entity.TaxYear {
	if ty == nil {
		return nil
	}
	return &entity.TaxYear{
		ID:          ty.ID,
		HouseholdID: ty.HouseholdID,
		Year:        ty.Year,
		Status:      constants.TaxYearStatus(ty.Status),
		CreatedAt:   ty.CreatedAt,
		UpdatedAt:   ty.UpdatedAt,
	}
}
