package checklist

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/taxflow-app/taxflow/constants"
	"github.com/taxflow-app/taxflow/internal/common"
	"github.com/taxflow-app/taxflow/internal/entity"
)

// TaxYearStore is the slice of the repository the generator needs for year
// lookups.
type TaxYearStore interface {
	GetTaxYear(ctx context.Context, id uuid.UUID) (*entity.TaxYear, error)
	// FindTaxYear returns common.ErrTaxYearNotFound when the household has no
	// row for that year.
	FindTaxYear(ctx context.Context, householdID uuid.UUID, year int) (*entity.TaxYear, error)
}

type DocumentStore interface {
	ListParsedDocumentIDs(ctx context.Context, taxYearID uuid.UUID) ([]uuid.UUID, error)
}

type EntityStore interface {
	ListByDocuments(ctx context.Context, documentIDs []uuid.UUID) ([]entity.Entity, error)
}

// ChecklistStore replaces a tax year's items in one transaction. Statuses of
// surviving titles must be carried over from the replaced set; see
// PreserveStatuses.
type ChecklistStore interface {
	Replace(ctx context.Context, taxYearID uuid.UUID, items []entity.ChecklistItem) (int, error)
}

type GenerateResult struct {
	ItemsCreated int
	Message      string
	Personalized bool
}

// Generator builds a tax year's document checklist from the previous year's
// extracted entities, falling back to a standard list when there is nothing
// to personalize from.
type Generator struct {
	taxYears TaxYearStore
	docs     DocumentStore
	entities EntityStore
	items    ChecklistStore
	logger   *slog.Logger
}

func NewGenerator(taxYears TaxYearStore, docs DocumentStore, entities EntityStore, items ChecklistStore, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{taxYears: taxYears, docs: docs, entities: entities, items: items, logger: logger}
}

// Generate replaces the checklist for taxYearID. referenceYear names the
// year whose parsed documents seed the personalized items; pass 0 to use the
// year before the target.
func (g *Generator) Generate(ctx context.Context, taxYearID uuid.UUID, referenceYear int) (*GenerateResult, error) {
	ty, err := g.taxYears.GetTaxYear(ctx, taxYearID)
	if err != nil {
		return nil, err
	}
	if referenceYear == 0 {
		referenceYear = ty.Year - 1
	}
	if referenceYear >= ty.Year {
		return nil, fmt.Errorf("%w: reference year %d is not before target year %d", common.ErrInvalidInput, referenceYear, ty.Year)
	}

	g.logger.Info("checklist.generate.start",
		"tax_year_id", taxYearID,
		"year", ty.Year,
		"reference_year", referenceYear,
	)

	refYear, err := g.taxYears.FindTaxYear(ctx, ty.HouseholdID, referenceYear)
	if err != nil {
		if errors.Is(err, common.ErrTaxYearNotFound) || errors.Is(err, common.ErrNotFound) {
			return g.replace(ctx, taxYearID, standardItems(ty.Year), "Generated standard checklist")
		}
		return nil, err
	}

	docIDs, err := g.docs.ListParsedDocumentIDs(ctx, refYear.ID)
	if err != nil {
		return nil, err
	}
	if len(docIDs) == 0 {
		return g.replace(ctx, taxYearID, standardItems(ty.Year), "Generated standard checklist (no previous data)")
	}

	entities, err := g.entities.ListByDocuments(ctx, docIDs)
	if err != nil {
		return nil, err
	}
	if len(entities) == 0 {
		return g.replace(ctx, taxYearID, standardItems(ty.Year), "Generated standard checklist (no entities found)")
	}

	items := personalizedItems(entities, ty.Year)
	res, err := g.replace(ctx, taxYearID, items, "Generated personalized checklist")
	if err != nil {
		return nil, err
	}
	res.Personalized = true
	return res, nil
}

func (g *Generator) replace(ctx context.Context, taxYearID uuid.UUID, items []entity.ChecklistItem, message string) (*GenerateResult, error) {
	n, err := g.items.Replace(ctx, taxYearID, items)
	if err != nil {
		return nil, err
	}
	g.logger.Info("checklist.generate.ok", "tax_year_id", taxYearID, "items", n, "message", message)
	return &GenerateResult{ItemsCreated: n, Message: message}, nil
}

// personalizedItems stamps one item per distinct name per document type,
// appends the standard set, and dedupes by title keeping the first
// occurrence. Types iterate in classification-precedence order so output is
// stable regardless of entity row order.
func personalizedItems(entities []entity.Entity, year int) []entity.ChecklistItem {
	byType := make(map[constants.EntityType][]entity.Entity, len(templates))
	for _, e := range entities {
		byType[e.EntityType] = append(byType[e.EntityType], e)
	}

	var items []entity.ChecklistItem
	for _, et := range constants.EntityTypes {
		tpl, ok := templates[et]
		if !ok {
			continue
		}
		group := byType[et]
		if len(group) == 0 {
			continue
		}
		if tpl.nameKey == "" {
			items = append(items, newItem(tpl.title("", year), tpl.desc("", year), tpl.required, tpl.category))
			continue
		}
		for _, name := range distinctValues(group, tpl.nameKey) {
			items = append(items, newItem(tpl.title(name, year), tpl.desc(name, year), tpl.required, tpl.category))
		}
	}

	items = append(items, standardItems(year)...)
	return dedupeByTitle(items)
}

// distinctValues returns non-empty values for key, in first-seen order.
func distinctValues(group []entity.Entity, key string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, e := range group {
		if e.Key != key || e.Value == nil || *e.Value == "" {
			continue
		}
		if _, ok := seen[*e.Value]; ok {
			continue
		}
		seen[*e.Value] = struct{}{}
		out = append(out, *e.Value)
	}
	return out
}

func dedupeByTitle(items []entity.ChecklistItem) []entity.ChecklistItem {
	seen := make(map[string]struct{}, len(items))
	out := items[:0]
	for _, it := range items {
		if _, ok := seen[it.Title]; ok {
			continue
		}
		seen[it.Title] = struct{}{}
		out = append(out, it)
	}
	return out
}

// PreserveStatuses copies the status of any old item onto the new item with
// the same title. Regenerating a checklist must not reset work the user
// already tracked.
func PreserveStatuses(old, items []entity.ChecklistItem) []entity.ChecklistItem {
	prev := make(map[string]constants.ItemStatus, len(old))
	for _, it := range old {
		if _, ok := prev[it.Title]; !ok {
			prev[it.Title] = it.Status
		}
	}
	for i := range items {
		if st, ok := prev[items[i].Title]; ok {
			items[i].Status = st
		}
	}
	return items
}
