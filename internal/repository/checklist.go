package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/taxflow-app/taxflow/constants"
	"github.com/taxflow-app/taxflow/gen/ent"
	"github.com/taxflow-app/taxflow/gen/ent/checklistitem"
	"github.com/taxflow-app/taxflow/internal/checklist"
	"github.com/taxflow-app/taxflow/internal/common"
	"github.com/taxflow-app/taxflow/internal/entity"
	"github.com/taxflow-app/taxflow/internal/utils"
)

type ChecklistRepository interface {
	List(ctx context.Context, taxYearID uuid.UUID) ([]*entity.ChecklistItem, error)
	Replace(ctx context.Context, taxYearID uuid.UUID, items []entity.ChecklistItem) (int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status constants.ItemStatus) (*entity.ChecklistItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type checklistRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewChecklistRepository(client *ent.Client, logger *slog.Logger) ChecklistRepository {
	return &checklistRepository{
		client: client,
		logger: logger,
	}
}

func (r *checklistRepository) List(ctx context.Context, taxYearID uuid.UUID) ([]*entity.ChecklistItem, error) {
	rows, err := r.client.ChecklistItem.Query().
		Where(checklistitem.TaxYearID(taxYearID)).
		Order(ent.Asc(checklistitem.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list checklist items", "tax_year_id", taxYearID, "error", err)
		return nil, err
	}

	result := make([]*entity.ChecklistItem, len(rows))
	for i, row := range rows {
		result[i] = utils.ToChecklistItem(row)
	}
	return result, nil
}

// Replace swaps the tax year's checklist for items in one transaction.
// Statuses of titles that survive the regeneration are carried over from the
// old set so the user's progress is not reset.
func (r *checklistRepository) Replace(ctx context.Context, taxYearID uuid.UUID, items []entity.ChecklistItem) (int, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return 0, err
	}

	oldRows, err := tx.ChecklistItem.Query().
		Where(checklistitem.TaxYearID(taxYearID)).
		All(ctx)
	if err != nil {
		return 0, rollback(tx, err)
	}
	old := make([]entity.ChecklistItem, len(oldRows))
	for i, row := range oldRows {
		old[i] = *utils.ToChecklistItem(row)
	}
	items = checklist.PreserveStatuses(old, items)

	if _, err := tx.ChecklistItem.Delete().
		Where(checklistitem.TaxYearID(taxYearID)).
		Exec(ctx); err != nil {
		return 0, rollback(tx, err)
	}

	builders := make([]*ent.ChecklistItemCreate, len(items))
	for i, it := range items {
		builders[i] = tx.ChecklistItem.Create().
			SetTaxYearID(taxYearID).
			SetTitle(it.Title).
			SetNillableDescription(it.Description).
			SetStatus(string(it.Status)).
			SetRequired(it.Required).
			SetCategory(string(it.Category))
	}
	if _, err := tx.ChecklistItem.CreateBulk(builders...).Save(ctx); err != nil {
		return 0, rollback(tx, err)
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("failed to commit checklist replacement", "tax_year_id", taxYearID, "error", err)
		return 0, err
	}
	return len(items), nil
}

func (r *checklistRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status constants.ItemStatus) (*entity.ChecklistItem, error) {
	row, err := r.client.ChecklistItem.UpdateOneID(id).
		SetStatus(string(status)).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: checklist item %s", common.ErrNotFound, id)
		}
		r.logger.Error("failed to update checklist item", "item_id", id, "error", err)
		return nil, err
	}
	return utils.ToChecklistItem(row), nil
}

func (r *checklistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.client.ChecklistItem.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: checklist item %s", common.ErrNotFound, id)
		}
		r.logger.Error("failed to delete checklist item", "item_id", id, "error", err)
		return err
	}
	return nil
}
