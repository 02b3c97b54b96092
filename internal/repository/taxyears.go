package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/taxflow-app/taxflow/gen/ent"
	"github.com/taxflow-app/taxflow/gen/ent/taxyear"
	"github.com/taxflow-app/taxflow/internal/common"
	"github.com/taxflow-app/taxflow/internal/entity"
	"github.com/taxflow-app/taxflow/internal/utils"
)

type TaxYearRepository interface {
	GetTaxYear(ctx context.Context, id uuid.UUID) (*entity.TaxYear, error)
	FindTaxYear(ctx context.Context, householdID uuid.UUID, year int) (*entity.TaxYear, error)
}

type taxYearRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewTaxYearRepository(client *ent.Client, logger *slog.Logger) TaxYearRepository {
	return &taxYearRepository{
		client: client,
		logger: logger,
	}
}

func (r *taxYearRepository) GetTaxYear(ctx context.Context, id uuid.UUID) (*entity.TaxYear, error) {
	ty, err := r.client.TaxYear.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", common.ErrTaxYearNotFound, id)
		}
		r.logger.Error("failed to get tax year", "tax_year_id", id, "error", err)
		return nil, err
	}
	return utils.ToTaxYear(ty), nil
}

func (r *taxYearRepository) FindTaxYear(ctx context.Context, householdID uuid.UUID, year int) (*entity.TaxYear, error) {
	ty, err := r.client.TaxYear.Query().
		Where(taxyear.HouseholdID(householdID), taxyear.Year(year)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: household %s year %d", common.ErrTaxYearNotFound, householdID, year)
		}
		r.logger.Error("failed to find tax year", "household_id", householdID, "year", year, "error", err)
		return nil, err
	}
	return utils.ToTaxYear(ty), nil
}
