package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/taxflow-app/taxflow/gen/ent"
	genentity "github.com/taxflow-app/taxflow/gen/ent/entity"
	"github.com/taxflow-app/taxflow/internal/entity"
	"github.com/taxflow-app/taxflow/internal/utils"
)

type EntityRepository interface {
	ListByDocument(ctx context.Context, documentID uuid.UUID) ([]entity.Entity, error)
	ListByDocuments(ctx context.Context, documentIDs []uuid.UUID) ([]entity.Entity, error)
}

type entityRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewEntityRepository(client *ent.Client, logger *slog.Logger) EntityRepository {
	return &entityRepository{
		client: client,
		logger: logger,
	}
}

func (r *entityRepository) ListByDocument(ctx context.Context, documentID uuid.UUID) ([]entity.Entity, error) {
	return r.ListByDocuments(ctx, []uuid.UUID{documentID})
}

func (r *entityRepository) ListByDocuments(ctx context.Context, documentIDs []uuid.UUID) ([]entity.Entity, error) {
	if len(documentIDs) == 0 {
		return nil, nil
	}
	rows, err := r.client.Entity.Query().
		Where(genentity.DocumentIDIn(documentIDs...)).
		Order(ent.Asc(genentity.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list entities", "documents", len(documentIDs), "error", err)
		return nil, err
	}

	result := make([]entity.Entity, len(rows))
	for i, row := range rows {
		result[i] = utils.ToEntity(row)
	}
	return result, nil
}
