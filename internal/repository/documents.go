package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/taxflow-app/taxflow/gen/ent"
	"github.com/taxflow-app/taxflow/gen/ent/document"
	"github.com/taxflow-app/taxflow/internal/common"
	"github.com/taxflow-app/taxflow/internal/entity"
	"github.com/taxflow-app/taxflow/internal/utils"
)

type DocumentRepository interface {
	GetDocument(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	ListDocuments(ctx context.Context, taxYearID uuid.UUID) ([]*entity.Document, error)
	ListParsedDocumentIDs(ctx context.Context, taxYearID uuid.UUID) ([]uuid.UUID, error)
	DeleteDocument(ctx context.Context, id uuid.UUID) error
	MarkParseFailed(ctx context.Context, id uuid.UUID, message string) error
	InsertEntitiesAndMarkParsed(ctx context.Context, id uuid.UUID, rows []entity.Entity) error
}

type documentRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(client *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepository{
		client: client,
		logger: logger,
	}
}

func (r *documentRepository) GetDocument(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	d, err := r.client.Document.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: document %s", common.ErrNotFound, id)
		}
		r.logger.Error("failed to get document", "document_id", id, "error", err)
		return nil, err
	}
	return utils.ToDocument(d), nil
}

func (r *documentRepository) ListDocuments(ctx context.Context, taxYearID uuid.UUID) ([]*entity.Document, error) {
	docs, err := r.client.Document.Query().
		Where(document.TaxYearID(taxYearID)).
		Order(ent.Desc(document.FieldUploadedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list documents", "tax_year_id", taxYearID, "error", err)
		return nil, err
	}

	result := make([]*entity.Document, len(docs))
	for i, d := range docs {
		result[i] = utils.ToDocument(d)
	}
	return result, nil
}

func (r *documentRepository) ListParsedDocumentIDs(ctx context.Context, taxYearID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := r.client.Document.Query().
		Where(document.TaxYearID(taxYearID), document.Parsed(true)).
		IDs(ctx)
	if err != nil {
		r.logger.Error("failed to list parsed document ids", "tax_year_id", taxYearID, "error", err)
		return nil, err
	}
	return ids, nil
}

func (r *documentRepository) DeleteDocument(ctx context.Context, id uuid.UUID) error {
	// entities go with it via the cascade on the edge
	err := r.client.Document.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: document %s", common.ErrNotFound, id)
		}
		r.logger.Error("failed to delete document", "document_id", id, "error", err)
		return err
	}
	return nil
}

func (r *documentRepository) MarkParseFailed(ctx context.Context, id uuid.UUID, message string) error {
	err := r.client.Document.UpdateOneID(id).
		SetParsed(false).
		SetParseError(message).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: document %s", common.ErrNotFound, id)
		}
		r.logger.Error("failed to record parse error", "document_id", id, "error", err)
		return err
	}
	return nil
}

// InsertEntitiesAndMarkParsed persists the extracted rows and flips the
// parsed flag in one transaction. The update is conditional on parsed still
// being false; losing that race rolls everything back and reports
// common.ErrAlreadyParsed, so two concurrent parses can never double-insert.
func (r *documentRepository) InsertEntitiesAndMarkParsed(ctx context.Context, id uuid.UUID, rows []entity.Entity) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return err
	}

	builders := make([]*ent.EntityCreate, len(rows))
	for i, row := range rows {
		builders[i] = tx.Entity.Create().
			SetDocumentID(id).
			SetEntityType(string(row.EntityType)).
			SetKey(row.Key).
			SetNillableValue(row.Value).
			SetNillableConfidence(row.Confidence)
	}
	if _, err := tx.Entity.CreateBulk(builders...).Save(ctx); err != nil {
		return rollback(tx, err)
	}

	n, err := tx.Document.Update().
		Where(document.ID(id), document.Parsed(false)).
		SetParsed(true).
		ClearParseError().
		Save(ctx)
	if err != nil {
		return rollback(tx, err)
	}
	if n == 0 {
		return rollback(tx, fmt.Errorf("%w: %s", common.ErrAlreadyParsed, id))
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("failed to commit parse results", "document_id", id, "error", err)
		return err
	}
	return nil
}

func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return fmt.Errorf("%w: rollback failed: %v", err, rerr)
	}
	return err
}
