package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/taxflow-app/taxflow/constants"
	"github.com/taxflow-app/taxflow/internal/common"
	"github.com/taxflow-app/taxflow/internal/entity"
	"github.com/taxflow-app/taxflow/internal/extract"
	"github.com/taxflow-app/taxflow/internal/llm"
	"github.com/taxflow-app/taxflow/internal/storage"
)

// maxParseErrorLen bounds what we persist on the document row; stderr dumps
// and model transcripts do not belong in the database.
const maxParseErrorLen = 500

// DocumentStore is the slice of the repository the parser needs.
type DocumentStore interface {
	GetDocument(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	MarkParseFailed(ctx context.Context, id uuid.UUID, message string) error
	// InsertEntitiesAndMarkParsed persists the extracted rows and flips the
	// parsed flag in one transaction. It must fail with
	// common.ErrAlreadyParsed when the document was parsed concurrently.
	InsertEntitiesAndMarkParsed(ctx context.Context, id uuid.UUID, rows []entity.Entity) error
}

// Classifier is what the parser needs from the LLM layer.
type Classifier interface {
	ClassifyAndExtract(ctx context.Context, text, filename string) (llm.DocumentAnalysis, error)
}

type ParseResult struct {
	DocumentID    uuid.UUID
	EntityType    constants.EntityType
	EntitiesCount int
	Entities      []entity.Entity
}

// Parser drives one document through fetch, text extraction, classification,
// and persistence. A document ends in exactly one of two states: parsed with
// its entities, or failed with a parse error recorded. Context cancellation
// is the exception and leaves the document untouched for a retry.
type Parser struct {
	docs       DocumentStore
	store      storage.Fetcher
	text       extract.TextExtractor
	classifier Classifier
	logger     *slog.Logger
}

func NewParser(docs DocumentStore, store storage.Fetcher, text extract.TextExtractor, classifier Classifier, logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{docs: docs, store: store, text: text, classifier: classifier, logger: logger}
}

func (p *Parser) Parse(ctx context.Context, documentID uuid.UUID) (*ParseResult, error) {
	doc, err := p.docs.GetDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if doc.Parsed {
		return nil, fmt.Errorf("%w: %s", common.ErrAlreadyParsed, documentID)
	}
	if doc.StoragePath == nil || *doc.StoragePath == "" {
		if markErr := p.docs.MarkParseFailed(ctx, documentID, "No storage path recorded for document"); markErr != nil {
			p.logger.Error("pipeline.parse.mark_failed_error", "document_id", documentID, "error", markErr)
		}
		return nil, fmt.Errorf("%w: %s", common.ErrMissingStoragePath, documentID)
	}

	p.logger.Info("pipeline.parse.start",
		"document_id", documentID,
		"filename", doc.Filename,
		"mime_type", doc.MIMEType,
	)

	var analysis llm.DocumentAnalysis
	if doc.MIMEType != constants.MIMEPDF {
		// No OCR yet; persist a deterministic placeholder so the upload is
		// visible downstream instead of stuck unparsed.
		p.logger.Info("pipeline.parse.placeholder", "document_id", documentID, "mime_type", doc.MIMEType)
		analysis = llm.PlaceholderAnalysis(doc.Filename)
	} else {
		data, err := p.store.Fetch(ctx, *doc.StoragePath)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			if markErr := p.docs.MarkParseFailed(ctx, documentID, "Failed to download file from storage"); markErr != nil {
				p.logger.Error("pipeline.parse.mark_failed_error", "document_id", documentID, "error", markErr)
			}
			return nil, fmt.Errorf("%w: %v", common.ErrDownloadFailed, err)
		}

		extraction, err := p.text.Extract(ctx, data, doc.Filename)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			if markErr := p.docs.MarkParseFailed(ctx, documentID, truncateMsg(err.Error())); markErr != nil {
				p.logger.Error("pipeline.parse.mark_failed_error", "document_id", documentID, "error", markErr)
			}
			return nil, fmt.Errorf("%w: %v", common.ErrExtractionFailed, err)
		}
		for _, w := range extraction.Warnings {
			p.logger.Warn("pipeline.parse.extract_warning", "document_id", documentID, "warning", w)
		}

		analysis, err = p.classifier.ClassifyAndExtract(ctx, extraction.Text, doc.Filename)
		if err != nil {
			// Only cancellation escapes the classifier's fallback policy.
			return nil, err
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows := buildEntityRows(documentID, analysis)
	if err := p.docs.InsertEntitiesAndMarkParsed(ctx, documentID, rows); err != nil {
		return nil, err
	}

	p.logger.Info("pipeline.parse.ok",
		"document_id", documentID,
		"entity_type", analysis.EntityType,
		"entities", len(rows),
	)
	return &ParseResult{
		DocumentID:    documentID,
		EntityType:    analysis.EntityType,
		EntitiesCount: len(rows),
		Entities:      rows,
	}, nil
}

func buildEntityRows(documentID uuid.UUID, analysis llm.DocumentAnalysis) []entity.Entity {
	rows := make([]entity.Entity, 0, len(analysis.Fields))
	for _, f := range analysis.Fields {
		conf := f.Confidence
		rows = append(rows, entity.Entity{
			DocumentID: documentID,
			EntityType: analysis.EntityType,
			Key:        f.Key,
			Value:      f.Value,
			Confidence: &conf,
		})
	}
	return rows
}

func truncateMsg(s string) string {
	if len(s) <= maxParseErrorLen {
		return s
	}
	return s[:maxParseErrorLen]
}
