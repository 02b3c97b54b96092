package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxflow-app/taxflow/constants"
	"github.com/taxflow-app/taxflow/internal/common"
	"github.com/taxflow-app/taxflow/internal/entity"
	"github.com/taxflow-app/taxflow/internal/extract"
	"github.com/taxflow-app/taxflow/internal/llm"
)

type fakeDocs struct {
	doc          *entity.Document
	getErr       error
	failedWith   string
	inserted     []entity.Entity
	insertErr    error
	markFailedN  int
	insertCalled bool
}

func (f *fakeDocs) GetDocument(_ context.Context, _ uuid.UUID) (*entity.Document, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.doc, nil
}

func (f *fakeDocs) MarkParseFailed(_ context.Context, _ uuid.UUID, message string) error {
	f.markFailedN++
	f.failedWith = message
	return nil
}

func (f *fakeDocs) InsertEntitiesAndMarkParsed(_ context.Context, _ uuid.UUID, rows []entity.Entity) error {
	f.insertCalled = true
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = rows
	return nil
}

type fakeFetcher struct {
	data []byte
	err  error
}

func (f *fakeFetcher) Fetch(_ context.Context, _ string) ([]byte, error) {
	return f.data, f.err
}

type fakeExtractor struct {
	text string
	err  error
}

func (f *fakeExtractor) Extract(_ context.Context, _ []byte, _ string) (extract.ExtractionResult, error) {
	if f.err != nil {
		return extract.ExtractionResult{}, f.err
	}
	return extract.ExtractionResult{Text: f.text, Pages: 1, Method: "pdf-text"}, nil
}

type fakeClassifier struct {
	analysis llm.DocumentAnalysis
	err      error
}

func (f *fakeClassifier) ClassifyAndExtract(_ context.Context, _, _ string) (llm.DocumentAnalysis, error) {
	return f.analysis, f.err
}

func pdfDoc() *entity.Document {
	path := "2025/w2.pdf"
	return &entity.Document{
		ID:          uuid.New(),
		TaxYearID:   uuid.New(),
		Filename:    "w2.pdf",
		MIMEType:    constants.MIMEPDF,
		StoragePath: &path,
	}
}

func strp(s string) *string { return &s }

func TestParseHappyPath(t *testing.T) {
	docs := &fakeDocs{doc: pdfDoc()}
	cls := &fakeClassifier{analysis: llm.DocumentAnalysis{
		EntityType: constants.W2,
		Fields: []llm.ExtractedField{
			{Key: "employer_name", Value: strp("Acme Corp"), Confidence: 95},
			{Key: "wages_tips_compensation", Value: strp("85000.00"), Confidence: 90},
		},
	}}
	p := NewParser(docs, &fakeFetcher{data: []byte("%PDF")}, &fakeExtractor{text: "Form W-2 Wage and Tax Statement"}, cls, nil)

	res, err := p.Parse(context.Background(), docs.doc.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.W2, res.EntityType)
	assert.Equal(t, 2, res.EntitiesCount)
	require.Len(t, docs.inserted, 2)
	assert.Equal(t, "employer_name", docs.inserted[0].Key)
	assert.Equal(t, constants.W2, docs.inserted[0].EntityType)
	require.NotNil(t, docs.inserted[0].Confidence)
	assert.Equal(t, 95.0, *docs.inserted[0].Confidence)
	assert.Zero(t, docs.markFailedN)
}

func TestParseAlreadyParsed(t *testing.T) {
	doc := pdfDoc()
	doc.Parsed = true
	docs := &fakeDocs{doc: doc}
	p := NewParser(docs, &fakeFetcher{}, &fakeExtractor{}, &fakeClassifier{}, nil)

	_, err := p.Parse(context.Background(), doc.ID)
	assert.True(t, errors.Is(err, common.ErrAlreadyParsed))
	assert.False(t, docs.insertCalled)
}

func TestParseMissingStoragePath(t *testing.T) {
	doc := pdfDoc()
	doc.StoragePath = nil
	docs := &fakeDocs{doc: doc}
	p := NewParser(docs, &fakeFetcher{}, &fakeExtractor{}, &fakeClassifier{}, nil)

	_, err := p.Parse(context.Background(), doc.ID)
	assert.True(t, errors.Is(err, common.ErrMissingStoragePath))
	assert.Equal(t, 1, docs.markFailedN)
}

func TestParseDownloadFailureMarksError(t *testing.T) {
	docs := &fakeDocs{doc: pdfDoc()}
	p := NewParser(docs, &fakeFetcher{err: errors.New("boom")}, &fakeExtractor{}, &fakeClassifier{}, nil)

	_, err := p.Parse(context.Background(), docs.doc.ID)
	assert.True(t, errors.Is(err, common.ErrDownloadFailed))
	assert.Equal(t, "Failed to download file from storage", docs.failedWith)
	assert.False(t, docs.insertCalled)
}

func TestParseExtractionFailureMarksError(t *testing.T) {
	docs := &fakeDocs{doc: pdfDoc()}
	p := NewParser(docs, &fakeFetcher{data: []byte("x")}, &fakeExtractor{err: errors.New("invalid pdf")}, &fakeClassifier{}, nil)

	_, err := p.Parse(context.Background(), docs.doc.ID)
	assert.True(t, errors.Is(err, common.ErrExtractionFailed))
	assert.Equal(t, 1, docs.markFailedN)
	assert.Contains(t, docs.failedWith, "invalid pdf")
}

func TestParseNonPDFGetsPlaceholder(t *testing.T) {
	doc := pdfDoc()
	doc.Filename = "photo.jpg"
	doc.MIMEType = "image/jpeg"
	docs := &fakeDocs{doc: doc}
	// Fetcher and extractor would fail if touched.
	p := NewParser(docs, &fakeFetcher{err: errors.New("unreachable")}, &fakeExtractor{err: errors.New("unreachable")}, &fakeClassifier{}, nil)

	res, err := p.Parse(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.Other, res.EntityType)
	require.Len(t, docs.inserted, 2)
	assert.Equal(t, "filename", docs.inserted[0].Key)
	assert.Equal(t, "photo.jpg", *docs.inserted[0].Value)
	assert.Equal(t, "note", docs.inserted[1].Key)
}

func TestParseCancellationLeavesDocumentUntouched(t *testing.T) {
	docs := &fakeDocs{doc: pdfDoc()}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := NewParser(docs, &fakeFetcher{err: ctx.Err()}, &fakeExtractor{}, &fakeClassifier{}, nil)

	_, err := p.Parse(ctx, docs.doc.ID)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Zero(t, docs.markFailedN)
	assert.False(t, docs.insertCalled)
}

func TestParseConcurrentRaceSurfacesAlreadyParsed(t *testing.T) {
	docs := &fakeDocs{doc: pdfDoc(), insertErr: common.ErrAlreadyParsed}
	cls := &fakeClassifier{analysis: llm.DocumentAnalysis{EntityType: constants.Receipt}}
	p := NewParser(docs, &fakeFetcher{data: []byte("x")}, &fakeExtractor{text: "receipt"}, cls, nil)

	_, err := p.Parse(context.Background(), docs.doc.ID)
	assert.True(t, errors.Is(err, common.ErrAlreadyParsed))
}

func TestParseZeroFieldsStillMarksParsed(t *testing.T) {
	docs := &fakeDocs{doc: pdfDoc()}
	cls := &fakeClassifier{analysis: llm.DocumentAnalysis{EntityType: constants.Other}}
	p := NewParser(docs, &fakeFetcher{data: []byte("x")}, &fakeExtractor{text: "unreadable"}, cls, nil)

	res, err := p.Parse(context.Background(), docs.doc.ID)
	require.NoError(t, err)
	assert.True(t, docs.insertCalled)
	assert.Zero(t, res.EntitiesCount)
}
