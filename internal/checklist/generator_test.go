package checklist

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxflow-app/taxflow/constants"
	"github.com/taxflow-app/taxflow/internal/common"
	"github.com/taxflow-app/taxflow/internal/entity"
)

type fakeStores struct {
	taxYear   *entity.TaxYear
	refYear   *entity.TaxYear
	docIDs    []uuid.UUID
	entities  []entity.Entity
	replaced  []entity.ChecklistItem
	replaceTo uuid.UUID
}

func (f *fakeStores) GetTaxYear(_ context.Context, _ uuid.UUID) (*entity.TaxYear, error) {
	return f.taxYear, nil
}

func (f *fakeStores) FindTaxYear(_ context.Context, _ uuid.UUID, _ int) (*entity.TaxYear, error) {
	if f.refYear == nil {
		return nil, common.ErrTaxYearNotFound
	}
	return f.refYear, nil
}

func (f *fakeStores) ListParsedDocumentIDs(_ context.Context, _ uuid.UUID) ([]uuid.UUID, error) {
	return f.docIDs, nil
}

func (f *fakeStores) ListByDocuments(_ context.Context, _ []uuid.UUID) ([]entity.Entity, error) {
	return f.entities, nil
}

func (f *fakeStores) Replace(_ context.Context, taxYearID uuid.UUID, items []entity.ChecklistItem) (int, error) {
	f.replaceTo = taxYearID
	f.replaced = items
	return len(items), nil
}

func newFakes(year int) *fakeStores {
	return &fakeStores{
		taxYear: &entity.TaxYear{ID: uuid.New(), HouseholdID: uuid.New(), Year: year},
	}
}

func withRefYear(f *fakeStores) *fakeStores {
	f.refYear = &entity.TaxYear{ID: uuid.New(), HouseholdID: f.taxYear.HouseholdID, Year: f.taxYear.Year - 1}
	return f
}

func ent(t constants.EntityType, key, value string) entity.Entity {
	v := value
	return entity.Entity{ID: uuid.New(), DocumentID: uuid.New(), EntityType: t, Key: key, Value: &v}
}

func titles(items []entity.ChecklistItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Title
	}
	return out
}

func TestGenerateStandardWhenNoPreviousYear(t *testing.T) {
	f := newFakes(2025)
	g := NewGenerator(f, f, f, f, nil)

	res, err := g.Generate(context.Background(), f.taxYear.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 6, res.ItemsCreated)
	assert.Equal(t, "Generated standard checklist", res.Message)
	assert.False(t, res.Personalized)
	assert.Equal(t, f.taxYear.ID, f.replaceTo)
}

func TestGenerateStandardWhenNoParsedDocs(t *testing.T) {
	f := withRefYear(newFakes(2025))
	g := NewGenerator(f, f, f, f, nil)

	res, err := g.Generate(context.Background(), f.taxYear.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, "Generated standard checklist (no previous data)", res.Message)
	assert.Equal(t, 6, res.ItemsCreated)
}

func TestGenerateStandardWhenNoEntities(t *testing.T) {
	f := withRefYear(newFakes(2025))
	f.docIDs = []uuid.UUID{uuid.New()}
	g := NewGenerator(f, f, f, f, nil)

	res, err := g.Generate(context.Background(), f.taxYear.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, "Generated standard checklist (no entities found)", res.Message)
}

func TestGeneratePersonalized(t *testing.T) {
	f := withRefYear(newFakes(2025))
	f.docIDs = []uuid.UUID{uuid.New()}
	f.entities = []entity.Entity{
		ent(constants.W2, "employer_name", "Acme Corp"),
		ent(constants.W2, "wages_tips_compensation", "85000.00"),
		ent(constants.INT1099, "payer_name", "First Bank"),
		ent(constants.Receipt, "vendor_name", "Office Depot"),
	}
	g := NewGenerator(f, f, f, f, nil)

	res, err := g.Generate(context.Background(), f.taxYear.ID, 0)
	require.NoError(t, err)
	assert.True(t, res.Personalized)
	assert.Equal(t, "Generated personalized checklist", res.Message)

	got := titles(f.replaced)
	assert.Contains(t, got, "Request W-2 from Acme Corp")
	assert.Contains(t, got, "Obtain 1099-INT from First Bank")
	assert.Contains(t, got, "Gather business expense receipts")
	// standard set is always appended
	assert.Contains(t, got, "Charitable donation receipts")
	// 3 personalized + 6 standard
	assert.Equal(t, 9, res.ItemsCreated)
}

func TestGenerateDedupesByTitle(t *testing.T) {
	f := withRefYear(newFakes(2025))
	f.docIDs = []uuid.UUID{uuid.New()}
	f.entities = []entity.Entity{
		// Same payer on NEC and MISC forms collapses to one item.
		ent(constants.NEC1099, "payer_name", "Globex LLC"),
		ent(constants.MISC1099, "payer_name", "Globex LLC"),
		// Same employer on two W-2 documents.
		ent(constants.W2, "employer_name", "Acme Corp"),
		ent(constants.W2, "employer_name", "Acme Corp"),
	}
	g := NewGenerator(f, f, f, f, nil)

	res, err := g.Generate(context.Background(), f.taxYear.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 8, res.ItemsCreated)

	count := 0
	for _, title := range titles(f.replaced) {
		if title == "Collect 1099 from Globex LLC" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestGenerateDeterministicOrder(t *testing.T) {
	f := withRefYear(newFakes(2025))
	f.docIDs = []uuid.UUID{uuid.New()}
	// Entities arrive K1-first; output must still lead with W-2.
	f.entities = []entity.Entity{
		ent(constants.K1, "entity_name", "Partners LP"),
		ent(constants.W2, "employer_name", "Acme Corp"),
	}
	g := NewGenerator(f, f, f, f, nil)

	_, err := g.Generate(context.Background(), f.taxYear.ID, 0)
	require.NoError(t, err)

	got := titles(f.replaced)
	require.GreaterOrEqual(t, len(got), 2)
	assert.Equal(t, "Request W-2 from Acme Corp", got[0])
	assert.Equal(t, "Request K-1 from Partners LP", got[1])
}

func TestGenerateIgnoresOtherAndMissingNames(t *testing.T) {
	f := withRefYear(newFakes(2025))
	f.docIDs = []uuid.UUID{uuid.New()}
	f.entities = []entity.Entity{
		ent(constants.Other, "filename", "mystery.pdf"),
		{ID: uuid.New(), DocumentID: uuid.New(), EntityType: constants.W2, Key: "employer_name", Value: nil},
	}
	g := NewGenerator(f, f, f, f, nil)

	res, err := g.Generate(context.Background(), f.taxYear.ID, 0)
	require.NoError(t, err)
	// nothing personalizable, only the standard six
	assert.Equal(t, 6, res.ItemsCreated)
}

func TestGenerateExplicitReferenceYear(t *testing.T) {
	f := withRefYear(newFakes(2025))
	g := NewGenerator(f, f, f, f, nil)

	_, err := g.Generate(context.Background(), f.taxYear.ID, 2023)
	require.NoError(t, err)

	_, err = g.Generate(context.Background(), f.taxYear.ID, 2025)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestStandardItemsYearInterpolation(t *testing.T) {
	items := standardItems(2025)
	require.Len(t, items, 6)
	assert.Contains(t, *items[0].Description, "2025")
	for _, it := range items {
		assert.Equal(t, constants.StatusTodo, it.Status)
		assert.False(t, it.Required)
	}
}

func TestPreserveStatuses(t *testing.T) {
	desc := "d"
	old := []entity.ChecklistItem{
		{Title: "Request W-2 from Acme Corp", Status: constants.StatusDone, Description: &desc},
		{Title: "Charitable donation receipts", Status: constants.StatusInProgress},
	}
	fresh := []entity.ChecklistItem{
		{Title: "Request W-2 from Acme Corp", Status: constants.StatusTodo},
		{Title: "Charitable donation receipts", Status: constants.StatusTodo},
		{Title: "HSA contribution statements", Status: constants.StatusTodo},
	}

	out := PreserveStatuses(old, fresh)
	assert.Equal(t, constants.StatusDone, out[0].Status)
	assert.Equal(t, constants.StatusInProgress, out[1].Status)
	assert.Equal(t, constants.StatusTodo, out[2].Status)
}
