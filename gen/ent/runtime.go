// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/taxflow-app/taxflow/db/ent/schema"
	"github.com/taxflow-app/taxflow/gen/ent/checklistitem"
	"github.com/taxflow-app/taxflow/gen/ent/document"
	"github.com/taxflow-app/taxflow/gen/ent/entity"
	"github.com/taxflow-app/taxflow/gen/ent/household"
	"github.com/taxflow-app/taxflow/gen/ent/taxyear"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	checklistitemFields := schema.ChecklistItem{}.Fields()
	_ = checklistitemFields
	// checklistitemDescTitle is the schema descriptor for title field.
	checklistitemDescTitle := checklistitemFields[2].Descriptor()
	// checklistitem.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	checklistitem.TitleValidator = checklistitemDescTitle.Validators[0].(func(string) error)
	// checklistitemDescStatus is the schema descriptor for status field.
	checklistitemDescStatus := checklistitemFields[4].Descriptor()
	// checklistitem.DefaultStatus holds the default value on creation for the status field.
	checklistitem.DefaultStatus = checklistitemDescStatus.Default.(string)
	// checklistitem.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	checklistitem.StatusValidator = checklistitemDescStatus.Validators[0].(func(string) error)
	// checklistitemDescRequired is the schema descriptor for required field.
	checklistitemDescRequired := checklistitemFields[5].Descriptor()
	// checklistitem.DefaultRequired holds the default value on creation for the required field.
	checklistitem.DefaultRequired = checklistitemDescRequired.Default.(bool)
	// checklistitemDescCategory is the schema descriptor for category field.
	checklistitemDescCategory := checklistitemFields[6].Descriptor()
	// checklistitem.DefaultCategory holds the default value on creation for the category field.
	checklistitem.DefaultCategory = checklistitemDescCategory.Default.(string)
	// checklistitem.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	checklistitem.CategoryValidator = checklistitemDescCategory.Validators[0].(func(string) error)
	// checklistitemDescCreatedAt is the schema descriptor for created_at field.
	checklistitemDescCreatedAt := checklistitemFields[7].Descriptor()
	// checklistitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	checklistitem.DefaultCreatedAt = checklistitemDescCreatedAt.Default.(func() time.Time)
	// checklistitemDescUpdatedAt is the schema descriptor for updated_at field.
	checklistitemDescUpdatedAt := checklistitemFields[8].Descriptor()
	// checklistitem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	checklistitem.DefaultUpdatedAt = checklistitemDescUpdatedAt.Default.(func() time.Time)
	// checklistitem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	checklistitem.UpdateDefaultUpdatedAt = checklistitemDescUpdatedAt.UpdateDefault.(func() time.Time)
	// checklistitemDescID is the schema descriptor for id field.
	checklistitemDescID := checklistitemFields[0].Descriptor()
	// checklistitem.DefaultID holds the default value on creation for the id field.
	checklistitem.DefaultID = checklistitemDescID.Default.(func() uuid.UUID)
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescSource is the schema descriptor for source field.
	documentDescSource := documentFields[3].Descriptor()
	// document.DefaultSource holds the default value on creation for the source field.
	document.DefaultSource = documentDescSource.Default.(string)
	// document.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	document.SourceValidator = documentDescSource.Validators[0].(func(string) error)
	// documentDescFilename is the schema descriptor for filename field.
	documentDescFilename := documentFields[4].Descriptor()
	// document.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	document.FilenameValidator = documentDescFilename.Validators[0].(func(string) error)
	// documentDescMimeType is the schema descriptor for mime_type field.
	documentDescMimeType := documentFields[5].Descriptor()
	// document.DefaultMimeType holds the default value on creation for the mime_type field.
	document.DefaultMimeType = documentDescMimeType.Default.(string)
	// documentDescParsed is the schema descriptor for parsed field.
	documentDescParsed := documentFields[8].Descriptor()
	// document.DefaultParsed holds the default value on creation for the parsed field.
	document.DefaultParsed = documentDescParsed.Default.(bool)
	// documentDescUploadedAt is the schema descriptor for uploaded_at field.
	documentDescUploadedAt := documentFields[10].Descriptor()
	// document.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	document.DefaultUploadedAt = documentDescUploadedAt.Default.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	entityFields := schema.Entity{}.Fields()
	_ = entityFields
	// entityDescEntityType is the schema descriptor for entity_type field.
	entityDescEntityType := entityFields[2].Descriptor()
	// entity.EntityTypeValidator is a validator for the "entity_type" field. It is called by the builders before save.
	entity.EntityTypeValidator = entityDescEntityType.Validators[0].(func(string) error)
	// entityDescKey is the schema descriptor for key field.
	entityDescKey := entityFields[3].Descriptor()
	// entity.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	entity.KeyValidator = entityDescKey.Validators[0].(func(string) error)
	// entityDescConfidence is the schema descriptor for confidence field.
	entityDescConfidence := entityFields[5].Descriptor()
	// entity.ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	entity.ConfidenceValidator = func() func(float64) error {
		validators := entityDescConfidence.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(confidence float64) error {
			for _, fn := range fns {
				if err := fn(confidence); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// entityDescCreatedAt is the schema descriptor for created_at field.
	entityDescCreatedAt := entityFields[6].Descriptor()
	// entity.DefaultCreatedAt holds the default value on creation for the created_at field.
	entity.DefaultCreatedAt = entityDescCreatedAt.Default.(func() time.Time)
	// entityDescID is the schema descriptor for id field.
	entityDescID := entityFields[0].Descriptor()
	// entity.DefaultID holds the default value on creation for the id field.
	entity.DefaultID = entityDescID.Default.(func() uuid.UUID)
	householdFields := schema.Household{}.Fields()
	_ = householdFields
	// householdDescName is the schema descriptor for name field.
	householdDescName := householdFields[1].Descriptor()
	// household.NameValidator is a validator for the "name" field. It is called by the builders before save.
	household.NameValidator = householdDescName.Validators[0].(func(string) error)
	// householdDescCreatedAt is the schema descriptor for created_at field.
	householdDescCreatedAt := householdFields[2].Descriptor()
	// household.DefaultCreatedAt holds the default value on creation for the created_at field.
	household.DefaultCreatedAt = householdDescCreatedAt.Default.(func() time.Time)
	// householdDescUpdatedAt is the schema descriptor for updated_at field.
	householdDescUpdatedAt := householdFields[3].Descriptor()
	// household.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	household.DefaultUpdatedAt = householdDescUpdatedAt.Default.(func() time.Time)
	// household.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	household.UpdateDefaultUpdatedAt = householdDescUpdatedAt.UpdateDefault.(func() time.Time)
	// householdDescID is the schema descriptor for id field.
	householdDescID := householdFields[0].Descriptor()
	// household.DefaultID holds the default value on creation for the id field.
	household.DefaultID = householdDescID.Default.(func() uuid.UUID)
	taxyearFields := schema.TaxYear{}.Fields()
	_ = taxyearFields
	// taxyearDescYear is the schema descriptor for year field.
	taxyearDescYear := taxyearFields[2].Descriptor()
	// taxyear.YearValidator is a validator for the "year" field. It is called by the builders before save.
	taxyear.YearValidator = taxyearDescYear.Validators[0].(func(int) error)
	// taxyearDescStatus is the schema descriptor for status field.
	taxyearDescStatus := taxyearFields[3].Descriptor()
	// taxyear.DefaultStatus holds the default value on creation for the status field.
	taxyear.DefaultStatus = taxyearDescStatus.Default.(string)
	// taxyear.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	taxyear.StatusValidator = taxyearDescStatus.Validators[0].(func(string) error)
	// taxyearDescCreatedAt is the schema descriptor for created_at field.
	taxyearDescCreatedAt := taxyearFields[4].Descriptor()
	// taxyear.DefaultCreatedAt holds the default value on creation for the created_at field.
	taxyear.DefaultCreatedAt = taxyearDescCreatedAt.Default.(func() time.Time)
	// taxyearDescUpdatedAt is the schema descriptor for updated_at field.
	taxyearDescUpdatedAt := taxyearFields[5].Descriptor()
	// taxyear.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	taxyear.DefaultUpdatedAt = taxyearDescUpdatedAt.Default.(func() time.Time)
	// taxyear.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	taxyear.UpdateDefaultUpdatedAt = taxyearDescUpdatedAt.UpdateDefault.(func() time.Time)
	// taxyearDescID is the schema descriptor for id field.
	taxyearDescID := taxyearFields[0].Descriptor()
	// taxyear.DefaultID holds the default value on creation for the id field.
	taxyear.DefaultID = taxyearDescID.Default.(func() uuid.UUID)
}
