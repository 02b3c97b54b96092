package constants

// ItemStatus is the canonical status for checklist items.
// Stable values (store these exact strings in DB).
type ItemStatus string

const (
	StatusTodo       ItemStatus = "todo"
	StatusInProgress ItemStatus = "in_progress"
	StatusDone       ItemStatus = "done"
)

var ItemStatuses = []string{
	string(StatusTodo),
	string(StatusInProgress),
	string(StatusDone),
}

func IsItemStatus(s string) bool {
	for _, v := range ItemStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// TaxYearStatus tracks a tax year through the collection workflow.
type TaxYearStatus string

const (
	TaxYearCollecting TaxYearStatus = "collecting"
	TaxYearReviewing  TaxYearStatus = "reviewing"
	TaxYearReady      TaxYearStatus = "ready"
	TaxYearExported   TaxYearStatus = "exported"
)

var TaxYearStatuses = []string{
	string(TaxYearCollecting),
	string(TaxYearReviewing),
	string(TaxYearReady),
	string(TaxYearExported),
}

// DocumentSource records where a document came from.
type DocumentSource string

const (
	SourceUpload DocumentSource = "upload"
	SourceGmail  DocumentSource = "gmail"
	SourceDrive  DocumentSource = "drive"
	SourceManual DocumentSource = "manual"
)

var DocumentSources = []string{
	string(SourceUpload),
	string(SourceGmail),
	string(SourceDrive),
	string(SourceManual),
}
