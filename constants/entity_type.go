package constants

// EntityType is the closed set of document types the extractor may emit.
// These exact strings are stored in the database and embedded in the model
// prompt; changing one is a breaking change for both.
type EntityType string

const (
	W2           EntityType = "W2"
	NEC1099      EntityType = "1099-NEC"
	MISC1099     EntityType = "1099-MISC"
	INT1099      EntityType = "1099-INT"
	DIV1099      EntityType = "1099-DIV"
	Mortgage1098 EntityType = "1098"
	K1           EntityType = "K1"
	Receipt      EntityType = "RECEIPT"
	Other        EntityType = "OTHER"
)

// EntityTypes lists all types in classification-precedence order. Ambiguous
// documents resolve to the first matching marker, so order matters.
var EntityTypes = []EntityType{
	W2,
	NEC1099,
	MISC1099,
	INT1099,
	DIV1099,
	Mortgage1098,
	K1,
	Receipt,
	Other,
}

func EntityTypeStrings() []string {
	result := make([]string, len(EntityTypes))
	for i, t := range EntityTypes {
		result[i] = string(t)
	}
	return result
}

func IsEntityType(s string) bool {
	for _, t := range EntityTypes {
		if s == string(t) {
			return true
		}
	}
	return false
}
