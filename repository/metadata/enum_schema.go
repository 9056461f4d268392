package metadata

const (
	EntityTypePerson       = "person"
	EntityTypeOrganization = "organization"
	EntityTypeLocation     = "location"
	EntityTypeUnknown      = "unknown"
)

const (
	DocCategoryFlightLog = "flight_log"
	DocCategoryLegal     = "legal"
	DocCategoryOther     = ""
)

const (
	RelationTypeCoOccurrence = "co_occurrence"
)
