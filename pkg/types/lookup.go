package types

// Lookup table names accepted by Store.Lookup.
const (
	LookupDomains           = "domains"
	LookupTeachingMethods   = "teaching_methods"
	LookupAssessmentMethods = "assessment_methods"
	LookupPriorities        = "priorities"
	LookupCompetencies      = "competencies"
	LookupIntegrations      = "integrations"
)

// LookupEntry is one code/full-form pair from a classification master.
// Lookup tables are seeded once and immutable afterwards.
type LookupEntry struct {
	Code         string `json:"code"`
	Full         string `json:"full"`
	Category     string `json:"category,omitempty"`
	DisplayOrder int    `json:"display_order"`
}
