package catalog

// DisplayCategory is the canonical bucket a requirement is shown under.
// Dozens of raw sub-category labels from the framework texts collapse into
// this small set; anything unrecognised lands in the informational bucket so
// an evolving catalog never breaks an assessment.
type DisplayCategory string

const (
	CategoryAuthorization DisplayCategory = "authorization"
	CategorySafety        DisplayCategory = "safety"
	CategoryCybersecurity DisplayCategory = "cybersecurity"
	CategoryEnvironment   DisplayCategory = "environment"
	CategorySupervision   DisplayCategory = "supervision"
	CategoryInformational DisplayCategory = "informational"
)

// DisplayCategories lists the scoring-relevant buckets in display order.
// CategoryInformational is excluded: it carries no weight.
func DisplayCategories() []DisplayCategory {
	return []DisplayCategory{
		CategoryAuthorization,
		CategorySafety,
		CategoryCybersecurity,
		CategoryEnvironment,
		CategorySupervision,
	}
}

// displayCategoryByRawLabel is the fixed many-to-one lookup collapsing raw
// catalog labels into display categories. Keep additions here when framework
// texts introduce new sub-types.
var displayCategoryByRawLabel = map[string]DisplayCategory{
	// Authorization and market access
	"authorisation":        CategoryAuthorization,
	"authorization":        CategoryAuthorization,
	"licensing":            CategoryAuthorization,
	"registration":         CategoryAuthorization,
	"market_access":        CategoryAuthorization,
	"insurance":            CategoryAuthorization,
	"financial_guarantees": CategoryAuthorization,
	"ownership_transfer":   CategoryAuthorization,

	// Safety of operations
	"safety":              CategorySafety,
	"collision_avoidance": CategorySafety,
	"debris_mitigation":   CategorySafety,
	"disposal":            CategorySafety,
	"maneuverability":     CategorySafety,
	"launch_safety":       CategorySafety,
	"reentry_safety":      CategorySafety,
	"ground_safety":       CategorySafety,
	"tracking":            CategorySafety,

	// Cybersecurity and resilience
	"cybersecurity":       CategoryCybersecurity,
	"cyber_resilience":    CategoryCybersecurity,
	"incident_reporting":  CategoryCybersecurity,
	"incident_handling":   CategoryCybersecurity,
	"risk_management":     CategoryCybersecurity,
	"supply_chain":        CategoryCybersecurity,
	"encryption":          CategoryCybersecurity,
	"access_control":      CategoryCybersecurity,
	"business_continuity": CategoryCybersecurity,

	// Environmental footprint
	"environment":          CategoryEnvironment,
	"environmental_impact": CategoryEnvironment,
	"dark_quiet_skies":     CategoryEnvironment,
	"footprint":            CategoryEnvironment,
	"emissions":            CategoryEnvironment,

	// Supervision and reporting duties
	"supervision":        CategorySupervision,
	"reporting":          CategorySupervision,
	"notification":       CategorySupervision,
	"record_keeping":     CategorySupervision,
	"audits":             CategorySupervision,
	"significant_change": CategorySupervision,
}

// NormalizeCategory maps a raw catalog label to its display category.
// Unknown labels degrade to CategoryInformational by design rule, never an
// error: catalogs evolve faster than this table.
func NormalizeCategory(raw string) DisplayCategory {
	if c, ok := displayCategoryByRawLabel[raw]; ok {
		return c
	}
	return CategoryInformational
}
