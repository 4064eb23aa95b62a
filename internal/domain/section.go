package domain

const (
	SectionLocal     = "local"
	SectionSports    = "sports"
	SectionSchools   = "schools"
	SectionBusiness  = "business"
	SectionCommunity = "community"
)

// SectionOrder is the stable priority order used for quota tie-breaks and
// deterministic candidate merging.
var SectionOrder = []string{
	SectionLocal,
	SectionSports,
	SectionSchools,
	SectionBusiness,
	SectionCommunity,
}

// NormalizeSection maps unknown section names to the default section.
func NormalizeSection(s string) string {
	for _, known := range SectionOrder {
		if s == known {
			return s
		}
	}
	return SectionLocal
}
