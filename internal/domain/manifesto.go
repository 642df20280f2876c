package domain

// ManifestoTopics returns the ordered policy areas leaders at the given
// level are rated against. The catalog is fixed per level: country=12,
// county=7, constituency=6, ward=6. An unknown level yields an empty
// slice, not an error. Ordering is significant: it drives chart axis
// order and review form order, so it is stable across calls.
func ManifestoTopics(level Level) []string {
	switch level {
	case LevelCountry:
		return []string{
			"Agriculture",
			"Micro, Small, and Medium Enterprises (MSMEs)",
			"Housing and Settlement",
			"Healthcare",
			"Digital Superhighway and Creative Economy",
			"Social Protection",
			"Women’s Agenda",
			"Education",
			"Infrastructure",
			"Water and Sanitation",
			"Environment and Climate Change",
			"Governance",
		}
	case LevelCounty:
		return []string{
			"Agriculture and Food Security",
			"Infrastructure Development",
			"Healthcare Access and Quality",
			"Education and Youth Empowerment",
			"Economic Empowerment and MSMEs",
			"Environmental Sustainability and Climate Change",
			"Governance and Devolution",
		}
	case LevelConstituency:
		return []string{
			"Education",
			"Infrastructure",
			"Health",
			"Economic Empowerment",
			"Water and Sanitation",
			"Youth and Sports Development",
		}
	case LevelWard:
		return []string{
			"Sanitation",
			"Youth Empowerment",
			"Roads",
			"Community Development",
			"Healthcare Access",
			"Local Economic Initiatives",
		}
	}
	return []string{}
}

// DefaultManifesto builds the manifesto item list a new leader record
// at the given level is created with.
func DefaultManifesto(level Level) []ManifestoItem {
	topics := ManifestoTopics(level)
	items := make([]ManifestoItem, len(topics))
	for i, t := range topics {
		items[i] = ManifestoItem{Title: t}
	}
	return items
}
