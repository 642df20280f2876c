package application

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/uongozi/uongozi/internal/domain"
)

var titleCaser = cases.Title(language.English)

// PositionDisplayName renders a position token for the UI. Acronym
// positions keep their conventional short forms.
func PositionDisplayName(p domain.Position) string {
	switch p {
	case domain.PositionMP:
		return "Member of Parliament"
	case domain.PositionMCA:
		return "MCA"
	default:
		return titleCaser.String(string(p))
	}
}

// TabHeading renders the plural heading for an admin dashboard tab.
func TabHeading(p domain.Position) string {
	switch p {
	case domain.PositionMP:
		return "Members of Parliament"
	case domain.PositionMCA:
		return "MCAs"
	default:
		return titleCaser.String(string(p)) + "s"
	}
}

// LevelDisplayName renders a level token for the home dashboard tabs.
func LevelDisplayName(l domain.Level) string {
	return titleCaser.String(string(l))
}
