// Package domain contains pure, dependency-free domain models and logic
// for the leader rating engine.
package domain

// Position identifies an elected office that citizens rate.
type Position string

// Elected positions recognized by the platform.
const (
	// PositionPresident is the single country-level office.
	PositionPresident Position = "president"

	// PositionGovernor heads a county government.
	PositionGovernor Position = "governor"

	// PositionMP represents a constituency in the national assembly.
	PositionMP Position = "mp"

	// PositionMCA represents a ward in the county assembly.
	PositionMCA Position = "mca"
)

// Valid reports whether p is one of the recognized positions.
func (p Position) Valid() bool {
	switch p {
	case PositionPresident, PositionGovernor, PositionMP, PositionMCA:
		return true
	}
	return false
}

// Level is the administrative tier a leadership position belongs to.
type Level string

// Administrative tiers, from widest to narrowest scope.
const (
	LevelCountry      Level = "country"
	LevelCounty       Level = "county"
	LevelConstituency Level = "constituency"
	LevelWard         Level = "ward"
)

// Valid reports whether l is one of the recognized levels.
func (l Level) Valid() bool {
	switch l {
	case LevelCountry, LevelCounty, LevelConstituency, LevelWard:
		return true
	}
	return false
}

// Levels lists all administrative tiers in display order.
// The slice is freshly allocated on each call so callers may modify it.
func Levels() []Level {
	return []Level{LevelCountry, LevelCounty, LevelConstituency, LevelWard}
}

// LevelFor returns the administrative tier at which a position is rated.
// Every position maps to exactly one level; an unrecognized position
// returns an empty Level.
func LevelFor(p Position) Level {
	switch p {
	case PositionPresident:
		return LevelCountry
	case PositionGovernor:
		return LevelCounty
	case PositionMP:
		return LevelConstituency
	case PositionMCA:
		return LevelWard
	}
	return ""
}

// ManifestoItem is a single policy area a leader committed to and is
// rated against.
type ManifestoItem struct {
	Title string `json:"title"`
}

// Geography locates a user or a leader within the administrative
// hierarchy. Fields are required progressively: a county-level record
// sets County only, a ward-level record sets all three.
type Geography struct {
	County       string `json:"county"`
	Constituency string `json:"constituency"`
	Ward         string `json:"ward"`
}

// Leader is a rated office holder. Geography fields are meaningful only
// for the tiers at or above the leader's level: a country-level leader
// carries no geography at all, a ward-level leader carries all three.
type Leader struct {
	// ID is the backend-assigned opaque identifier.
	ID string `json:"id"`

	// Name is the leader's display name. It is the only field an
	// admin may change after creation.
	Name string `json:"name"`

	Position Position `json:"position"`
	Level    Level    `json:"level"`

	County       string `json:"county,omitempty"`
	Constituency string `json:"constituency,omitempty"`
	Ward         string `json:"ward,omitempty"`

	// Manifesto holds the ordered policy areas this leader is rated
	// against. Order matches the topic catalog for the leader's level.
	Manifesto []ManifestoItem `json:"manifesto"`

	// AverageRating is the pooled mean of every rating value across
	// all of this leader's reviews, on the 1-4 scale. Zero means no
	// qualifying ratings exist.
	AverageRating float64 `json:"average_rating"`

	// TotalReviews counts the reviews behind AverageRating.
	TotalReviews int `json:"total_reviews,omitempty"`
}

// NewLeader is the payload for creating a leader record. The position
// determines the level and which geography fields are required.
type NewLeader struct {
	Name         string          `json:"name"`
	Position     Position        `json:"position"`
	Level        Level           `json:"level"`
	County       string          `json:"county,omitempty"`
	Constituency string          `json:"constituency,omitempty"`
	Ward         string          `json:"ward,omitempty"`
	Manifesto    []ManifestoItem `json:"manifesto"`
}

// Validate checks structural consistency of the payload: recognized
// position, level matching the position, and the geography subset the
// level requires. Region names are only checked for presence here;
// whether they exist in the reference dataset is the region directory's
// concern.
func (n NewLeader) Validate() error {
	v := NewValidationError("leader")

	if n.Name == "" {
		v.AddError("name is required")
	}
	if !n.Position.Valid() {
		v.AddError("unknown position: " + string(n.Position))
	} else if n.Level != LevelFor(n.Position) {
		v.AddError("level " + string(n.Level) + " does not match position " + string(n.Position))
	}

	switch n.Position {
	case PositionGovernor:
		if n.County == "" {
			v.AddError("county is required for governors")
		}
	case PositionMP:
		if n.County == "" || n.Constituency == "" {
			v.AddError("county and constituency are required for MPs")
		}
	case PositionMCA:
		if n.County == "" || n.Constituency == "" || n.Ward == "" {
			v.AddError("county, constituency and ward are required for MCAs")
		}
	}

	if len(n.Manifesto) == 0 {
		v.AddError("manifesto topics are required")
	}

	if v.HasErrors() {
		return v
	}
	return nil
}

// LeaderPatch carries the fields an authorized update may change.
// Nil fields are left untouched by the backend.
type LeaderPatch struct {
	Name *string `json:"name,omitempty"`
}
