// Package regions provides the geographic reference dataset behind the
// cascading county, constituency and ward selectors. The dataset is an
// opaque lookup table loaded from YAML; nothing else in the system
// hardcodes region names.
package regions

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/uongozi/uongozi/internal/domain"
	"github.com/uongozi/uongozi/internal/ports"
)

//go:embed dataset.yaml
var embeddedDataset []byte

var validate = validator.New()

// dataset is the YAML shape of the reference data.
type dataset struct {
	Counties []countyRecord `yaml:"counties" validate:"required,min=1,dive"`
}

type countyRecord struct {
	Name           string               `yaml:"name" validate:"required"`
	Constituencies []constituencyRecord `yaml:"constituencies" validate:"dive"`
}

type constituencyRecord struct {
	Name  string   `yaml:"name" validate:"required"`
	Wards []string `yaml:"wards" validate:"dive,required"`
}

// Directory implements ports.RegionDirectory over a parsed dataset.
// Lookups preserve dataset order so selector options render the way
// the dataset lists them.
type Directory struct {
	counties       []string
	constituencies map[string][]string
	wards          map[string][]string
}

var _ ports.RegionDirectory = (*Directory)(nil)

// Load builds a directory from the YAML dataset at path. An empty path
// falls back to the embedded dataset.
func Load(path string) (*Directory, error) {
	if path == "" {
		return Parse(embeddedDataset)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read region dataset: %w", err)
	}
	return Parse(data)
}

// Parse builds a directory from raw YAML dataset bytes.
func Parse(data []byte) (*Directory, error) {
	var ds dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parse region dataset: %w", err)
	}
	if err := validate.Struct(ds); err != nil {
		return nil, fmt.Errorf("invalid region dataset: %w", err)
	}

	dir := &Directory{
		counties:       make([]string, 0, len(ds.Counties)),
		constituencies: make(map[string][]string),
		wards:          make(map[string][]string),
	}
	for _, county := range ds.Counties {
		dir.counties = append(dir.counties, county.Name)
		for _, constituency := range county.Constituencies {
			dir.constituencies[county.Name] = append(dir.constituencies[county.Name], constituency.Name)
			key := wardKey(county.Name, constituency.Name)
			dir.wards[key] = append(dir.wards[key], constituency.Wards...)
		}
	}
	return dir, nil
}

func wardKey(county, constituency string) string { return county + "\x00" + constituency }

// Counties implements ports.RegionDirectory.
func (d *Directory) Counties() []string {
	out := make([]string, len(d.counties))
	copy(out, d.counties)
	return out
}

// Constituencies implements ports.RegionDirectory.
func (d *Directory) Constituencies(county string) []string {
	src := d.constituencies[county]
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// Wards implements ports.RegionDirectory.
func (d *Directory) Wards(county, constituency string) []string {
	src := d.wards[wardKey(county, constituency)]
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// Validate implements ports.RegionDirectory. The triple is checked
// progressively: a constituency is only meaningful under its county and
// a ward only under its constituency, so each level requires its
// parents.
func (d *Directory) Validate(geo domain.Geography) error {
	if geo.County == "" {
		return fmt.Errorf("county is required")
	}
	if !contains(d.counties, geo.County) {
		return fmt.Errorf("unknown county %q", geo.County)
	}

	if geo.Constituency == "" {
		if geo.Ward != "" {
			return fmt.Errorf("ward %q given without a constituency", geo.Ward)
		}
		return nil
	}
	if !contains(d.constituencies[geo.County], geo.Constituency) {
		return fmt.Errorf("unknown constituency %q in county %q", geo.Constituency, geo.County)
	}

	if geo.Ward == "" {
		return nil
	}
	if !contains(d.wards[wardKey(geo.County, geo.Constituency)], geo.Ward) {
		return fmt.Errorf("unknown ward %q in constituency %q", geo.Ward, geo.Constituency)
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
