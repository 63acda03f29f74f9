package promotion

import (
	_ "embed"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/listing"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

const discountPlaceholder = "{discount}"

type Trend struct {
	Category            listing.ServiceType `yaml:"category"`
	Name                string              `yaml:"name"`
	Popularity          int                 `yaml:"popularity"`
	RecommendedDiscount int                 `yaml:"recommendedDiscount"`
	PeakSeason          string              `yaml:"peakSeason"`
}

type PhraseBank struct {
	PeakSeason   string   `yaml:"peakSeason"`
	Names        []string `yaml:"names"`
	Descriptions []string `yaml:"descriptions"`
}

type Catalog struct {
	Trends  []Trend                            `yaml:"trends"`
	Phrases map[listing.ServiceType]PhraseBank `yaml:"phrases"`
}

func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, errs.Wrap(err, "parse promotion catalog")
	}
	fallback, ok := c.Phrases[listing.TypeStays]
	if !ok || len(fallback.Names) == 0 || len(fallback.Descriptions) == 0 {
		return nil, errs.New("promotion catalog must define stays phrases")
	}
	return &c, nil
}

// DefaultCatalog is the catalog compiled into the binary.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCatalogYAML)
}

func (c *Catalog) TrendsFor(t listing.ServiceType) []Trend {
	var out []Trend
	for _, tr := range c.Trends {
		if tr.Category == t {
			out = append(out, tr)
		}
	}
	return out
}

// PhrasesFor falls back to the stays bank for unknown or unlisted types.
func (c *Catalog) PhrasesFor(t listing.ServiceType) PhraseBank {
	if pb, ok := c.Phrases[t]; ok && len(pb.Names) > 0 && len(pb.Descriptions) > 0 {
		return pb
	}
	return c.Phrases[listing.TypeStays]
}
