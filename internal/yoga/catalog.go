// Package yoga holds the combination catalog: the static mapping from
// named yogas, as reported by the upstream detector, to the houses they
// influence and the points they carry. Each definition enumerates its
// affected houses explicitly; nothing is inferred from names or free-text
// descriptions at scoring time.
package yoga

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v2"

	"grahabala/pkg/contracts/chart"
)

//go:embed definitions.yaml
var definitionsYAML []byte

// Definition is one catalog entry. Points are signed: positive for
// supportive combinations, negative for afflictions.
type Definition struct {
	Name     string             `yaml:"name"`
	Category chart.YogaCategory `yaml:"category"`
	Points   float64            `yaml:"points"`
	Houses   []int              `yaml:"houses"`
}

// categoryDefault is the fallback applied to combination names the catalog
// does not know. Defaults are deliberately mild: an unknown name should
// nudge, not dominate.
type categoryDefault struct {
	Points float64 `yaml:"points"`
	Houses []int   `yaml:"houses"`
}

type catalogFile struct {
	Categories map[chart.YogaCategory]categoryDefault `yaml:"categories"`
	Yogas      []Definition                           `yaml:"yogas"`
}

// Catalog is the immutable, name-keyed combination catalog.
type Catalog struct {
	byName   map[string]Definition
	defaults map[chart.YogaCategory]categoryDefault
	count    int
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Load parses a catalog from YAML and validates every entry.
func Load(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing combination catalog: %w", err)
	}
	if len(file.Yogas) == 0 {
		return nil, fmt.Errorf("combination catalog is empty")
	}

	c := &Catalog{
		byName:   make(map[string]Definition, len(file.Yogas)),
		defaults: file.Categories,
		count:    len(file.Yogas),
	}
	for i, def := range file.Yogas {
		if strings.TrimSpace(def.Name) == "" {
			return nil, fmt.Errorf("catalog entry %d: empty name", i)
		}
		if !def.Category.IsValid() {
			return nil, fmt.Errorf("catalog entry %q: unknown category %q", def.Name, def.Category)
		}
		if def.Points == 0 {
			return nil, fmt.Errorf("catalog entry %q: zero points", def.Name)
		}
		if def.Category == chart.YogaCategoryAffliction && def.Points > 0 {
			return nil, fmt.Errorf("catalog entry %q: affliction with positive points", def.Name)
		}
		if len(def.Houses) == 0 {
			return nil, fmt.Errorf("catalog entry %q: no affected houses", def.Name)
		}
		for _, h := range def.Houses {
			if h < 1 || h > 12 {
				return nil, fmt.Errorf("catalog entry %q: house %d out of range", def.Name, h)
			}
		}
		key := NormalizeName(def.Name)
		if _, dup := c.byName[key]; dup {
			return nil, fmt.Errorf("catalog entry %q: duplicate normalized name %q", def.Name, key)
		}
		c.byName[key] = def
	}
	for cat, d := range file.Categories {
		if !cat.IsValid() {
			return nil, fmt.Errorf("catalog default for unknown category %q", cat)
		}
		if len(d.Houses) == 0 {
			return nil, fmt.Errorf("catalog default for %q: no houses", cat)
		}
	}
	return c, nil
}

// Default returns the embedded catalog, parsed once per process. The
// embedded document is fixed at build time, so a parse failure is a
// programming error and panics.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load(definitionsYAML)
		if err != nil {
			panic(fmt.Sprintf("embedded combination catalog is invalid: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// NormalizeName reduces a combination name to its lookup key: lowercase
// with spaces, hyphens and underscores removed, and a trailing "yoga" or
// "dosha" word dropped.
func NormalizeName(name string) string {
	k := strings.ToLower(strings.TrimSpace(name))
	for _, suffix := range []string{" yoga", " dosha", "-yoga", "-dosha", "_yoga", "_dosha"} {
		k = strings.TrimSuffix(k, suffix)
	}
	k = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(k)
	return k
}

// Lookup resolves a reported combination to its definition. Unknown names
// fall back to the category default (the "other" default when the category
// is also unknown); exact is false on any fallback.
func (c *Catalog) Lookup(name string, category chart.YogaCategory) (def Definition, exact bool) {
	if d, ok := c.byName[NormalizeName(name)]; ok {
		return d, true
	}
	cat := category
	if !cat.IsValid() {
		cat = chart.YogaCategoryOther
	}
	d, ok := c.defaults[cat]
	if !ok {
		d = c.defaults[chart.YogaCategoryOther]
	}
	return Definition{
		Name:     name,
		Category: cat,
		Points:   d.Points,
		Houses:   append([]int(nil), d.Houses...),
	}, false
}

// Size returns the number of named definitions.
func (c *Catalog) Size() int {
	return c.count
}

// StrengthMultiplier scales catalog points by the reported qualitative
// strength. Unreported labels count as moderate.
func StrengthMultiplier(s chart.YogaStrength) float64 {
	switch s {
	case chart.YogaStrengthStrong:
		return 1.0
	case chart.YogaStrengthWeak:
		return 0.35
	default:
		return 0.65
	}
}
