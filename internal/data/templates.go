package data

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Template holds the static data for one entity type loaded from YAML.
// Durations are plain seconds in the file; the factory converts them.
type Template struct {
	Name   string  `yaml:"name"`
	Team   string  `yaml:"team"` // "player", "hostile", "neutral"
	Radius float64 `yaml:"radius"`
	Health int     `yaml:"health"`
	Damage int     `yaml:"damage"` // contact damage
	Speed  float64 `yaml:"speed"`  // cruise speed, world units per second
	Score  int     `yaml:"score"`

	Lifetime float64 `yaml:"lifetime,omitempty"` // seconds, 0 = unlimited
	Heal     int     `yaml:"heal,omitempty"`     // powerup pickups only
	Debris   int     `yaml:"debris,omitempty"`   // wreckage pieces on a scoring kill, 0 = default
	Boss     bool    `yaml:"boss,omitempty"`

	Weapon *WeaponSpec `yaml:"weapon,omitempty"` // nil = unarmed
}

// WeaponSpec configures the weapon a template spawns with.
type WeaponSpec struct {
	Cooldown        float64 `yaml:"cooldown"` // seconds
	Damage          int     `yaml:"damage"`
	ProjectileSpeed float64 `yaml:"projectile_speed"`
	Spread          int     `yaml:"spread"` // projectiles per volley, min 1
}

type templateListFile struct {
	Templates []Template `yaml:"templates"`
}

// TemplateTable holds all entity templates indexed by name.
type TemplateTable struct {
	templates map[string]*Template
}

// LoadTemplateTable loads entity templates from a YAML file. Duplicate
// names are an error; silently keeping one of them would make spawn
// behavior depend on file order.
func LoadTemplateTable(path string) (*TemplateTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read templates: %w", err)
	}
	var f templateListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	t := &TemplateTable{templates: make(map[string]*Template, len(f.Templates))}
	for i := range f.Templates {
		tpl := &f.Templates[i]
		if tpl.Name == "" {
			return nil, fmt.Errorf("parse templates: entry %d has no name", i)
		}
		if _, dup := t.templates[tpl.Name]; dup {
			return nil, fmt.Errorf("parse templates: duplicate template %q", tpl.Name)
		}
		t.templates[tpl.Name] = tpl
	}
	return t, nil
}

// Get returns a template by name, or nil if not found.
func (t *TemplateTable) Get(name string) *Template {
	return t.templates[name]
}

// Count returns the number of loaded templates.
func (t *TemplateTable) Count() int {
	return len(t.templates)
}

// All returns the templates sorted by name.
func (t *TemplateTable) All() []*Template {
	out := make([]*Template, 0, len(t.templates))
	for _, tpl := range t.templates {
		out = append(out, tpl)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
