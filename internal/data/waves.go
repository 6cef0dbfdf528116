package data

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// WaveEntry names a template and how many of it a wave spawns.
type WaveEntry struct {
	Template string `yaml:"template"`
	Count    int    `yaml:"count"`
}

// Wave defines one numbered wave of hostiles.
type Wave struct {
	Number     int         `yaml:"number"`
	Boss       bool        `yaml:"boss,omitempty"`
	SpeedScale float64     `yaml:"speed_scale,omitempty"` // cruise multiplier, 0 means 1
	Entries    []WaveEntry `yaml:"entries"`
}

type waveListFile struct {
	Waves []Wave `yaml:"waves"`
}

// WaveTable holds all wave definitions indexed by wave number. Waves past
// the highest defined number repeat the last wave, scaled up by the spawn
// director.
type WaveTable struct {
	waves map[int]*Wave
	max   int
}

// LoadWaveTable loads wave definitions from a YAML file.
func LoadWaveTable(path string) (*WaveTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read waves: %w", err)
	}
	var f waveListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse waves: %w", err)
	}
	t := &WaveTable{waves: make(map[int]*Wave, len(f.Waves))}
	for i := range f.Waves {
		w := &f.Waves[i]
		if w.Number <= 0 {
			return nil, fmt.Errorf("parse waves: wave %d has invalid number %d", i, w.Number)
		}
		if _, dup := t.waves[w.Number]; dup {
			return nil, fmt.Errorf("parse waves: duplicate wave %d", w.Number)
		}
		t.waves[w.Number] = w
		if w.Number > t.max {
			t.max = w.Number
		}
	}
	return t, nil
}

// Get returns a wave by number, or nil if not defined.
func (t *WaveTable) Get(number int) *Wave {
	return t.waves[number]
}

// Max returns the highest defined wave number, 0 for an empty table.
func (t *WaveTable) Max() int {
	return t.max
}

// Count returns the number of defined waves.
func (t *WaveTable) Count() int {
	return len(t.waves)
}

// All returns the waves ordered by number.
func (t *WaveTable) All() []*Wave {
	out := make([]*Wave, 0, len(t.waves))
	for _, w := range t.waves {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}
