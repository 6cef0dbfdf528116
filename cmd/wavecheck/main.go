// wavecheck validates the Voidfall data files against each other.
//
// Checks:
//   - every wave entry references a defined template with a positive count
//   - waves only field hostile-team templates
//   - boss waves contain a boss template, plain waves do not
//   - armed templates carry usable weapon numbers
//   - spawnable templates have a positive radius and health
//   - the Lua wave script compiles, when one is present
//
// Usage:
//
//	go run ./cmd/wavecheck [templates.yaml] [waves.yaml] [waves.lua]
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/voidfall/voidfall/internal/data"
	"github.com/voidfall/voidfall/internal/scripting"
)

var validTeams = map[string]bool{
	"player":  true,
	"hostile": true,
	"neutral": true,
}

func main() {
	templatesPath := filepath.Join("data", "templates.yaml")
	wavesPath := filepath.Join("data", "waves.yaml")
	scriptPath := filepath.Join("scripts", "waves.lua")
	if len(os.Args) >= 2 {
		templatesPath = os.Args[1]
	}
	if len(os.Args) >= 3 {
		wavesPath = os.Args[2]
	}
	if len(os.Args) >= 4 {
		scriptPath = os.Args[3]
	}

	// ---- Load tables ----
	templates, err := data.LoadTemplateTable(templatesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading %s: %v\n", templatesPath, err)
		os.Exit(1)
	}
	waves, err := data.LoadWaveTable(wavesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading %s: %v\n", wavesPath, err)
		os.Exit(1)
	}

	errs := 0

	// ---- Check templates ----
	for _, tpl := range templates.All() {
		if !validTeams[tpl.Team] {
			fmt.Fprintf(os.Stderr, "error: template %q has unknown team %q\n", tpl.Name, tpl.Team)
			errs++
		}
		if tpl.Radius <= 0 {
			fmt.Fprintf(os.Stderr, "error: template %q has non-positive radius %v\n", tpl.Name, tpl.Radius)
			errs++
		}
		if tpl.Health <= 0 {
			fmt.Fprintf(os.Stderr, "error: template %q has non-positive health %d\n", tpl.Name, tpl.Health)
			errs++
		}
		if tpl.Lifetime < 0 {
			fmt.Fprintf(os.Stderr, "error: template %q has negative lifetime %v\n", tpl.Name, tpl.Lifetime)
			errs++
		}
		if tpl.Debris < 0 {
			fmt.Fprintf(os.Stderr, "error: template %q has negative debris count %d\n", tpl.Name, tpl.Debris)
			errs++
		}
		if w := tpl.Weapon; w != nil {
			if w.Cooldown <= 0 {
				fmt.Fprintf(os.Stderr, "error: template %q weapon cooldown %v never fires\n", tpl.Name, w.Cooldown)
				errs++
			}
			if w.Damage <= 0 {
				fmt.Fprintf(os.Stderr, "error: template %q weapon deals no damage\n", tpl.Name)
				errs++
			}
			if w.ProjectileSpeed <= 0 {
				fmt.Fprintf(os.Stderr, "error: template %q weapon projectile_speed %v\n", tpl.Name, w.ProjectileSpeed)
				errs++
			}
		}
	}

	// ---- Check waves against templates ----
	for _, wave := range waves.All() {
		if wave.SpeedScale < 0 {
			fmt.Fprintf(os.Stderr, "error: wave %d has negative speed_scale %v\n", wave.Number, wave.SpeedScale)
			errs++
		}
		hasBoss := false
		for _, entry := range wave.Entries {
			tpl := templates.Get(entry.Template)
			if tpl == nil {
				fmt.Fprintf(os.Stderr, "error: wave %d references unknown template %q\n", wave.Number, entry.Template)
				errs++
				continue
			}
			if entry.Count <= 0 {
				fmt.Fprintf(os.Stderr, "error: wave %d spawns %d of %q\n", wave.Number, entry.Count, entry.Template)
				errs++
			}
			if tpl.Team != "hostile" {
				fmt.Fprintf(os.Stderr, "error: wave %d fields %s-team template %q\n", wave.Number, tpl.Team, entry.Template)
				errs++
			}
			if tpl.Boss {
				hasBoss = true
			}
		}
		if wave.Boss && !hasBoss {
			fmt.Fprintf(os.Stderr, "error: wave %d is flagged boss but spawns none\n", wave.Number)
			errs++
		}
		if !wave.Boss && hasBoss {
			fmt.Fprintf(os.Stderr, "warning: wave %d spawns a boss without the boss flag\n", wave.Number)
		}
	}

	// ---- Check the wave script, when one exists ----
	// A missing file is fine: scripting is optional at runtime too.
	if _, statErr := os.Stat(scriptPath); statErr == nil {
		eng, err := scripting.NewEngine(scriptPath, zap.NewNop())
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			errs++
		} else {
			eng.Close()
			fmt.Printf("script %s loads\n", scriptPath)
		}
	}

	// ---- Report ----
	fmt.Printf("%d templates, %d waves checked\n", templates.Count(), waves.Count())
	if errs > 0 {
		fmt.Fprintf(os.Stderr, "%d error(s)\n", errs)
		os.Exit(1)
	}
	fmt.Println("OK")
}
