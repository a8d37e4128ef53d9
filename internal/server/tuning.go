package server

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	. "ArenaBrawl/internal/game"
	"ArenaBrawl/pkg/logger"
)

// characterTuning holds optional per-archetype overrides for the stats a
// balance pass usually touches. Nil fields keep the built-in default.
type characterTuning struct {
	MaxHP            *float64 `json:"maxHp"`
	MoveSpeed        *float64 `json:"moveSpeed"`
	Radius           *float64 `json:"radius"`
	Mass             *float64 `json:"mass"`
	Damage           *float64 `json:"damage"`
	ProjectileSpeed  *float64 `json:"projectileSpeed"`
	ProjectileRadius *float64 `json:"projectileRadius"`
	ProjectileLife   *float64 `json:"projectileLife"`
	Cooldown         *float64 `json:"cooldown"`
	SpecialCooldown  *float64 `json:"specialCooldown"`
	AttackRange      *float64 `json:"attackRange"`
}

type tuningFile struct {
	Characters map[string]characterTuning `json:"characters"`
}

func mergeTuning(base CharacterConfig, t characterTuning) CharacterConfig {
	if t.MaxHP != nil {
		base.MaxHP = *t.MaxHP
	}
	if t.MoveSpeed != nil {
		base.MoveSpeed = *t.MoveSpeed
	}
	if t.Radius != nil {
		base.Radius = *t.Radius
	}
	if t.Mass != nil {
		base.Mass = *t.Mass
	}
	if t.Damage != nil {
		base.Damage = *t.Damage
	}
	if t.ProjectileSpeed != nil {
		base.ProjectileSpeed = *t.ProjectileSpeed
	}
	if t.ProjectileRadius != nil {
		base.ProjectileRadius = *t.ProjectileRadius
	}
	if t.ProjectileLife != nil {
		base.ProjectileLife = *t.ProjectileLife
	}
	if t.Cooldown != nil {
		base.Cooldown = *t.Cooldown
	}
	if t.SpecialCooldown != nil {
		base.SpecialCooldown = *t.SpecialCooldown
	}
	if t.AttackRange != nil {
		base.AttackRange = *t.AttackRange
	}
	return base
}

// loadTuningFile applies the overrides in path on top of the built-in
// defaults. A missing file resets everything to defaults.
func loadTuningFile(path string) error {
	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		if os.IsNotExist(err) {
			ResetConfigs()
			return nil
		}
		return fmt.Errorf("read tuning file %q: %w", cleanPath, err)
	}
	var file tuningFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse tuning file %q: %w", cleanPath, err)
	}
	ResetConfigs()
	for name, t := range file.Characters {
		kind := ParseKind(name)
		SetConfig(kind, mergeTuning(ConfigFor(kind), t))
	}
	return nil
}

// watchTuning reloads the tuning file whenever it changes on disk. Editors
// often fire several events per save, so changes within 100ms collapse into
// one reload. Runs until the watcher dies.
func watchTuning(path string) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Log.WithError(err).Warn("tuning watcher unavailable")
		return
	}
	defer watcher.Close()

	dir := filepath.Dir(filepath.Clean(path))
	if err := watcher.Add(dir); err != nil {
		logger.Log.WithError(err).WithField("dir", dir).Warn("tuning watcher unavailable")
		return
	}
	target := filepath.Clean(path)
	var lastReload time.Time

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if time.Since(lastReload) < 100*time.Millisecond {
				continue
			}
			lastReload = time.Now()
			if err := loadTuningFile(target); err != nil {
				logger.Log.WithError(err).Warn("tuning reload failed, keeping previous values")
				continue
			}
			logger.Log.WithField("file", target).Info("character tuning reloaded")
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Log.WithError(err).Warn("tuning watcher error")
		}
	}
}
