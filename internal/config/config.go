/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package config loads the user configuration: a YAML file in the user
// config directory merged over Defaults, with GOPAINTER_* environment
// variables as read-only overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	applog "gopainter/internal/log"
	"gopainter/internal/vector"
)

// config_version: bump when the structure changes in a backward-incompatible way.

type CanvasConfig struct {
	Width      int    `yaml:"width" json:"width"`
	Height     int    `yaml:"height" json:"height"`
	Background string `yaml:"background" json:"background"`
	Highlight  string `yaml:"highlight" json:"highlight"`
	CursorIcon string `yaml:"cursor_icon,omitempty" json:"cursor_icon"` // optional image shown on the select tool
}

type HandlesConfig struct {
	Size           float32 `yaml:"size" json:"size"`
	RotationOffset float32 `yaml:"rotation_offset" json:"rotation_offset"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
	Source bool   `yaml:"source" json:"source"`
	File   string `yaml:"file" json:"file"`
}

type AppConfig struct {
	ConfigVersion int           `yaml:"config_version" json:"config_version"`
	Canvas        CanvasConfig  `yaml:"canvas" json:"canvas"`
	Palette       []string      `yaml:"palette" json:"palette"`
	Handles       HandlesConfig `yaml:"handles" json:"handles"`
	Logging       LoggingConfig `yaml:"logging" json:"logging"`
}

// Defaults returns the application defaults.
func Defaults() AppConfig {
	pal := vector.DefaultPalette()
	names := make([]string, len(pal))
	for i, c := range pal {
		names[i] = c.Hex()
	}
	g := vector.DefaultHandleGeometry()
	return AppConfig{
		ConfigVersion: 1,
		Canvas:        CanvasConfig{Width: 800, Height: 600, Background: "white", Highlight: vector.Highlight.Hex()},
		Palette:       names,
		Handles:       HandlesConfig{Size: g.Size, RotationOffset: g.RotationOffset},
		Logging:       LoggingConfig{Level: "info", Format: "console"},
	}
}

// Env var names used as overrides.
const (
	EnvConfigPath     = "GOPAINTER_CONFIG"
	EnvCanvasWidth    = "GOPAINTER_CANVAS_WIDTH"
	EnvCanvasHeight   = "GOPAINTER_CANVAS_HEIGHT"
	EnvBackground     = "GOPAINTER_BACKGROUND"
	EnvHighlight      = "GOPAINTER_HIGHLIGHT"
	EnvCursorIcon     = "GOPAINTER_CURSOR_ICON"
	EnvPalette        = "GOPAINTER_PALETTE" // comma separated
	EnvHandleSize     = "GOPAINTER_HANDLE_SIZE"
	EnvRotationOffset = "GOPAINTER_ROTATION_OFFSET"
	EnvLogLevel       = applog.EnvLevel
	EnvLogFormat      = applog.EnvFormat
	EnvLogSource      = applog.EnvSource
	EnvLogFile        = applog.EnvFile
)

// ConfigPath returns the per-user config file path. GOPAINTER_CONFIG wins
// when set.
func ConfigPath() (string, error) {
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return p, nil
	}
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("AppData")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		base = filepath.Join(base, "GoPainter")
	case "darwin":
		base = filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "GoPainter")
	default: // linux and others
		base = filepath.Join(os.Getenv("HOME"), ".config", "gopainter")
	}
	if base == "" {
		return "", errors.New("cannot resolve config directory")
	}
	return filepath.Join(base, "config.yaml"), nil
}

// Load reads the config file at path (ConfigPath when empty), applies
// defaults and merges environment overrides. A missing file is not an error.
func Load(path string) (AppConfig, error) {
	cfg := Defaults()
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return cfg, err
		}
		path = p
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		var fileCfg AppConfig
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
		mergeInto(&cfg, &fileCfg)
	case !errors.Is(err, os.ErrNotExist):
		return cfg, fmt.Errorf("read config: %w", err)
	}
	applyEnvOverrides(&cfg)
	return cfg, nil
}

// Save writes cfg as YAML to path (ConfigPath when empty).
func Save(path string, cfg AppConfig) error {
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}

func mergeInto(dst *AppConfig, src *AppConfig) {
	if src.ConfigVersion != 0 {
		dst.ConfigVersion = src.ConfigVersion
	}
	if src.Canvas.Width != 0 {
		dst.Canvas.Width = src.Canvas.Width
	}
	if src.Canvas.Height != 0 {
		dst.Canvas.Height = src.Canvas.Height
	}
	if v := strings.TrimSpace(src.Canvas.Background); v != "" {
		dst.Canvas.Background = v
	}
	if v := strings.TrimSpace(src.Canvas.Highlight); v != "" {
		dst.Canvas.Highlight = v
	}
	if v := strings.TrimSpace(src.Canvas.CursorIcon); v != "" {
		dst.Canvas.CursorIcon = v
	}
	// a palette in the file replaces the default one entirely
	if len(src.Palette) > 0 {
		dst.Palette = append([]string(nil), src.Palette...)
	}
	if src.Handles.Size != 0 {
		dst.Handles.Size = src.Handles.Size
	}
	if src.Handles.RotationOffset != 0 {
		dst.Handles.RotationOffset = src.Handles.RotationOffset
	}
	// logging
	if strings.TrimSpace(src.Logging.Level) != "" {
		dst.Logging.Level = strings.ToLower(strings.TrimSpace(src.Logging.Level))
	}
	if strings.TrimSpace(src.Logging.Format) != "" {
		dst.Logging.Format = strings.ToLower(strings.TrimSpace(src.Logging.Format))
	}
	dst.Logging.Source = src.Logging.Source
	if strings.TrimSpace(src.Logging.File) != "" {
		dst.Logging.File = strings.TrimSpace(src.Logging.File)
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	if n, ok := envInt(EnvCanvasWidth); ok {
		cfg.Canvas.Width = n
	}
	if n, ok := envInt(EnvCanvasHeight); ok {
		cfg.Canvas.Height = n
	}
	if v := strings.TrimSpace(os.Getenv(EnvBackground)); v != "" {
		cfg.Canvas.Background = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvHighlight)); v != "" {
		cfg.Canvas.Highlight = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvCursorIcon)); v != "" {
		cfg.Canvas.CursorIcon = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvPalette)); v != "" {
		var pal []string
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				pal = append(pal, p)
			}
		}
		if len(pal) > 0 {
			cfg.Palette = pal
		}
	}
	if f, ok := envFloat(EnvHandleSize); ok {
		cfg.Handles.Size = f
	}
	if f, ok := envFloat(EnvRotationOffset); ok {
		cfg.Handles.RotationOffset = f
	}
	// logging overrides
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogSource)); v != "" {
		lv := strings.ToLower(v)
		cfg.Logging.Source = lv == "1" || lv == "true" || lv == "on" || lv == "yes"
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
}

func envInt(key string) (int, bool) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	return n, err == nil
}

func envFloat(key string) (float32, bool) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 32)
	return float32(f), err == nil
}

// EnvOverrideFor returns the env var name if the field is overridden by environment variables.
func EnvOverrideFor(key string) (string, bool) {
	env := map[string]string{
		"canvas.width":            EnvCanvasWidth,
		"canvas.height":           EnvCanvasHeight,
		"canvas.background":       EnvBackground,
		"canvas.highlight":        EnvHighlight,
		"canvas.cursor_icon":      EnvCursorIcon,
		"palette":                 EnvPalette,
		"handles.size":            EnvHandleSize,
		"handles.rotation_offset": EnvRotationOffset,
		"logging.level":           EnvLogLevel,
		"logging.format":          EnvLogFormat,
		"logging.source":          EnvLogSource,
		"logging.file":            EnvLogFile,
	}[key]
	if env != "" && os.Getenv(env) != "" {
		return env, true
	}
	return "", false
}

// LogOptions maps the logging section onto logger options.
func (c AppConfig) LogOptions() applog.Options {
	return applog.Options{
		Level:     c.Logging.Level,
		Format:    c.Logging.Format,
		AddSource: c.Logging.Source,
		File:      c.Logging.File,
	}
}
