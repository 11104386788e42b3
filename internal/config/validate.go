/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"gopainter/internal/vector"
)

//go:embed schema.json
var schemaJSON []byte

// ValidationError lists every problem found by Validate.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config: %s", strings.Join(e.Problems, "; "))
}

// Validate checks cfg against the embedded JSON schema and parses every
// colour spec.
func Validate(cfg AppConfig) error {
	doc, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	result, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(schemaJSON), gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return fmt.Errorf("schema validate: %w", err)
	}
	var problems []string
	for _, e := range result.Errors() {
		problems = append(problems, e.String())
	}
	check := func(field, spec string) {
		if _, err := vector.ParseColor(spec); err != nil {
			problems = append(problems, fmt.Sprintf("%s: %v", field, err))
		}
	}
	check("canvas.background", cfg.Canvas.Background)
	check("canvas.highlight", cfg.Canvas.Highlight)
	for i, p := range cfg.Palette {
		check(fmt.Sprintf("palette.%d", i), p)
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// Theme is the parsed, drawable form of the canvas, palette and handle
// sections.
type Theme struct {
	Background vector.Color
	Highlight  vector.Color
	Palette    []vector.Color
	Handles    vector.HandleGeometry
}

// Theme parses the colour specs of cfg. Call Validate first for a full
// report; Theme stops at the first bad colour.
func (c AppConfig) Theme() (Theme, error) {
	var t Theme
	var err error
	if t.Background, err = vector.ParseColor(c.Canvas.Background); err != nil {
		return t, fmt.Errorf("canvas.background: %w", err)
	}
	if t.Highlight, err = vector.ParseColor(c.Canvas.Highlight); err != nil {
		return t, fmt.Errorf("canvas.highlight: %w", err)
	}
	for i, p := range c.Palette {
		col, err := vector.ParseColor(p)
		if err != nil {
			return t, fmt.Errorf("palette.%d: %w", i, err)
		}
		t.Palette = append(t.Palette, col)
	}
	t.Handles = vector.HandleGeometry{Size: c.Handles.Size, RotationOffset: c.Handles.RotationOffset}
	return t, nil
}
