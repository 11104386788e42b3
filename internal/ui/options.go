/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package ui hosts the editor in a desktop window. The window needs the
// "fyne" build tag and cgo; other builds get a stub Run.
package ui

import (
	"log/slog"

	applog "gopainter/internal/log"
	"gopainter/internal/scene"
)

// Options configures Run.
type Options struct {
	Scene  *scene.Scene
	Width  int // logical canvas size; defaults to 800x600
	Height int
	Logger *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 800
	}
	if o.Height <= 0 {
		o.Height = 600
	}
	if o.Logger == nil {
		o.Logger = applog.WithComponent("ui")
	}
	return o
}
