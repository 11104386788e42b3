/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package tools

import (
	"log/slog"

	"gopainter/internal/input"
	applog "gopainter/internal/log"
	"gopainter/internal/vector"
)

// CreateTool draws a new shape of one kind by dragging out its bounding box.
// The shape is added on release; a drag without area creates nothing.
type CreateTool struct {
	kind    vector.Kind
	preview vector.Color
	log     *slog.Logger

	drawing bool
	anchor  vector.Pt
	current vector.Pt
}

// NewCreateTool returns a creation tool for kind. A nil logger uses the application logger.
func NewCreateTool(kind vector.Kind, l *slog.Logger) *CreateTool {
	if l == nil {
		l = applog.WithComponent("tools." + kind.String())
	}
	return &CreateTool{kind: kind, preview: vector.Gray, log: l}
}

func NewRectangleTool(l *slog.Logger) *CreateTool { return NewCreateTool(vector.KindRectangle, l) }
func NewEllipseTool(l *slog.Logger) *CreateTool   { return NewCreateTool(vector.KindEllipse, l) }

func (t *CreateTool) Name() string      { return t.kind.String() }
func (t *CreateTool) Kind() vector.Kind { return t.kind }

// Drawing reports whether a drag is in progress and the rectangle it spans.
func (t *CreateTool) Drawing() (vector.Rect, bool) {
	if !t.drawing {
		return vector.Rect{}, false
	}
	return vector.NormalizeRect(t.anchor.X, t.anchor.Y, t.current.X, t.current.Y), true
}

func (t *CreateTool) HandleInput(doc Document, ev input.Event) {
	switch ev.Kind {
	case input.PointerDown:
		if t.drawing {
			return
		}
		t.drawing = true
		t.anchor, t.current = ev.Pos, ev.Pos
	case input.PointerMove:
		if t.drawing {
			t.current = ev.Pos
		}
	case input.PointerUp:
		if !t.drawing {
			return
		}
		t.drawing = false
		r := vector.NormalizeRect(t.anchor.X, t.anchor.Y, ev.Pos.X, ev.Pos.Y)
		if r.Empty() {
			t.log.Debug("degenerate shape discarded", slog.Any("rect", r))
			return
		}
		id := doc.AddShape(vector.NewShape(t.kind, r))
		t.log.Debug("shape created", slog.Uint64("id", uint64(id)), slog.String("kind", t.kind.String()))
	}
}

// HandleColor never consumes: palette clicks change the colours of the next shape.
func (t *CreateTool) HandleColor(Document, ColorTarget, vector.Color) bool { return false }

func (t *CreateTool) Draw(_ Document, dst vector.Surface) {
	r, ok := t.Drawing()
	if !ok {
		return
	}
	t.drawKind(dst, r, t.preview)
}

func (t *CreateTool) DrawIcon(dst vector.Surface, r vector.Rect) {
	t.drawKind(dst, r.Inset(iconInset, iconInset), vector.Black)
}

func (t *CreateTool) drawKind(dst vector.Surface, r vector.Rect, c vector.Color) {
	switch t.kind {
	case vector.KindEllipse:
		dst.DrawEllipse(r, 0, c, 0)
	default:
		dst.DrawRect(r, 0, c, 0)
	}
}
