/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package tools

import (
	"image"
	"log/slog"

	"gopainter/internal/input"
	applog "gopainter/internal/log"
	"gopainter/internal/vector"
)

// SelectState is the drag state of the select tool.
type SelectState uint8

const (
	StateIdle SelectState = iota
	StateDraggingShape
	StateDraggingHandle
)

func (s SelectState) String() string {
	switch s {
	case StateDraggingShape:
		return "dragging-shape"
	case StateDraggingHandle:
		return "dragging-handle"
	}
	return "idle"
}

// SelectOptions configures NewSelectTool. Zero values fall back to the defaults.
type SelectOptions struct {
	Highlight vector.Color
	Handles   vector.HandleGeometry
	Icon      image.Image // toolbar icon, an arrow is drawn when nil
	Logger    *slog.Logger
}

// SelectTool picks the topmost shape under the pointer and moves, resizes,
// rotates, recolours or deletes it.
type SelectTool struct {
	highlight vector.Color
	handles   vector.HandleGeometry
	icon      image.Image
	log       *slog.Logger

	active    vector.ShapeID
	hasActive bool
	state     SelectState
	handle    vector.Handle
	last      vector.Pt
}

func NewSelectTool(opts SelectOptions) *SelectTool {
	t := &SelectTool{
		highlight: opts.Highlight,
		handles:   opts.Handles,
		icon:      opts.Icon,
		log:       opts.Logger,
	}
	if t.highlight == (vector.Color{}) {
		t.highlight = vector.Highlight
	}
	if t.handles.Size <= 0 {
		t.handles.Size = vector.DefaultHandleGeometry().Size
	}
	if t.handles.RotationOffset <= 0 {
		t.handles.RotationOffset = vector.DefaultHandleGeometry().RotationOffset
	}
	if t.log == nil {
		t.log = applog.WithComponent("tools.select")
	}
	return t
}

func (t *SelectTool) Name() string { return "select" }

// State returns the drag state and, while dragging a handle, which one.
func (t *SelectTool) State() (SelectState, vector.Handle) { return t.state, t.handle }

// ActiveID returns the selected shape's ID without validating it.
func (t *SelectTool) ActiveID() (vector.ShapeID, bool) { return t.active, t.hasActive }

// Active resolves the selection. A shape that left the document clears it.
func (t *SelectTool) Active(doc Document) (*vector.Shape, bool) {
	if !t.hasActive {
		return nil, false
	}
	s, ok := doc.Shape(t.active)
	if !ok {
		t.clear()
		return nil, false
	}
	return s, true
}

func (t *SelectTool) clear() {
	t.active, t.hasActive = 0, false
	t.state = StateIdle
}

func (t *SelectTool) HandleInput(doc Document, ev input.Event) {
	switch ev.Kind {
	case input.PointerDown:
		t.press(doc, ev.Pos)
	case input.PointerMove:
		t.drag(doc, ev.Pos)
	case input.PointerUp:
		t.release(doc)
	case input.KeyUp:
		if ev.Key == input.KeyEscape {
			if t.hasActive {
				t.log.Debug("selection cleared", slog.Uint64("id", uint64(t.active)))
			}
			t.clear()
			return
		}
		if !ev.IsDelete() {
			return
		}
		s, ok := t.Active(doc)
		if !ok {
			return
		}
		doc.RemoveShape(s.ID)
		t.log.Debug("shape deleted", slog.Uint64("id", uint64(s.ID)))
		t.clear()
	}
}

func (t *SelectTool) press(doc Document, p vector.Pt) {
	if t.state != StateIdle {
		return
	}
	t.last = p
	if s, ok := t.Active(doc); ok {
		if h, ok := t.handles.HandleAt(s, p); ok {
			t.state, t.handle = StateDraggingHandle, h
			t.log.Debug("handle drag start", slog.String("handle", h.String()), slog.Uint64("id", uint64(s.ID)))
			return
		}
	}
	id, ok := doc.SelectAt(p)
	t.active, t.hasActive = id, ok
	if ok {
		t.state = StateDraggingShape
	}
}

func (t *SelectTool) drag(doc Document, p vector.Pt) {
	if t.state == StateIdle {
		return
	}
	s, ok := t.Active(doc)
	if !ok {
		return
	}
	dx, dy := p.X-t.last.X, p.Y-t.last.Y
	switch {
	case t.state == StateDraggingShape:
		s.Move(dx, dy)
	case t.handle == vector.HandleRotate:
		s.RotateTowards(p)
	default:
		vector.ResizeWithHandle(s, t.handle, dx, dy)
	}
	t.last = p
}

func (t *SelectTool) release(doc Document) {
	if t.state == StateDraggingHandle {
		if s, ok := t.Active(doc); ok {
			s.Normalize()
			t.log.Debug("handle drag end", slog.String("shape", s.String()))
		}
	}
	t.state = StateIdle
}

// HandleColor recolours the selected shape. Without a selection the request
// is left to the document.
func (t *SelectTool) HandleColor(doc Document, target ColorTarget, c vector.Color) bool {
	s, ok := t.Active(doc)
	if !ok {
		return false
	}
	if target == ColorOutline {
		s.Outline = c
	} else {
		s.Fill = c
	}
	return true
}

func (t *SelectTool) Draw(doc Document, dst vector.Surface) {
	s, ok := t.Active(doc)
	if !ok {
		return
	}
	s.DrawFocus(dst, t.highlight)
	t.handles.DrawHandles(dst, s, t.highlight)
}

func (t *SelectTool) DrawIcon(dst vector.Surface, r vector.Rect) {
	if t.icon != nil {
		b := t.icon.Bounds()
		x := r.X + (r.W-float32(b.Dx()))/2
		y := r.Y + (r.H-float32(b.Dy()))/2
		dst.DrawImage(x, y, t.icon)
		return
	}
	dst.DrawPolygon(arrow(r.Inset(iconInset, iconInset)), vector.Black, 0)
}

// arrow is a mouse pointer outline fitted to the left half of r.
func arrow(r vector.Rect) []vector.Pt {
	s := min(r.W, r.H) / 10
	ox := r.X + r.W/2 - 3*s
	oy := r.Y + s
	unit := []vector.Pt{{X: 0, Y: 0}, {X: 0, Y: 7}, {X: 1.8, Y: 5.4}, {X: 3.2, Y: 8.2}, {X: 4.2, Y: 7.7}, {X: 2.8, Y: 5}, {X: 5, Y: 5}}
	out := make([]vector.Pt, len(unit))
	for i, u := range unit {
		out[i] = vector.Pt{X: ox + u.X*s, Y: oy + u.Y*s}
	}
	return out
}
