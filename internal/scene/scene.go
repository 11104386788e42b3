/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package scene owns the shapes of a drawing together with the tools, the
// palette and the current colours, and routes input events between them.
package scene

import (
	"fmt"
	"image"
	"log/slog"

	"gopainter/internal/input"
	applog "gopainter/internal/log"
	"gopainter/internal/tools"
	"gopainter/internal/vector"
)

// Scene is the editor state. It is not safe for concurrent use; the host
// calls Dispatch and Draw from one goroutine.
type Scene struct {
	shapes []*vector.Shape
	nextID vector.ShapeID

	tools   []tools.Tool
	tool    int
	palette []vector.Color
	fill    vector.Color
	outline vector.Color

	layout     Layout
	background vector.Color
	highlight  vector.Color
	handles    vector.HandleGeometry
	icon       image.Image
	log        *slog.Logger
}

// Option customises New.
type Option func(*Scene)

// WithPalette replaces the stock colours. An empty palette is ignored.
func WithPalette(p []vector.Color) Option {
	return func(s *Scene) {
		if len(p) > 0 {
			s.palette = append([]vector.Color(nil), p...)
		}
	}
}

func WithLayout(l Layout) Option                        { return func(s *Scene) { s.layout = l } }
func WithBackground(c vector.Color) Option              { return func(s *Scene) { s.background = c } }
func WithHighlight(c vector.Color) Option               { return func(s *Scene) { s.highlight = c } }
func WithHandleGeometry(g vector.HandleGeometry) Option { return func(s *Scene) { s.handles = g } }
func WithLogger(l *slog.Logger) Option                  { return func(s *Scene) { s.log = l } }

// WithCursorIcon sets the select tool's toolbar image.
func WithCursorIcon(img image.Image) Option { return func(s *Scene) { s.icon = img } }

// New returns an empty scene with the select tool active and the first
// palette colour as fill and outline.
func New(opts ...Option) *Scene {
	s := &Scene{
		palette:    vector.DefaultPalette(),
		layout:     DefaultLayout(),
		background: vector.White,
		highlight:  vector.Highlight,
		handles:    vector.DefaultHandleGeometry(),
	}
	for _, o := range opts {
		o(s)
	}
	if s.log == nil {
		s.log = applog.WithComponent("scene")
	}
	s.tools = []tools.Tool{
		tools.NewSelectTool(tools.SelectOptions{
			Highlight: s.highlight,
			Handles:   s.handles,
			Icon:      s.icon,
			Logger:    s.log.With(slog.String("tool", "select")),
		}),
		tools.NewRectangleTool(s.log.With(slog.String("tool", "rectangle"))),
		tools.NewEllipseTool(s.log.With(slog.String("tool", "ellipse"))),
	}
	s.fill, s.outline = s.palette[0], s.palette[0]
	return s
}

// SelectAt returns the topmost shape whose rotated rectangle contains p.
func (s *Scene) SelectAt(p vector.Pt) (vector.ShapeID, bool) {
	for i := len(s.shapes) - 1; i >= 0; i-- {
		if s.shapes[i].Contains(p) {
			return s.shapes[i].ID, true
		}
	}
	return 0, false
}

// Shape resolves id. The pointer is valid until the shape is removed.
func (s *Scene) Shape(id vector.ShapeID) (*vector.Shape, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.shapes[i], true
	}
	return nil, false
}

// AddShape appends sh on top, with a fresh ID and the current colours.
func (s *Scene) AddShape(sh vector.Shape) vector.ShapeID {
	s.nextID++
	sh.ID = s.nextID
	sh.Fill, sh.Outline = s.fill, s.outline
	s.shapes = append(s.shapes, &sh)
	s.log.Debug("shape added", slog.String("shape", sh.String()))
	return sh.ID
}

// RemoveShape deletes the shape with id. Unknown IDs leave the scene untouched.
func (s *Scene) RemoveShape(id vector.ShapeID) bool {
	i := s.indexOf(id)
	if i < 0 {
		s.log.Warn("remove of unknown shape", slog.Uint64("id", uint64(id)))
		return false
	}
	copy(s.shapes[i:], s.shapes[i+1:])
	s.shapes[len(s.shapes)-1] = nil
	s.shapes = s.shapes[:len(s.shapes)-1]
	s.log.Debug("shape removed", slog.Uint64("id", uint64(id)))
	return true
}

func (s *Scene) indexOf(id vector.ShapeID) int {
	for i, sh := range s.shapes {
		if sh.ID == id {
			return i
		}
	}
	return -1
}

// Shapes returns a copy of the shapes in paint order.
func (s *Scene) Shapes() []vector.Shape {
	out := make([]vector.Shape, len(s.shapes))
	for i, sh := range s.shapes {
		out[i] = *sh
	}
	return out
}

func (s *Scene) Len() int { return len(s.shapes) }

func (s *Scene) Tools() []tools.Tool { return s.tools }

// Tool is the active tool.
func (s *Scene) Tool() tools.Tool { return s.tools[s.tool] }

func (s *Scene) ToolIndex() int { return s.tool }

// SetTool activates tool i. Out of range indices are rejected.
func (s *Scene) SetTool(i int) error {
	if i < 0 || i >= len(s.tools) {
		return fmt.Errorf("tool index %d out of range [0,%d)", i, len(s.tools))
	}
	if i != s.tool {
		s.tool = i
		s.log.Debug("tool switched", slog.String("tool", s.tools[i].Name()))
	}
	return nil
}

// SetToolByName activates the tool called name.
func (s *Scene) SetToolByName(name string) error {
	for i, t := range s.tools {
		if t.Name() == name {
			return s.SetTool(i)
		}
	}
	return fmt.Errorf("unknown tool %q", name)
}

func (s *Scene) Palette() []vector.Color { return s.palette }

// Colors returns the fill and outline given to the next created shape.
func (s *Scene) Colors() (fill, outline vector.Color) { return s.fill, s.outline }

func (s *Scene) Layout() Layout { return s.layout }

// RequestColor offers c to the active tool first and only changes the
// default colour when the tool does not consume it.
func (s *Scene) RequestColor(target tools.ColorTarget, c vector.Color) {
	if s.Tool().HandleColor(s, target, c) {
		s.log.Debug("colour applied to selection", slog.String("target", target.String()), slog.String("color", c.Hex()))
		return
	}
	if target == tools.ColorOutline {
		s.outline = c
	} else {
		s.fill = c
	}
}

// Dispatch routes one event and reports whether the editor keeps running.
// A press on a palette swatch or a toolbar slot is handled here and not
// forwarded to the active tool.
func (s *Scene) Dispatch(ev input.Event) bool {
	switch ev.Kind {
	case input.Quit:
		return false
	case input.PointerDown:
		if s.pressPalette(ev) || s.pressToolbar(ev) {
			return true
		}
	}
	s.Tool().HandleInput(s, ev)
	return true
}

func (s *Scene) pressPalette(ev input.Event) bool {
	for i, c := range s.palette {
		if !s.layout.SwatchSlot(i).Contains(ev.Pos) {
			continue
		}
		switch ev.Button {
		case input.ButtonPrimary:
			s.RequestColor(tools.ColorFill, c)
		case input.ButtonSecondary:
			s.RequestColor(tools.ColorOutline, c)
		}
		return true
	}
	return false
}

func (s *Scene) pressToolbar(ev input.Event) bool {
	for i := range s.tools {
		if s.layout.ToolSlot(i).Contains(ev.Pos) {
			_ = s.SetTool(i)
			return true
		}
	}
	return false
}

// Draw renders one frame: background, shapes, tool overlay, toolbar,
// colour preview and palette.
func (s *Scene) Draw(dst vector.Surface) {
	dst.Clear(s.background)
	for _, sh := range s.shapes {
		sh.Draw(dst)
	}
	s.Tool().Draw(s, dst)

	for i, t := range s.tools {
		slot := s.layout.ToolSlot(i)
		dst.DrawRect(slot, 0, slotBackground, 0)
		t.DrawIcon(dst, slot)
		if i == s.tool {
			dst.DrawRect(slot, 0, s.highlight, activeFrame)
		}
	}

	preview := s.layout.PreviewSlot(len(s.tools)).Inset(slotInset, slotInset)
	dst.DrawRect(preview, 0, s.fill, 0)
	dst.DrawRect(preview, 0, s.outline, previewStroke)

	for i, c := range s.palette {
		slot := s.layout.SwatchSlot(i)
		dst.DrawRect(slot, 0, slotBackground, 0)
		dst.DrawRect(slot.Inset(slotInset, slotInset), 0, c, 0)
	}
}

// Summary is a one-line description used in logs and crash reports.
func (s *Scene) Summary() string {
	sel := "none"
	if st, ok := s.Tool().(*tools.SelectTool); ok {
		if id, ok := st.ActiveID(); ok {
			sel = fmt.Sprintf("#%d", id)
		}
	}
	return fmt.Sprintf("shapes=%d tool=%s selected=%s fill=%s outline=%s",
		len(s.shapes), s.Tool().Name(), sel, s.fill.Hex(), s.outline.Hex())
}
