/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package scene

import (
	"strings"
	"testing"

	"gopainter/internal/input"
	applog "gopainter/internal/log"
	"gopainter/internal/tools"
	"gopainter/internal/vector"
)

func newTestScene(opts ...Option) *Scene {
	return New(append([]Option{WithLogger(applog.Discard())}, opts...)...)
}

func dispatch(s *Scene, evs ...input.Event) {
	for _, ev := range evs {
		s.Dispatch(ev)
	}
}

func TestNewDefaults(t *testing.T) {
	s := newTestScene()
	if s.Len() != 0 || s.ToolIndex() != 0 || s.Tool().Name() != "select" {
		t.Fatalf("unexpected initial state: %s", s.Summary())
	}
	if len(s.Tools()) != 3 {
		t.Fatalf("expected select, rectangle and ellipse tools")
	}
	fill, outline := s.Colors()
	if fill != s.Palette()[0] || outline != s.Palette()[0] {
		t.Fatalf("default colours must come from the palette")
	}
}

func TestCreateThenSelectScenario(t *testing.T) {
	// keep the strips away from the top-left corner the scenario draws in
	s := newTestScene(WithLayout(Layout{Tool: vector.R(700, 300, 100, 80), Swatch: vector.R(600, 20, 70, 60)}))
	if err := s.SetToolByName("rectangle"); err != nil {
		t.Fatalf("SetToolByName: %v", err)
	}
	dispatch(s,
		input.Down(input.ButtonPrimary, 10, 10),
		input.Move(60, 40),
		input.Up(input.ButtonPrimary, 60, 40),
	)
	shapes := s.Shapes()
	if len(shapes) != 1 || shapes[0].Kind != vector.KindRectangle || shapes[0].Rect() != vector.R(10, 10, 50, 30) {
		t.Fatalf("unexpected shapes: %+v", shapes)
	}

	if err := s.SetToolByName("select"); err != nil {
		t.Fatalf("SetToolByName: %v", err)
	}
	dispatch(s, input.Down(input.ButtonPrimary, 30, 20))
	st := s.Tool().(*tools.SelectTool)
	if id, ok := st.ActiveID(); !ok || id != shapes[0].ID {
		t.Fatalf("expected the new rectangle to be active, got %v %v", id, ok)
	}
	dispatch(s, input.Up(input.ButtonPrimary, 30, 20))

	// delete scenario
	dispatch(s, input.Release(input.KeyDelete))
	if s.Len() != 0 {
		t.Fatalf("scene should be empty after delete")
	}
	if _, ok := st.ActiveID(); ok {
		t.Fatalf("active reference must be cleared")
	}
}

func TestTopmostWins(t *testing.T) {
	s := newTestScene()
	a := s.AddShape(vector.NewShape(vector.KindRectangle, vector.R(200, 200, 100, 100)))
	b := s.AddShape(vector.NewShape(vector.KindEllipse, vector.R(250, 250, 100, 100)))
	if id, ok := s.SelectAt(vector.Pt{X: 275, Y: 275}); !ok || id != b {
		t.Fatalf("expected later shape %d, got %d", b, id)
	}
	if id, ok := s.SelectAt(vector.Pt{X: 210, Y: 210}); !ok || id != a {
		t.Fatalf("expected first shape %d, got %d", a, id)
	}
	if _, ok := s.SelectAt(vector.Pt{X: 500, Y: 500}); ok {
		t.Fatalf("empty space should not hit")
	}
}

func TestRemoveUnknownShape(t *testing.T) {
	s := newTestScene()
	id := s.AddShape(vector.NewShape(vector.KindRectangle, vector.R(200, 200, 10, 10)))
	if s.RemoveShape(id + 100) {
		t.Fatalf("unknown id must not be removed")
	}
	if s.Len() != 1 {
		t.Fatalf("scene changed by unknown remove")
	}
	if !s.RemoveShape(id) || s.RemoveShape(id) {
		t.Fatalf("remove should succeed exactly once")
	}
}

func TestAddShapeStampsColorsAndIDs(t *testing.T) {
	s := newTestScene()
	s.RequestColor(tools.ColorFill, vector.RGB(255, 0, 0))
	a := s.AddShape(vector.Shape{Kind: vector.KindRectangle, W: 1, H: 1, Fill: vector.White})
	b := s.AddShape(vector.Shape{Kind: vector.KindRectangle, W: 1, H: 1})
	if a == b {
		t.Fatalf("IDs must be unique")
	}
	sh, _ := s.Shape(a)
	if sh.Fill != vector.RGB(255, 0, 0) || sh.Outline != vector.Black {
		t.Fatalf("shape not stamped with scene colours: %+v", sh)
	}
}

func TestPaletteClickWithoutSelectionChangesDefaults(t *testing.T) {
	s := newTestScene()
	l := s.Layout()
	red := l.SwatchSlot(1).Center()
	blue := l.SwatchSlot(6).Center()
	dispatch(s, input.Down(input.ButtonPrimary, red.X, red.Y), input.Down(input.ButtonSecondary, blue.X, blue.Y))
	fill, outline := s.Colors()
	if fill != s.Palette()[1] || outline != s.Palette()[6] {
		t.Fatalf("unexpected defaults: %v %v", fill, outline)
	}
}

func TestColorChangeWhileSelected(t *testing.T) {
	s := newTestScene()
	id := s.AddShape(vector.NewShape(vector.KindRectangle, vector.R(200, 200, 100, 50)))
	dispatch(s, input.Down(input.ButtonPrimary, 250, 225), input.Up(input.ButtonPrimary, 250, 225))

	yellow := s.Layout().SwatchSlot(3).Center()
	dispatch(s, input.Down(input.ButtonPrimary, yellow.X, yellow.Y))
	sh, _ := s.Shape(id)
	if sh.Fill != s.Palette()[3] {
		t.Fatalf("selected shape not recoloured: %+v", sh)
	}
	if fill, _ := s.Colors(); fill != s.Palette()[0] {
		t.Fatalf("scene default must stay unchanged, got %v", fill)
	}
	// the palette press is not forwarded, so the selection survives
	if _, ok := s.Tool().(*tools.SelectTool).ActiveID(); !ok {
		t.Fatalf("palette press must not reach the tool")
	}
}

func TestToolbarClickSwitchesTool(t *testing.T) {
	s := newTestScene()
	slot := s.Layout().ToolSlot(2).Center()
	dispatch(s, input.Down(input.ButtonPrimary, slot.X, slot.Y), input.Up(input.ButtonPrimary, slot.X, slot.Y))
	if s.Tool().Name() != "ellipse" {
		t.Fatalf("expected ellipse tool, got %s", s.Tool().Name())
	}
	if s.Len() != 0 {
		t.Fatalf("toolbar press must not start a shape")
	}
	if err := s.SetTool(7); err == nil {
		t.Fatalf("expected out of range error")
	}
	if err := s.SetToolByName("lasso"); err == nil {
		t.Fatalf("expected unknown tool error")
	}
}

func TestDispatchQuit(t *testing.T) {
	s := newTestScene()
	if !s.Dispatch(input.Move(1, 1)) {
		t.Fatalf("ordinary events keep the editor running")
	}
	if s.Dispatch(input.QuitEvent()) {
		t.Fatalf("quit must stop the editor")
	}
}

func TestDrawOrder(t *testing.T) {
	s := newTestScene()
	s.AddShape(vector.NewShape(vector.KindRectangle, vector.R(200, 200, 100, 50)))
	dispatch(s, input.Down(input.ButtonPrimary, 250, 225), input.Up(input.ButtonPrimary, 250, 225))

	var rec vector.Recorder
	s.Draw(&rec)
	ops := rec.Ops()
	if ops[0] != vector.OpClear || rec.Commands[0].Color != vector.White {
		t.Fatalf("frame must start with a white clear: %v", ops[:1])
	}
	// shape body and outline come before the selection overlay
	if ops[1] != vector.OpPolygon || ops[2] != vector.OpPolygon || ops[3] != vector.OpRect || rec.Commands[3].Color != vector.Highlight {
		t.Fatalf("unexpected head of frame: %v", ops[:4])
	}
	// clear + 2 shape + 7 overlay + 3 tools (bg, icon, ...) + frame + 2 preview + 2 per swatch
	want := 1 + 2 + 7 + (3*2 + 1) + 2 + 2*len(s.Palette())
	if len(ops) != want {
		t.Fatalf("expected %d commands, got %d: %v", want, len(ops), ops)
	}
	last := rec.Commands[len(rec.Commands)-1]
	if last.Color != s.Palette()[len(s.Palette())-1] {
		t.Fatalf("palette should be drawn last, got %+v", last)
	}
}

func TestSummary(t *testing.T) {
	s := newTestScene()
	s.AddShape(vector.NewShape(vector.KindRectangle, vector.R(200, 200, 100, 50)))
	got := s.Summary()
	if !strings.Contains(got, "shapes=1") || !strings.Contains(got, "tool=select") {
		t.Fatalf("unexpected summary: %q", got)
	}
}
