//go:build fyne && cgo

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package ui

import (
	"fmt"
	"image"
	"log/slog"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"gopainter/internal/input"
	applog "gopainter/internal/log"
	"gopainter/internal/raster"
	"gopainter/internal/scene"
	"gopainter/internal/vector"
	"gopainter/internal/version"
)

// Run opens the editor window and blocks until it is closed.
func Run(opts Options) error {
	if opts.Scene == nil {
		return fmt.Errorf("ui: no scene")
	}
	opts = opts.withDefaults()
	l := opts.Logger
	l.Info("starting UI", slog.Int("width", opts.Width), slog.Int("height", opts.Height))

	fyneApp := app.NewWithID("gopainter")
	w := fyneApp.NewWindow("GoPainter " + version.String())

	ec := NewEditorCanvas(opts.Scene, opts.Width, opts.Height, l)
	ec.onQuit = func() {
		l.Info("quit requested", slog.String("scene", opts.Scene.Summary()))
		w.Close()
	}
	if dc, ok := w.Canvas().(desktop.Canvas); ok {
		dc.SetOnKeyUp(ec.KeyUp)
	}
	w.SetCloseIntercept(func() { ec.send(input.QuitEvent()) })

	w.SetContent(ec)
	w.Resize(fyne.NewSize(float32(opts.Width), float32(opts.Height)))
	w.SetFixedSize(true)
	w.ShowAndRun()
	return nil
}

// EditorCanvas shows the scene in a raster and feeds it pointer and key events.
type EditorCanvas struct {
	widget.BaseWidget

	// mu guards everything below it.
	mu      sync.Mutex
	scene   *scene.Scene
	surface *raster.Canvas
	img     *canvas.Raster
	size    fyne.Size // logical scene size
	pressed input.Button
	last    vector.Pt
	done    bool
	onQuit  func()
	log     *slog.Logger
}

var (
	_ desktop.Mouseable = (*EditorCanvas)(nil)
	_ desktop.Hoverable = (*EditorCanvas)(nil)
	_ fyne.Draggable    = (*EditorCanvas)(nil)
)

func NewEditorCanvas(sc *scene.Scene, w, h int, l *slog.Logger) *EditorCanvas {
	if l == nil {
		l = applog.WithComponent("ui")
	}
	ec := &EditorCanvas{
		scene:   sc,
		surface: raster.New(w, h),
		size:    fyne.NewSize(float32(w), float32(h)),
		log:     l,
	}
	ec.img = canvas.NewRaster(ec.render)
	ec.img.SetMinSize(ec.size)
	ec.ExtendBaseWidget(ec)
	return ec
}

func (e *EditorCanvas) CreateRenderer() fyne.WidgetRenderer { return widget.NewSimpleRenderer(e.img) }

func (e *EditorCanvas) MinSize() fyne.Size { return e.size }

// render draws one frame; fyne scales it to the widget's pixel size.
func (e *EditorCanvas) render(_, _ int) image.Image {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.scene.Draw(e.surface)
	return e.surface.Image()
}

// toScene maps a widget position to scene coordinates.
func (e *EditorCanvas) toScene(pos fyne.Position) vector.Pt {
	actual := e.Size()
	if actual.Width <= 0 || actual.Height <= 0 {
		return vector.Pt{X: pos.X, Y: pos.Y}
	}
	return vector.Pt{X: pos.X * e.size.Width / actual.Width, Y: pos.Y * e.size.Height / actual.Height}
}

func (e *EditorCanvas) MouseDown(ev *desktop.MouseEvent) {
	if b := mouseButton(ev.Button); b != input.ButtonNone {
		p := e.toScene(ev.Position)
		e.send(input.Down(b, p.X, p.Y))
	}
}

func (e *EditorCanvas) MouseUp(ev *desktop.MouseEvent) {
	if b := mouseButton(ev.Button); b != input.ButtonNone {
		p := e.toScene(ev.Position)
		e.send(input.Up(b, p.X, p.Y))
	}
}

func (e *EditorCanvas) MouseIn(ev *desktop.MouseEvent)    { e.MouseMoved(ev) }
func (e *EditorCanvas) MouseMoved(ev *desktop.MouseEvent) { e.moveTo(ev.Position) }
func (e *EditorCanvas) MouseOut()                         {}

// Dragged replaces MouseMoved while a button is held.
func (e *EditorCanvas) Dragged(ev *fyne.DragEvent) { e.moveTo(ev.Position) }

// DragEnd releases a press whose MouseUp was swallowed by the drag.
func (e *EditorCanvas) DragEnd() {
	e.mu.Lock()
	b, p := e.pressed, e.last
	e.mu.Unlock()
	if b != input.ButtonNone {
		e.send(input.Up(b, p.X, p.Y))
	}
}

func (e *EditorCanvas) moveTo(pos fyne.Position) {
	p := e.toScene(pos)
	e.send(input.Move(p.X, p.Y))
}

// KeyUp forwards released keys the editor knows about.
func (e *EditorCanvas) KeyUp(ev *fyne.KeyEvent) {
	if k, ok := keyName(ev.Name); ok {
		e.send(input.Release(k))
	}
}

func (e *EditorCanvas) send(ev input.Event) {
	switch e.dispatch(ev) {
	case handled:
		e.img.Refresh()
	case stopped:
		if e.onQuit != nil {
			e.onQuit()
		}
	}
}

// outcome is what dispatch did with an event.
type outcome uint8

const (
	dropped outcome = iota // filtered before reaching the scene
	handled
	stopped // the editor has quit
)

// dispatch hands ev to the scene. Presses while another button is held,
// releases of a button that is not held and moves to the current pointer
// position never reach it.
func (e *EditorCanvas) dispatch(ev input.Event) outcome {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.done {
		return stopped
	}
	switch ev.Kind {
	case input.PointerDown:
		if e.pressed != input.ButtonNone {
			return dropped
		}
		e.pressed = ev.Button
	case input.PointerUp:
		if ev.Button != e.pressed {
			return dropped
		}
		e.pressed = input.ButtonNone
	case input.PointerMove:
		if ev.Pos == e.last {
			return dropped
		}
	}
	if ev.Kind != input.KeyUp && ev.Kind != input.Quit {
		e.last = ev.Pos
	}
	if !e.scene.Dispatch(ev) {
		e.done = true
		return stopped
	}
	return handled
}

func mouseButton(b desktop.MouseButton) input.Button {
	switch b {
	case desktop.MouseButtonPrimary:
		return input.ButtonPrimary
	case desktop.MouseButtonSecondary:
		return input.ButtonSecondary
	}
	return input.ButtonNone
}

func keyName(k fyne.KeyName) (input.Key, bool) {
	switch k {
	case fyne.KeyDelete:
		return input.KeyDelete, true
	case fyne.KeyBackspace:
		return input.KeyBackspace, true
	case fyne.KeyEscape:
		return input.KeyEscape, true
	}
	return "", false
}
