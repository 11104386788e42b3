/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package input defines the host-independent event stream consumed by the scene and its tools.
package input

import (
	"fmt"

	"gopainter/internal/vector"
)

// Kind discriminates Event.
type Kind uint8

const (
	PointerDown Kind = iota + 1
	PointerMove
	PointerUp
	KeyUp
	Quit
)

func (k Kind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case KeyUp:
		return "key"
	case Quit:
		return "quit"
	}
	return "none"
}

// Button distinguishes the primary (fill) from the secondary (outline) mouse button.
type Button uint8

const (
	ButtonNone Button = iota
	ButtonPrimary
	ButtonSecondary
)

func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "left"
	case ButtonSecondary:
		return "right"
	}
	return "none"
}

// Key is a released keyboard key. Only keys the editor reacts to are named.
type Key string

const (
	KeyDelete    Key = "delete"
	KeyBackspace Key = "backspace"
	KeyEscape    Key = "escape"
)

// Event is one input event. Pos is set for pointer events, Button for
// PointerDown and PointerUp, Key for KeyUp.
type Event struct {
	Kind   Kind
	Button Button
	Pos    vector.Pt
	Key    Key
}

func Down(b Button, x, y float32) Event {
	return Event{Kind: PointerDown, Button: b, Pos: vector.Pt{X: x, Y: y}}
}

func Move(x, y float32) Event { return Event{Kind: PointerMove, Pos: vector.Pt{X: x, Y: y}} }

func Up(b Button, x, y float32) Event {
	return Event{Kind: PointerUp, Button: b, Pos: vector.Pt{X: x, Y: y}}
}

func Release(k Key) Event { return Event{Kind: KeyUp, Key: k} }

func QuitEvent() Event { return Event{Kind: Quit} }

// IsDelete reports whether the event is a key release that removes the selection.
func (e Event) IsDelete() bool {
	return e.Kind == KeyUp && (e.Key == KeyDelete || e.Key == KeyBackspace)
}

func (e Event) String() string {
	switch e.Kind {
	case PointerDown, PointerUp:
		return fmt.Sprintf("%s %s %g %g", e.Kind, e.Button, e.Pos.X, e.Pos.Y)
	case PointerMove:
		return fmt.Sprintf("move %g %g", e.Pos.X, e.Pos.Y)
	case KeyUp:
		return "key " + string(e.Key)
	}
	return e.Kind.String()
}
